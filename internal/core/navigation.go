package core

import (
	"fmt"

	"github.com/cristianoliveira/parallax/internal/domain"
	"github.com/cristianoliveira/parallax/internal/urlcheck"
)

const (
	msgMalformed     = `The URL is malformed. Please check the format (e.g., "google.com").`
	msgLoadNoSelect  = "Please select a view first to load a URL."
	msgReloadedAll   = "Reloaded all views with a URL"
	msgLoadSyncFmt   = "Loading URL across all %d views..."
	msgLoadSingleFmt = "Loading URL in View %d..."
)

// LoadURL validates raw and navigates to it. In sync mode every view is
// navigated and the URL is persisted; otherwise only the selected view is.
func (s *State) LoadURL(raw string) (Effects, error) {
	canonical, err := urlcheck.Normalize(raw)
	if err != nil {
		return s.Publish(msgMalformed, domain.AlertError), err
	}

	if s.syncMode {
		var fx Effects
		for i := range s.views {
			fx = append(fx, s.navigate(i, canonical)...)
		}
		fx = append(fx, PersistLastURL{URL: canonical})
		fx = append(fx, s.Publish(fmt.Sprintf(msgLoadSyncFmt, len(s.views)), domain.AlertInfo)...)
		return fx, nil
	}

	i := s.indexOf(s.selected)
	if s.selected == 0 || i < 0 {
		return s.Publish(msgLoadNoSelect, domain.AlertWarning), ErrNoSelection
	}
	fx := s.navigate(i, canonical)
	fx = append(fx, s.Publish(fmt.Sprintf(msgLoadSingleFmt, s.selected), domain.AlertInfo)...)
	return fx, nil
}

// ReloadView re-navigates a view to its stored URL. Empty views are left
// untouched.
func (s *State) ReloadView(id int) (Effects, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("reload view %d: %w", id, ErrViewNotFound)
	}
	if !s.views[i].HasURL() {
		return nil, nil
	}
	return s.navigate(i, s.views[i].URL), nil
}

// ReloadAll re-navigates every view holding a URL, regardless of sync mode.
func (s *State) ReloadAll() Effects {
	var fx Effects
	reloaded := 0
	for i, v := range s.views {
		if !v.HasURL() {
			continue
		}
		fx = append(fx, s.navigate(i, v.URL)...)
		reloaded++
	}
	if reloaded == 0 {
		return nil
	}
	return append(fx, s.Publish(msgReloadedAll, domain.AlertInfo)...)
}

// OpenExternal returns the effect that opens the view's URL outside the monitor.
func (s *State) OpenExternal(id int) (Effects, error) {
	v, ok := s.View(id)
	if !ok {
		return nil, fmt.Errorf("open view %d: %w", id, ErrViewNotFound)
	}
	if !v.HasURL() {
		return nil, fmt.Errorf("open view %d: %w", id, ErrNoURL)
	}
	return Effects{OpenExternal{URL: v.URL}}, nil
}

// SetSyncMode switches between syncing every view and per-view navigation.
func (s *State) SetSyncMode(enabled bool) {
	s.syncMode = enabled
}

// navigate points the view at index i to url with a fresh generation.
// Blocked URLs never start an embed.
func (s *State) navigate(i int, url string) Effects {
	status := domain.StatusLoading
	if s.classifier.IsBlocked(url) {
		status = domain.StatusBlocked
	}
	v := domain.View{
		ID:         s.views[i].ID,
		URL:        url,
		Status:     status,
		Generation: s.freshGeneration(),
	}
	s.views[i] = v
	s.logger.Debug("view navigated", "view_id", v.ID, "status", v.Status.String(), "generation", uint64(v.Generation))

	if status != domain.StatusLoading {
		return nil
	}
	return Effects{
		StartEmbed{ViewID: v.ID, Generation: v.Generation, URL: url},
		StartLoadTimeout{ViewID: v.ID, Generation: v.Generation, After: LoadTimeout},
	}
}
