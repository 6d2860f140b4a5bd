package core

import "github.com/cristianoliveira/parallax/internal/domain"

// LoadSucceeded moves a loading view to loaded and records the page title.
// It reports false when the signal is stale or the view is not loading.
func (s *State) LoadSucceeded(id int, gen domain.Generation, title string) bool {
	return s.settle(id, gen, domain.StatusLoaded, title, "load succeeded")
}

// LoadFailed moves a loading view to error.
func (s *State) LoadFailed(id int, gen domain.Generation) bool {
	return s.settle(id, gen, domain.StatusError, "", "load failed")
}

// LoadTimedOut moves a view that is still loading after LoadTimeout to error.
func (s *State) LoadTimedOut(id int, gen domain.Generation) bool {
	return s.settle(id, gen, domain.StatusError, "", "load timed out")
}

func (s *State) settle(id int, gen domain.Generation, status domain.ViewStatus, title, event string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	v := s.views[i]
	if v.Generation != gen || v.Status != domain.StatusLoading {
		s.logger.Debug("stale load signal ignored", "event", event, "view_id", id, "generation", uint64(gen))
		return false
	}
	v.Status = status
	v.Title = title
	s.views[i] = v
	s.logger.Debug(event, "view_id", id, "generation", uint64(gen))
	return true
}
