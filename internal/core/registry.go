package core

import (
	"fmt"

	"github.com/cristianoliveira/parallax/internal/domain"
)

const (
	msgRemoveNoSelection = "Select a view to remove first."
	msgCleared           = "All views have been cleared."
)

// CreateView appends an empty view. In sync mode the new view is navigated
// to the first URL held by an existing view.
func (s *State) CreateView() (int, Effects, error) {
	if len(s.views) >= MaxViews {
		fx := s.Publish(fmt.Sprintf("Maximum %d views allowed", MaxViews), domain.AlertError)
		return 0, fx, ErrCapacityExceeded
	}

	url, hasURL := s.FirstURL()
	v := s.appendView()
	s.logger.Debug("view created", "view_id", v.ID, "count", len(s.views))

	var fx Effects
	if s.syncMode && hasURL {
		fx = s.navigate(len(s.views)-1, url)
	}
	return v.ID, fx, nil
}

// RemoveSelected removes the selected view and clears the selection.
func (s *State) RemoveSelected() (Effects, error) {
	i := s.indexOf(s.selected)
	if s.selected == 0 || i < 0 {
		s.selected = 0
		return s.Publish(msgRemoveNoSelection, domain.AlertWarning), ErrNoSelection
	}
	removed := s.views[i]
	s.views = append(s.views[:i:i], s.views[i+1:]...)
	s.selected = 0
	s.logger.Debug("view removed", "view_id", removed.ID, "count", len(s.views))
	return nil, nil
}

// RemoveView removes the view with id, which must be the selected view.
func (s *State) RemoveView(id int) (Effects, error) {
	if s.selected == 0 || s.selected != id {
		return s.Publish(msgRemoveNoSelection, domain.AlertWarning), ErrNoSelection
	}
	return s.RemoveSelected()
}

// ClearAll resets every view to idle. Pending loads are orphaned by the
// generation change.
func (s *State) ClearAll() Effects {
	for i, v := range s.views {
		s.views[i] = domain.View{
			ID:         v.ID,
			Status:     domain.StatusIdle,
			Generation: s.freshGeneration(),
		}
	}
	s.logger.Debug("views cleared", "count", len(s.views))
	return s.Publish(msgCleared, domain.AlertInfo)
}

// Select marks the view with id as selected.
func (s *State) Select(id int) error {
	if s.indexOf(id) < 0 {
		return fmt.Errorf("select view %d: %w", id, ErrViewNotFound)
	}
	s.selected = id
	return nil
}

// ClearSelection unselects the selected view, if any.
func (s *State) ClearSelection() {
	s.selected = 0
}
