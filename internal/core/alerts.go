package core

import (
	"github.com/cristianoliveira/parallax/internal/domain"
	"github.com/oklog/ulid/v2"
)

// Publish replaces the current alert and schedules its expiry.
func (s *State) Publish(message string, alertType domain.AlertType) Effects {
	now := s.now()
	alert := domain.AlertMessage{
		ID:      ulid.MustNew(ulid.Timestamp(now), s.entropy).String(),
		Message: message,
		Type:    alertType,
		Created: now,
	}
	s.alert = &alert
	return Effects{ExpireAlert{ID: alert.ID, After: AlertTTL}}
}

// DismissAlert clears the current alert. Calling it with no alert is a no-op.
func (s *State) DismissAlert() {
	s.alert = nil
}

// AlertExpired clears the alert only if id is still the current one.
func (s *State) AlertExpired(id string) bool {
	if s.alert == nil || s.alert.ID != id {
		return false
	}
	s.alert = nil
	return true
}
