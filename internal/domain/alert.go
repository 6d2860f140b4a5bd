package domain

import (
	"fmt"
	"time"
)

// AlertType represents the severity of an alert message.
type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
)

// IsValid checks if the alert type is valid.
func (t AlertType) IsValid() bool {
	switch t {
	case AlertInfo, AlertWarning, AlertError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the alert type.
func (t AlertType) String() string {
	return string(t)
}

// AlertMessage is an ephemeral user-facing message.
type AlertMessage struct {
	ID      string
	Message string
	Type    AlertType
	Created time.Time
}

// ExpiresAt returns the time the alert stops being visible given its ttl.
func (a AlertMessage) ExpiresAt(ttl time.Duration) time.Time {
	return a.Created.Add(ttl)
}

// ParseAlertType parses a string into an AlertType.
func ParseAlertType(alertType string) (AlertType, error) {
	at := AlertType(alertType)
	if !at.IsValid() {
		return "", fmt.Errorf("invalid alert type: %s", alertType)
	}
	return at, nil
}
