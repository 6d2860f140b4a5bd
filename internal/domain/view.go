// Package domain provides the domain layer for parallax views.
// It contains the view entity, its lifecycle states and alert messages.
package domain

import "fmt"

// ViewStatus represents the load lifecycle state of a view.
type ViewStatus string

const (
	StatusIdle    ViewStatus = "idle"
	StatusLoading ViewStatus = "loading"
	StatusLoaded  ViewStatus = "loaded"
	StatusError   ViewStatus = "error"
	StatusBlocked ViewStatus = "blocked"
)

// IsValid checks if the view status is valid.
func (s ViewStatus) IsValid() bool {
	switch s {
	case StatusIdle, StatusLoading, StatusLoaded, StatusError, StatusBlocked:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s ViewStatus) String() string {
	return string(s)
}

// IsSettled reports whether no load is in flight for the status.
func (s ViewStatus) IsSettled() bool {
	return s != StatusLoading
}

// Generation identifies one navigation of a view. Signals carrying an older
// generation belong to a superseded navigation and must be ignored.
type Generation uint64

// View represents one embedding slot.
type View struct {
	ID         int
	URL        string
	Status     ViewStatus
	Generation Generation
	// Title is the page title reported by the host after a successful load.
	Title string
}

// HasURL reports whether the view holds a URL.
func (v View) HasURL() bool {
	return v.URL != ""
}

// Label returns the text used to name the view in messages.
func (v View) Label() string {
	return fmt.Sprintf("View %d", v.ID)
}

// Validate checks the invariants that tie status and URL together.
func (v View) Validate() error {
	if v.ID <= 0 {
		return fmt.Errorf("invalid view ID: %d", v.ID)
	}
	if !v.Status.IsValid() {
		return fmt.Errorf("invalid view status: %s", v.Status)
	}
	if v.HasURL() == (v.Status == StatusIdle) {
		return fmt.Errorf("view %d: status %s does not match url %q", v.ID, v.Status, v.URL)
	}
	return nil
}

// ParseViewStatus parses a string into a ViewStatus.
func ParseViewStatus(status string) (ViewStatus, error) {
	vs := ViewStatus(status)
	if !vs.IsValid() {
		return "", fmt.Errorf("invalid view status: %s", status)
	}
	return vs, nil
}
