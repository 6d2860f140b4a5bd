package state

import "github.com/cristianoliveira/parallax/internal/domain"

// embedResultMsg reports the outcome of one embed attempt.
type embedResultMsg struct {
	viewID     int
	generation domain.Generation
	title      string
	err        error
}

type loadTimeoutMsg struct {
	viewID     int
	generation domain.Generation
}

type refreshTickMsg struct {
	token uint64
}

type alertExpiredMsg struct {
	id string
}

// lastURLMsg carries the persisted last URL read at startup.
type lastURLMsg struct {
	url string
	err error
}

type persistResultMsg struct {
	url string
	err error
}

type openResultMsg struct {
	url string
	err error
}
