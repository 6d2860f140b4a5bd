package core

import (
	"time"

	"github.com/cristianoliveira/parallax/internal/domain"
)

// Effect describes a side effect the host must perform after an operation.
// The core never performs I/O or starts timers itself.
type Effect interface {
	effect()
}

// StartEmbed asks the host to begin loading URL into the view. The result
// must be reported back with the same generation.
type StartEmbed struct {
	ViewID     int
	Generation domain.Generation
	URL        string
}

// StartLoadTimeout asks the host to call LoadTimedOut after the delay.
type StartLoadTimeout struct {
	ViewID     int
	Generation domain.Generation
	After      time.Duration
}

// StartRefresh asks the host to call RefreshTick with Token after Interval.
type StartRefresh struct {
	Token    uint64
	Interval time.Duration
}

// StopRefresh tells the host the previous refresh timer is obsolete.
type StopRefresh struct{}

// ExpireAlert asks the host to call AlertExpired with ID after the delay.
type ExpireAlert struct {
	ID    string
	After time.Duration
}

// PersistLastURL asks the host to store URL as the last synced URL.
type PersistLastURL struct {
	URL string
}

// OpenExternal asks the host to open URL outside the monitor.
type OpenExternal struct {
	URL string
}

func (StartEmbed) effect()       {}
func (StartLoadTimeout) effect() {}
func (StartRefresh) effect()     {}
func (StopRefresh) effect()      {}
func (ExpireAlert) effect()      {}
func (PersistLastURL) effect()   {}
func (OpenExternal) effect()     {}

// Effects is the ordered list of effects produced by one operation.
type Effects []Effect

// Embeds returns the StartEmbed effects in order.
func (e Effects) Embeds() []StartEmbed {
	return collect[StartEmbed](e)
}

// Timeouts returns the StartLoadTimeout effects in order.
func (e Effects) Timeouts() []StartLoadTimeout {
	return collect[StartLoadTimeout](e)
}

// Refreshes returns the StartRefresh effects in order.
func (e Effects) Refreshes() []StartRefresh {
	return collect[StartRefresh](e)
}

func collect[T Effect](effects Effects) []T {
	var out []T
	for _, e := range effects {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
