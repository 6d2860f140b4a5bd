// Package core implements the view collection state machine: the registry,
// navigation, load supervision, the auto-refresh scheduler and the alert
// channel. Every mutating operation returns the Effects the host must run.
//
// State is not safe for concurrent use. It is owned by a single event loop.
package core

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/cristianoliveira/parallax/internal/domain"
	"github.com/cristianoliveira/parallax/internal/logging"
	"github.com/cristianoliveira/parallax/internal/urlcheck"
	"github.com/oklog/ulid/v2"
)

const (
	// MaxViews is the registry capacity.
	MaxViews = 10
	// InitialViews is the number of empty views created at startup.
	InitialViews = 3
	// DefaultRefreshInterval is the auto-refresh interval in seconds.
	DefaultRefreshInterval = 10
	// MinRefreshInterval and MaxRefreshInterval bound the interval in seconds.
	MinRefreshInterval = 5
	MaxRefreshInterval = 60
	// LoadTimeout is how long a view may stay loading before it errors.
	LoadTimeout = 15 * time.Second
	// AlertTTL is how long an alert stays visible.
	AlertTTL = 5 * time.Second
)

// State holds every view and the global settings that drive them.
type State struct {
	views    []domain.View
	nextID   int
	lastGen  domain.Generation
	selected int
	syncMode bool

	alert     *domain.AlertMessage
	scheduler scheduler

	classifier *urlcheck.Classifier
	now        func() time.Time
	entropy    io.Reader
	logger     logging.Logger
}

// Option configures a State.
type Option func(*State)

// WithClock sets the time source used to stamp alerts.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// WithClassifier replaces the default blocklist classifier.
func WithClassifier(c *urlcheck.Classifier) Option {
	return func(s *State) {
		s.classifier = c
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l logging.Logger) Option {
	return func(s *State) {
		s.logger = l
	}
}

// WithEntropy sets the entropy source for alert ids.
func WithEntropy(r io.Reader) Option {
	return func(s *State) {
		s.entropy = r
	}
}

// WithSyncMode sets the initial sync mode.
func WithSyncMode(enabled bool) Option {
	return func(s *State) {
		s.syncMode = enabled
	}
}

// New creates a State with InitialViews empty views, sync mode on and
// auto-refresh off.
func New(opts ...Option) *State {
	s := &State{
		nextID:     1,
		syncMode:   true,
		classifier: urlcheck.DefaultClassifier(),
		now:        time.Now,
		logger:     logging.Nop(),
		scheduler: scheduler{
			interval: DefaultRefreshInterval,
			visible:  true,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.entropy == nil {
		s.entropy = ulid.Monotonic(rand.Reader, 0)
	}
	for i := 0; i < InitialViews; i++ {
		s.appendView()
	}
	return s
}

// Snapshot returns a copy of the views in insertion order.
func (s *State) Snapshot() []domain.View {
	out := make([]domain.View, len(s.views))
	copy(out, s.views)
	return out
}

// View returns the view with the given id.
func (s *State) View(id int) (domain.View, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.View{}, false
	}
	return s.views[i], true
}

// ViewCount returns the number of views.
func (s *State) ViewCount() int {
	return len(s.views)
}

// SyncMode reports whether navigation applies to every view.
func (s *State) SyncMode() bool {
	return s.syncMode
}

// Selected returns the selected view id.
func (s *State) Selected() (int, bool) {
	return s.selected, s.selected != 0
}

// Alert returns the current alert.
func (s *State) Alert() (domain.AlertMessage, bool) {
	if s.alert == nil {
		return domain.AlertMessage{}, false
	}
	return *s.alert, true
}

// AutoRefresh returns whether auto-refresh is on and its interval in seconds.
func (s *State) AutoRefresh() (enabled bool, interval int) {
	return s.scheduler.enabled, s.scheduler.interval
}

// Visible reports whether the host is currently visible.
func (s *State) Visible() bool {
	return s.scheduler.visible
}

// FirstURL returns the URL of the first view holding one.
func (s *State) FirstURL() (string, bool) {
	for _, v := range s.views {
		if v.HasURL() {
			return v.URL, true
		}
	}
	return "", false
}

func (s *State) freshGeneration() domain.Generation {
	s.lastGen++
	return s.lastGen
}

func (s *State) appendView() domain.View {
	v := domain.View{
		ID:         s.nextID,
		Status:     domain.StatusIdle,
		Generation: s.freshGeneration(),
	}
	s.nextID++
	s.views = append(s.views, v)
	return v
}

func (s *State) indexOf(id int) int {
	for i, v := range s.views {
		if v.ID == id {
			return i
		}
	}
	return -1
}
