// Package state provides the Bubble Tea model of the parallax monitor.
package state

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/parallax/internal/core"
	"github.com/cristianoliveira/parallax/internal/domain"
	"github.com/cristianoliveira/parallax/internal/host"
	"github.com/cristianoliveira/parallax/internal/logging"
	"github.com/cristianoliveira/parallax/internal/storage"
)

const msgOpenFailed = "Could not open the URL externally."

type inputMode int

const (
	modeNormal inputMode = iota
	modeURL
	modeInterval
)

// URLOpener opens a URL outside the terminal.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}

// Options configures NewModel. Only Core is required.
type Options struct {
	Core     *core.State
	Embedder host.Embedder
	Opener   URLOpener
	// Store persists the last synced URL. Nil disables persistence.
	Store  storage.Store
	Logger logging.Logger
	// InitialURL is loaded when the program starts.
	InitialURL string
	// StatusFormat selects the header summary format.
	StatusFormat string
}

// Model is the monitor's Bubble Tea model. All view state lives in the core;
// the model owns presentation state and turns core effects into commands.
type Model struct {
	core     *core.State
	embedder host.Embedder
	opener   URLOpener
	store    storage.Store
	logger   logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
	// after schedules msg to be delivered once d has passed.
	after func(d time.Duration, msg tea.Msg) tea.Cmd

	keys      keyMap
	inputKeys inputKeyMap
	help      help.Model
	spinner   spinner.Model
	urlInput  textinput.Model
	interval  textinput.Model
	mode      inputMode

	// cursor is the index of the highlighted card.
	cursor int
	// fullscreen is the id of the view shown alone, or 0.
	fullscreen int
	width      int
	height     int

	// lastURL is the persisted URL. A save made during this run wins over
	// the startup read.
	lastURL      string
	initialURL   string
	statusFormat string
}

// NewModel creates the monitor model.
func NewModel(opts Options) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		core:       opts.Core,
		embedder:   opts.Embedder,
		opener:     opts.Opener,
		store:      opts.Store,
		logger:     opts.Logger,
		ctx:        ctx,
		cancel:     cancel,
		after:      tick,
		keys:       defaultKeyMap(),
		inputKeys:  defaultInputKeyMap(),
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		urlInput:   newInput("example.com", 2048),
		interval:   newInput("seconds", 2),
		initialURL: opts.InitialURL,

		statusFormat: opts.StatusFormat,
	}
	if m.core == nil {
		m.core = core.New()
	}
	if m.embedder == nil {
		m.embedder = host.Offline
	}
	if m.logger == nil {
		m.logger = logging.Nop()
	}
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Init starts the spinner, reads the last URL and loads the initial URL.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.loadLastURL()}
	if m.initialURL != "" {
		fx, err := m.core.LoadURL(m.initialURL)
		if err != nil {
			m.logger.Warn("initial url rejected", "url", m.initialURL, "error", err.Error())
		}
		cmds = append(cmds, m.run(fx))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.urlInput.Width = max(msg.Width-10, 10)
		return m, nil

	case tea.FocusMsg:
		return m, m.run(m.core.SetVisible(true))

	case tea.BlurMsg:
		return m, m.run(m.core.SetVisible(false))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case embedResultMsg:
		m.handleEmbedResult(msg)
		return m, nil

	case loadTimeoutMsg:
		if m.core.LoadTimedOut(msg.viewID, msg.generation) {
			m.logger.Info("load timed out", "view_id", msg.viewID)
		}
		return m, nil

	case refreshTickMsg:
		return m, m.run(m.core.RefreshTick(msg.token))

	case alertExpiredMsg:
		m.core.AlertExpired(msg.id)
		return m, nil

	case lastURLMsg:
		if msg.err != nil {
			m.logger.Warn("failed to read last url", "error", msg.err.Error())
			return m, nil
		}
		if m.lastURL == "" {
			m.lastURL = msg.url
		}
		return m, nil

	case persistResultMsg:
		if msg.err != nil {
			m.logger.Warn("failed to persist last url", "url", msg.url, "error", msg.err.Error())
			return m, nil
		}
		m.lastURL = msg.url
		return m, nil

	case openResultMsg:
		if msg.err != nil {
			m.logger.Warn("failed to open url", "url", msg.url, "error", msg.err.Error())
			return m, m.run(m.core.Publish(msgOpenFailed, domain.AlertError))
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleEmbedResult(msg embedResultMsg) {
	if msg.err != nil {
		if m.core.LoadFailed(msg.viewID, msg.generation) {
			m.logger.Info("load failed", "view_id", msg.viewID, "error", msg.err.Error())
		}
		return
	}
	if m.core.LoadSucceeded(msg.viewID, msg.generation, msg.title) {
		m.logger.Debug("load succeeded", "view_id", msg.viewID)
	}
}

// Close cancels in-flight loads.
func (m *Model) Close() {
	m.cancel()
}

// LastURL returns the most recently persisted URL known to the model.
func (m *Model) LastURL() string {
	return m.lastURL
}
