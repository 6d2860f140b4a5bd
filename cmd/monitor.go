package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/parallax/internal/colors"
	"github.com/cristianoliveira/parallax/internal/config"
	"github.com/cristianoliveira/parallax/internal/core"
	"github.com/cristianoliveira/parallax/internal/host"
	"github.com/cristianoliveira/parallax/internal/logging"
	"github.com/cristianoliveira/parallax/internal/status"
	"github.com/cristianoliveira/parallax/internal/storage"
	"github.com/cristianoliveira/parallax/internal/tui/state"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor [URL]",
	Short: "Open the multi-view monitor",
	Long: `Open the multi-view monitor.

USAGE:
    parallax monitor [URL]

KEY BINDINGS:
    u or :      Edit the URL (Enter loads, Esc cancels)
    h/j/k/l     Move across the grid
    Enter       Select or unselect the highlighted view
    r / R       Reload the highlighted view / all views
    a / x       Add a view / remove the selected view
    C           Clear all views
    s           Toggle sync mode
    t / i       Toggle auto-refresh / edit its interval
    + / -       Change the interval by 5 seconds
    f           Toggle fullscreen
    o           Open the highlighted view externally
    ?           Toggle help
    q           Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMonitor,
}

// openStore and runProgram are replaced in tests.
var (
	openStore  = storage.NewFromConfig
	runProgram = func(m tea.Model) error {
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
		_, err := p.Run()
		return err
	}
)

func runMonitor(cmd *cobra.Command, args []string) error {
	var initialURL string
	if len(args) > 0 {
		initialURL = args[0]
	}

	model, cleanup, err := newMonitorModel(initialURL)
	if err != nil {
		return err
	}
	defer cleanup()

	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()

	if err := runProgram(model); err != nil {
		return fmt.Errorf("run monitor: %w", err)
	}
	return nil
}

// newMonitorModel wires the core, the embedder, the opener and the store
// from the loaded configuration.
func newMonitorModel(initialURL string) (*state.Model, func(), error) {
	logger := logging.GetGlobal().With("session", uuid.NewString())

	embedder, err := newEmbedder()
	if err != nil {
		return nil, nil, err
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("last url persistence disabled", "error", err.Error())
		store = nil
	}

	model := state.NewModel(state.Options{
		Core:       core.New(core.WithLogger(logger)),
		Embedder:   embedder,
		Opener:     host.NewOpener(config.Get("open_command", "")),
		Store:      store,
		Logger:     logger,
		InitialURL: initialURL,

		StatusFormat: config.Get("status_format", status.FormatDetailed),
	})
	logger.Info("monitor started", "initial_url", initialURL)

	cleanup := func() {
		model.Close()
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("failed to close store", "error", err.Error())
			}
		}
		logger.Info("monitor stopped")
	}
	return model, cleanup, nil
}

func newEmbedder() (host.Embedder, error) {
	if !config.GetBool("probe_enabled", true) {
		return host.Offline, nil
	}
	probe, err := host.NewProbe(host.WithUserAgent(config.Get("probe_user_agent", config.DefaultUserAgent)))
	if err != nil {
		return nil, fmt.Errorf("create probe: %w", err)
	}
	return probe, nil
}
