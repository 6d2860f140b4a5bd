// Package cmd implements the parallax command line.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/parallax/internal/colors"
	"github.com/cristianoliveira/parallax/internal/config"
	"github.com/cristianoliveira/parallax/internal/logging"
	"github.com/cristianoliveira/parallax/internal/version"
	"github.com/spf13/cobra"
)

const programName = "parallax"

// RootCmd is the base command. Without a subcommand it runs the monitor.
var RootCmd = &cobra.Command{
	Use:   "parallax [URL]",
	Short: "Watch one URL across several side-by-side views.",
	Long: `Watch one URL across several side-by-side views.

Without a command parallax starts the monitor. An optional URL is loaded
into every view on start.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runMonitor,
}

// Execute runs the root command.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		colors.Error(err.Error())
		return err
	}
	return nil
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelpText(cmd.OutOrStdout(), cmd.Root())
	})

	RootCmd.AddCommand(monitorCmd, checkCmd, lastURLCmd, versionCmd)
}

// setup loads configuration and starts file logging before any command.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	logging.Info("command started", "command", cmd.CommandPath())
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	logging.Info("command finished", "command", cmd.CommandPath())
	_ = logging.ShutdownGlobal()
}

func printHelpText(w io.Writer, root *cobra.Command) {
	commandOrder := []string{"monitor", "check", "last-url", "version"}

	var cmdLines []string
	for _, name := range commandOrder {
		for _, c := range root.Commands() {
			if c.Name() == name {
				cmdLines = append(cmdLines, fmt.Sprintf("    %-20s %s", c.Use, c.Short))
				break
			}
		}
	}

	fmt.Fprintf(w, `%s

Watch one URL across several side-by-side views.

USAGE:
    parallax [URL]
    parallax [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
    -v, --version   Show version

ENVIRONMENT:
    PARALLAX_CONFIG_PATH   Config file (default: $XDG_CONFIG_HOME/parallax/config.toml)
    PARALLAX_<KEY>         Override any config key, e.g. PARALLAX_STORAGE_BACKEND=file
`, version.Banner(programName), strings.Join(cmdLines, "\n"))
}
