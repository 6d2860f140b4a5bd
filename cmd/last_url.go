package cmd

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/parallax/internal/colors"
	"github.com/cristianoliveira/parallax/internal/storage"
	"github.com/spf13/cobra"
)

var lastURLClear bool

var lastURLCmd = &cobra.Command{
	Use:   "last-url",
	Short: "Print or clear the last synced URL",
	Long: `Print or clear the last synced URL.

The monitor stores the URL every time it is loaded into all views and
offers it when the URL input is opened.

USAGE:
    parallax last-url [--clear]`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer store.Close()
		return runLastURL(cmd.OutOrStdout(), store, lastURLClear)
	},
}

func init() {
	lastURLCmd.Flags().BoolVar(&lastURLClear, "clear", false, "forget the stored URL")
}

func runLastURL(w io.Writer, store storage.Store, forget bool) error {
	if forget {
		if err := store.ClearLastURL(); err != nil {
			return fmt.Errorf("clear last url: %w", err)
		}
		colors.Success("last URL cleared")
		return nil
	}

	url, err := store.LastURL()
	if err != nil {
		return fmt.Errorf("read last url: %w", err)
	}
	if url == "" {
		colors.Info("no URL stored yet")
		return nil
	}
	fmt.Fprintln(w, url)
	return nil
}
