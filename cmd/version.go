package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/parallax/internal/version"
	"github.com/spf13/cobra"
)

// versionOutputWriter is replaced in tests.
var versionOutputWriter io.Writer = os.Stdout

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion()
	},
}

// PrintVersion writes the version banner.
func PrintVersion() {
	fmt.Fprintln(versionOutputWriter, version.Banner(programName))
}
