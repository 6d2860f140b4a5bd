package host

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Opener launches the platform handler for a URL.
type Opener struct {
	command []string
	start   func(ctx context.Context, name string, args ...string) error
}

// NewOpener creates an Opener. command overrides the platform default; it is
// split on whitespace and the URL is appended as the last argument.
func NewOpener(command string) *Opener {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		argv = defaultOpenCommand(runtime.GOOS)
	}
	return &Opener{command: argv, start: startDetached}
}

func defaultOpenCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Command returns the argv used for url.
func (o *Opener) Command(url string) []string {
	argv := make([]string, 0, len(o.command)+1)
	argv = append(argv, o.command...)
	return append(argv, url)
}

// Open starts the handler and returns without waiting for it.
func (o *Opener) Open(ctx context.Context, url string) error {
	argv := o.Command(url)
	if err := o.start(ctx, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("open %s with %s: %w", url, argv[0], err)
	}
	return nil
}

func startDetached(ctx context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
