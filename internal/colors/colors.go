// Package colors provides colored console output for the CLI and mirrors
// every message to the file logger when one is attached.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ANSI color codes.
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger receives a copy of every console message.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled = false
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("PARALLAX_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// DebugEnabled reports whether debug output is on.
func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debugEnabled
}

// SetLogger attaches a logger that receives every message. nil detaches it.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. It returns a function restoring the
// previous writers.
func SetOutput(out, errOut io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	return func() {
		mu.Lock()
		defer mu.Unlock()
		stdout, stderr = prevOut, prevErr
	}
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func emit(lvl level, toStderr bool, format string, msgs []string) {
	msg := strings.Join(msgs, " ")

	mu.RLock()
	l := logger
	w := stdout
	if toStderr {
		w = stderr
	}
	mu.RUnlock()

	if l != nil {
		switch lvl {
		case levelDebug:
			l.Debug(msg)
		case levelWarn:
			l.Warn(msg)
		case levelError:
			l.Error(msg)
		default:
			l.Info(msg)
		}
	}
	if _, err := fmt.Fprintf(w, format, msg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to print message: %v\n", err)
	}
}

// Error prints a red error line to stderr.
func Error(msgs ...string) {
	emit(levelError, true, Red+"Error:"+Reset+" %s"+Reset+"\n", msgs)
}

// Success prints a green checkmark line to stdout.
func Success(msgs ...string) {
	emit(levelInfo, false, Green+checkmark+Reset+" %s"+Reset+"\n", msgs)
}

// Warning prints a yellow warning line to stderr.
func Warning(msgs ...string) {
	emit(levelWarn, true, Yellow+"Warning:"+Reset+" %s"+Reset+"\n", msgs)
}

// Info prints a blue line to stdout.
func Info(msgs ...string) {
	emit(levelInfo, false, Blue+"%s"+Reset+"\n", msgs)
}

// LogInfo prints a blue line to stderr, keeping stdout clean for data.
func LogInfo(msgs ...string) {
	emit(levelInfo, true, Blue+"%s"+Reset+"\n", msgs)
}

// Debug prints a cyan line to stderr when debug is enabled.
func Debug(msgs ...string) {
	if !DebugEnabled() {
		return
	}
	emit(levelDebug, true, Cyan+"Debug:"+Reset+" %s"+Reset+"\n", msgs)
}
