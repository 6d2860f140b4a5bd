// Package logging provides structured file logging for parallax.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/parallax/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger that adds the key/value pairs to every entry.
	With(args ...any) Logger
	// Shutdown closes the underlying file. Loggers derived with With share it.
	Shutdown() error
}

type fileLogger struct {
	clogger *clog.Logger
	closer  io.Closer
	path    string
}

// New creates a JSON logger writing to w.
func New(w io.Writer, cfg Config) Logger {
	clogger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	})
	l := &fileLogger{clogger: clogger.With("pid", cfg.PID, "command", cfg.Command)}
	if c, ok := w.(io.Closer); ok {
		l.closer = c
	}
	return l
}

// Init opens a new log file for this run. A disabled Config yields a no-op
// logger.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = LogDir(); err != nil {
			return nil, fmt.Errorf("failed to determine log directory: %w", err)
		}
	}
	if err := rotate(dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	name := fmt.Sprintf("%s%s_PID%d_%s%s",
		filePrefix,
		time.Now().Format("20060102_150405"),
		cfg.PID,
		strings.ReplaceAll(cfg.Command, " ", "_"),
		fileSuffix)
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l := New(f, cfg).(*fileLogger)
	l.path = path
	return l, nil
}

func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *fileLogger) Debug(msg string, args ...any) {
	l.clogger.Debug(msg, redact(args)...)
}

func (l *fileLogger) Info(msg string, args ...any) {
	l.clogger.Info(msg, redact(args)...)
}

func (l *fileLogger) Warn(msg string, args ...any) {
	l.clogger.Warn(msg, redact(args)...)
}

func (l *fileLogger) Error(msg string, args ...any) {
	l.clogger.Error(msg, redact(args)...)
}

func (l *fileLogger) With(args ...any) Logger {
	return &fileLogger{
		clogger: l.clogger.With(redact(args)...),
		closer:  l.closer,
		path:    l.path,
	}
}

func (l *fileLogger) Shutdown() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

// Nop returns a logger that discards everything.
func Nop() Logger {
	return noopLogger{}
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger
)

// InitGlobal initializes the process logger from the global configuration.
// Later calls are no-ops until ShutdownGlobal.
func InitGlobal() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger != nil {
		return nil
	}
	l, err := Init(FromGlobalConfig())
	if err != nil {
		return err
	}
	globalLogger = l
	if impl, ok := l.(*fileLogger); ok {
		colors.SetLogger(l)
		colors.Debug("Logging to file:", impl.path)
	}
	return nil
}

// GetGlobal returns the process logger, or a no-op logger before InitGlobal.
func GetGlobal() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Info logs with the global logger.
func Info(msg string, args ...any) {
	GetGlobal().Info(msg, args...)
}

// Warn logs with the global logger.
func Warn(msg string, args ...any) {
	GetGlobal().Warn(msg, args...)
}

// ShutdownGlobal closes the global logger and detaches it from colors.
func ShutdownGlobal() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		return nil
	}
	colors.SetLogger(nil)
	err := globalLogger.Shutdown()
	globalLogger = nil
	return err
}

// CurrentLogFile returns the global log file path, or "" when file logging is off.
func CurrentLogFile() string {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if impl, ok := globalLogger.(*fileLogger); ok {
		return impl.path
	}
	return ""
}
