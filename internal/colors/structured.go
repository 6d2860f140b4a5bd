package colors

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	structuredMu      sync.Mutex
	structuredEnabled atomic.Bool
)

func init() {
	structuredEnabled.Store(true)
}

// StructuredLogLevel is the level of a structured entry.
type StructuredLogLevel string

const (
	LevelDebug StructuredLogLevel = "debug"
	LevelInfo  StructuredLogLevel = "info"
	LevelWarn  StructuredLogLevel = "warn"
	LevelError StructuredLogLevel = "error"
)

// StructuredLogEntry is one JSON line written to stderr in debug mode.
type StructuredLogEntry struct {
	Timestamp string             `json:"timestamp"`
	Level     StructuredLogLevel `json:"level"`
	Component string             `json:"component"`
	Action    string             `json:"action"`
	Status    string             `json:"status"`
	Error     string             `json:"error,omitempty"`
	ID        string             `json:"id,omitempty"`
	Fields    map[string]any     `json:"fields,omitempty"`
}

// DisableStructuredLogging stops structured output. The TUI calls it while it
// owns the terminal.
func DisableStructuredLogging() {
	structuredEnabled.Store(false)
}

// EnableStructuredLogging resumes structured output.
func EnableStructuredLogging() {
	structuredEnabled.Store(true)
}

// StructuredLog writes entry as one JSON line to stderr. It only writes in
// debug mode.
func StructuredLog(level StructuredLogLevel, component, action, status string, err error, id string, fields map[string]any) {
	if !DebugEnabled() || !structuredEnabled.Load() {
		return
	}

	entry := StructuredLogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: component,
		Action:    action,
		Status:    status,
		ID:        id,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal structured log: %v\n", marshalErr)
		return
	}

	mu.RLock()
	w := stderr
	mu.RUnlock()

	structuredMu.Lock()
	defer structuredMu.Unlock()
	fmt.Fprintf(w, "%s\n", data)
}

// StructuredDebug logs a structured debug entry.
func StructuredDebug(component, action, status string, err error, id string, fields map[string]any) {
	StructuredLog(LevelDebug, component, action, status, err, id, fields)
}

// StructuredInfo logs a structured info entry.
func StructuredInfo(component, action, status string, err error, id string, fields map[string]any) {
	StructuredLog(LevelInfo, component, action, status, err, id, fields)
}

// StructuredWarn logs a structured warning entry.
func StructuredWarn(component, action, status string, err error, id string, fields map[string]any) {
	StructuredLog(LevelWarn, component, action, status, err, id, fields)
}

// StructuredError logs a structured error entry.
func StructuredError(component, action, status string, err error, id string, fields map[string]any) {
	StructuredLog(LevelError, component, action, status, err, id, fields)
}
