package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/parallax/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	config.Load()
	return tmp
}

func lastEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("PARALLAX_LOGGING_ENABLED", "true")
	t.Setenv("PARALLAX_LOGGING_LEVEL", "warn")
	t.Setenv("PARALLAX_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestDebugForcesDebugLevel(t *testing.T) {
	setupTest(t)
	t.Setenv("PARALLAX_DEBUG", "true")
	t.Setenv("PARALLAX_LOGGING_LEVEL", "error")
	config.Load()

	require.Equal(t, "debug", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "state", "parallax", "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)
	logger.Debug("test")
	logger.With("k", "v").Info("test")
	require.NoError(t, logger.Shutdown())
}

func TestInitCreatesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Command = "monitor now"
	cfg.Dir = dir

	logger, err := Init(cfg)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name := entries[0].Name()
	assert.True(t, strings.HasPrefix(name, "parallax_"))
	assert.Contains(t, name, fmt.Sprintf("_PID%d_", os.Getpid()))
	assert.True(t, strings.HasSuffix(name, "_monitor_now.log"))

	info, err := os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Command = "test"
	logger := New(&buf, cfg)

	logger.Info("view navigated", "view_id", 2, "status", "loading")

	entry := lastEntry(t, buf.Bytes())
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "view navigated", entry["msg"])
	assert.Equal(t, float64(os.Getpid()), entry["pid"])
	assert.Equal(t, "test", entry["command"])
	assert.Equal(t, float64(2), entry["view_id"])
	assert.Equal(t, "loading", entry["status"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "warn"
	logger := New(&buf, cfg)

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Equal(t, "warn", lastEntry(t, buf.Bytes())["level"])
}

func TestRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, DefaultConfig())

	logger.Info("secrets", "password", "supersecret", "api_token", "xyz", "normal", "ok")
	line := buf.String()
	assert.Contains(t, line, `"password":"[REDACTED]"`)
	assert.Contains(t, line, `"api_token":"[REDACTED]"`)
	assert.Contains(t, line, `"normal":"ok"`)
	assert.NotContains(t, line, "supersecret")
}

func TestRedactionEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want []any
	}{
		{name: "case insensitive", in: []any{"PaSsWoRd", "x"}, want: []any{"PaSsWoRd", redacted}},
		{name: "dash separator", in: []any{"api-token", "x"}, want: []any{"api-token", redacted}},
		{name: "dot separator", in: []any{"auth.cookie", "x"}, want: []any{"auth.cookie", redacted}},
		{name: "no separator", in: []any{"apitoken", "x"}, want: []any{"apitoken", "x"}},
		{name: "longer word", in: []any{"secretary", "x"}, want: []any{"secretary", "x"}},
		{name: "odd length", in: []any{"password", "x", "extra"}, want: []any{"password", redacted, "extra"}},
		{name: "non string key", in: []any{42, "x"}, want: []any{42, "x"}},
		{name: "empty", in: []any{}, want: []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]any, len(tt.in))
			copy(in, tt.in)
			assert.Equal(t, tt.want, redact(tt.in))
			assert.Equal(t, in, tt.in, "input must not be modified")
		})
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, DefaultConfig())

	child := logger.With("session", "abc", "secret", "s3")
	child.Info("with context")

	entry := lastEntry(t, buf.Bytes())
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, redacted, entry["secret"])

	logger.Info("parent")
	assert.NotContains(t, lastEntry(t, buf.Bytes()), "session")
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("parallax_20250101_12000%d_PID999_test.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0600))
		age := time.Now().Add(-time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(path, age, age))
	}
	unrelated := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(unrelated, nil, 0600))

	require.NoError(t, rotate(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "parallax_20250101_120002_PID999_test.log"))
	assert.True(t, os.IsNotExist(err), "oldest file removed")
	_, err = os.Stat(filepath.Join(dir, "parallax_20250101_120000_PID999_test.log"))
	assert.NoError(t, err)
	_, err = os.Stat(unrelated)
	assert.NoError(t, err)

	require.NoError(t, rotate(dir, 0), "zero disables rotation")
}

func TestGlobalLogger(t *testing.T) {
	setupTest(t)
	t.Setenv("PARALLAX_LOGGING_ENABLED", "true")
	config.Load()

	require.NoError(t, InitGlobal())
	t.Cleanup(func() { _ = ShutdownGlobal() })

	path := CurrentLogFile()
	require.NotEmpty(t, path)
	Info("global info")
	Warn("global warning", "count", 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "global warning", lastEntry(t, data)["msg"])

	require.NoError(t, ShutdownGlobal())
	assert.Empty(t, CurrentLogFile())
	assert.IsType(t, noopLogger{}, GetGlobal())
}

func TestLevelParsing(t *testing.T) {
	require.Equal(t, clog.DebugLevel, parseLevel("debug"))
	require.Equal(t, clog.InfoLevel, parseLevel("info"))
	require.Equal(t, clog.WarnLevel, parseLevel("warn"))
	require.Equal(t, clog.WarnLevel, parseLevel("WARNING"))
	require.Equal(t, clog.ErrorLevel, parseLevel("error"))
	require.Equal(t, clog.InfoLevel, parseLevel("unknown"))
}
