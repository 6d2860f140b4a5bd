package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/parallax/internal/colors"
	"github.com/cristianoliveira/parallax/internal/config"
	"github.com/cristianoliveira/parallax/internal/format"
	"github.com/cristianoliveira/parallax/internal/host"
	"github.com/cristianoliveira/parallax/internal/storage"
	"github.com/cristianoliveira/parallax/internal/tui/state"
	"github.com/cristianoliveira/parallax/internal/urlcheck"
	"github.com/cristianoliveira/parallax/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("PARALLAX_PROBE_ENABLED", "false")
	config.Load()
	return tmp
}

func quietColors(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	restore := colors.SetOutput(&out, &out)
	t.Cleanup(restore)
	return &out
}

func TestRunCheck(t *testing.T) {
	var buf bytes.Buffer
	err := runCheck(context.Background(), &buf,
		[]string{"example.com", "https://youtu.be/abc", "http://"},
		urlcheck.DefaultClassifier(), nil, format.NewSimpleFormatter())

	require.ErrorIs(t, err, ErrInvalidArguments)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "https://example.com/\tembeddable", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "https://youtu.be/abc\tblocked\t"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "http://\tinvalid\t"), lines[2])
}

func TestRunCheckAllValid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &buf, []string{"Example.COM/a"}, urlcheck.DefaultClassifier(), nil, format.NewSimpleFormatter()))
	assert.Equal(t, "https://example.com/a\tembeddable\n", buf.String())
}

func TestRunCheckWithProbe(t *testing.T) {
	embedder := host.EmbedderFunc(func(_ context.Context, url string) (host.Result, error) {
		switch url {
		case "https://titled.example/":
			return host.Result{URL: url, Title: "Hello"}, nil
		case "https://framed.example/":
			return host.Result{}, host.ErrEmbedRefused
		case "https://down.example/":
			return host.Result{}, errors.New("connection refused")
		}
		return host.Result{URL: url}, nil
	})

	var buf bytes.Buffer
	err := runCheck(context.Background(), &buf,
		[]string{"titled.example", "framed.example", "down.example", "plain.example"},
		urlcheck.DefaultClassifier(), embedder, format.NewSimpleFormatter())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "https://titled.example/\tloaded\tHello", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "https://framed.example/\trefused\t"), lines[1])
	assert.Equal(t, "https://down.example/\terror\tconnection refused", lines[2])
	assert.Equal(t, "https://plain.example/\tloaded", lines[3])
}

func TestRunCheckJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &buf, []string{"example.com"}, urlcheck.DefaultClassifier(), nil, format.NewJSONFormatter()))
	assert.Contains(t, buf.String(), `"url": "https://example.com/"`)
	assert.Contains(t, buf.String(), `"verdict": "embeddable"`)
}

func TestCheckFormatter(t *testing.T) {
	for _, name := range []string{"simple", "table", "json"} {
		f, err := checkFormatter(name)
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}
	_, err := checkFormatter("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRunLastURL(t *testing.T) {
	quietColors(t)
	store, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	var buf bytes.Buffer
	require.NoError(t, runLastURL(&buf, store, false))
	assert.Empty(t, buf.String(), "nothing stored yet")

	require.NoError(t, store.SaveLastURL("https://example.com/"))
	require.NoError(t, runLastURL(&buf, store, false))
	assert.Equal(t, "https://example.com/\n", buf.String())

	require.NoError(t, runLastURL(&buf, store, true))
	url, err := store.LastURL()
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestPrintVersion(t *testing.T) {
	origWriter := versionOutputWriter
	origVersion, origCommit := version.Version, version.Commit
	t.Cleanup(func() {
		versionOutputWriter = origWriter
		version.Version, version.Commit = origVersion, origCommit
	})

	var buf bytes.Buffer
	versionOutputWriter = &buf
	version.Version, version.Commit = "0.1.0", "unknown"
	PrintVersion()
	assert.Contains(t, buf.String(), "parallax v0.1.0")
}

func TestHelpText(t *testing.T) {
	var buf bytes.Buffer
	printHelpText(&buf, RootCmd)

	out := buf.String()
	for _, name := range []string{"monitor [URL]", "check URL...", "last-url", "version"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "PARALLAX_CONFIG_PATH")
}

func TestNewEmbedderFollowsConfig(t *testing.T) {
	setupEnv(t)
	embedder, err := newEmbedder()
	require.NoError(t, err)
	assert.IsType(t, host.EmbedderFunc(nil), embedder)

	t.Setenv("PARALLAX_PROBE_ENABLED", "true")
	config.Load()
	embedder, err = newEmbedder()
	require.NoError(t, err)
	assert.IsType(t, &host.Probe{}, embedder)
}

func TestRunMonitorStartsProgram(t *testing.T) {
	setupEnv(t)
	origRun, origOpen := runProgram, openStore
	t.Cleanup(func() { runProgram, openStore = origRun, origOpen })

	var started tea.Model
	runProgram = func(m tea.Model) error {
		started = m
		return nil
	}

	require.NoError(t, runMonitor(monitorCmd, []string{"example.com"}))
	require.IsType(t, &state.Model{}, started)
}

func TestRunMonitorWithoutStore(t *testing.T) {
	setupEnv(t)
	origRun, origOpen := runProgram, openStore
	t.Cleanup(func() { runProgram, openStore = origRun, origOpen })

	openStore = func() (storage.Store, error) { return nil, errors.New("locked") }
	runProgram = func(m tea.Model) error { return errors.New("no tty") }

	err := runMonitor(monitorCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
}

func TestRootDispatchesCheck(t *testing.T) {
	setupEnv(t)
	quietColors(t)

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"check", "example.com"})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, "https://example.com/\tembeddable\n", buf.String())
}
