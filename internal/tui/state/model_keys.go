package state

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/parallax/internal/core"
	"github.com/cristianoliveira/parallax/internal/domain"
	"github.com/cristianoliveira/parallax/internal/tui/render"
)

const (
	intervalStep   = 5
	msgNothingOpen = "This view has no URL to open."
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}
	return m, m.handleKeyBinding(msg)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.inputKeys.Cancel):
		m.closeInput()
		return m, nil
	case key.Matches(msg, m.inputKeys.Confirm):
		return m, m.submitInput()
	}

	var cmd tea.Cmd
	if m.mode == modeURL {
		m.urlInput, cmd = m.urlInput.Update(msg)
	} else {
		m.interval, cmd = m.interval.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKeyBinding(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Back):
		if m.fullscreen != 0 {
			m.fullscreen = 0
		} else {
			m.core.DismissAlert()
		}
	case key.Matches(msg, m.keys.EditURL):
		return m.openURLInput()
	case key.Matches(msg, m.keys.EditInterval):
		return m.openIntervalInput()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Select):
		m.toggleSelection()
	case key.Matches(msg, m.keys.Reload):
		return m.reloadHighlighted()
	case key.Matches(msg, m.keys.ReloadAll):
		return m.run(m.core.ReloadAll())
	case key.Matches(msg, m.keys.ClearAll):
		return m.run(m.core.ClearAll())
	case key.Matches(msg, m.keys.Add):
		return m.addView()
	case key.Matches(msg, m.keys.Remove):
		return m.removeSelected()
	case key.Matches(msg, m.keys.Sync):
		m.core.SetSyncMode(!m.core.SyncMode())
	case key.Matches(msg, m.keys.AutoRefresh):
		enabled, _ := m.core.AutoRefresh()
		return m.run(m.core.SetAutoRefresh(!enabled))
	case key.Matches(msg, m.keys.IntervalUp):
		_, interval := m.core.AutoRefresh()
		return m.run(m.core.SetInterval(interval + intervalStep))
	case key.Matches(msg, m.keys.IntervalDown):
		_, interval := m.core.AutoRefresh()
		return m.run(m.core.SetInterval(interval - intervalStep))
	case key.Matches(msg, m.keys.Fullscreen):
		m.toggleFullscreen()
	case key.Matches(msg, m.keys.Open):
		return m.openHighlighted()
	}
	return nil
}

func (m *Model) openURLInput() tea.Cmd {
	m.mode = modeURL
	m.urlInput.SetValue(m.lastURL)
	m.urlInput.CursorEnd()
	return m.urlInput.Focus()
}

func (m *Model) openIntervalInput() tea.Cmd {
	m.mode = modeInterval
	_, interval := m.core.AutoRefresh()
	m.interval.SetValue(strconv.Itoa(interval))
	m.interval.CursorEnd()
	return m.interval.Focus()
}

func (m *Model) closeInput() {
	m.mode = modeNormal
	m.urlInput.Blur()
	m.interval.Blur()
}

func (m *Model) submitInput() tea.Cmd {
	mode := m.mode
	m.closeInput()

	if mode == modeURL {
		fx, err := m.core.LoadURL(m.urlInput.Value())
		if err != nil {
			m.logger.Debug("url rejected", "input", m.urlInput.Value(), "error", err.Error())
		}
		return m.run(fx)
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(m.interval.Value()))
	if err != nil {
		return nil
	}
	return m.run(m.core.SetInterval(seconds))
}

func (m *Model) columns() int {
	return render.Columns(m.width, m.core.ViewCount())
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= m.core.ViewCount() {
		return
	}
	m.cursor = next
	if m.fullscreen != 0 {
		if v, ok := m.highlighted(); ok {
			m.fullscreen = v.ID
		}
	}
}

func (m *Model) highlighted() (domain.View, bool) {
	views := m.core.Snapshot()
	if m.cursor < 0 || m.cursor >= len(views) {
		return domain.View{}, false
	}
	return views[m.cursor], true
}

// clampCursor keeps the cursor and fullscreen view pointing at live views.
func (m *Model) clampCursor() {
	count := m.core.ViewCount()
	m.cursor = min(m.cursor, count-1)
	m.cursor = max(m.cursor, 0)
	if m.fullscreen != 0 {
		if _, ok := m.core.View(m.fullscreen); !ok {
			m.fullscreen = 0
		}
	}
}

func (m *Model) toggleSelection() {
	v, ok := m.highlighted()
	if !ok {
		return
	}
	if selected, ok := m.core.Selected(); ok && selected == v.ID {
		m.core.ClearSelection()
		return
	}
	if err := m.core.Select(v.ID); err != nil {
		m.logger.Warn("select failed", "view_id", v.ID, "error", err.Error())
	}
}

func (m *Model) reloadHighlighted() tea.Cmd {
	v, ok := m.highlighted()
	if !ok {
		return nil
	}
	fx, err := m.core.ReloadView(v.ID)
	if err != nil {
		m.logger.Warn("reload failed", "view_id", v.ID, "error", err.Error())
	}
	return m.run(fx)
}

func (m *Model) addView() tea.Cmd {
	_, fx, err := m.core.CreateView()
	if err == nil {
		m.cursor = m.core.ViewCount() - 1
	}
	return m.run(fx)
}

func (m *Model) removeSelected() tea.Cmd {
	fx, _ := m.core.RemoveSelected()
	m.clampCursor()
	return m.run(fx)
}

func (m *Model) toggleFullscreen() {
	v, ok := m.highlighted()
	if !ok {
		return
	}
	if m.fullscreen == v.ID {
		m.fullscreen = 0
		return
	}
	m.fullscreen = v.ID
}

func (m *Model) openHighlighted() tea.Cmd {
	v, ok := m.highlighted()
	if !ok {
		return nil
	}
	fx, err := m.core.OpenExternal(v.ID)
	if errors.Is(err, core.ErrNoURL) {
		return m.run(m.core.Publish(msgNothingOpen, domain.AlertWarning))
	}
	return m.run(fx)
}
