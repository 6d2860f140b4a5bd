package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/parallax/internal/core"
	"github.com/cristianoliveira/parallax/internal/status"
	"github.com/cristianoliveira/parallax/internal/tui/render"
)

const defaultWidth = 90

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	enabled, interval := m.core.AutoRefresh()
	selected, _ := m.core.Selected()
	summary, err := status.Format(status.Summarize(m.core.Snapshot()), m.statusFormat)
	if err != nil {
		m.logger.Debug("status summary unavailable", "error", err.Error())
	}

	sections := []string{render.Header(render.HeaderState{
		ViewCount:   m.core.ViewCount(),
		MaxViews:    core.MaxViews,
		SyncMode:    m.core.SyncMode(),
		AutoRefresh: enabled,
		Interval:    interval,
		Visible:     m.core.Visible(),
		Selected:    selected,
		Summary:     summary,
		Width:       width,
	})}

	if alert, ok := m.core.Alert(); ok {
		sections = append(sections, render.AlertBar(alert, width))
	}

	switch m.mode {
	case modeURL:
		sections = append(sections, render.Prompt("URL", m.urlInput.View()))
	case modeInterval:
		sections = append(sections, render.Prompt("Interval (s)", m.interval.View()))
	}

	footer := m.footer()
	sections = append(sections, m.body(width, lipgloss.Height(strings.Join(sections, "\n"))+lipgloss.Height(footer)))
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (m *Model) footer() string {
	if m.mode != modeNormal {
		return m.help.View(m.inputKeys)
	}
	return m.help.View(m.keys)
}

// body renders the card grid, or the fullscreen card. reserved is the number
// of lines used by the other sections.
func (m *Model) body(width, reserved int) string {
	views := m.core.Snapshot()
	selected, _ := m.core.Selected()

	if m.fullscreen != 0 {
		if v, ok := m.core.View(m.fullscreen); ok {
			height := 0
			if m.height > 0 {
				height = m.height - reserved
			}
			return render.Card(render.CardState{
				View:        v,
				Highlighted: true,
				Selected:    v.ID == selected,
				Spinner:     m.spinner.View(),
				Width:       width,
				Height:      height,
			})
		}
	}

	cols := render.Columns(width, len(views))
	cardWidth := render.CardWidth(width, cols)
	cards := make([]string, 0, len(views))
	for i, v := range views {
		cards = append(cards, render.Card(render.CardState{
			View:        v,
			Highlighted: i == m.cursor,
			Selected:    v.ID == selected,
			Spinner:     m.spinner.View(),
			Width:       cardWidth,
		}))
	}
	return render.Grid(cards, cols)
}
