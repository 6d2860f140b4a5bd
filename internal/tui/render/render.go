package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/parallax/internal/colors"
	"github.com/cristianoliveira/parallax/internal/domain"
)

const (
	helpColor    = "241"
	titleText    = "parallax"
	ellipsis     = "…"
	alertPadding = 1
)

// HeaderState defines the inputs needed to render the status header.
type HeaderState struct {
	ViewCount   int
	MaxViews    int
	SyncMode    bool
	AutoRefresh bool
	Interval    int
	Visible     bool
	Selected    int
	// Summary is the view status summary, shown when not empty.
	Summary string
	Width   int
}

// Header renders the title line with the monitor settings.
func Header(state HeaderState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ansiColorNumber(colors.Blue))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(helpColor))

	parts := []string{
		fmt.Sprintf("views %d/%d", state.ViewCount, state.MaxViews),
		"sync " + onOff(state.SyncMode),
		autoRefreshLabel(state),
	}
	if state.Summary != "" {
		parts = append(parts, state.Summary)
	}
	if state.Selected > 0 {
		parts = append(parts, fmt.Sprintf("selected View %d", state.Selected))
	}

	info := strings.Join(parts, "  |  ")
	if state.Width > 0 {
		info = truncate(info, max(state.Width-len(titleText)-2, 1))
	}
	return titleStyle.Render(titleText) + "  " + infoStyle.Render(info)
}

func autoRefreshLabel(state HeaderState) string {
	label := fmt.Sprintf("auto-refresh %s (%ds)", onOff(state.AutoRefresh), state.Interval)
	if state.AutoRefresh && !state.Visible {
		label += " paused"
	}
	return label
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// AlertBar renders the current alert message.
func AlertBar(alert domain.AlertMessage, width int) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Padding(0, alertPadding).
		Foreground(lipgloss.Color("0")).
		Background(alertColor(alert.Type))
	if width > 0 {
		style = style.Width(width)
	}
	text := alertIcon(alert.Type) + " " + alert.Message
	if width > 2*alertPadding {
		text = truncate(text, width-2*alertPadding)
	}
	return style.Render(text)
}

func alertIcon(t domain.AlertType) string {
	switch t {
	case domain.AlertError:
		return "✖"
	case domain.AlertWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

func alertColor(t domain.AlertType) lipgloss.Color {
	switch t {
	case domain.AlertError:
		return ansiColorNumber(colors.Red)
	case domain.AlertWarning:
		return ansiColorNumber(colors.Yellow)
	default:
		return ansiColorNumber(colors.Blue)
	}
}

// Prompt renders an input line with its label.
func Prompt(label, input string) string {
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(ansiColorNumber(colors.Blue))
	return labelStyle.Render(label) + " " + input
}

// Hint renders muted help text.
func Hint(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(helpColor)).Render(text)
}

// truncate shortens value to width cells, marking the cut with an ellipsis.
func truncate(value string, width int) string {
	if width <= 0 || lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return ellipsis
	}
	runes := []rune(value)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// ansiColorNumber maps a basic ANSI escape sequence to its palette color.
// Example: "\033[0;34m" -> "4"
func ansiColorNumber(ansi string) lipgloss.Color {
	if len(ansi) < 2 {
		return lipgloss.Color("")
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return lipgloss.Color("")
	}
	code := ansi[lastSemicolon+1 : len(ansi)-1]
	if utf8.RuneCountInString(code) == 2 && code[0] == '3' {
		return lipgloss.Color(code[1:])
	}
	return lipgloss.Color(code)
}
