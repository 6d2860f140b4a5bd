package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/parallax/internal/colors"
	"github.com/cristianoliveira/parallax/internal/domain"
)

const (
	minCardWidth  = 30
	maxColumns    = 3
	cardBodyLines = 4
	borderCells   = 2
	minInnerWidth = 8
)

// CardState defines the inputs needed to render one view card.
type CardState struct {
	View        domain.View
	Highlighted bool
	Selected    bool
	// Spinner is the current spinner frame shown while loading.
	Spinner string
	// Width is the outer width including the border.
	Width int
	// Height is the outer height. Zero uses the compact card height.
	Height int
}

// Card renders a bordered view card.
func Card(state CardState) string {
	inner := max(state.Width-borderCells, minInnerWidth)
	v := state.View

	statusStyle := lipgloss.NewStyle().Foreground(statusColor(v.Status))
	heading := statusStyle.Render(statusIcon(v.Status)) + " " + lipgloss.NewStyle().Bold(true).Render(v.Label())
	if state.Selected {
		heading += " " + lipgloss.NewStyle().Foreground(ansiColorNumber(colors.Blue)).Render("[selected]")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(helpColor))
	title := v.Title
	if title == "" {
		title = "-"
	}
	url := v.URL
	if url == "" {
		url = "No URL loaded"
	}

	lines := []string{
		heading,
		truncate(title, inner),
		muted.Render(truncate(url, inner)),
		statusStyle.Render(truncate(statusText(v.Status, state.Spinner), inner)),
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(helpColor)).
		Width(inner)
	if state.Height > borderCells {
		style = style.Height(max(state.Height-borderCells, cardBodyLines))
	}
	switch {
	case state.Selected:
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(ansiColorNumber(colors.Blue))
	case state.Highlighted:
		style = style.BorderForeground(lipgloss.Color("15"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Grid lays cards out in rows of the given number of columns.
func Grid(cards []string, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	columns = max(columns, 1)
	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Columns returns how many cards fit side by side in width.
func Columns(width, count int) int {
	cols := width / minCardWidth
	cols = min(max(cols, 1), maxColumns)
	if count > 0 {
		cols = min(cols, count)
	}
	return cols
}

// CardWidth returns the outer card width for a grid of columns.
func CardWidth(width, columns int) int {
	if columns <= 0 {
		columns = 1
	}
	return max(width/columns, minInnerWidth+borderCells)
}

func statusIcon(status domain.ViewStatus) string {
	switch status {
	case domain.StatusLoading:
		return "◌"
	case domain.StatusLoaded:
		return "●"
	case domain.StatusError:
		return "✖"
	case domain.StatusBlocked:
		return "⊘"
	default:
		return "○"
	}
}

func statusColor(status domain.ViewStatus) lipgloss.Color {
	switch status {
	case domain.StatusLoading:
		return ansiColorNumber(colors.Yellow)
	case domain.StatusLoaded:
		return ansiColorNumber(colors.Green)
	case domain.StatusError:
		return ansiColorNumber(colors.Red)
	case domain.StatusBlocked:
		return lipgloss.Color("5")
	default:
		return lipgloss.Color(helpColor)
	}
}

func statusText(status domain.ViewStatus, spinner string) string {
	switch status {
	case domain.StatusLoading:
		if spinner != "" {
			return spinner + " Loading..."
		}
		return "Loading..."
	case domain.StatusLoaded:
		return "Loaded"
	case domain.StatusError:
		return "Failed to load. Press r to retry."
	case domain.StatusBlocked:
		return "Cannot be embedded. Press o to open it."
	default:
		return "Empty"
	}
}
