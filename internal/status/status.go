// Package status summarizes view lifecycle states for the monitor header.
package status

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/parallax/internal/domain"
)

// Supported summary formats.
const (
	FormatCompact   = "compact"
	FormatDetailed  = "detailed"
	FormatCountOnly = "count-only"
)

// Counts holds the number of views per status.
type Counts struct {
	Idle    int
	Loading int
	Loaded  int
	Error   int
	Blocked int
}

// Summarize counts views by status.
func Summarize(views []domain.View) Counts {
	var c Counts
	for _, v := range views {
		switch v.Status {
		case domain.StatusLoading:
			c.Loading++
		case domain.StatusLoaded:
			c.Loaded++
		case domain.StatusError:
			c.Error++
		case domain.StatusBlocked:
			c.Blocked++
		default:
			c.Idle++
		}
	}
	return c
}

// Active returns the number of views holding a URL.
func (c Counts) Active() int {
	return c.Loading + c.Loaded + c.Error + c.Blocked
}

// Highest returns the most severe status present among active views.
func (c Counts) Highest() domain.ViewStatus {
	switch {
	case c.Error > 0:
		return domain.StatusError
	case c.Blocked > 0:
		return domain.StatusBlocked
	case c.Loading > 0:
		return domain.StatusLoading
	case c.Loaded > 0:
		return domain.StatusLoaded
	default:
		return domain.StatusIdle
	}
}

// Format renders the counts. An empty result means there is nothing to show.
func Format(c Counts, format string) (string, error) {
	if c.Active() == 0 {
		return "", nil
	}
	switch format {
	case "", FormatCompact:
		return formatCompact(c), nil
	case FormatDetailed:
		return formatDetailed(c), nil
	case FormatCountOnly:
		return fmt.Sprintf("%d", c.Active()), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

func formatCompact(c Counts) string {
	return fmt.Sprintf("%s %d/%d", c.Highest(), c.Loaded, c.Active())
}

func formatDetailed(c Counts) string {
	var parts []string
	for _, p := range []struct {
		label string
		n     int
	}{
		{"loaded", c.Loaded},
		{"loading", c.Loading},
		{"error", c.Error},
		{"blocked", c.Blocked},
	} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", p.label, p.n))
		}
	}
	return strings.Join(parts, " ")
}
