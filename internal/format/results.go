package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cristianoliveira/parallax/internal/colors"
)

// SimpleFormatter writes "url<TAB>verdict[<TAB>detail]" lines. Invalid
// arguments are shown as typed.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatResults implements Formatter.
func (f *SimpleFormatter) FormatResults(results []CheckResult, w io.Writer) error {
	for _, r := range results {
		fields := []string{displayURL(r), string(r.Verdict)}
		if r.Detail != "" {
			fields = append(fields, r.Detail)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// TableFormatter writes aligned columns under a colored header.
type TableFormatter struct {
	headerColor string
	maxDetail   int
}

// NewTableFormatter creates a TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{headerColor: colors.Blue, maxDetail: 60}
}

// FormatResults implements Formatter.
func (f *TableFormatter) FormatResults(results []CheckResult, w io.Writer) error {
	headers := []string{"URL", "VERDICT", "DETAIL"}
	rows := make([][]string, 0, len(results))
	widths := []int{len(headers[0]), len(headers[1]), len(headers[2])}
	for _, r := range results {
		row := []string{displayURL(r), string(r.Verdict), truncateString(r.Detail, f.maxDetail)}
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
		rows = append(rows, row)
	}

	if _, err := fmt.Fprintln(w, f.headerColor+formatRow(headers, widths)+colors.Reset); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, formatRow(row, widths)); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter writes results as an indented JSON array.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatResults implements Formatter.
func (f *JSONFormatter) FormatResults(results []CheckResult, w io.Writer) error {
	if results == nil {
		results = []CheckResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func displayURL(r CheckResult) string {
	if r.URL == "" {
		return r.Input
	}
	return r.URL
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}

func truncateString(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-3]) + "..."
}
