// Package format renders URL check results for the command line.
package format

import "io"

// Verdict is the outcome of checking one argument.
type Verdict string

const (
	VerdictInvalid    Verdict = "invalid"
	VerdictBlocked    Verdict = "blocked"
	VerdictEmbeddable Verdict = "embeddable"
	VerdictLoaded     Verdict = "loaded"
	VerdictRefused    Verdict = "refused"
	VerdictError      Verdict = "error"
)

// CheckResult describes how one argument would be loaded.
type CheckResult struct {
	Input   string  `json:"input"`
	URL     string  `json:"url,omitempty"`
	Verdict Verdict `json:"verdict"`
	// Detail is the matched pattern, the page title or the error text.
	Detail string `json:"detail,omitempty"`
}

// Formatter writes check results.
type Formatter interface {
	FormatResults(results []CheckResult, w io.Writer) error
}

// FormatterType names an output style.
type FormatterType string

const (
	// FormatterTypeSimple writes tab separated lines.
	FormatterTypeSimple FormatterType = "simple"
	// FormatterTypeTable writes aligned columns with a header.
	FormatterTypeTable FormatterType = "table"
	// FormatterTypeJSON writes a JSON array.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter returns the formatter for t, defaulting to simple.
func NewFormatter(t FormatterType) Formatter {
	switch t {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewSimpleFormatter()
	}
}
