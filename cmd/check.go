package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cristianoliveira/parallax/internal/core"
	"github.com/cristianoliveira/parallax/internal/format"
	"github.com/cristianoliveira/parallax/internal/host"
	"github.com/cristianoliveira/parallax/internal/urlcheck"
	"github.com/spf13/cobra"
)

// ErrInvalidArguments is returned by check when any argument is not a URL.
var ErrInvalidArguments = errors.New("some arguments are not valid URLs")

var (
	checkProbe  bool
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check URL...",
	Short: "Show how URLs would be loaded",
	Long: `Show how URLs would be loaded.

Prints the canonical form of every URL and whether it can be embedded.
With --probe each embeddable URL is fetched and the outcome is reported.

USAGE:
    parallax check [--probe] [--format simple|table|json] URL...

EXAMPLES:
    parallax check example.com https://youtu.be/abc
    parallax check --probe --format=table example.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := checkFormatter(checkFormat)
		if err != nil {
			return err
		}
		var embedder host.Embedder
		if checkProbe {
			e, err := newEmbedder()
			if err != nil {
				return err
			}
			embedder = e
		}
		return runCheck(cmd.Context(), cmd.OutOrStdout(), args, urlcheck.DefaultClassifier(), embedder, formatter)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkProbe, "probe", false, "fetch every embeddable URL")
	checkCmd.Flags().StringVar(&checkFormat, "format", string(format.FormatterTypeSimple), "output format: simple, table or json")
}

func checkFormatter(name string) (format.Formatter, error) {
	switch t := format.FormatterType(name); t {
	case format.FormatterTypeSimple, format.FormatterTypeTable, format.FormatterTypeJSON:
		return format.NewFormatter(t), nil
	default:
		return nil, fmt.Errorf("invalid format: %q (valid: simple, table, json)", name)
	}
}

// runCheck classifies every argument and writes the results with formatter.
// A nil embedder skips probing.
func runCheck(ctx context.Context, w io.Writer, args []string, classifier *urlcheck.Classifier, embedder host.Embedder, formatter format.Formatter) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]format.CheckResult, 0, len(args))
	invalid := 0
	for _, arg := range args {
		result := checkOne(ctx, arg, classifier, embedder)
		if result.Verdict == format.VerdictInvalid {
			invalid++
		}
		results = append(results, result)
	}
	if err := formatter.FormatResults(results, w); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidArguments, invalid, len(args))
	}
	return nil
}

func checkOne(ctx context.Context, arg string, classifier *urlcheck.Classifier, embedder host.Embedder) format.CheckResult {
	canonical, err := urlcheck.Normalize(arg)
	if err != nil {
		return format.CheckResult{Input: arg, Verdict: format.VerdictInvalid, Detail: err.Error()}
	}
	result := format.CheckResult{Input: arg, URL: canonical}
	if pattern, blocked := classifier.Match(canonical); blocked {
		result.Verdict = format.VerdictBlocked
		result.Detail = pattern
		return result
	}
	if embedder == nil {
		result.Verdict = format.VerdictEmbeddable
		return result
	}
	result.Verdict, result.Detail = probeOutcome(ctx, embedder, canonical)
	return result
}

func probeOutcome(ctx context.Context, embedder host.Embedder, url string) (format.Verdict, string) {
	ctx, cancel := context.WithTimeout(ctx, core.LoadTimeout)
	defer cancel()

	res, err := embedder.Embed(ctx, url)
	switch {
	case errors.Is(err, host.ErrEmbedRefused):
		return format.VerdictRefused, err.Error()
	case err != nil:
		return format.VerdictError, err.Error()
	default:
		return format.VerdictLoaded, res.Title
	}
}
