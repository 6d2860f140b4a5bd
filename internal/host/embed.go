// Package host provides the side effects the core asks for: probing URLs as
// the embedding primitive and opening URLs outside the terminal.
package host

import (
	"context"
	"errors"
)

var (
	// ErrEmbedRefused indicates the site forbids being framed.
	ErrEmbedRefused = errors.New("site refuses embedding")
	// ErrHTTPStatus indicates a non-2xx response.
	ErrHTTPStatus = errors.New("unexpected http status")
)

// Result describes a successful load.
type Result struct {
	URL        string
	FinalURL   string
	StatusCode int
	Title      string
}

// Embedder loads a URL and reports whether it can be shown.
type Embedder interface {
	Embed(ctx context.Context, url string) (Result, error)
}

// EmbedderFunc adapts a function to Embedder.
type EmbedderFunc func(ctx context.Context, url string) (Result, error)

// Embed calls f.
func (f EmbedderFunc) Embed(ctx context.Context, url string) (Result, error) {
	return f(ctx, url)
}

// Offline is used when probing is disabled: every URL loads at once.
var Offline Embedder = EmbedderFunc(func(ctx context.Context, url string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{URL: url, FinalURL: url}, nil
})
