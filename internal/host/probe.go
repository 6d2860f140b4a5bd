package host

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/net/publicsuffix"
)

const (
	defaultUserAgent    = "parallax/1.0"
	defaultProbeTimeout = 20 * time.Second
	defaultMaxBodyBytes = 512 << 10
	maxRedirects        = 10
)

// Probe is an Embedder that fetches the page over HTTP. It fails on non-2xx
// responses and on pages whose headers forbid framing.
type Probe struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
}

// ProbeOption configures a Probe.
type ProbeOption func(*Probe)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ProbeOption {
	return func(p *Probe) {
		if ua != "" {
			p.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) ProbeOption {
	return func(p *Probe) {
		p.client = c
	}
}

// WithMaxBodyBytes limits how much of the body is scanned for a title.
func WithMaxBodyBytes(n int64) ProbeOption {
	return func(p *Probe) {
		p.maxBodyBytes = n
	}
}

// NewProbe creates a Probe.
func NewProbe(opts ...ProbeOption) (*Probe, error) {
	p := &Probe{
		userAgent:    defaultUserAgent,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		p.client = &http.Client{
			Jar:     jar,
			Timeout: defaultProbeTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		}
	}
	return p, nil
}

// Embed fetches url and extracts the page title.
func (p *Probe) Embed(ctx context.Context, url string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("probe %s: %w", url, err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("probe %s: %w", url, err)
	}
	defer resp.Body.Close()

	res := Result{URL: url, FinalURL: resp.Request.URL.String(), StatusCode: resp.StatusCode}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return res, fmt.Errorf("probe %s: %w: %s", url, ErrHTTPStatus, resp.Status)
	}
	if reason := framingRefusal(resp.Header); reason != "" {
		return res, fmt.Errorf("probe %s: %w: %s", url, ErrEmbedRefused, reason)
	}

	body := io.LimitReader(resp.Body, p.maxBodyBytes)
	if isHTML(resp.Header.Get("Content-Type")) {
		res.Title = extractTitle(body, resp.Header.Get("Content-Type"))
	}
	// Drain what is left of the window so the connection can be reused.
	_, _ = io.Copy(io.Discard, body)
	return res, nil
}

// framingRefusal returns why the headers forbid framing by another origin,
// or "" when they do not.
func framingRefusal(h http.Header) string {
	for _, v := range h.Values("X-Frame-Options") {
		switch strings.ToUpper(strings.TrimSpace(v)) {
		case "DENY", "SAMEORIGIN":
			return "X-Frame-Options " + strings.ToUpper(strings.TrimSpace(v))
		}
	}
	for _, policy := range h.Values("Content-Security-Policy") {
		for _, directive := range strings.Split(policy, ";") {
			fields := strings.Fields(strings.ToLower(directive))
			if len(fields) == 0 || fields[0] != "frame-ancestors" {
				continue
			}
			if ancestorsDenyOthers(fields[1:]) {
				return "Content-Security-Policy " + strings.TrimSpace(directive)
			}
		}
	}
	return ""
}

// ancestorsDenyOthers reports whether a frame-ancestors source list admits
// no third-party origin.
func ancestorsDenyOthers(sources []string) bool {
	if len(sources) == 0 {
		return true
	}
	for _, s := range sources {
		if s != "'none'" && s != "'self'" {
			return false
		}
	}
	return true
}

func isHTML(contentType string) bool {
	ct := strings.ToLower(contentType)
	return ct == "" || strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}

// extractTitle returns the text of the first <title> element.
func extractTitle(r io.Reader, contentType string) string {
	if decoded, err := charset.NewReader(r, contentType); err == nil {
		r = decoded
	}
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) != "title" {
				continue
			}
			var b strings.Builder
			for z.Next() == html.TextToken {
				b.Write(z.Text())
			}
			return strings.Join(strings.Fields(b.String()), " ")
		}
	}
}
