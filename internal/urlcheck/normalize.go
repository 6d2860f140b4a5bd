// Package urlcheck validates user-entered URLs and predicts which ones will
// refuse to be embedded.
package urlcheck

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// ErrInvalidURL indicates text that cannot be turned into an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid URL")

const defaultScheme = "https://"

// hostProfile maps hostnames the way browsers do for lookups, but accepts
// underscores and other characters real-world hosts use.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.StrictDomainName(false),
)

// Normalize trims raw, defaults the scheme to https and returns the
// canonical absolute URL. The canonical form is what views store and compare.
func Normalize(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidURL)
	}
	if !hasHTTPScheme(text) {
		text = defaultScheme + text
	}

	u, err := url.Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}

	host, err := canonicalHost(u.Hostname())
	if err != nil {
		return "", err
	}

	port := u.Port()
	if port == defaultPort(scheme) {
		port = ""
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port != "" {
		host = host + ":" + port
	}

	u.Scheme = scheme
	u.Host = host
	if u.Path == "" && u.RawPath == "" {
		u.Path = "/"
	}
	return u.String(), nil
}

// Hostname returns the lowercased host of a URL, or "" when it cannot be parsed.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

func canonicalHost(host string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	if strings.ContainsAny(host, " \t\r\n") {
		return "", fmt.Errorf("%w: host contains whitespace", ErrInvalidURL)
	}
	if ip := net.ParseIP(host); ip != nil {
		return strings.ToLower(ip.String()), nil
	}
	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: host %q: %v", ErrInvalidURL, host, err)
	}
	if ascii == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return strings.ToLower(ascii), nil
}

func hasHTTPScheme(text string) bool {
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func defaultPort(scheme string) string {
	switch scheme {
	case "http":
		return "80"
	case "https":
		return "443"
	default:
		return ""
	}
}
