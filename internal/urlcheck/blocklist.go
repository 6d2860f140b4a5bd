package urlcheck

import "strings"

// DefaultPatterns lists hostname and URL fragments of sites known to refuse
// being embedded.
var DefaultPatterns = []string{
	"youtube.com",
	"youtu.be",
	"instagram.com",
	"facebook.com",
	"fb.watch",
	"tiktok.com",
	"tiktokcdn",
	"twitter.com/i/video",
	"x.com/i/video",
}

// Classifier predicts from a substring table whether a URL will refuse
// embedding. False negatives are expected; the load timeout covers them.
type Classifier struct {
	patterns []string
}

// NewClassifier creates a classifier for the given patterns. Matching is
// case-insensitive and empty patterns are ignored.
func NewClassifier(patterns ...string) *Classifier {
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		normalized = append(normalized, p)
	}
	return &Classifier{patterns: normalized}
}

// DefaultClassifier returns a classifier using DefaultPatterns.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultPatterns...)
}

// IsBlocked reports whether the URL's hostname or full text contains a pattern.
func (c *Classifier) IsBlocked(rawURL string) bool {
	_, ok := c.Match(rawURL)
	return ok
}

// Match returns the first pattern the URL matches.
func (c *Classifier) Match(rawURL string) (string, bool) {
	if c == nil {
		return "", false
	}
	full := strings.ToLower(rawURL)
	host := Hostname(rawURL)
	for _, p := range c.patterns {
		if host != "" && strings.Contains(host, p) {
			return p, true
		}
		if strings.Contains(full, p) {
			return p, true
		}
	}
	return "", false
}

// Patterns returns a copy of the classifier's patterns.
func (c *Classifier) Patterns() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.patterns))
	copy(out, c.patterns)
	return out
}
