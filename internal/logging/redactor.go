package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var (
	keySeparator   = regexp.MustCompile(`[^a-z0-9]+`)
	sensitiveWords = map[string]bool{
		"secret":     true,
		"password":   true,
		"token":      true,
		"key":        true,
		"auth":       true,
		"credential": true,
		"cookie":     true,
	}
)

// redact returns a copy of the key/value pairs with the values of
// sensitive keys replaced.
func redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok && isSensitive(key) {
			out[i+1] = redacted
		}
	}
	return out
}

// isSensitive reports whether any segment of key is a sensitive word.
// "api_token" is sensitive, "apitoken" and "secretary" are not.
func isSensitive(key string) bool {
	for _, part := range keySeparator.Split(strings.ToLower(key), -1) {
		if sensitiveWords[part] {
			return true
		}
	}
	return false
}
