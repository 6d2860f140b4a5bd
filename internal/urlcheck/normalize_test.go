package urlcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare host gets https and slash", "example.com", "https://example.com/"},
		{"surrounding whitespace", "  example.com  ", "https://example.com/"},
		{"http kept", "http://example.com/a", "http://example.com/a"},
		{"uppercase scheme and host", "  HTTP://Example.COM:80/a?b=c ", "http://example.com/a?b=c"},
		{"default https port dropped", "https://example.com:443/x", "https://example.com/x"},
		{"custom port kept", "https://example.com:8443", "https://example.com:8443/"},
		{"query without path", "https://example.com?q=1", "https://example.com/?q=1"},
		{"fragment kept", "https://example.com/path#frag", "https://example.com/path#frag"},
		{"idn host", "https://bücher.de", "https://xn--bcher-kva.de/"},
		{"ipv6 literal", "http://[::1]:8080/x", "http://[::1]:8080/x"},
		{"ipv4 literal", "10.0.0.1:3000/status", "https://10.0.0.1:3000/status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejectsInvalidInput(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"https://",
		"http://",
		"https://exa mple.com",
		"https://example.com:port",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Normalize(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidURL), "expected ErrInvalidURL, got %v", err)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first, err := Normalize("Example.com/Path?x=1")
	require.NoError(t, err)
	second, err := Normalize(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHostname(t *testing.T) {
	assert.Equal(t, "www.example.com", Hostname("https://WWW.Example.com/a"))
	assert.Equal(t, "", Hostname("://bad"))
}
