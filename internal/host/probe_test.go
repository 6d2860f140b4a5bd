package host

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProbe(t *testing.T, opts ...ProbeOption) *Probe {
	t.Helper()
	p, err := NewProbe(opts...)
	require.NoError(t, err)
	return p
}

func TestProbeExtractsTitle(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><head><title>\n  Example &amp; Co\n</title></head><body>hi</body></html>"))
	}))
	defer srv.Close()

	res, err := newTestProbe(t, WithUserAgent("parallax-test")).Embed(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Example & Co", res.Title)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, srv.URL, res.URL)
	assert.Equal(t, "parallax-test", gotUA)
}

func TestProbeFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<title>New</title>"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := newTestProbe(t).Embed(context.Background(), srv.URL+"/old")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/new", res.FinalURL)
	assert.Equal(t, "New", res.Title)
}

func TestProbeFailures(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		status  int
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrHTTPStatus},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrHTTPStatus},
		{name: "x-frame-options deny", headers: map[string]string{"X-Frame-Options": "DENY"}, wantErr: ErrEmbedRefused},
		{name: "x-frame-options sameorigin", headers: map[string]string{"X-Frame-Options": "sameorigin"}, wantErr: ErrEmbedRefused},
		{name: "csp none", headers: map[string]string{"Content-Security-Policy": "default-src 'self'; frame-ancestors 'none'"}, wantErr: ErrEmbedRefused},
		{name: "csp self", headers: map[string]string{"Content-Security-Policy": "frame-ancestors 'self'"}, wantErr: ErrEmbedRefused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte("<title>x</title>"))
			}))
			defer srv.Close()

			_, err := newTestProbe(t).Embed(context.Background(), srv.URL)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProbeAllowsPermissiveFraming(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "ALLOW-FROM https://example.com")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'self' https://*.example.com")
		_, _ = w.Write([]byte("<title>ok</title>"))
	}))
	defer srv.Close()

	_, err := newTestProbe(t).Embed(context.Background(), srv.URL)
	require.NoError(t, err)
}

func TestProbeTitleOutsideWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><!--" + strings.Repeat("x", 4096) + "--><title>late</title>"))
	}))
	defer srv.Close()

	res, err := newTestProbe(t, WithMaxBodyBytes(1024)).Embed(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, res.Title)
}

func TestProbeSkipsNonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"<title>nope</title>"}`))
	}))
	defer srv.Close()

	res, err := newTestProbe(t).Embed(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, res.Title)
}

func TestProbeCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<title>x</title>"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestProbe(t).Embed(ctx, srv.URL)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOffline(t *testing.T) {
	res, err := Offline.Embed(context.Background(), "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", res.FinalURL)
}
