package core

import (
	"testing"

	"github.com/cristianoliveira/parallax/internal/domain"
	"github.com/cristianoliveira/parallax/internal/urlcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadURLSync(t *testing.T) {
	s := newTestState(t)
	before := generations(s.Snapshot())

	fx, err := s.LoadURL("example.com")
	require.NoError(t, err)

	views := s.Snapshot()
	for i, v := range views {
		assert.Equal(t, "https://example.com/", v.URL)
		assert.Equal(t, domain.StatusLoading, v.Status)
		assert.Greater(t, v.Generation, before[i])
	}

	embeds := fx.Embeds()
	timeouts := fx.Timeouts()
	require.Len(t, embeds, InitialViews)
	require.Len(t, timeouts, InitialViews)
	for i, v := range views {
		assert.Equal(t, StartEmbed{ViewID: v.ID, Generation: v.Generation, URL: v.URL}, embeds[i])
		assert.Equal(t, StartLoadTimeout{ViewID: v.ID, Generation: v.Generation, After: LoadTimeout}, timeouts[i])
	}
	assert.Contains(t, fx, Effect(PersistLastURL{URL: "https://example.com/"}))
	requireAlert(t, s, domain.AlertInfo, "Loading URL across all 3 views...")
}

func TestLoadURLEmbedPrecedesTimeout(t *testing.T) {
	s := newTestState(t)
	fx, err := s.LoadURL("example.com")
	require.NoError(t, err)

	require.IsType(t, StartEmbed{}, fx[0])
	require.IsType(t, StartLoadTimeout{}, fx[1])
	assert.Equal(t, fx[0].(StartEmbed).ViewID, fx[1].(StartLoadTimeout).ViewID)
}

func TestLoadURLBlocked(t *testing.T) {
	s := newTestState(t)

	fx, err := s.LoadURL("https://youtube.com/watch?v=x")
	require.NoError(t, err)

	for _, v := range s.Snapshot() {
		assert.Equal(t, domain.StatusBlocked, v.Status)
		assert.Equal(t, "https://youtube.com/watch?v=x", v.URL)
	}
	assert.Empty(t, fx.Embeds())
	assert.Empty(t, fx.Timeouts())
}

func TestLoadURLInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace", raw: "   "},
		{name: "missing host", raw: "https://"},
		{name: "space in host", raw: "exa mple.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			before := s.Snapshot()

			fx, err := s.LoadURL(tt.raw)
			require.ErrorIs(t, err, urlcheck.ErrInvalidURL)
			assert.Equal(t, before, s.Snapshot())
			require.Len(t, fx, 1)
			assert.IsType(t, ExpireAlert{}, fx[0])
			requireAlert(t, s, domain.AlertError, `The URL is malformed. Please check the format (e.g., "google.com").`)
		})
	}
}

func TestLoadURLPerView(t *testing.T) {
	t.Run("without selection warns and mutates nothing", func(t *testing.T) {
		s := newTestState(t, WithSyncMode(false))
		before := s.Snapshot()

		fx, err := s.LoadURL("a.com")
		require.ErrorIs(t, err, ErrNoSelection)
		assert.Equal(t, before, s.Snapshot())
		require.Len(t, fx, 1)
		requireAlert(t, s, domain.AlertWarning, "Please select a view first to load a URL.")
	})

	t.Run("with selection navigates only the selected view", func(t *testing.T) {
		s := newTestState(t)
		s.SetSyncMode(false)
		require.NoError(t, s.Select(2))

		fx, err := s.LoadURL("a.com")
		require.NoError(t, err)

		for _, v := range s.Snapshot() {
			if v.ID == 2 {
				assert.Equal(t, domain.StatusLoading, v.Status)
				assert.Equal(t, "https://a.com/", v.URL)
				continue
			}
			assert.Equal(t, domain.StatusIdle, v.Status)
		}
		require.Len(t, fx.Embeds(), 1)
		assert.Equal(t, 2, fx.Embeds()[0].ViewID)
		assert.NotContains(t, fx, Effect(PersistLastURL{URL: "https://a.com/"}))
		requireAlert(t, s, domain.AlertInfo, "Loading URL in View 2...")
	})
}

func TestRenavigationOrphansPendingSignals(t *testing.T) {
	s := newTestState(t)
	_, err := s.LoadURL("first.example")
	require.NoError(t, err)
	first := s.Snapshot()[0]

	_, err = s.LoadURL("second.example")
	require.NoError(t, err)

	assert.False(t, s.LoadSucceeded(first.ID, first.Generation, "First"))
	assert.False(t, s.LoadFailed(first.ID, first.Generation))
	v, _ := s.View(first.ID)
	assert.Equal(t, domain.StatusLoading, v.Status)
	assert.Equal(t, "https://second.example/", v.URL)
}

func TestReloadView(t *testing.T) {
	t.Run("unknown view", func(t *testing.T) {
		s := newTestState(t)
		_, err := s.ReloadView(99)
		require.ErrorIs(t, err, ErrViewNotFound)
	})

	t.Run("empty view is a no-op", func(t *testing.T) {
		s := newTestState(t)
		before := s.Snapshot()
		fx, err := s.ReloadView(1)
		require.NoError(t, err)
		assert.Empty(t, fx)
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("errored view loads again with a fresh generation", func(t *testing.T) {
		s := newTestState(t)
		_, err := s.LoadURL("example.com")
		require.NoError(t, err)
		v, _ := s.View(1)
		require.True(t, s.LoadFailed(v.ID, v.Generation))
		s.DismissAlert()

		fx, err := s.ReloadView(1)
		require.NoError(t, err)
		reloaded, _ := s.View(1)
		assert.Equal(t, domain.StatusLoading, reloaded.Status)
		assert.Greater(t, reloaded.Generation, v.Generation)
		require.Len(t, fx.Embeds(), 1)
		_, hasAlert := s.Alert()
		assert.False(t, hasAlert)
	})
}

func TestReloadAll(t *testing.T) {
	t.Run("no urls is silent", func(t *testing.T) {
		s := newTestState(t)
		assert.Empty(t, s.ReloadAll())
		_, ok := s.Alert()
		assert.False(t, ok)
	})

	t.Run("reloads only views holding a url regardless of sync", func(t *testing.T) {
		s := newTestState(t, WithSyncMode(false))
		require.NoError(t, s.Select(3))
		_, err := s.LoadURL("example.com")
		require.NoError(t, err)
		before, _ := s.View(3)

		fx := s.ReloadAll()
		require.Len(t, fx.Embeds(), 1)
		after, _ := s.View(3)
		assert.Greater(t, after.Generation, before.Generation)
		idle, _ := s.View(1)
		assert.Equal(t, domain.StatusIdle, idle.Status)
		requireAlert(t, s, domain.AlertInfo, "Reloaded all views with a URL")
	})
}

func TestOpenExternal(t *testing.T) {
	s := newTestState(t)

	_, err := s.OpenExternal(7)
	require.ErrorIs(t, err, ErrViewNotFound)

	_, err = s.OpenExternal(1)
	require.ErrorIs(t, err, ErrNoURL)

	_, err = s.LoadURL("https://youtube.com/watch?v=x")
	require.NoError(t, err)
	fx, err := s.OpenExternal(1)
	require.NoError(t, err)
	assert.Equal(t, Effects{OpenExternal{URL: "https://youtube.com/watch?v=x"}}, fx)
}
