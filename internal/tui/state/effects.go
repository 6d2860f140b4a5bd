package state

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/parallax/internal/core"
)

// run turns core effects into a single command.
func (m *Model) run(fx core.Effects) tea.Cmd {
	return tea.Batch(m.commandsFor(fx)...)
}

func (m *Model) commandsFor(fx core.Effects) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(fx))
	for _, e := range fx {
		if cmd := m.commandFor(e); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (m *Model) commandFor(e core.Effect) tea.Cmd {
	switch e := e.(type) {
	case core.StartEmbed:
		return m.embed(e)
	case core.StartLoadTimeout:
		return m.after(e.After, loadTimeoutMsg{viewID: e.ViewID, generation: e.Generation})
	case core.StartRefresh:
		return m.after(e.Interval, refreshTickMsg{token: e.Token})
	case core.StopRefresh:
		// The superseded timer still fires; its token no longer matches.
		return nil
	case core.ExpireAlert:
		return m.after(e.After, alertExpiredMsg{id: e.ID})
	case core.PersistLastURL:
		return m.persist(e.URL)
	case core.OpenExternal:
		return m.open(e.URL)
	default:
		m.logger.Warn("unhandled effect", "effect", e)
		return nil
	}
}

func (m *Model) embed(e core.StartEmbed) tea.Cmd {
	embedder := m.embedder
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, core.LoadTimeout)
		defer cancel()
		res, err := embedder.Embed(ctx, e.URL)
		return embedResultMsg{viewID: e.ViewID, generation: e.Generation, title: res.Title, err: err}
	}
}

func (m *Model) persist(url string) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		return persistResultMsg{url: url, err: store.SaveLastURL(url)}
	}
}

func (m *Model) open(url string) tea.Cmd {
	if m.opener == nil {
		return nil
	}
	opener := m.opener
	parent := m.ctx
	return func() tea.Msg {
		return openResultMsg{url: url, err: opener.Open(parent, url)}
	}
}

func (m *Model) loadLastURL() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		url, err := store.LastURL()
		return lastURLMsg{url: url, err: err}
	}
}
