package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/portal/internal/state"
)

type tickMsg time.Time

type snapshotMsg state.Snapshot

// loadedMsg carries the snapshot produced by an explicit load.
type loadedMsg state.Snapshot

type searchDebounceMsg struct {
	seq int
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// debounceCmd fires after the search delay. Only the message whose seq still
// matches the model's counter triggers a reload.
func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (m Model) loadCmd(q state.Query) tea.Cmd {
	if m.loader == nil {
		return nil
	}
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		return loadedMsg(loader.Load(ctx, q))
	}
}
