package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/akyairhashvil/cantieri/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

//go:generate mockgen -source=database.go -destination=mock_persister_test.go -package=tui

// Persister defines the persistence methods the TUI requires. A nil
// Persister keeps the session in memory only.
type Persister interface {
	SaveSnapshot(ctx context.Context, snap store.Snapshot) error
	SetSetting(ctx context.Context, key, value string) error
}

type savedMsg struct {
	err error
}

// persist saves a snapshot of the store in the background.
func (m MainModel) persist() tea.Cmd {
	if m.persister == nil {
		return nil
	}
	ctx, p, snap := m.ctx, m.persister, m.store.Snapshot()
	return func() tea.Msg {
		return savedMsg{err: p.SaveSnapshot(ctx, snap)}
	}
}

func (m MainModel) saveSetting(key, value string) tea.Cmd {
	if m.persister == nil {
		return nil
	}
	ctx, p := m.ctx, m.persister
	return func() tea.Msg {
		return savedMsg{err: p.SetSetting(ctx, key, value)}
	}
}

func (m MainModel) handleSaved(msg savedMsg) MainModel {
	if msg.err != nil {
		util.LogError("persist", msg.err)
		m.err = fmt.Errorf("salvataggio non riuscito: %w", msg.err)
	}
	return m
}
