package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/transfer"
	"github.com/akyairhashvil/cantieri/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

type importedMsg struct {
	pending *pendingImport
	err     error
}

// importCmd decodes and validates the workbook at path. Nothing touches the
// store until the user confirms the overwrite.
func (m MainModel) importCmd(tab int, path string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		p, err := decodeImport(ctx, tab, path)
		return importedMsg{pending: p, err: err}
	}
}

func decodeImport(ctx context.Context, tab int, path string) (*pendingImport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := &pendingImport{Tab: tab, Path: path}
	if tab == config.TabJournal {
		p.Jobs, err = transfer.DecodeJobs(ctx, f)
	} else {
		p.Records, err = transfer.DecodeResources(ctx, f)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (m MainModel) handleImported(msg importedMsg) MainModel {
	if msg.err != nil {
		util.LogError("import", msg.err)
		m.err = fmt.Errorf("errore di importazione: %w", msg.err)
		return m
	}
	if m.modal != nil {
		slog.Info("import dropped: modal open", "path", msg.pending.Path, "modal", m.modal.Type())
		m.message = "Importazione annullata: chiudi la finestra aperta e riprova."
		return m
	}
	m.modal = &ConfirmState{
		Action: confirmImport,
		Import: msg.pending,
		Prompt: fmt.Sprintf("Sovrascrivere %s con i %d record dal file? L'azione è irreversibile.",
			importTarget(msg.pending.Tab), msg.pending.count()),
	}
	return m
}

func importTarget(tab int) string {
	switch tab {
	case config.TabPersonnel:
		return "il personale"
	case config.TabSites:
		return "i cantieri"
	case config.TabFleet:
		return "il parco mezzi"
	case config.TabJournal:
		return "il giornale dei lavori"
	}
	return "i dati"
}
