package tui

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/report"
	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/akyairhashvil/cantieri/internal/transfer"
	"github.com/akyairhashvil/cantieri/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

type exportedMsg struct {
	path string
	err  error
}

// exportCmd renders a document from a snapshot on a background goroutine.
func (m MainModel) exportCmd(name string, render func(io.Writer, store.Snapshot) error) tea.Cmd {
	dir, snap := m.reportsDir, m.store.Snapshot()
	return func() tea.Msg {
		path, err := report.WriteFile(dir, name, func(w io.Writer) error {
			return render(w, snap)
		})
		return exportedMsg{path: path, err: err}
	}
}

func (m MainModel) handleExported(msg exportedMsg) MainModel {
	if msg.err != nil {
		util.LogError("export", msg.err)
		m.err = fmt.Errorf("esportazione non riuscita: %w", msg.err)
		return m
	}
	m.message = "File creato: " + msg.path
	return m
}

func handleExportPDF(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.tab == config.TabJournal {
		return m, m.exportCmd(config.JournalPDFName, report.JournalPDF), true
	}
	date := m.date
	return m, m.exportCmd(fmt.Sprintf(config.ProgramPDFName, date), func(w io.Writer, snap store.Snapshot) error {
		return report.ProgramPDF(w, snap, date)
	}), true
}

func handleExportXLSX(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.tab == config.TabJournal {
		return m, m.exportCmd(config.JournalXLSXName, report.JournalXLSX), true
	}
	date := m.date
	return m, m.exportCmd(fmt.Sprintf(config.ProgramXLSXName, date), func(w io.Writer, snap store.Snapshot) error {
		return report.ProgramXLSX(w, snap, date)
	}), true
}

// handleExportDatabase writes the resource database of the active tab, or
// the full job sheet from the journal.
func handleExportDatabase(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	switch m.tab {
	case config.TabPersonnel:
		return m, m.exportCmd(config.WorkersXLSXName, func(w io.Writer, snap store.Snapshot) error {
			return transfer.ExportResources(w, config.SheetWorkers, transfer.WorkerRecords(snap.Workers))
		}), true
	case config.TabSites:
		return m, m.exportCmd(config.SitesXLSXName, func(w io.Writer, snap store.Snapshot) error {
			return transfer.ExportResources(w, config.SheetSites, transfer.SiteRecords(snap.Sites))
		}), true
	case config.TabFleet:
		return m, m.exportCmd(config.VehiclesXLSXName, func(w io.Writer, snap store.Snapshot) error {
			return transfer.ExportResources(w, config.SheetVehicles, transfer.VehicleRecords(snap.Vehicles))
		}), true
	case config.TabJournal:
		return m, m.exportCmd(config.JobsXLSXName, func(w io.Writer, snap store.Snapshot) error {
			return transfer.ExportJobs(w, config.SheetJobs, snap)
		}), true
	}
	return m, nil, false
}
