package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/akyairhashvil/cantieri/internal/transfer"
	"github.com/akyairhashvil/cantieri/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.(type) {
	case *InputState:
		return m.updateInput(s, msg)
	case *ConfirmState:
		return m.updateConfirm(s, msg)
	case *AssignState:
		return m.updateAssign(s, msg)
	}
	return m, nil
}

func (m MainModel) updateInput(s *InputState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeModal(), nil
	case tea.KeyEnter:
		return m.submitInput(s, strings.TrimSpace(m.input.Value()))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) submitInput(s *InputState, value string) (MainModel, tea.Cmd) {
	switch s.Purpose {
	case inputJobSite:
		if value == "" {
			return m, nil
		}
		return m.openInput(&InputState{Purpose: inputJobDescription, Prompt: "Descrizione lavoro", Site: strings.ToUpper(value)}, ""), nil

	case inputJobDescription:
		if value == "" {
			return m, nil
		}
		m.store.AddSite(s.Site)
		job := m.store.AddJob(s.Site, value, m.date)
		m = m.closeModal()
		m.selectJob(job.ID)
		m.message = "Lavoro aggiunto: " + job.Site
		return m, m.persist()

	case inputEditDescription:
		m.store.UpdateJobDescription(s.JobID, value)
		m = m.closeModal()
		return m, m.persist()

	case inputAddWorker:
		m = m.closeModal()
		w, ok := m.store.AddWorker(value)
		if !ok {
			if value != "" {
				m.message = fmt.Sprintf("L'operaio %s esiste già.", strings.ToUpper(value))
			}
			return m, nil
		}
		m.message = "Operaio aggiunto: " + w.Name
		return m, m.persist()

	case inputAddSite:
		m = m.closeModal()
		st, ok := m.store.AddSite(value)
		if !ok {
			if value != "" {
				m.message = fmt.Sprintf("Il cantiere %s esiste già.", strings.ToUpper(value))
			}
			return m, nil
		}
		m.message = "Cantiere aggiunto: " + st.Name
		return m, m.persist()

	case inputAddVehicle:
		m = m.closeModal()
		if value == "" {
			return m, nil
		}
		v := m.store.AddVehicle(value)
		m.message = "Mezzo aggiunto: " + v.Name
		return m, m.persist()

	case inputImportPath:
		m = m.closeModal()
		if value == "" {
			return m, nil
		}
		return m, m.importCmd(s.Tab, util.ExpandUser(value))
	}
	return m.closeModal(), nil
}

func (m MainModel) updateConfirm(s *ConfirmState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "y", "S", "Y":
		m = m.closeModal()
		return m.confirm(s)
	case "n", "N", "esc":
		m = m.closeModal()
		if s.Action == confirmImport {
			m.message = "Importazione annullata."
		}
		return m, nil
	}
	return m, nil
}

func (m MainModel) confirm(s *ConfirmState) (MainModel, tea.Cmd) {
	switch s.Action {
	case confirmDeleteJob:
		m.store.DeleteJob(s.ID)
	case confirmDeleteWorker:
		m.store.DeleteWorker(s.ID)
	case confirmDeleteVehicle:
		m.store.DeleteVehicle(s.ID)
	case confirmDeleteSite:
		if err := m.store.DeleteSite(s.ID); err != nil {
			if errors.Is(err, store.ErrSiteInUse) {
				m.message = store.ErrSiteInUse.Error()
			} else {
				m.err = err
			}
			return m, nil
		}
	case confirmImport:
		m.applyImport(s.Import)
	}
	m.setCursor(m.cursor())
	return m, m.persist()
}

func (m *MainModel) applyImport(p *pendingImport) {
	if p == nil {
		return
	}
	switch p.Tab {
	case config.TabPersonnel:
		m.store.ImportWorkers(transfer.Workers(p.Records))
	case config.TabSites:
		m.store.ImportSites(transfer.Sites(p.Records))
	case config.TabFleet:
		m.store.ImportVehicles(transfer.Vehicles(p.Records))
	case config.TabJournal:
		m.store.ImportJobs(transfer.Jobs(p.Jobs))
	}
	m.message = fmt.Sprintf("Dati importati con successo: %d record.", p.count())
}

func (m MainModel) updateAssign(s *AssignState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.Adding {
		return m.updateAssignAdding(s, msg)
	}
	switch msg.String() {
	case "esc":
		return m.closeModal(), nil
	case "tab", "left", "right", "h", "l":
		s.Pane = 1 - s.Pane
	case "up", "k":
		if s.Cursor[s.Pane] > 0 {
			s.Cursor[s.Pane]--
		}
	case "down", "j":
		if s.Cursor[s.Pane] < m.assignPaneLen(s.Pane)-1 {
			s.Cursor[s.Pane]++
		}
	case " ", "space", "x":
		m.toggleAssignment(s)
	case "n":
		s.Pane = paneWorkers
		s.Adding = true
		m.input.Reset()
		m.input.CharLimit = config.MaxNameLength
		m.input.Focus()
	case "enter":
		m.store.UpdateJobAssignedTeam(s.JobID, s.Team)
		m.store.UpdateJobAssignedVehicles(s.JobID, s.Vehicles)
		m = m.closeModal()
		m.message = "Assegnazioni salvate."
		return m, m.persist()
	}
	return m, nil
}

func (m MainModel) updateAssignAdding(s *AssignState, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		s.Adding = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		name := strings.ToUpper(strings.TrimSpace(m.input.Value()))
		s.Adding = false
		m.input.Blur()
		m.input.Reset()
		if name == "" {
			return m, nil
		}
		var cmd tea.Cmd
		w, ok := m.store.WorkerByName(name)
		if !ok {
			w, _ = m.store.AddWorker(name)
			cmd = m.persist()
		}
		if !slices.Contains(s.Team, w.ID) {
			s.Team = append(s.Team, w.ID)
		}
		for i, worker := range m.store.Workers() {
			if worker.ID == w.ID {
				s.Cursor[paneWorkers] = i
			}
		}
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m MainModel) assignPaneLen(pane int) int {
	if pane == paneVehicles {
		return len(m.store.Vehicles())
	}
	return len(m.store.Workers())
}

func (m MainModel) toggleAssignment(s *AssignState) {
	c := s.Cursor[s.Pane]
	if s.Pane == paneVehicles {
		vs := m.store.Vehicles()
		if c < len(vs) {
			s.Vehicles = toggleID(s.Vehicles, vs[c].ID)
		}
		return
	}
	ws := m.store.Workers()
	if c < len(ws) {
		s.Team = toggleID(s.Team, ws[c].ID)
	}
}

func toggleID(ids []int64, id int64) []int64 {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(slices.Clone(ids), i, i+1)
	}
	return append(slices.Clone(ids), id)
}
