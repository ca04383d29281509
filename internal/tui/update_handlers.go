package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/database"
	"github.com/akyairhashvil/cantieri/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

var resourceTabs = []int{config.TabPersonnel, config.TabSites, config.TabFleet}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	// Global navigation.
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "Esci"})
	r.Register(KeyBinding{Key: "tab", Handler: handleNextTab, Description: "Scheda"})
	r.Register(KeyBinding{Key: "right", Handler: handleNextTab})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handlePrevTab})
	r.Register(KeyBinding{Key: "left", Handler: handlePrevTab})
	for i := 0; i < config.TabCount; i++ {
		r.Register(KeyBinding{Key: fmt.Sprint(i + 1), Handler: handleJumpTab})
	}
	r.Register(KeyBinding{Key: "up", Handler: handleCursorUp})
	r.Register(KeyBinding{Key: "k", Handler: handleCursorUp})
	r.Register(KeyBinding{Key: "down", Handler: handleCursorDown})
	r.Register(KeyBinding{Key: "j", Handler: handleCursorDown})
	r.Register(KeyBinding{Key: "T", Handler: handleCycleTheme, Description: "Tema"})

	// Work program.
	program := []int{config.TabProgram}
	r.Register(KeyBinding{Key: "[", Handler: handlePrevDay, Description: "Giorno prec.", Tabs: program})
	r.Register(KeyBinding{Key: "]", Handler: handleNextDay, Description: "Giorno succ.", Tabs: program})
	r.Register(KeyBinding{Key: "t", Handler: handleToday, Description: "Oggi", Tabs: program})
	r.Register(KeyBinding{Key: "a", Handler: handleAddJob, Description: "Nuovo lavoro", Tabs: program})

	// Program and journal share the job actions.
	jobTabs := []int{config.TabProgram, config.TabJournal}
	r.Register(KeyBinding{Key: "e", Handler: handleEditDescription, Description: "Modifica", Tabs: jobTabs})
	r.Register(KeyBinding{Key: "enter", Handler: handleOpenAssign, Description: "Assegna", Tabs: jobTabs})
	r.Register(KeyBinding{Key: "d", Handler: handleDeleteJob, Description: "Elimina", Tabs: jobTabs})
	r.Register(KeyBinding{Key: "p", Handler: handleExportPDF, Description: "PDF", Tabs: jobTabs})
	r.Register(KeyBinding{Key: "x", Handler: handleExportXLSX, Description: "Excel", Tabs: jobTabs})

	// Resource databases, plus the job sheet on the journal tab.
	r.Register(KeyBinding{Key: "a", Handler: handleAddResource, Description: "Aggiungi", Tabs: resourceTabs})
	r.Register(KeyBinding{Key: "d", Handler: handleDeleteResource, Description: "Elimina", Tabs: resourceTabs})
	dataTabs := append([]int{config.TabJournal}, resourceTabs...)
	r.Register(KeyBinding{Key: "i", Handler: handleImportPrompt, Description: "Importa", Tabs: dataTabs})
	r.Register(KeyBinding{Key: "o", Handler: handleExportDatabase, Description: "Esporta", Tabs: dataTabs})
	return r
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleNextTab(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.tab = (m.tab + 1) % config.TabCount
	return m, nil, true
}

func handlePrevTab(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.tab = (m.tab + config.TabCount - 1) % config.TabCount
	return m, nil, true
}

func handleJumpTab(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	idx := int(key[0] - '1')
	if idx < 0 || idx >= config.TabCount {
		return m, nil, false
	}
	m.tab = idx
	return m, nil, true
}

func handleCursorUp(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.setCursor(m.cursor() - 1)
	return m, nil, true
}

func handleCursorDown(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.setCursor(m.cursor() + 1)
	return m, nil, true
}

func handleCycleTheme(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.themeName, m.theme = ThemeByName(nextThemeName(m.themeName))
	m.message = "Tema: " + m.theme.Name
	return m, m.saveSetting(database.SettingTheme, m.themeName), true
}

func handlePrevDay(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.changeDate(ShiftDate(m.date, -1)), nil, true
}

func handleNextDay(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.changeDate(ShiftDate(m.date, 1)), nil, true
}

func handleToday(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.changeDate(m.now().Format(config.DateLayout)), nil, true
}

func (m MainModel) changeDate(date string) MainModel {
	m.date = date
	m.cursors[config.TabProgram] = 0
	return m
}

func handleAddJob(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.openInput(&InputState{Purpose: inputJobSite, Prompt: "Cantiere"}, ""), nil, true
}

func handleEditDescription(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	job, ok := m.selectedJob()
	if !ok {
		return m, nil, true
	}
	return m.openInput(&InputState{Purpose: inputEditDescription, Prompt: "Descrizione", JobID: job.ID}, job.Description), nil, true
}

func handleOpenAssign(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	job, ok := m.selectedJob()
	if !ok {
		return m, nil, true
	}
	m.modal = &AssignState{
		JobID:    job.ID,
		Team:     slices.Clone(job.AssignedTeam),
		Vehicles: slices.Clone(job.AssignedVehicles),
	}
	return m, nil, true
}

func handleDeleteJob(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	job, ok := m.selectedJob()
	if !ok {
		return m, nil, true
	}
	m.modal = &ConfirmState{
		Action: confirmDeleteJob,
		ID:     job.ID,
		Prompt: fmt.Sprintf("Eliminare il lavoro \"%s\" del %s? L'azione è irreversibile.", job.Site, FormatDate(job.Date)),
	}
	return m, nil, true
}

func handleAddResource(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	switch m.tab {
	case config.TabPersonnel:
		return m.openInput(&InputState{Purpose: inputAddWorker, Prompt: "Nuovo operaio"}, ""), nil, true
	case config.TabSites:
		return m.openInput(&InputState{Purpose: inputAddSite, Prompt: "Nuovo cantiere"}, ""), nil, true
	case config.TabFleet:
		return m.openInput(&InputState{Purpose: inputAddVehicle, Prompt: "Nuovo mezzo"}, ""), nil, true
	}
	return m, nil, false
}

func handleDeleteResource(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	id, name, ok := m.selectedResource()
	if !ok {
		return m, nil, true
	}
	state := &ConfirmState{ID: id}
	switch m.tab {
	case config.TabPersonnel:
		state.Action = confirmDeleteWorker
		state.Prompt = fmt.Sprintf("Eliminare l'operaio %s? Verrà rimosso da tutte le squadre.", name)
	case config.TabSites:
		state.Action = confirmDeleteSite
		state.Prompt = fmt.Sprintf("Eliminare il cantiere %s?", name)
	case config.TabFleet:
		state.Action = confirmDeleteVehicle
		state.Prompt = fmt.Sprintf("Eliminare il mezzo %s? Verrà rimosso da tutti i lavori.", name)
	}
	m.modal = state
	return m, nil, true
}

func handleImportPrompt(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.openInput(&InputState{Purpose: inputImportPath, Prompt: "File Excel da importare", Tab: m.tab}, ""), nil, true
}

func (m MainModel) openInput(state *InputState, value string) MainModel {
	m.modal = state
	m.input.Reset()
	m.input.CharLimit = config.MaxDescriptionLength
	switch state.Purpose {
	case inputImportPath:
		m.input.CharLimit = config.MaxPathLength
	case inputJobSite, inputAddWorker, inputAddSite, inputAddVehicle:
		m.input.CharLimit = config.MaxNameLength
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m MainModel) closeModal() MainModel {
	m.modal = nil
	m.input.Blur()
	m.input.Reset()
	return m
}

// selectJob moves the program cursor onto the job with id.
func (m *MainModel) selectJob(id int64) {
	for i, j := range m.store.JobsOn(m.date) {
		if j.ID == id {
			m.cursors[config.TabProgram] = i
			return
		}
	}
}

func newestFirst(jobs []models.Job) []models.Job {
	out := slices.Clone(jobs)
	slices.SortStableFunc(out, func(a, b models.Job) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}
