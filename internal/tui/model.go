package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/akyairhashvil/cantieri/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a MainModel.
type Options struct {
	ReportsDir string
	Theme      string
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

// MainModel is the root bubbletea model. It owns the store: every mutation
// happens in Update, and background commands only ever see snapshots.
type MainModel struct {
	ctx        context.Context
	store      *store.Store
	persister  Persister
	registry   *HandlerRegistry
	reportsDir string
	now        func() time.Time

	tab     int
	date    string
	cursors [config.TabCount]int

	modal ModalState
	input textinput.Model

	theme     Theme
	themeName string

	message string
	err     error
	width   int
	height  int
}

func NewMainModel(ctx context.Context, st *store.Store, p Persister, opts Options) MainModel {
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	ti := textinput.New()
	ti.CharLimit = config.MaxDescriptionLength
	ti.Width = 50

	name, theme := ThemeByName(opts.Theme)
	return MainModel{
		ctx:        ctx,
		store:      st,
		persister:  p,
		registry:   defaultRegistry(),
		reportsDir: opts.ReportsDir,
		now:        now,
		tab:        config.TabProgram,
		date:       now().Format(config.DateLayout),
		input:      ti,
		theme:      theme,
		themeName:  name,
		width:      config.DefaultWidth,
		height:     config.DefaultHeight,
	}
}

func (m MainModel) Init() tea.Cmd { return textinput.Blink }

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case savedMsg:
		return m.handleSaved(msg), nil
	case exportedMsg:
		return m.handleExported(msg), nil
	case importedMsg:
		return m.handleImported(msg), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.modal != nil {
			return m.updateModal(msg)
		}
		m.err = nil
		m.message = ""
		next, cmd, _ := m.registry.Handle(m, msg.String())
		return next, cmd
	}
	if m.modal != nil && m.inputActive() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Tab returns the active tab index.
func (m MainModel) Tab() int { return m.tab }

// Date returns the program date in config.DateLayout.
func (m MainModel) Date() string { return m.date }

// Err returns the error shown in the footer, if any.
func (m MainModel) Err() error { return m.err }

// Modal reports which modal, if any, has the keyboard.
func (m MainModel) Modal() ModalType {
	if m.modal == nil {
		return ModalNone
	}
	return m.modal.Type()
}

// Message returns the transient status line.
func (m MainModel) Message() string { return m.message }

func (m MainModel) inputActive() bool {
	switch s := m.modal.(type) {
	case *InputState:
		return true
	case *AssignState:
		return s.Adding
	}
	return false
}

// rows returns how many selectable rows the active tab shows.
func (m MainModel) rows() int {
	switch m.tab {
	case config.TabProgram:
		return len(m.store.JobsOn(m.date))
	case config.TabJournal:
		return len(m.journalJobs())
	case config.TabPersonnel:
		return len(m.store.Workers())
	case config.TabSites:
		return len(m.store.Sites())
	case config.TabFleet:
		return len(m.store.Vehicles())
	}
	return 0
}

func (m MainModel) cursor() int {
	return m.cursors[m.tab]
}

func (m *MainModel) setCursor(c int) {
	m.cursors[m.tab] = util.Clamp(c, 0, max(m.rows()-1, 0))
}

func (m MainModel) selectedJob() (models.Job, bool) {
	var jobs []models.Job
	switch m.tab {
	case config.TabProgram:
		jobs = m.store.JobsOn(m.date)
	case config.TabJournal:
		jobs = m.journalJobs()
	default:
		return models.Job{}, false
	}
	c := m.cursor()
	if c < 0 || c >= len(jobs) {
		return models.Job{}, false
	}
	return jobs[c], true
}

// journalJobs flattens the journal: site groups in first-appearance order,
// newest job first inside each group.
func (m MainModel) journalJobs() []models.Job {
	var out []models.Job
	for _, g := range m.store.JournalBySite() {
		out = append(out, newestFirst(g.Jobs)...)
	}
	return out
}

// selectedResource returns the id and name under the cursor on the
// personnel, sites and fleet tabs.
func (m MainModel) selectedResource() (int64, string, bool) {
	c := m.cursor()
	switch m.tab {
	case config.TabPersonnel:
		ws := m.store.Workers()
		if c < len(ws) {
			return ws[c].ID, ws[c].Name, true
		}
	case config.TabSites:
		ss := m.store.Sites()
		if c < len(ss) {
			return ss[c].ID, ss[c].Name, true
		}
	case config.TabFleet:
		vs := m.store.Vehicles()
		if c < len(vs) {
			return vs[c].ID, vs[c].Name, true
		}
	}
	return 0, "", false
}
