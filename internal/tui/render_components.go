package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	var body string
	if m.Modal() != ModalNone {
		body = m.renderModal()
	} else {
		switch m.tab {
		case config.TabProgram:
			body = m.renderProgram()
		case config.TabJournal:
			body = m.renderJournal()
		case config.TabPersonnel, config.TabSites, config.TabFleet:
			body = m.renderResources()
		}
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		"",
		body,
		"",
		m.renderFooter(),
	))
}

func (m MainModel) contentWidth() int {
	w := m.width - 4
	if w < config.MinColumnWidth*4 {
		w = config.MinColumnWidth * 4
	}
	return w
}

func (m MainModel) renderHeader() string {
	title := fmt.Sprintf("Gestione Cantieri %s", versionLabel())
	if m.persister == nil {
		title += "  (sessione)"
	}
	return m.theme.Header.Render(title)
}

func (m MainModel) renderTabs() string {
	tabs := make([]string, len(config.TabTitles))
	for i, title := range config.TabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if m.width < config.CompactModeThreshold {
			label = fmt.Sprintf("%d", i+1)
			if i == m.tab {
				label += " " + title
			}
		}
		if i == m.tab {
			tabs[i] = m.theme.TabActive.Render(label)
		} else {
			tabs[i] = m.theme.TabInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m MainModel) renderFooter() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, m.theme.Error.Render(truncate(m.err.Error(), m.contentWidth())))
	} else if m.message != "" {
		lines = append(lines, m.theme.Message.Render(truncate(m.message, m.contentWidth())))
	}
	help := m.registry.HelpForTab(m.tab)
	if m.modal != nil {
		help = m.modalHelp()
	}
	lines = append(lines, m.theme.Dim.Render(truncate(help, m.contentWidth())))
	return strings.Join(lines, "\n")
}

// visibleWindow returns the [start, end) slice of n rows that keeps the
// cursor on screen.
func visibleWindow(cursor, n int) (int, int) {
	limit := config.MaxVisibleRows
	if n <= limit {
		return 0, n
	}
	start := cursor - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > n {
		start = n - limit
	}
	return start, start + limit
}

func (m MainModel) renderProgram() string {
	var b strings.Builder
	b.WriteString(m.theme.Focused.Render("Programma del " + FormatDate(m.date)))
	b.WriteString("\n\n")
	jobs := m.store.JobsOn(m.date)
	if len(jobs) == 0 {
		b.WriteString(m.theme.Dim.Render("Nessun lavoro programmato per questa data. [a] per aggiungerne uno."))
		return b.String()
	}
	start, end := visibleWindow(m.cursor(), len(jobs))
	for i := start; i < end; i++ {
		b.WriteString(m.renderJobRow(jobs[i], i == m.cursor(), false))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m MainModel) renderJobRow(j models.Job, selected, withDate bool) string {
	width := m.contentWidth()
	marker := "  "
	style := m.theme.Row
	if selected {
		marker = "> "
		style = m.theme.Selected
	}
	head := j.Site
	if withDate {
		head = FormatDate(j.Date)
	}
	title := fmt.Sprintf("%s%s  %s", marker, style.Render(truncate(head, width/2)), m.statusBadge(j.Status))
	desc := "    " + truncate(j.Description, width-4)
	team := "    " + m.theme.Worker.Render(truncate("Personale: "+joinOrDash(m.store.TeamNames(j)), width-4))
	vehicles := "    " + m.theme.Vehicle.Render(truncate("Mezzi: "+joinOrDash(m.store.VehicleNames(j)), width-4))
	return strings.Join([]string{title, desc, team, vehicles}, "\n")
}

func (m MainModel) renderJournal() string {
	groups := m.store.JournalBySite()
	if len(groups) == 0 {
		return m.theme.Dim.Render("Il giornale è vuoto.")
	}
	var b strings.Builder
	idx := 0
	cursor := m.cursor()
	start, end := visibleWindow(cursor, m.rows())
	for _, g := range groups {
		jobs := newestFirst(g.Jobs)
		if idx+len(jobs) <= start || idx >= end {
			idx += len(jobs)
			continue
		}
		b.WriteString(m.theme.Focused.Render(g.Site))
		b.WriteString("\n")
		for _, j := range jobs {
			if idx >= start && idx < end {
				b.WriteString(m.renderJobRow(j, idx == cursor, true))
				b.WriteString("\n")
			}
			idx++
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m MainModel) renderResources() string {
	type row struct {
		id   int64
		name string
	}
	var rows []row
	var empty string
	switch m.tab {
	case config.TabPersonnel:
		for _, w := range m.store.Workers() {
			rows = append(rows, row{w.ID, w.Name})
		}
		empty = "Nessun operaio registrato."
	case config.TabSites:
		for _, s := range m.store.Sites() {
			rows = append(rows, row{s.ID, s.Name})
		}
		empty = "Nessun cantiere registrato."
	case config.TabFleet:
		for _, v := range m.store.Vehicles() {
			rows = append(rows, row{v.ID, v.Name})
		}
		empty = "Nessun mezzo registrato."
	}

	var b strings.Builder
	b.WriteString(m.theme.Focused.Render(fmt.Sprintf("%s (%d)", config.TabTitles[m.tab], len(rows))))
	b.WriteString("\n\n")
	if len(rows) == 0 {
		b.WriteString(m.theme.Dim.Render(empty))
		return b.String()
	}
	start, end := visibleWindow(m.cursor(), len(rows))
	for i := start; i < end; i++ {
		line := fmt.Sprintf("%6d  %s", rows[i].id, truncate(rows[i].name, m.contentWidth()-10))
		if i == m.cursor() {
			b.WriteString(m.theme.Selected.Render("> " + line))
		} else {
			b.WriteString(m.theme.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
