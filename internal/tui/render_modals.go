package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) renderModal() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	switch s := m.modal.(type) {
	case *InputState:
		title := s.Prompt
		if s.Purpose == inputJobSite || s.Purpose == inputJobDescription {
			title = fmt.Sprintf("Nuovo lavoro per %s", FormatDate(m.date))
		}
		lines := []string{m.theme.Focused.Render(title)}
		if s.Site != "" {
			lines = append(lines, m.theme.Dim.Render("Cantiere: "+s.Site))
		}
		lines = append(lines, m.theme.Row.Render(s.Prompt+":"), m.theme.Input.Render(m.input.View()))
		return frame.Render(strings.Join(lines, "\n"))
	case *ConfirmState:
		return frame.Render(m.theme.Focused.Render(s.Prompt))
	case *AssignState:
		return frame.Render(m.renderAssign(s))
	}
	return ""
}

func (m MainModel) renderAssign(s *AssignState) string {
	job, ok := m.store.Job(s.JobID)
	if !ok {
		return m.theme.Error.Render("Lavoro non trovato.")
	}
	header := m.theme.Focused.Render(fmt.Sprintf("Assegna risorse: %s", job.Site)) + "\n" +
		m.theme.Dim.Render(FormatDate(job.Date))

	var workers strings.Builder
	workers.WriteString(m.paneTitle("Personale", s.Pane == paneWorkers))
	for i, w := range m.store.Workers() {
		line := checkbox(slices.Contains(s.Team, w.ID)) + " " + w.Name
		if other, busy := m.store.AssignedElsewhere(w.ID, job.ID); busy {
			line += " " + m.theme.Dim.Render(fmt.Sprintf("(già assegnato a: %s)", other.Site))
		}
		workers.WriteString("\n" + m.paneLine(line, s.Pane == paneWorkers && s.Cursor[paneWorkers] == i))
	}
	if s.Adding {
		workers.WriteString("\n" + m.theme.Input.Render(m.input.View()))
	}

	var vehicles strings.Builder
	vehicles.WriteString(m.paneTitle("Mezzi", s.Pane == paneVehicles))
	for i, v := range m.store.Vehicles() {
		line := checkbox(slices.Contains(s.Vehicles, v.ID)) + " " + v.Name
		vehicles.WriteString("\n" + m.paneLine(line, s.Pane == paneVehicles && s.Cursor[paneVehicles] == i))
	}

	half := m.contentWidth()/2 - 2
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(workers.String()),
		lipgloss.NewStyle().Width(half).Render(vehicles.String()),
	)
	return header + "\n\n" + panes
}

func (m MainModel) paneTitle(title string, focused bool) string {
	if focused {
		return m.theme.Focused.Render(title)
	}
	return m.theme.Dim.Render(title)
}

func (m MainModel) paneLine(line string, selected bool) string {
	if selected {
		return m.theme.Selected.Render("> ") + line
	}
	return "  " + line
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m MainModel) modalHelp() string {
	switch s := m.modal.(type) {
	case *InputState:
		return "[Enter] Conferma | [Esc] Annulla"
	case *ConfirmState:
		return "[s] Sì | [n] No"
	case *AssignState:
		if s.Adding {
			return "[Enter] Aggiungi operaio | [Esc] Annulla"
		}
		return "[Spazio] Seleziona | [Tab] Personale/Mezzi | [n] Nuovo operaio | [Enter] Salva | [Esc] Annulla"
	}
	return ""
}
