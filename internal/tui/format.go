package tui

import (
	"strings"
	"time"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/charmbracelet/x/ansi"
)

var weekdays = [...]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"}

// FormatDate renders a stored date as "lunedì 10/03/2025".
func FormatDate(date string) string {
	t, err := time.Parse(config.DateLayout, date)
	if err != nil {
		return date
	}
	return weekdays[t.Weekday()] + " " + t.Format(config.DisplayDateLayout)
}

// ShiftDate moves a stored date by days. Unparseable input is returned unchanged.
func ShiftDate(date string, days int) string {
	t, err := time.Parse(config.DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(config.DateLayout)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

func (m MainModel) statusBadge(s models.JobStatus) string {
	if s == models.StatusActive {
		return m.theme.StatusActive.Render(s.Label())
	}
	return m.theme.StatusPlanned.Render(s.Label())
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
