package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Row           lipgloss.Style
	Selected      lipgloss.Style
	StatusActive  lipgloss.Style
	StatusPlanned lipgloss.Style
	Worker        lipgloss.Style
	Vehicle       lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Error         lipgloss.Style
	Message       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(0, 1),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		TabActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 1),
		TabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		Row:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		StatusActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		StatusPlanned: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Worker:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Vehicle:       lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(60),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Message:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(0, 1),
		Border:        lipgloss.Color("62"),                                                                                      // Purple
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),                                           // Cyan
		TabActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("141")).Bold(true).Padding(0, 1), // Purple
		TabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),                                        // Comment
		Row:           lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		StatusActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		StatusPlanned: lipgloss.NewStyle().Foreground(lipgloss.Color("228")),            // Yellow
		Worker:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Vehicle:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")), // Orange
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(60),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Message:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	},
	"light": {
		Name:          "Light",
		Base:          lipgloss.NewStyle().Margin(0, 1),
		Border:        lipgloss.Color("24"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("24")).Bold(true),
		TabActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("30")).Bold(true).Padding(0, 1),
		TabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1),
		Row:           lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		StatusActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		StatusPlanned: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Worker:        lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		Vehicle:       lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("30")).Padding(0, 1).Width(60),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Message:       lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	},
}

// ThemeOrder is the cycling order of the theme key.
var ThemeOrder = []string{"default", "dracula", "light"}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) (string, Theme) {
	if t, ok := Themes[name]; ok {
		return name, t
	}
	return "default", Themes["default"]
}

func nextThemeName(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
