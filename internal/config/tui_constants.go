package config

// Tabs, in display order.
const (
	TabProgram = iota
	TabJournal
	TabPersonnel
	TabSites
	TabFleet

	// TabCount is the number of tabs.
	TabCount
)

// TabTitles holds the label of each tab.
var TabTitles = []string{
	"Programma Lavori",
	"Giornale dei Lavori",
	"Personale",
	"Cantieri",
	"Parco Mezzi",
}

// Layout constants.
const (
	// MinColumnWidth is the minimum width for a table column.
	MinColumnWidth = 8

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 80

	// DefaultWidth is used before the first WindowSizeMsg arrives.
	DefaultWidth = 100

	// DefaultHeight is used before the first WindowSizeMsg arrives.
	DefaultHeight = 30
)

// Display limits.
const (
	// MaxVisibleRows limits list rows shown before scrolling.
	MaxVisibleRows = 18

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	MaxNameLength        = 80
	MaxDescriptionLength = 500
	MaxPathLength        = 512
)
