package config

// Application identity.
const (
	AppName     = "cantieri"
	DBFileName  = "cantieri.db"
	LogFileName = "cantieri.log"
)

// Date layouts.
const (
	// DateLayout is the storage format of Job.Date.
	DateLayout = "2006-01-02"

	// DisplayDateLayout is the Italian day/month/year format used on screen and in reports.
	DisplayDateLayout = "02/01/2006"
)

// Report file names. %s is the selected date in DateLayout.
const (
	ProgramPDFName   = "programma_lavori_%s.pdf"
	ProgramXLSXName  = "programma_lavori_%s.xlsx"
	JournalPDFName   = "giornale_lavori_completo.pdf"
	JournalXLSXName  = "giornale_lavori_completo.xlsx"
	WorkersXLSXName  = "database_personale.xlsx"
	SitesXLSXName    = "database_cantieri.xlsx"
	VehiclesXLSXName = "database_mezzi.xlsx"
	JobsXLSXName     = "database_lavori.xlsx"
	VaultFileName    = "cantieri_export_%s.json"
)

// Sheet names.
const (
	SheetProgram  = "Programma Lavori"
	SheetJournal  = "Giornale Lavori"
	SheetWorkers  = "Personale"
	SheetSites    = "Cantieri"
	SheetVehicles = "Mezzi"
	SheetJobs     = "Lavori"
)

// Security settings.
const (
	MinPassphraseLength   = 8
	MaxPassphraseAttempts = 3
)
