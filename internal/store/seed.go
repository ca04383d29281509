package store

import "github.com/akyairhashvil/cantieri/internal/models"

// SeedDemo loads the sample crew, fleet, sites and four jobs on date. Job
// statuses are kept as recorded, so the last job is Planned although it has
// a team until its next assignment update.
func (s *Store) SeedDemo(date string) {
	s.Restore(Snapshot{
		Workers: []models.Worker{
			{ID: 1, Name: "CARMINE"},
			{ID: 2, Name: "MARIO"},
			{ID: 3, Name: "FIORINO"},
			{ID: 4, Name: "PALMIERI"},
			{ID: 5, Name: "GIACCIO"},
			{ID: 6, Name: "LUIGINO"},
			{ID: 7, Name: "MICHELE"},
			{ID: 8, Name: "EUGENIO"},
			{ID: 9, Name: "KARIM"},
			{ID: 10, Name: "IVAN"},
		},
		Vehicles: []models.Vehicle{
			{ID: 11, Name: "Furgone Fiat"},
			{ID: 12, Name: "Escavatore"},
			{ID: 13, Name: "Furgone Renault"},
		},
		Sites: []models.Site{
			{ID: 14, Name: "ITG BRIN PERDITA IMPIANTO IRRIGAZIONE"},
			{ID: 15, Name: "VIA FILANGIERI 48"},
			{ID: 16, Name: "BRANDI - SERVIZI VARI"},
			{ID: 17, Name: "LAVORO VIA PETRARCA"},
		},
		Jobs: []models.Job{
			{
				ID:               18,
				Site:             "ITG BRIN PERDITA IMPIANTO IRRIGAZIONE",
				Description:      "PORTARE TRANSENNE DEMOLITORE SECCHI NERI ECC... + FASCAI PER RIPARAZIONE",
				Status:           models.StatusActive,
				AssignedTeam:     []int64{1, 2, 3},
				AssignedVehicles: []int64{11},
				Date:             date,
			},
			{
				ID:               19,
				Site:             "VIA FILANGIERI 48",
				Description:      "SMONTAGGIO PONTEGGIO",
				Status:           models.StatusActive,
				AssignedTeam:     []int64{4, 5, 6},
				AssignedVehicles: []int64{12},
				Date:             date,
			},
			{
				ID:               20,
				Site:             "BRANDI - SERVIZI VARI",
				Description:      "VERIFICA IMPIANTO",
				Status:           models.StatusActive,
				AssignedTeam:     []int64{7, 8},
				AssignedVehicles: []int64{},
				Date:             date,
			},
			{
				ID:               21,
				Site:             "LAVORO VIA PETRARCA",
				Description:      "PREPARAZIONE AREA",
				Status:           models.StatusPlanned,
				AssignedTeam:     []int64{9, 10},
				AssignedVehicles: []int64{},
				Date:             date,
			},
		},
	})
}
