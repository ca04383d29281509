// Package transfer moves scheduling data in and out of the application:
// spreadsheet databases of workers, vehicles, sites and jobs, and the
// JSON vault used for full backups.
//
// Decoders validate every record before returning it, so a caller either
// gets the whole collection or an error and nothing else.
package transfer

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/cantieri/internal/models"
)

var (
	ErrEmptySheet      = errors.New("il file è vuoto o contiene solo l'intestazione")
	ErrMissingColumns  = errors.New("l'intestazione del file deve contenere le colonne richieste")
	ErrDuplicateID     = errors.New("id duplicato")
	ErrInvalidVault    = errors.New("file di backup non valido")
	ErrNotEncrypted    = errors.New("il file di backup non è cifrato")
	ErrWrongPassphrase = errors.New("passphrase errata")
	ErrNeedPassphrase  = errors.New("il file di backup è cifrato: serve la passphrase")
)

// RowError points at the spreadsheet cell that failed validation.
// Row is 1-based and counts the header row.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("riga %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("riga %d, colonna '%s': %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Record is one row of a resource database.
type Record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// JobRecord is the transfer form of a job.
type JobRecord struct {
	ID          int64   `json:"id"`
	Site        string  `json:"site"`
	Description string  `json:"description"`
	Status      string  `json:"status,omitempty"`
	Date        string  `json:"date"`
	Team        []int64 `json:"team"`
	Vehicles    []int64 `json:"vehicles"`
}

func WorkerRecords(ws []models.Worker) []Record {
	out := make([]Record, 0, len(ws))
	for _, w := range ws {
		out = append(out, Record{ID: w.ID, Name: w.Name})
	}
	return out
}

func VehicleRecords(vs []models.Vehicle) []Record {
	out := make([]Record, 0, len(vs))
	for _, v := range vs {
		out = append(out, Record{ID: v.ID, Name: v.Name})
	}
	return out
}

func SiteRecords(ss []models.Site) []Record {
	out := make([]Record, 0, len(ss))
	for _, s := range ss {
		out = append(out, Record{ID: s.ID, Name: s.Name})
	}
	return out
}

func Workers(recs []Record) []models.Worker {
	out := make([]models.Worker, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.Worker{ID: r.ID, Name: r.Name})
	}
	return out
}

func Vehicles(recs []Record) []models.Vehicle {
	out := make([]models.Vehicle, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.Vehicle{ID: r.ID, Name: r.Name})
	}
	return out
}

func Sites(recs []Record) []models.Site {
	out := make([]models.Site, 0, len(recs))
	for _, r := range recs {
		out = append(out, models.Site{ID: r.ID, Name: r.Name})
	}
	return out
}

// JobRecords converts jobs for export.
func JobRecords(jobs []models.Job) []JobRecord {
	out := make([]JobRecord, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobRecord{
			ID:          j.ID,
			Site:        j.Site,
			Description: j.Description,
			Status:      string(j.Status),
			Date:        j.Date,
			Team:        nonNil(j.AssignedTeam),
			Vehicles:    nonNil(j.AssignedVehicles),
		})
	}
	return out
}

// Jobs converts imported records. Status is always derived from the
// assignment lists.
func Jobs(recs []JobRecord) []models.Job {
	out := make([]models.Job, 0, len(recs))
	for _, r := range recs {
		team := nonNil(r.Team)
		vehicles := nonNil(r.Vehicles)
		out = append(out, models.Job{
			ID:               r.ID,
			Site:             r.Site,
			Description:      r.Description,
			Status:           models.DeriveStatus(team, vehicles),
			AssignedTeam:     team,
			AssignedVehicles: vehicles,
			Date:             r.Date,
		})
	}
	return out
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return append([]int64{}, ids...)
}
