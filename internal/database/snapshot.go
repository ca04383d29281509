package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/akyairhashvil/cantieri/internal/store"
)

const (
	metaLastID  = "last_id"
	metaVersion = "version"
)

// SaveSnapshot replaces the persisted state with snap in a single transaction.
// A snapshot older than the persisted one is dropped, so saves that commit out
// of order never roll the database back.
func (d *Database) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		return d.WithTx(ctx, func(tx *sql.Tx) error {
			var stored int64
			err := tx.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", metaVersion).Scan(&stored)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return wrapErr(EntitySnapshot, "load version", 0, err)
			}
			if err == nil && stored > snap.Version {
				slog.Debug("stale snapshot dropped", "version", snap.Version, "stored", stored)
				return nil
			}
			for _, table := range []string{"job_workers", "job_vehicles", "jobs", "workers", "vehicles", "sites"} {
				if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
					return wrapErr(EntitySnapshot, "clear "+table, 0, err)
				}
			}
			if err := insertNamed(ctx, tx, "workers", EntityWorker, snap.Workers, func(w models.Worker) (int64, string) { return w.ID, w.Name }); err != nil {
				return err
			}
			if err := insertNamed(ctx, tx, "vehicles", EntityVehicle, snap.Vehicles, func(v models.Vehicle) (int64, string) { return v.ID, v.Name }); err != nil {
				return err
			}
			if err := insertNamed(ctx, tx, "sites", EntitySite, snap.Sites, func(s models.Site) (int64, string) { return s.ID, s.Name }); err != nil {
				return err
			}
			for pos, job := range snap.Jobs {
				if err := insertJob(ctx, tx, pos, job); err != nil {
					return err
				}
			}
			for key, value := range map[string]int64{metaLastID: snap.LastID, metaVersion: snap.Version} {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
					key, value); err != nil {
					return wrapErr(EntitySnapshot, "save "+key, 0, err)
				}
			}
			return nil
		})
	})
}

func insertNamed[T any](ctx context.Context, tx *sql.Tx, table, entity string, items []T, fields func(T) (int64, string)) error {
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (id, name, position) VALUES (?, ?, ?)", table))
	if err != nil {
		return wrapErr(entity, "prepare insert", 0, err)
	}
	defer stmt.Close()
	for pos, item := range items {
		id, name := fields(item)
		if _, err := stmt.ExecContext(ctx, id, name, pos); err != nil {
			return wrapErr(entity, "insert", id, err)
		}
	}
	return nil
}

func insertJob(ctx context.Context, tx *sql.Tx, pos int, job models.Job) error {
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO jobs (id, site, description, status, date, position) VALUES (?, ?, ?, ?, ?, ?)",
		job.ID, job.Site, job.Description, string(job.Status), job.Date, pos); err != nil {
		return wrapErr(EntityJob, "insert", job.ID, err)
	}
	for i, workerID := range job.AssignedTeam {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO job_workers (job_id, worker_id, position) VALUES (?, ?, ?)",
			job.ID, workerID, i); err != nil {
			return wrapErr(EntityJob, "insert team", job.ID, err)
		}
	}
	for i, vehicleID := range job.AssignedVehicles {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO job_vehicles (job_id, vehicle_id, position) VALUES (?, ?, ?)",
			job.ID, vehicleID, i); err != nil {
			return wrapErr(EntityJob, "insert vehicles", job.ID, err)
		}
	}
	return nil
}

// LoadSnapshot reads the persisted state. The boolean is false when nothing
// has been saved yet.
func (d *Database) LoadSnapshot(ctx context.Context) (store.Snapshot, bool, error) {
	type result struct {
		snap  store.Snapshot
		found bool
	}
	res, err := withDBContextResult(d, ctx, func(ctx context.Context) (result, error) {
		var snap store.Snapshot
		var lastID sql.NullInt64
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", metaLastID).Scan(&lastID)
		if err == sql.ErrNoRows {
			return result{}, nil
		}
		if err != nil {
			return result{}, wrapErr(EntitySnapshot, "load sequence", 0, err)
		}
		snap.LastID = lastID.Int64
		var version sql.NullInt64
		err = d.DB.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", metaVersion).Scan(&version)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return result{}, wrapErr(EntitySnapshot, "load version", 0, err)
		}
		snap.Version = version.Int64

		if snap.Workers, err = queryNamed(ctx, d.DB, "workers", EntityWorker, func(id int64, name string) models.Worker {
			return models.Worker{ID: id, Name: name}
		}); err != nil {
			return result{}, err
		}
		if snap.Vehicles, err = queryNamed(ctx, d.DB, "vehicles", EntityVehicle, func(id int64, name string) models.Vehicle {
			return models.Vehicle{ID: id, Name: name}
		}); err != nil {
			return result{}, err
		}
		if snap.Sites, err = queryNamed(ctx, d.DB, "sites", EntitySite, func(id int64, name string) models.Site {
			return models.Site{ID: id, Name: name}
		}); err != nil {
			return result{}, err
		}
		if snap.Jobs, err = d.queryJobs(ctx); err != nil {
			return result{}, err
		}
		return result{snap: snap, found: true}, nil
	})
	return res.snap, res.found, err
}

func queryNamed[T any](ctx context.Context, db *sql.DB, table, entity string, build func(int64, string) T) ([]T, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT id, name FROM %s ORDER BY position", table))
	if err != nil {
		return nil, wrapErr(entity, "list", 0, err)
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, wrapErr(entity, "scan", 0, err)
		}
		out = append(out, build(id, name))
	}
	return out, wrapErr(entity, "list", 0, rows.Err())
}

func (d *Database) queryJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT id, site, description, status, date FROM jobs ORDER BY position")
	if err != nil {
		return nil, wrapErr(EntityJob, "list", 0, err)
	}
	var jobs []models.Job
	index := make(map[int64]int)
	for rows.Next() {
		var j models.Job
		var status string
		if err := rows.Scan(&j.ID, &j.Site, &j.Description, &status, &j.Date); err != nil {
			rows.Close()
			return nil, wrapErr(EntityJob, "scan", 0, err)
		}
		if parsed, ok := models.ParseJobStatus(status); ok {
			j.Status = parsed
		} else {
			j.Status = models.StatusPlanned
		}
		j.AssignedTeam = []int64{}
		j.AssignedVehicles = []int64{}
		index[j.ID] = len(jobs)
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, wrapErr(EntityJob, "list", 0, err)
	}
	rows.Close()

	if err := d.queryAssignments(ctx, "SELECT job_id, worker_id FROM job_workers ORDER BY job_id, position", func(jobID, id int64) {
		if i, ok := index[jobID]; ok {
			jobs[i].AssignedTeam = append(jobs[i].AssignedTeam, id)
		}
	}); err != nil {
		return nil, err
	}
	if err := d.queryAssignments(ctx, "SELECT job_id, vehicle_id FROM job_vehicles ORDER BY job_id, position", func(jobID, id int64) {
		if i, ok := index[jobID]; ok {
			jobs[i].AssignedVehicles = append(jobs[i].AssignedVehicles, id)
		}
	}); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (d *Database) queryAssignments(ctx context.Context, query string, add func(jobID, id int64)) error {
	rows, err := d.DB.QueryContext(ctx, query)
	if err != nil {
		return wrapErr(EntityJob, "list assignments", 0, err)
	}
	defer rows.Close()
	for rows.Next() {
		var jobID, id int64
		if err := rows.Scan(&jobID, &id); err != nil {
			return wrapErr(EntityJob, "scan assignment", jobID, err)
		}
		add(jobID, id)
	}
	return wrapErr(EntityJob, "list assignments", 0, rows.Err())
}
