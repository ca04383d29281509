package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database persists scheduling snapshots and settings in SQLite.
type Database struct {
	DB      *sql.DB
	dbFile  string
	timeout time.Duration
}

// Open connects to the database at path and creates the schema if needed.
// A zero timeout selects the default.
func Open(ctx context.Context, path string, timeout time.Duration) (*Database, error) {
	if timeout <= 0 {
		timeout = defaultDBTimeout
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, wrapErr(EntityDatabase, "open", 0, err)
	}
	conn.SetMaxOpenConns(1)
	d := &Database{DB: conn, dbFile: path, timeout: timeout}
	if err := d.withDBContext(ctx, func(ctx context.Context) error {
		return conn.PingContext(ctx)
	}); err != nil {
		_ = conn.Close()
		return nil, wrapErr(EntityDatabase, "ping", 0, err)
	}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS workers (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sites (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id INTEGER PRIMARY KEY,
			site TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Planned',
			date TEXT NOT NULL,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS job_workers (
			job_id INTEGER NOT NULL,
			worker_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (job_id, position),
			FOREIGN KEY(job_id) REFERENCES jobs(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS job_vehicles (
			job_id INTEGER NOT NULL,
			vehicle_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (job_id, position),
			FOREIGN KEY(job_id) REFERENCES jobs(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_date ON jobs(date);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);`,
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		for _, query := range queries {
			if _, err := d.DB.ExecContext(ctx, query); err != nil {
				return wrapErr(EntityDatabase, "create schema", 0, err)
			}
		}
		return nil
	})
}

// WithTx runs fn inside a transaction, committing only when fn succeeds.
func (d *Database) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr(EntityDatabase, "begin", 0, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return wrapErr(EntityDatabase, "commit", 0, tx.Commit())
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, d.timeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, d.timeout)
	defer cancel()
	return fn(ctx)
}
