// Package store holds the in-memory scheduling state: workers, vehicles, sites
// and jobs, together with the cross-entity rules that bind them.
//
// A Store has a single owner and is not safe for concurrent use. Code that
// needs the data on another goroutine takes a Snapshot first.
package store

import (
	"slices"
	"strings"

	"github.com/akyairhashvil/cantieri/internal/models"
)

// Store is the only mutation path to the four collections.
type Store struct {
	workers  []models.Worker
	vehicles []models.Vehicle
	sites    []models.Site
	jobs     []models.Job
	lastID   int64
	version  int64
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Snapshot is a detached copy of the store contents.
type Snapshot struct {
	Workers  []models.Worker
	Vehicles []models.Vehicle
	Sites    []models.Site
	Jobs     []models.Job
	LastID   int64

	// Version grows with every mutation. Savers use it to drop snapshots
	// older than the one already persisted.
	Version int64
}

// Empty reports whether the snapshot carries no records.
func (s Snapshot) Empty() bool {
	return len(s.Workers) == 0 && len(s.Vehicles) == 0 && len(s.Sites) == 0 && len(s.Jobs) == 0
}

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Workers:  slices.Clone(s.workers),
		Vehicles: slices.Clone(s.vehicles),
		Sites:    slices.Clone(s.sites),
		Jobs:     cloneJobs(s.jobs),
		LastID:   s.lastID,
		Version:  s.version,
	}
}

// Restore replaces the whole state with snap. The id sequence never moves
// backwards, so ids handed out earlier in the session stay unique.
func (s *Store) Restore(snap Snapshot) {
	s.workers = slices.Clone(snap.Workers)
	s.vehicles = slices.Clone(snap.Vehicles)
	s.sites = slices.Clone(snap.Sites)
	s.jobs = cloneJobs(snap.Jobs)
	s.advance(snap.LastID)
	s.advance(maxID(snap))
	s.version = max(s.version, snap.Version)
}

func (s *Store) touch() {
	s.version++
}

// Version returns the mutation counter carried by snapshots.
func (s *Store) Version() int64 {
	return s.version
}

func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

func (s *Store) advance(id int64) {
	if id > s.lastID {
		s.lastID = id
	}
}

// LastID returns the highest id issued or imported so far.
func (s *Store) LastID() int64 {
	return s.lastID
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func cloneJobs(in []models.Job) []models.Job {
	if in == nil {
		return nil
	}
	out := make([]models.Job, len(in))
	for i, j := range in {
		out[i] = j.Clone()
	}
	return out
}

func maxID(snap Snapshot) int64 {
	var m int64
	for _, w := range snap.Workers {
		m = max(m, w.ID)
	}
	for _, v := range snap.Vehicles {
		m = max(m, v.ID)
	}
	for _, st := range snap.Sites {
		m = max(m, st.ID)
	}
	for _, j := range snap.Jobs {
		m = max(m, j.ID)
	}
	return m
}
