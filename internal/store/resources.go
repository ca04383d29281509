package store

import (
	"slices"
	"strings"

	"github.com/akyairhashvil/cantieri/internal/models"
)

// AddWorker trims and uppercases name and appends a new worker. Blank names
// and case-insensitive duplicates are ignored; ok reports whether a worker
// was added.
func (s *Store) AddWorker(name string) (w models.Worker, ok bool) {
	s.touch()
	name = normalizeName(name)
	if name == "" {
		return models.Worker{}, false
	}
	if slices.ContainsFunc(s.workers, func(x models.Worker) bool { return strings.EqualFold(x.Name, name) }) {
		return models.Worker{}, false
	}
	w = models.Worker{ID: s.nextID(), Name: name}
	s.workers = append(s.workers, w)
	return w, true
}

// DeleteWorker removes the worker and drops its id from every job's team.
// Job status is left as it was.
func (s *Store) DeleteWorker(id int64) {
	s.touch()
	s.workers = slices.DeleteFunc(s.workers, func(w models.Worker) bool { return w.ID == id })
	for i := range s.jobs {
		if s.jobs[i].HasWorker(id) {
			s.jobs[i].AssignedTeam = without(s.jobs[i].AssignedTeam, id)
		}
	}
}

// AddVehicle appends a vehicle. Names are stored as given and may repeat.
func (s *Store) AddVehicle(name string) models.Vehicle {
	s.touch()
	v := models.Vehicle{ID: s.nextID(), Name: name}
	s.vehicles = append(s.vehicles, v)
	return v
}

// DeleteVehicle removes the vehicle and drops its id from every job.
func (s *Store) DeleteVehicle(id int64) {
	s.touch()
	s.vehicles = slices.DeleteFunc(s.vehicles, func(v models.Vehicle) bool { return v.ID == id })
	for i := range s.jobs {
		if s.jobs[i].HasVehicle(id) {
			s.jobs[i].AssignedVehicles = without(s.jobs[i].AssignedVehicles, id)
		}
	}
}

// AddSite follows the same normalization and uniqueness rules as AddWorker.
func (s *Store) AddSite(name string) (st models.Site, ok bool) {
	s.touch()
	name = normalizeName(name)
	if name == "" {
		return models.Site{}, false
	}
	if slices.ContainsFunc(s.sites, func(x models.Site) bool { return strings.EqualFold(x.Name, name) }) {
		return models.Site{}, false
	}
	st = models.Site{ID: s.nextID(), Name: name}
	s.sites = append(s.sites, st)
	return st, true
}

// DeleteSite removes the site unless a job still references its name.
func (s *Store) DeleteSite(id int64) error {
	s.touch()
	idx := slices.IndexFunc(s.sites, func(st models.Site) bool { return st.ID == id })
	if idx < 0 {
		return nil
	}
	name := s.sites[idx].Name
	if slices.ContainsFunc(s.jobs, func(j models.Job) bool { return j.Site == name }) {
		return &ConflictError{Op: "delete", Resource: "site", ID: id, Name: name, Err: ErrSiteInUse}
	}
	s.sites = slices.Delete(s.sites, idx, idx+1)
	return nil
}

// ImportWorkers replaces the personnel list.
func (s *Store) ImportWorkers(ws []models.Worker) {
	s.touch()
	s.workers = slices.Clone(ws)
	for _, w := range ws {
		s.advance(w.ID)
	}
}

// ImportVehicles replaces the fleet.
func (s *Store) ImportVehicles(vs []models.Vehicle) {
	s.touch()
	s.vehicles = slices.Clone(vs)
	for _, v := range vs {
		s.advance(v.ID)
	}
}

// ImportSites replaces the site list.
func (s *Store) ImportSites(sts []models.Site) {
	s.touch()
	s.sites = slices.Clone(sts)
	for _, st := range sts {
		s.advance(st.ID)
	}
}

func without(ids []int64, id int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
