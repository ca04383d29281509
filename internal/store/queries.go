package store

import (
	"slices"
	"strings"

	"github.com/akyairhashvil/cantieri/internal/models"
)

// SiteJournal groups the jobs recorded for one site.
type SiteJournal struct {
	Site string
	Jobs []models.Job
}

func (s *Store) view() Snapshot {
	return Snapshot{Workers: s.workers, Vehicles: s.vehicles, Sites: s.sites, Jobs: s.jobs, LastID: s.lastID}
}

func (s *Store) Workers() []models.Worker   { return slices.Clone(s.workers) }
func (s *Store) Vehicles() []models.Vehicle { return slices.Clone(s.vehicles) }
func (s *Store) Sites() []models.Site       { return slices.Clone(s.sites) }
func (s *Store) Jobs() []models.Job         { return cloneJobs(s.jobs) }

// Job looks a job up by id.
func (s *Store) Job(id int64) (models.Job, bool) {
	if j := s.job(id); j != nil {
		return j.Clone(), true
	}
	return models.Job{}, false
}

// Worker looks a worker up by id.
func (s *Store) Worker(id int64) (models.Worker, bool) {
	return s.view().Worker(id)
}

// Vehicle looks a vehicle up by id.
func (s *Store) Vehicle(id int64) (models.Vehicle, bool) {
	return s.view().Vehicle(id)
}

// SiteByName matches case-insensitively.
func (s *Store) SiteByName(name string) (models.Site, bool) {
	return s.view().SiteByName(name)
}

// WorkerByName matches case-insensitively.
func (s *Store) WorkerByName(name string) (models.Worker, bool) {
	return s.view().WorkerByName(name)
}

func (s *Store) JobsOn(date string) []models.Job {
	return cloneJobs(s.view().JobsOn(date))
}

func (s *Store) JournalBySite() []SiteJournal {
	groups := s.view().JournalBySite()
	for i := range groups {
		groups[i].Jobs = cloneJobs(groups[i].Jobs)
	}
	return groups
}

func (s *Store) TeamNames(j models.Job) []string    { return s.view().TeamNames(j) }
func (s *Store) VehicleNames(j models.Job) []string { return s.view().VehicleNames(j) }

// AssignedElsewhere returns another job on the same date whose team already
// includes the worker.
func (s *Store) AssignedElsewhere(workerID, jobID int64) (models.Job, bool) {
	j, ok := s.view().AssignedElsewhere(workerID, jobID)
	return j.Clone(), ok
}

// Worker looks a worker up by id.
func (s Snapshot) Worker(id int64) (models.Worker, bool) {
	for _, w := range s.Workers {
		if w.ID == id {
			return w, true
		}
	}
	return models.Worker{}, false
}

// Vehicle looks a vehicle up by id.
func (s Snapshot) Vehicle(id int64) (models.Vehicle, bool) {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// SiteByName matches case-insensitively.
func (s Snapshot) SiteByName(name string) (models.Site, bool) {
	name = strings.TrimSpace(name)
	for _, st := range s.Sites {
		if strings.EqualFold(st.Name, name) {
			return st, true
		}
	}
	return models.Site{}, false
}

// WorkerByName matches case-insensitively.
func (s Snapshot) WorkerByName(name string) (models.Worker, bool) {
	name = strings.TrimSpace(name)
	for _, w := range s.Workers {
		if strings.EqualFold(w.Name, name) {
			return w, true
		}
	}
	return models.Worker{}, false
}

// JobsOn returns the jobs scheduled on date, in insertion order.
func (s Snapshot) JobsOn(date string) []models.Job {
	var out []models.Job
	for _, j := range s.Jobs {
		if j.Date == date {
			out = append(out, j)
		}
	}
	return out
}

// JournalBySite groups jobs by site name. Groups keep the order in which
// their site first appears; jobs keep insertion order.
func (s Snapshot) JournalBySite() []SiteJournal {
	var groups []SiteJournal
	index := make(map[string]int)
	for _, j := range s.Jobs {
		i, ok := index[j.Site]
		if !ok {
			i = len(groups)
			index[j.Site] = i
			groups = append(groups, SiteJournal{Site: j.Site})
		}
		groups[i].Jobs = append(groups[i].Jobs, j)
	}
	return groups
}

// TeamNames resolves the job's team, skipping ids that no longer exist.
func (s Snapshot) TeamNames(j models.Job) []string {
	names := make([]string, 0, len(j.AssignedTeam))
	for _, id := range j.AssignedTeam {
		if w, ok := s.Worker(id); ok {
			names = append(names, w.Name)
		}
	}
	return names
}

// VehicleNames resolves the job's vehicles, skipping ids that no longer exist.
func (s Snapshot) VehicleNames(j models.Job) []string {
	names := make([]string, 0, len(j.AssignedVehicles))
	for _, id := range j.AssignedVehicles {
		if v, ok := s.Vehicle(id); ok {
			names = append(names, v.Name)
		}
	}
	return names
}

// AssignedElsewhere returns another job on the same date whose team already
// includes the worker.
func (s Snapshot) AssignedElsewhere(workerID, jobID int64) (models.Job, bool) {
	var date string
	found := false
	for _, j := range s.Jobs {
		if j.ID == jobID {
			date, found = j.Date, true
			break
		}
	}
	if !found || date == "" {
		return models.Job{}, false
	}
	for _, j := range s.Jobs {
		if j.ID != jobID && j.Date == date && j.HasWorker(workerID) {
			return j, true
		}
	}
	return models.Job{}, false
}
