package store

import (
	"slices"

	"github.com/akyairhashvil/cantieri/internal/models"
)

// AddJob creates a planned job with no resources. The site is not created;
// callers add it first when the name is new.
func (s *Store) AddJob(site, description, date string) models.Job {
	s.touch()
	j := models.Job{
		ID:               s.nextID(),
		Site:             site,
		Description:      description,
		Status:           models.StatusPlanned,
		AssignedTeam:     []int64{},
		AssignedVehicles: []int64{},
		Date:             date,
	}
	s.jobs = append(s.jobs, j)
	return j.Clone()
}

// DeleteJob removes the job.
func (s *Store) DeleteJob(id int64) {
	s.touch()
	s.jobs = slices.DeleteFunc(s.jobs, func(j models.Job) bool { return j.ID == id })
}

// UpdateJobAssignedTeam replaces the team and re-derives the status.
func (s *Store) UpdateJobAssignedTeam(jobID int64, workerIDs []int64) {
	s.touch()
	j := s.job(jobID)
	if j == nil {
		return
	}
	j.AssignedTeam = cloneIDs(workerIDs)
	j.Status = models.DeriveStatus(j.AssignedTeam, j.AssignedVehicles)
}

// UpdateJobAssignedVehicles replaces the vehicles and re-derives the status.
func (s *Store) UpdateJobAssignedVehicles(jobID int64, vehicleIDs []int64) {
	s.touch()
	j := s.job(jobID)
	if j == nil {
		return
	}
	j.AssignedVehicles = cloneIDs(vehicleIDs)
	j.Status = models.DeriveStatus(j.AssignedTeam, j.AssignedVehicles)
}

// UpdateJobDescription replaces the description only.
func (s *Store) UpdateJobDescription(jobID int64, description string) {
	s.touch()
	if j := s.job(jobID); j != nil {
		j.Description = description
	}
}

// ImportJobs replaces the journal.
func (s *Store) ImportJobs(js []models.Job) {
	s.touch()
	s.jobs = cloneJobs(js)
	for _, j := range js {
		s.advance(j.ID)
	}
}

func (s *Store) job(id int64) *models.Job {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return &s.jobs[i]
		}
	}
	return nil
}

func cloneIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return slices.Clone(ids)
}
