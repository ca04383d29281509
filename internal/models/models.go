package models

import "slices"

// JobStatus enumerates the derived states of a job.
type JobStatus string

const (
	StatusPlanned JobStatus = "Planned"
	StatusActive  JobStatus = "Active"
)

// Label returns the status as shown on screen and in reports.
func (s JobStatus) Label() string {
	switch s {
	case StatusActive:
		return "Attivo"
	case StatusPlanned:
		return "Pianificato"
	default:
		return string(s)
	}
}

// ParseJobStatus accepts both the stored value and the display label.
func ParseJobStatus(v string) (JobStatus, bool) {
	switch v {
	case string(StatusActive), "Attivo":
		return StatusActive, true
	case string(StatusPlanned), "Pianificato":
		return StatusPlanned, true
	}
	return "", false
}

// DeriveStatus reports Active when any resource is assigned.
func DeriveStatus(team, vehicles []int64) JobStatus {
	if len(team) > 0 || len(vehicles) > 0 {
		return StatusActive
	}
	return StatusPlanned
}

// Worker is a member of the personnel.
type Worker struct {
	ID   int64
	Name string
}

// Vehicle is an entry of the fleet.
type Vehicle struct {
	ID   int64
	Name string
}

// Site is a named work location. Jobs reference it by name.
type Site struct {
	ID   int64
	Name string
}

// Job is a unit of work at a site on a given day.
type Job struct {
	ID               int64
	Site             string
	Description      string
	Status           JobStatus
	AssignedTeam     []int64
	AssignedVehicles []int64
	Date             string // YYYY-MM-DD
}

// Clone returns a copy that shares no slices with j.
func (j Job) Clone() Job {
	j.AssignedTeam = slices.Clone(j.AssignedTeam)
	j.AssignedVehicles = slices.Clone(j.AssignedVehicles)
	return j
}

// HasWorker reports whether the worker is part of the job's team.
func (j Job) HasWorker(id int64) bool {
	return slices.Contains(j.AssignedTeam, id)
}

// HasVehicle reports whether the vehicle is assigned to the job.
func (j Job) HasVehicle(id int64) bool {
	return slices.Contains(j.AssignedVehicles, id)
}
