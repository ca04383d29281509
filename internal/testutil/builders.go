package testutil

import (
	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/akyairhashvil/cantieri/internal/store"
)

// JobBuilder provides fluent API for creating test jobs.
type JobBuilder struct {
	job models.Job
}

func NewJob() *JobBuilder {
	return &JobBuilder{
		job: models.Job{
			ID:               1,
			Site:             "TEST SITE",
			Description:      "Test job",
			Status:           models.StatusPlanned,
			AssignedTeam:     []int64{},
			AssignedVehicles: []int64{},
			Date:             "2025-01-15",
		},
	}
}

func (b *JobBuilder) WithID(id int64) *JobBuilder {
	b.job.ID = id
	return b
}

func (b *JobBuilder) WithSite(site string) *JobBuilder {
	b.job.Site = site
	return b
}

func (b *JobBuilder) WithDescription(d string) *JobBuilder {
	b.job.Description = d
	return b
}

func (b *JobBuilder) WithDate(date string) *JobBuilder {
	b.job.Date = date
	return b
}

// WithTeam sets the team and keeps the status consistent with it.
func (b *JobBuilder) WithTeam(ids ...int64) *JobBuilder {
	b.job.AssignedTeam = append([]int64{}, ids...)
	b.job.Status = models.DeriveStatus(b.job.AssignedTeam, b.job.AssignedVehicles)
	return b
}

// WithVehicles sets the vehicles and keeps the status consistent with them.
func (b *JobBuilder) WithVehicles(ids ...int64) *JobBuilder {
	b.job.AssignedVehicles = append([]int64{}, ids...)
	b.job.Status = models.DeriveStatus(b.job.AssignedTeam, b.job.AssignedVehicles)
	return b
}

func (b *JobBuilder) WithStatus(s models.JobStatus) *JobBuilder {
	b.job.Status = s
	return b
}

func (b *JobBuilder) Build() models.Job {
	return b.job.Clone()
}

// SnapshotBuilder assembles store snapshots for tests.
type SnapshotBuilder struct {
	snap store.Snapshot
}

func NewSnapshot() *SnapshotBuilder {
	return &SnapshotBuilder{}
}

func (b *SnapshotBuilder) WithWorker(id int64, name string) *SnapshotBuilder {
	b.snap.Workers = append(b.snap.Workers, models.Worker{ID: id, Name: name})
	return b
}

func (b *SnapshotBuilder) WithVehicle(id int64, name string) *SnapshotBuilder {
	b.snap.Vehicles = append(b.snap.Vehicles, models.Vehicle{ID: id, Name: name})
	return b
}

func (b *SnapshotBuilder) WithSite(id int64, name string) *SnapshotBuilder {
	b.snap.Sites = append(b.snap.Sites, models.Site{ID: id, Name: name})
	return b
}

func (b *SnapshotBuilder) WithJob(j models.Job) *SnapshotBuilder {
	b.snap.Jobs = append(b.snap.Jobs, j)
	return b
}

func (b *SnapshotBuilder) Build() store.Snapshot {
	return b.snap
}

// NewStore returns a store restored from the built snapshot.
func (b *SnapshotBuilder) NewStore() *store.Store {
	s := store.New()
	s.Restore(b.snap)
	return s
}
