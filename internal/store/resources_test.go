package store_test

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/akyairhashvil/cantieri/internal/testutil"
)

func TestAddWorkerNormalizesName(t *testing.T) {
	s := store.New()
	w, ok := s.AddWorker("  mario rossi ")
	if !ok {
		t.Fatalf("expected worker to be added")
	}
	if w.Name != "MARIO ROSSI" {
		t.Fatalf("expected normalized name, got %q", w.Name)
	}
	if w.ID == 0 {
		t.Fatalf("expected a generated id")
	}
}

func TestAddWorkerIgnoresDuplicatesAndBlanks(t *testing.T) {
	s := testutil.NewSnapshot().WithWorker(1, "CARMINE").NewStore()

	if _, ok := s.AddWorker("carmine"); ok {
		t.Fatalf("expected case-insensitive duplicate to be ignored")
	}
	if _, ok := s.AddWorker("   "); ok {
		t.Fatalf("expected blank name to be ignored")
	}
	workers := s.Workers()
	if len(workers) != 1 || workers[0] != (models.Worker{ID: 1, Name: "CARMINE"}) {
		t.Fatalf("unexpected workers: %+v", workers)
	}
}

func TestDeleteWorkerStripsTeamsOnly(t *testing.T) {
	s := testutil.NewSnapshot().
		WithWorker(1, "A").
		WithWorker(2, "B").
		WithVehicle(1, "same id as worker").
		WithJob(testutil.NewJob().WithID(10).WithTeam(1, 2).WithVehicles(1).Build()).
		WithJob(testutil.NewJob().WithID(11).WithTeam(1).Build()).
		WithJob(testutil.NewJob().WithID(12).WithTeam(2).Build()).
		NewStore()

	s.DeleteWorker(1)

	if _, ok := s.Worker(1); ok {
		t.Fatalf("worker 1 should be gone")
	}
	for _, j := range s.Jobs() {
		if j.HasWorker(1) {
			t.Fatalf("job %d still references worker 1", j.ID)
		}
	}
	j10, _ := s.Job(10)
	if len(j10.AssignedTeam) != 1 || j10.AssignedTeam[0] != 2 {
		t.Fatalf("job 10 team = %v", j10.AssignedTeam)
	}
	if len(j10.AssignedVehicles) != 1 || j10.AssignedVehicles[0] != 1 {
		t.Fatalf("vehicles must be untouched, got %v", j10.AssignedVehicles)
	}
	j12, _ := s.Job(12)
	if len(j12.AssignedTeam) != 1 || j12.AssignedTeam[0] != 2 {
		t.Fatalf("unrelated job changed: %v", j12.AssignedTeam)
	}
}

func TestDeleteWorkerKeepsStatus(t *testing.T) {
	s := testutil.NewSnapshot().
		WithWorker(1, "A").
		WithJob(testutil.NewJob().WithID(10).WithTeam(1).Build()).
		NewStore()

	s.DeleteWorker(1)

	j, _ := s.Job(10)
	if len(j.AssignedTeam) != 0 {
		t.Fatalf("expected empty team, got %v", j.AssignedTeam)
	}
	if j.Status != models.StatusActive {
		t.Fatalf("status is not re-derived on worker deletion, got %q", j.Status)
	}
}

func TestVehicleLifecycle(t *testing.T) {
	s := store.New()
	a := s.AddVehicle("Furgone")
	b := s.AddVehicle("Furgone")
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids")
	}
	if len(s.Vehicles()) != 2 {
		t.Fatalf("vehicles allow duplicate names")
	}
	j := s.AddJob("X", "d", "2025-01-01")
	s.UpdateJobAssignedVehicles(j.ID, []int64{a.ID, b.ID})
	s.UpdateJobAssignedTeam(j.ID, []int64{42})

	s.DeleteVehicle(a.ID)

	got, _ := s.Job(j.ID)
	if len(got.AssignedVehicles) != 1 || got.AssignedVehicles[0] != b.ID {
		t.Fatalf("vehicles = %v", got.AssignedVehicles)
	}
	if len(got.AssignedTeam) != 1 || got.AssignedTeam[0] != 42 {
		t.Fatalf("team must be untouched, got %v", got.AssignedTeam)
	}
	if len(s.Vehicles()) != 1 {
		t.Fatalf("expected one vehicle left")
	}
}

func TestAddSiteUniqueness(t *testing.T) {
	s := store.New()
	if _, ok := s.AddSite("via roma"); !ok {
		t.Fatalf("expected site to be added")
	}
	if _, ok := s.AddSite("VIA Roma "); ok {
		t.Fatalf("expected duplicate site to be ignored")
	}
	if _, ok := s.AddSite(""); ok {
		t.Fatalf("expected blank site to be ignored")
	}
	if len(s.Sites()) != 1 {
		t.Fatalf("expected one site, got %d", len(s.Sites()))
	}
}

func TestDeleteSiteInUse(t *testing.T) {
	s := testutil.NewSnapshot().
		WithSite(4, "X").
		WithJob(testutil.NewJob().WithID(5).WithSite("X").Build()).
		NewStore()
	before := s.Snapshot()

	err := s.DeleteSite(4)
	if !errors.Is(err, store.ErrSiteInUse) {
		t.Fatalf("expected ErrSiteInUse, got %v", err)
	}
	var conflict *store.ConflictError
	if !errors.As(err, &conflict) || conflict.Name != "X" {
		t.Fatalf("expected ConflictError naming the site, got %#v", err)
	}
	after := s.Snapshot()
	if len(after.Sites) != len(before.Sites) || len(after.Jobs) != len(before.Jobs) {
		t.Fatalf("state changed on conflict")
	}
}

func TestDeleteSiteFree(t *testing.T) {
	s := testutil.NewSnapshot().
		WithSite(4, "X").
		WithSite(6, "Y").
		WithJob(testutil.NewJob().WithID(5).WithSite("Y").Build()).
		NewStore()

	if err := s.DeleteSite(4); err != nil {
		t.Fatalf("DeleteSite failed: %v", err)
	}
	if err := s.DeleteSite(999); err != nil {
		t.Fatalf("unknown site should be a no-op, got %v", err)
	}
	sites := s.Sites()
	if len(sites) != 1 || sites[0].ID != 6 {
		t.Fatalf("unexpected sites: %+v", sites)
	}
}

func TestImportsReplaceAndAdvanceIDs(t *testing.T) {
	s := store.New()
	s.AddWorker("old")
	s.ImportWorkers([]models.Worker{{ID: 500, Name: "A"}, {ID: 7, Name: "B"}})
	s.ImportVehicles([]models.Vehicle{{ID: 3, Name: "V"}})
	s.ImportSites([]models.Site{{ID: 900, Name: "S"}})

	if len(s.Workers()) != 2 {
		t.Fatalf("expected import to replace workers")
	}
	w, ok := s.AddWorker("new")
	if !ok {
		t.Fatalf("expected add after import")
	}
	if w.ID <= 900 {
		t.Fatalf("expected id above imported ids, got %d", w.ID)
	}
}
