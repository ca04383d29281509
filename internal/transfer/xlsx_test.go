package transfer

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	return &buf
}

func TestDecodeResources_Valid(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{" ID ", "Name", "note"},
		{1, "ROSSI MARIO", "x"},
		{},
		{"2", "BIANCHI LUCA"},
	})
	recs, err := DecodeResources(context.Background(), buf)
	if err != nil {
		t.Fatalf("DecodeResources failed: %v", err)
	}
	want := []Record{{ID: 1, Name: "ROSSI MARIO"}, {ID: 2, Name: "BIANCHI LUCA"}}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("expected %+v, got %+v", want, recs)
	}
}

func TestDecodeResources_ColumnOrderIgnored(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"name", "id"},
		{"VIA ROMA", 14},
	})
	recs, err := DecodeResources(context.Background(), buf)
	if err != nil {
		t.Fatalf("DecodeResources failed: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != 14 || recs[0].Name != "VIA ROMA" {
		t.Fatalf("unexpected records %+v", recs)
	}
}

func TestDecodeResources_HeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]any{{"id", "name"}})
	_, err := DecodeResources(context.Background(), buf)
	if !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("expected ErrEmptySheet, got %v", err)
	}
}

func TestDecodeResources_MissingColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"id", "nome"},
		{1, "ROSSI"},
	})
	_, err := DecodeResources(context.Background(), buf)
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
}

func TestDecodeResources_RowErrors(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]any
		row    int
		column string
	}{
		{
			name:   "non numeric id",
			rows:   [][]any{{"id", "name"}, {1, "A"}, {"abc", "B"}},
			row:    3,
			column: ColID,
		},
		{
			name:   "blank name",
			rows:   [][]any{{"id", "name"}, {1, "A"}, {2, "   "}},
			row:    3,
			column: ColName,
		},
		{
			name:   "duplicate id",
			rows:   [][]any{{"id", "name"}, {1, "A"}, {1, "B"}},
			row:    3,
			column: ColID,
		},
		{
			name:   "zero id",
			rows:   [][]any{{"id", "name"}, {0, "A"}},
			row:    2,
			column: ColID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := DecodeResources(context.Background(), buildWorkbook(t, tt.rows))
			if recs != nil {
				t.Fatalf("expected no records on error, got %+v", recs)
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected RowError, got %v", err)
			}
			if rowErr.Row != tt.row || rowErr.Column != tt.column {
				t.Fatalf("expected row %d column %q, got row %d column %q (%v)", tt.row, tt.column, rowErr.Row, rowErr.Column, err)
			}
		})
	}
}

func TestDecodeResources_NotAWorkbook(t *testing.T) {
	if _, err := DecodeResources(context.Background(), bytes.NewBufferString("id,name\n1,A\n")); err == nil {
		t.Fatalf("expected error for csv input")
	}
}

func TestResourcesRoundTrip(t *testing.T) {
	s := store.New()
	s.SeedDemo("2025-03-10")
	recs := WorkerRecords(s.Workers())

	var buf bytes.Buffer
	if err := ExportResources(&buf, "Personale", recs); err != nil {
		t.Fatalf("ExportResources failed: %v", err)
	}
	got, err := DecodeResources(context.Background(), &buf)
	if err != nil {
		t.Fatalf("DecodeResources failed: %v", err)
	}
	if !reflect.DeepEqual(got, recs) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, recs)
	}

	s.ImportWorkers(Workers(got))
	if !reflect.DeepEqual(s.Workers(), Workers(recs)) {
		t.Fatalf("import changed workers: %+v", s.Workers())
	}
}

func TestJobsRoundTrip(t *testing.T) {
	s := store.New()
	s.SeedDemo("2025-03-10")
	planned := s.AddJob("VIA VERDI", "Sopralluogo", "2025-03-12")
	snap := s.Snapshot()

	var buf bytes.Buffer
	if err := ExportJobs(&buf, "Lavori", snap); err != nil {
		t.Fatalf("ExportJobs failed: %v", err)
	}
	recs, err := DecodeJobs(context.Background(), &buf)
	if err != nil {
		t.Fatalf("DecodeJobs failed: %v", err)
	}
	jobs := Jobs(recs)
	want := make([]models.Job, len(snap.Jobs))
	for i, j := range snap.Jobs {
		want[i] = j.Clone()
		want[i].Status = models.DeriveStatus(j.AssignedTeam, j.AssignedVehicles)
	}
	if !reflect.DeepEqual(jobs, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", jobs, want)
	}
	if jobs[3].Status != models.StatusActive {
		t.Fatalf("sheet import derives status from the team, got %s", jobs[3].Status)
	}
	last := jobs[len(jobs)-1]
	if last.ID != planned.ID || len(last.AssignedTeam) != 0 || last.Status != planned.Status {
		t.Fatalf("unexpected planned job %+v", last)
	}
}

func TestDecodeJobs_DerivesStatus(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"id", "site", "description", "date", "status", "team", "vehicles"},
		{30, "VIA ROMA", "Getto", "2025-04-01", "Pianificato", "1, 2", ""},
		{31, "VIA ROMA", "", "2025-04-02", "Attivo"},
	})
	recs, err := DecodeJobs(context.Background(), buf)
	if err != nil {
		t.Fatalf("DecodeJobs failed: %v", err)
	}
	jobs := Jobs(recs)
	if jobs[0].Status != "Active" || !reflect.DeepEqual(jobs[0].AssignedTeam, []int64{1, 2}) {
		t.Fatalf("expected active job with team, got %+v", jobs[0])
	}
	if jobs[1].Status != "Planned" || jobs[1].AssignedVehicles == nil {
		t.Fatalf("expected planned job with empty lists, got %+v", jobs[1])
	}
}

func TestDecodeJobs_BadDate(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"id", "site", "date"},
		{30, "VIA ROMA", "01/04/2025"},
	})
	_, err := DecodeJobs(context.Background(), buf)
	var rowErr *RowError
	if !errors.As(err, &rowErr) || rowErr.Column != ColDate || rowErr.Row != 2 {
		t.Fatalf("expected date RowError on row 2, got %v", err)
	}
}

func TestDecodeJobs_BadTeamID(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"id", "site", "date", "team"},
		{30, "VIA ROMA", "2025-04-01", "1,x"},
	})
	_, err := DecodeJobs(context.Background(), buf)
	var rowErr *RowError
	if !errors.As(err, &rowErr) || rowErr.Column != ColTeam {
		t.Fatalf("expected team RowError, got %v", err)
	}
}

func TestRowErrorMessage(t *testing.T) {
	err := &RowError{Row: 4, Column: "id", Err: ErrDuplicateID}
	if err.Error() != "riga 4, colonna 'id': id duplicato" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected RowError to unwrap")
	}
}
