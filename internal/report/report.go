// Package report renders the work program and the site journal as PDF and
// XLSX documents.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/akyairhashvil/cantieri/internal/store"
)

// WriteFile creates dir/name and fills it with render. A failed render
// leaves no partial file behind.
func WriteFile(dir, name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return path, nil
}

// DisplayDate turns a stored YYYY-MM-DD date into dd/mm/yyyy. Unparseable
// input is returned unchanged.
func DisplayDate(date string) string {
	t, err := time.Parse(config.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(config.DisplayDateLayout)
}

func teamText(snap store.Snapshot, j models.Job) string {
	return strings.Join(snap.TeamNames(j), ", ")
}

func vehicleText(snap store.Snapshot, j models.Job) string {
	return strings.Join(snap.VehicleNames(j), ", ")
}

// byDate returns the jobs ordered by ascending date, keeping insertion
// order for jobs on the same day.
func byDate(jobs []models.Job) []models.Job {
	out := slices.Clone(jobs)
	slices.SortStableFunc(out, func(a, b models.Job) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}
