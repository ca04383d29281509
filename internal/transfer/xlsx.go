package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/akyairhashvil/cantieri/internal/util"
	"github.com/qri-io/jsonschema"
	"github.com/xuri/excelize/v2"
)

// Column names of the spreadsheet databases.
const (
	ColID          = "id"
	ColName        = "name"
	ColSite        = "site"
	ColDescription = "description"
	ColDate        = "date"
	ColStatus      = "status"
	ColTeam        = "team"
	ColVehicles    = "vehicles"
)

var jobColumns = []string{ColID, ColSite, ColDescription, ColDate, ColStatus, ColTeam, ColVehicles}

// ExportResources writes recs as a single-sheet workbook with an id/name header.
func ExportResources(w io.Writer, sheet string, recs []Record) error {
	rows := make([][]any, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []any{r.ID, r.Name})
	}
	return writeWorkbook(w, sheet, []string{ColID, ColName}, rows)
}

// ExportJobs writes the jobs of snap in the layout read by DecodeJobs.
func ExportJobs(w io.Writer, sheet string, snap store.Snapshot) error {
	rows := make([][]any, 0, len(snap.Jobs))
	for _, j := range snap.Jobs {
		rows = append(rows, []any{
			j.ID, j.Site, j.Description, j.Date, j.Status.Label(),
			util.JoinIDs(j.AssignedTeam), util.JoinIDs(j.AssignedVehicles),
		})
	}
	return writeWorkbook(w, sheet, jobColumns, rows)
}

// DecodeResources reads the first sheet of a workbook into records.
// The header must name the id and name columns; other columns are ignored.
func DecodeResources(ctx context.Context, r io.Reader) ([]Record, error) {
	docs, err := readSheet(r, []string{ColID, ColName}, func(cells map[string]string) map[string]any {
		return map[string]any{
			ColID:   parseNumber(cells[ColID]),
			ColName: cells[ColName],
		}
	})
	if err != nil {
		return nil, err
	}
	return decodeDocs[Record](ctx, recordSchema, docs, func(r Record) int64 { return r.ID })
}

// DecodeJobs reads a job sheet. Team and vehicle columns hold comma
// separated ids; a status column, if present, is ignored.
func DecodeJobs(ctx context.Context, r io.Reader) ([]JobRecord, error) {
	docs, err := readSheet(r, []string{ColID, ColSite, ColDate}, func(cells map[string]string) map[string]any {
		return map[string]any{
			ColID:          parseNumber(cells[ColID]),
			ColSite:        cells[ColSite],
			ColDescription: cells[ColDescription],
			ColDate:        strings.TrimSpace(cells[ColDate]),
			ColTeam:        parseList(cells[ColTeam]),
			ColVehicles:    parseList(cells[ColVehicles]),
		}
	})
	if err != nil {
		return nil, err
	}
	recs, err := decodeDocs[JobRecord](ctx, jobSchema, docs, func(r JobRecord) int64 { return r.ID })
	if err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].Status = ""
	}
	return recs, nil
}

type rowDoc struct {
	row int
	doc map[string]any
}

func readSheet(r io.Reader, required []string, build func(map[string]string) map[string]any) ([]rowDoc, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	index := make(map[string]int)
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}
	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var docs []rowDoc
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		cells := make(map[string]string, len(index))
		for col, idx := range index {
			if idx < len(row) {
				cells[col] = row[idx]
			}
		}
		docs = append(docs, rowDoc{row: i + 2, doc: build(cells)})
	}
	if len(docs) == 0 {
		return nil, ErrEmptySheet
	}
	return docs, nil
}

func decodeDocs[T any](ctx context.Context, schema *jsonschema.Schema, docs []rowDoc, id func(T) int64) ([]T, error) {
	out := make([]T, 0, len(docs))
	seen := make(map[int64]int, len(docs))
	for _, d := range docs {
		raw, err := json.Marshal(d.doc)
		if err != nil {
			return nil, &RowError{Row: d.row, Err: err}
		}
		problems, err := validate(ctx, schema, raw)
		if err != nil {
			return nil, err
		}
		if len(problems) > 0 {
			return nil, &RowError{Row: d.row, Column: problems[0].Field, Err: errors.New(problems[0].Message)}
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, &RowError{Row: d.row, Err: err}
		}
		if first, dup := seen[id(rec)]; dup {
			return nil, &RowError{Row: d.row, Column: ColID, Err: fmt.Errorf("%w (già presente alla riga %d)", ErrDuplicateID, first)}
		}
		seen[id(rec)] = d.row
		out = append(out, rec)
	}
	return out, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseNumber returns an int64 for whole numbers and the trimmed text
// otherwise, leaving the type check to the schema.
func parseNumber(raw string) any {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return int64(f)
	}
	return raw
}

func parseList(raw string) []any {
	out := []any{}
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		out = append(out, parseNumber(part))
	}
	return out
}

func writeWorkbook(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
