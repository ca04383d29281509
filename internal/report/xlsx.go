package report

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/xuri/excelize/v2"
)

var (
	programColumns = []string{"Cantiere", "Descrizione", "Stato", "Personale Assegnato", "Mezzi Assegnati", "Data"}
	journalColumns = []string{"Cantiere", "Data", "Descrizione", "Stato", "Personale Assegnato", "Mezzi Assegnati"}
)

// ProgramXLSX writes the jobs scheduled on date as a spreadsheet.
func ProgramXLSX(w io.Writer, snap store.Snapshot, date string) error {
	jobs := snap.JobsOn(date)
	rows := make([][]any, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []any{j.Site, j.Description, j.Status.Label(), teamText(snap, j), vehicleText(snap, j), j.Date})
	}
	return writeSheet(w, config.SheetProgram, programColumns, rows)
}

// JournalXLSX writes every job, in store order.
func JournalXLSX(w io.Writer, snap store.Snapshot) error {
	rows := make([][]any, 0, len(snap.Jobs))
	for _, j := range snap.Jobs {
		rows = append(rows, []any{j.Site, j.Date, j.Description, j.Status.Label(), teamText(snap, j), vehicleText(snap, j)})
	}
	return writeSheet(w, config.SheetJournal, journalColumns, rows)
}

func writeSheet(w io.Writer, sheet string, header []string, rows [][]any) error {
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
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 24); err != nil {
		return fmt.Errorf("column width: %w", err)
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
