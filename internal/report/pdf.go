package report

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Arial"
	pdfLineHeight = 5.0
	pdfPageBottom = 280.0
)

type rgb struct{ r, g, b int }

var (
	programHeaderFill = rgb{22, 160, 133}
	journalHeaderFill = rgb{41, 128, 185}
)

type pdfTable struct {
	header []string
	widths []float64
	fill   rgb
}

var (
	programTable = pdfTable{
		header: []string{"Cantiere", "Descrizione", "Stato", "Personale", "Mezzi"},
		widths: []float64{40, 60, 20, 40, 30},
		fill:   programHeaderFill,
	}
	journalTable = pdfTable{
		header: []string{"Data", "Lavorazione", "Personale", "Mezzi"},
		widths: []float64{22, 88, 45, 35},
		fill:   journalHeaderFill,
	}
)

// ProgramPDF renders the jobs scheduled on date.
func ProgramPDF(w io.Writer, snap store.Snapshot, date string) error {
	pdf := newPDF()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(pdfFont, "B", 14)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Programma Lavori - %s", DisplayDate(date))))
	pdf.Ln(12)

	jobs := snap.JobsOn(date)
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{j.Site, j.Description, j.Status.Label(), teamText(snap, j), vehicleText(snap, j)})
	}
	if len(rows) == 0 {
		pdf.SetFont(pdfFont, "I", 10)
		pdf.Cell(0, 8, tr("Nessun lavoro programmato per questa data."))
		pdf.Ln(8)
	} else {
		programTable.render(pdf, tr, rows)
	}
	return output(pdf, w)
}

// JournalPDF renders every job grouped by site, each group sorted by date.
func JournalPDF(w io.Writer, snap store.Snapshot) error {
	pdf := newPDF()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(pdfFont, "B", 14)
	pdf.Cell(0, 10, tr("Giornale dei Lavori Completo"))
	pdf.Ln(14)

	for _, group := range snap.JournalBySite() {
		if pdf.GetY() > pdfPageBottom-20 {
			pdf.AddPage()
		}
		pdf.SetFont(pdfFont, "B", 11)
		pdf.Cell(0, 7, tr(group.Site))
		pdf.Ln(8)

		jobs := byDate(group.Jobs)
		rows := make([][]string, 0, len(jobs))
		for _, j := range jobs {
			rows = append(rows, []string{DisplayDate(j.Date), j.Description, teamText(snap, j), vehicleText(snap, j)})
		}
		journalTable.render(pdf, tr, rows)
		pdf.Ln(6)
	}
	return output(pdf, w)
}

func newPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()
	return pdf
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (t pdfTable) render(pdf *fpdf.Fpdf, tr func(string) string, rows [][]string) {
	t.renderHeader(pdf, tr)
	pdf.SetFont(pdfFont, "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		lines := make([][]string, len(row))
		height := pdfLineHeight
		for i, cell := range row {
			lines[i] = splitCell(pdf, tr(cell), t.widths[i]-2)
			if h := float64(len(lines[i])) * pdfLineHeight; h > height {
				height = h
			}
		}
		if pdf.GetY()+height > pdfPageBottom {
			pdf.AddPage()
			t.renderHeader(pdf, tr)
			pdf.SetFont(pdfFont, "", 8)
			pdf.SetTextColor(0, 0, 0)
		}
		x, y := pdf.GetXY()
		for i := range row {
			pdf.Rect(x, y, t.widths[i], height, "D")
			for n, line := range lines[i] {
				pdf.SetXY(x+1, y+float64(n)*pdfLineHeight)
				pdf.CellFormat(t.widths[i]-2, pdfLineHeight, line, "", 0, "L", false, 0, "")
			}
			x += t.widths[i]
		}
		left, _, _, _ := pdf.GetMargins()
		pdf.SetXY(left, y+height)
	}
}

func (t pdfTable) renderHeader(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont(pdfFont, "B", 9)
	pdf.SetFillColor(t.fill.r, t.fill.g, t.fill.b)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range t.header {
		pdf.CellFormat(t.widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func splitCell(pdf *fpdf.Fpdf, text string, width float64) []string {
	if text == "" {
		return []string{""}
	}
	raw := pdf.SplitLines([]byte(text), width)
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = string(l)
	}
	return out
}
