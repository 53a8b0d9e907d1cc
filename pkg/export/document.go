package export

import (
	"bytes"
	"fmt"
	"strconv"

	"codeberg.org/go-pdf/fpdf"

	"github.com/eeris-project/eeris-cli/pkg/session"
)

// Column widths in millimeters; the User column is only present for
// elevated roles.
const (
	numColWidth  = 10
	userColWidth = 28
	baseColWidth = 30
	rowHeight    = 8
)

// buildDocument writes the two-page report: the history table followed
// by the category chart.
func buildDocument(path string, entries []Entry, role session.Role, chartPNG []byte) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Expense History", false)

	writeHistoryTable(pdf, entries, role)

	if err := embedChart(pdf, chartPNG); err != nil {
		return err
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeHistoryTable(pdf *fpdf.Fpdf, entries []Entry, role session.Role) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Expense History", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	columns := Columns(role)
	widths := columnWidths(columns)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, col := range columns {
		pdf.CellFormat(widths[i], rowHeight, col, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for n, e := range entries {
		for i, cell := range rowCells(n+1, e, role) {
			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func columnWidths(columns []string) []float64 {
	widths := make([]float64, len(columns))
	for i, col := range columns {
		switch col {
		case "#":
			widths[i] = numColWidth
		case "User":
			widths[i] = userColWidth
		default:
			widths[i] = baseColWidth
		}
	}
	return widths
}

// rowCells formats one entry in column order, mirroring Columns.
func rowCells(rowNum int, e Entry, role session.Role) []string {
	cells := []string{strconv.Itoa(rowNum)}
	if role == session.RoleSupervisor || role == session.RoleAdmin {
		cells = append(cells, e.UserName)
	}
	return append(cells, e.Store, e.Category, fmt.Sprintf("$%.2f", e.Amount), e.Status, e.UploadedAt)
}

func embedChart(pdf *fpdf.Fpdf, chartPNG []byte) error {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Spending by Category", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	opts := fpdf.ImageOptions{ImageType: "png", ReadDpi: true}
	pdf.RegisterImageOptionsReader("category-chart", opts, bytes.NewReader(chartPNG))
	pdf.ImageOptions("category-chart", 15, pdf.GetY(), 180, 0, false, opts, 0, "")
	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrEmbedChart, pdf.Error())
	}
	return nil
}
