package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/presenter"
	"github.com/go-pdf/fpdf"
)

// ExportLapReport writes a PDF lap table for snap into dir and returns the
// absolute file path.
func ExportLapReport(dir string, snap models.Snapshot, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("laps_%s.pdf", at.Format("20060102_150405")))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lap Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Lap Report: %s", at.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	stats := presenter.LapStatistics(snap.Laps)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Elapsed: %s (%s)", presenter.FormatTime(snap.Elapsed), snap.State))
	pdf.Ln(7)
	pdf.Cell(0, 8, presenter.LapCountLabel(stats.Count))
	pdf.Ln(7)
	if stats.HasBest {
		pdf.Cell(0, 8, "Best split: "+presenter.FormatTime(stats.Best))
		pdf.Ln(7)
	}
	if stats.HasWorst {
		pdf.Cell(0, 8, "Worst split: "+presenter.FormatTime(stats.Worst))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	// Table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(30, 8, "Lap", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 8, "Split", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for _, row := range presenter.RenderedLaps(snap.Laps) {
		mark := ""
		switch {
		case row.IsBest:
			mark = "best"
		case row.IsWorst:
			mark = "worst"
		}
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", row.Number), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 8, row.Total, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 8, "+"+row.Split, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, mark, "1", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
