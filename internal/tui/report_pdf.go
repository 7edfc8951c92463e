package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes the intervals completed on day to dir and
// returns the path of the new file.
func GeneratePDFReport(ctx context.Context, history History, day time.Time, dir string) (string, error) {
	sessions, err := history.GetSessionsForDay(ctx, day)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Pomodoro Report: %s", day.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "  - No intervals completed.")
		pdf.Ln(8)
	}

	counts := make(map[models.Mode]int)
	totals := make(map[models.Mode]time.Duration)
	for _, s := range sessions {
		d := time.Duration(s.DurationSeconds) * time.Second
		counts[s.Mode]++
		totals[s.Mode] += d
		line := fmt.Sprintf("  %s - %s  %s (%s)",
			s.StartedAt.In(day.Location()).Format("15:04"),
			s.CompletedAt.In(day.Location()).Format("15:04"),
			s.Mode.Label(), FormatDuration(d))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	// Summary
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, mode := range models.Modes {
		pdf.Cell(0, 8, fmt.Sprintf("  %s: %d completed, %s", mode.Label(), counts[mode], FormatDuration(totals[mode])))
		pdf.Ln(6)
	}

	path := filepath.Join(dir, fmt.Sprintf("pomodoro_report_%s.pdf", day.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
