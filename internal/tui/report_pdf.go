package tui

import (
	"fmt"
	"time"

	"github.com/avelikan/tally/internal/models"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes a point-in-time snapshot of the task list,
// with elapsed times derived at now, to path.
func GeneratePDFReport(tasks []models.Task, now time.Time, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Task Timers: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	total := 0
	for _, task := range tasks {
		elapsed := task.Elapsed(now)
		total += elapsed
		state := "paused"
		if task.Running {
			state = "running"
		}
		pdf.Cell(0, 8, fmt.Sprintf("- %s: %s (%s)", task.Name, formatSeconds(elapsed), state))
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total tracked: %s across %d tasks", formatSeconds(total), len(tasks)))

	return pdf.OutputFileAndClose(path)
}
