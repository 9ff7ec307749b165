// Package report renders a scored task list as a downloadable document.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"taskrank/internal/domain"
)

var ErrUnknownFormat = errors.New("unknown report format")

const dateLayout = "2006-01-02"

// Exporter turns scored tasks into json, csv or pdf payloads.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// Export renders the tasks in the requested format (empty means json) and
// returns the payload together with its content type.
func (e *Exporter) Export(tasks []domain.ScoredTask, format string) ([]byte, string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		b, err := json.MarshalIndent(toRows(tasks), "", "  ")
		if err != nil {
			return nil, "", err
		}
		return b, "application/json", nil
	case "csv":
		return exportCSV(tasks)
	case "pdf":
		return exportPDF(tasks)
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

type row struct {
	Title          string   `json:"title"`
	DueDate        string   `json:"due_date,omitempty"`
	EstimatedHours float64  `json:"estimated_hours"`
	Importance     int      `json:"importance"`
	Dependencies   []string `json:"dependencies"`
	Score          float64  `json:"score"`
	Reasons        []string `json:"reasons"`
}

func toRows(tasks []domain.ScoredTask) []row {
	rows := make([]row, 0, len(tasks))
	for _, t := range tasks {
		r := row{
			Title:          t.Title,
			EstimatedHours: t.EstimatedHours,
			Importance:     t.Importance,
			Dependencies:   t.Dependencies,
			Score:          t.Score,
			Reasons:        t.Reasons,
		}
		if t.DueDate != nil {
			r.DueDate = t.DueDate.Format(dateLayout)
		}
		rows = append(rows, r)
	}
	return rows
}

func exportCSV(tasks []domain.ScoredTask) ([]byte, string, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"rank", "title", "due_date", "estimated_hours", "importance", "dependencies", "score", "reasons"}); err != nil {
		return nil, "", err
	}
	for i, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format(dateLayout)
		}
		rec := []string{
			strconv.Itoa(i + 1),
			t.Title,
			due,
			strconv.FormatFloat(t.EstimatedHours, 'f', -1, 64),
			strconv.Itoa(t.Importance),
			strings.Join(t.Dependencies, "; "),
			fmt.Sprintf("%.2f", t.Score),
			strings.Join(t.Reasons, "; "),
		}
		if err := w.Write(rec); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return b.Bytes(), "text/csv", nil
}

func exportPDF(tasks []domain.ScoredTask) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Priority Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)

	for i, t := range tasks {
		due := "no deadline"
		if t.DueDate != nil {
			due = "due " + t.DueDate.Format(dateLayout)
		}
		line := fmt.Sprintf("%d. %s (score %.2f, %s)", i+1, t.Title, t.Score, due)
		pdf.MultiCell(0, 6, line, "0", "L", false)
		for _, reason := range t.Reasons {
			pdf.MultiCell(0, 5, "   - "+reason, "0", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "application/pdf", nil
}
