package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"taskrank/internal/domain"
)

func scoredFixture() []domain.ScoredTask {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	return []domain.ScoredTask{
		{
			Task: domain.Task{
				Title:          "Ship release",
				DueDate:        &due,
				EstimatedHours: 2,
				Importance:     9,
				Dependencies:   []string{"Write changelog"},
			},
			Score:   8.15,
			Reasons: []string{"Due in 5 days", "Critical importance"},
		},
		{
			Task:    domain.Task{Title: "Tidy backlog", Importance: 3},
			Score:   2.4,
			Reasons: []string{"No deadline set"},
		},
	}
}

func TestExport_JSON(t *testing.T) {
	b, contentType, err := NewExporter().Export(scoredFixture(), "json")
	if err != nil {
		t.Fatalf("Export() err=%v, want nil", err)
	}
	if contentType != "application/json" {
		t.Fatalf("content type=%q, want application/json", contentType)
	}

	var rows []map[string]any
	if err := json.Unmarshal(b, &rows); err != nil {
		t.Fatalf("unmarshal err=%v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows len=%d, want 2", len(rows))
	}
	if rows[0]["title"] != "Ship release" {
		t.Fatalf("rows[0].title=%v, want Ship release", rows[0]["title"])
	}
	if rows[0]["due_date"] != "2026-03-20" {
		t.Fatalf("rows[0].due_date=%v, want 2026-03-20", rows[0]["due_date"])
	}
	if _, ok := rows[1]["due_date"]; ok {
		t.Fatalf("rows[1] has due_date, want omitted when no deadline")
	}
}

func TestExport_EmptyFormatIsJSON(t *testing.T) {
	_, contentType, err := NewExporter().Export(scoredFixture(), "")
	if err != nil {
		t.Fatalf("Export() err=%v, want nil", err)
	}
	if contentType != "application/json" {
		t.Fatalf("content type=%q, want application/json", contentType)
	}
}

func TestExport_CSV(t *testing.T) {
	b, contentType, err := NewExporter().Export(scoredFixture(), "csv")
	if err != nil {
		t.Fatalf("Export() err=%v, want nil", err)
	}
	if contentType != "text/csv" {
		t.Fatalf("content type=%q, want text/csv", contentType)
	}

	records, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil {
		t.Fatalf("csv read err=%v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records len=%d, want header plus 2 rows", len(records))
	}
	if records[0][0] != "rank" || records[0][1] != "title" {
		t.Fatalf("header=%v, want rank,title,...", records[0])
	}
	if records[1][0] != "1" || records[2][0] != "2" {
		t.Fatalf("ranks=%s,%s, want 1,2", records[1][0], records[2][0])
	}
	if records[1][6] != "8.15" {
		t.Fatalf("score cell=%q, want 8.15", records[1][6])
	}
	if !strings.Contains(records[1][7], "; ") {
		t.Fatalf("reasons cell=%q, want semicolon-joined reasons", records[1][7])
	}
}

func TestExport_PDF(t *testing.T) {
	b, contentType, err := NewExporter().Export(scoredFixture(), "pdf")
	if err != nil {
		t.Fatalf("Export() err=%v, want nil", err)
	}
	if contentType != "application/pdf" {
		t.Fatalf("content type=%q, want application/pdf", contentType)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatalf("payload does not start with %%PDF magic")
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, _, err := NewExporter().Export(scoredFixture(), "xml")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Export() err=%v, want ErrUnknownFormat", err)
	}
}

func TestExport_FormatCaseInsensitive(t *testing.T) {
	_, contentType, err := NewExporter().Export(scoredFixture(), " CSV ")
	if err != nil {
		t.Fatalf("Export() err=%v, want nil", err)
	}
	if contentType != "text/csv" {
		t.Fatalf("content type=%q, want text/csv", contentType)
	}
}
