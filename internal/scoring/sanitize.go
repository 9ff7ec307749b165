package scoring

import (
	"math"
	"strconv"
	"strings"
	"time"

	"taskrank/internal/domain"
)

// UntitledTask is the title given to tasks that arrive without one.
const UntitledTask = "Untitled Task"

const defaultImportance = 5

// Sanitize normalizes a task into its valid form: trimmed non-empty title,
// non-negative hours, importance in [1,10], dependency entries trimmed with
// blanks dropped. It is total and idempotent; the input is never mutated.
func Sanitize(t domain.Task) domain.Task {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = UntitledTask
	}

	hours := t.EstimatedHours
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		hours = 0
	}

	// importance 0 is the unset zero value, not a caller choice
	importance := t.Importance
	switch {
	case importance == 0:
		importance = defaultImportance
	case importance < 1:
		importance = 1
	case importance > 10:
		importance = 10
	}

	deps := make([]string, 0, len(t.Dependencies))
	for _, d := range t.Dependencies {
		d = strings.TrimSpace(d)
		if d != "" {
			deps = append(deps, d)
		}
	}

	var due *time.Time
	if t.DueDate != nil {
		d := *t.DueDate
		due = &d
	}

	return domain.Task{
		Title:          title,
		DueDate:        due,
		EstimatedHours: hours,
		Importance:     importance,
		Dependencies:   deps,
	}
}

// FromRecord builds a sanitized task from a loosely typed record, coercing
// each field on a best-effort basis. Unusable values fall back to the
// sanitizer defaults; the function never fails. Due dates are accepted only
// as time.Time values, string parsing belongs to the deserializer.
func FromRecord(rec map[string]any) domain.Task {
	var t domain.Task

	if v, ok := rec["title"].(string); ok {
		t.Title = v
	}

	switch v := rec["due_date"].(type) {
	case time.Time:
		t.DueDate = &v
	case *time.Time:
		if v != nil {
			d := *v
			t.DueDate = &d
		}
	}

	t.EstimatedHours = coerceFloat(rec["estimated_hours"])
	t.Importance = coerceInt(rec["importance"], defaultImportance)
	t.Dependencies = coerceStrings(rec["dependencies"])

	return Sanitize(t)
}

func coerceFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceInt(v any, fallback int) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
	case float32:
		return int(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return fallback
		}
		return n
	default:
		return fallback
	}
}

func coerceStrings(v any) []string {
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
