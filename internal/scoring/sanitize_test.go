package scoring

import (
	"math"
	"reflect"
	"testing"
	"time"

	"taskrank/internal/domain"
)

func TestSanitize_TitleDefaults(t *testing.T) {
	got := Sanitize(domain.Task{Title: "   "})
	if got.Title != UntitledTask {
		t.Fatalf("Sanitize() title = %q, want %q", got.Title, UntitledTask)
	}

	got = Sanitize(domain.Task{Title: "  Ship it  "})
	if got.Title != "Ship it" {
		t.Fatalf("Sanitize() title = %q, want %q", got.Title, "Ship it")
	}
}

func TestSanitize_Hours(t *testing.T) {
	if got := Sanitize(domain.Task{EstimatedHours: -4}); got.EstimatedHours != 0 {
		t.Fatalf("Sanitize() hours = %v, want 0", got.EstimatedHours)
	}
	if got := Sanitize(domain.Task{EstimatedHours: math.NaN()}); got.EstimatedHours != 0 {
		t.Fatalf("Sanitize() hours = %v, want 0", got.EstimatedHours)
	}
	if got := Sanitize(domain.Task{EstimatedHours: 2.5}); got.EstimatedHours != 2.5 {
		t.Fatalf("Sanitize() hours = %v, want 2.5", got.EstimatedHours)
	}
}

func TestSanitize_ImportanceClamp(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 5}, // unset
		{-3, 1},
		{1, 1},
		{7, 7},
		{10, 10},
		{42, 10},
	}
	for _, c := range cases {
		if got := Sanitize(domain.Task{Importance: c.in}); got.Importance != c.want {
			t.Fatalf("Sanitize(importance=%d) = %d, want %d", c.in, got.Importance, c.want)
		}
	}
}

func TestSanitize_Dependencies(t *testing.T) {
	got := Sanitize(domain.Task{Dependencies: []string{" A ", "", "B", "   "}})
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got.Dependencies, want) {
		t.Fatalf("Sanitize() deps = %v, want %v", got.Dependencies, want)
	}

	got = Sanitize(domain.Task{})
	if got.Dependencies == nil || len(got.Dependencies) != 0 {
		t.Fatalf("Sanitize() deps = %v, want empty non-nil slice", got.Dependencies)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	in := domain.Task{
		Title:          "  write report ",
		DueDate:        &due,
		EstimatedHours: -1,
		Importance:     15,
		Dependencies:   []string{"a", " ", "b "},
	}

	once := Sanitize(in)
	twice := Sanitize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("Sanitize(Sanitize(t)) = %+v, want %+v", twice, once)
	}
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	in := domain.Task{Title: " x ", Importance: 99}
	_ = Sanitize(in)
	if in.Title != " x " || in.Importance != 99 {
		t.Fatalf("Sanitize() mutated its input: %+v", in)
	}
}

func TestFromRecord_Defaults(t *testing.T) {
	got := FromRecord(map[string]any{})
	if got.Title != UntitledTask {
		t.Fatalf("FromRecord() title = %q, want %q", got.Title, UntitledTask)
	}
	if got.Importance != 5 {
		t.Fatalf("FromRecord() importance = %d, want 5", got.Importance)
	}
	if got.DueDate != nil {
		t.Fatalf("FromRecord() due = %v, want nil", got.DueDate)
	}
	if DependencyScore(got) != 0.0 {
		t.Fatalf("DependencyScore() = %v, want 0.0", DependencyScore(got))
	}
}

func TestFromRecord_Coercion(t *testing.T) {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	got := FromRecord(map[string]any{
		"title":           "T",
		"due_date":        due,
		"estimated_hours": "2.5",
		"importance":      float64(7), // json numbers decode as float64
		"dependencies":    []any{"a", 3, "", "b"},
	})

	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("FromRecord() due = %v, want %v", got.DueDate, due)
	}
	if got.EstimatedHours != 2.5 {
		t.Fatalf("FromRecord() hours = %v, want 2.5", got.EstimatedHours)
	}
	if got.Importance != 7 {
		t.Fatalf("FromRecord() importance = %d, want 7", got.Importance)
	}
	if !reflect.DeepEqual(got.Dependencies, []string{"a", "b"}) {
		t.Fatalf("FromRecord() deps = %v, want [a b]", got.Dependencies)
	}
}

func TestFromRecord_GarbageFields(t *testing.T) {
	got := FromRecord(map[string]any{
		"title":           42,
		"estimated_hours": "lots",
		"importance":      "high",
		"dependencies":    "not-a-list",
	})

	if got.Title != UntitledTask {
		t.Fatalf("FromRecord() title = %q, want %q", got.Title, UntitledTask)
	}
	if got.EstimatedHours != 0 {
		t.Fatalf("FromRecord() hours = %v, want 0", got.EstimatedHours)
	}
	if got.Importance != 5 {
		t.Fatalf("FromRecord() importance = %d, want 5", got.Importance)
	}
	if len(got.Dependencies) != 0 {
		t.Fatalf("FromRecord() deps = %v, want empty", got.Dependencies)
	}
}
