package scoring

import (
	"math"
	"time"

	"taskrank/internal/domain"
)

// noDeadlineUrgency is the neutral urgency for tasks without a due date.
const noDeadlineUrgency = 3.0

// UrgencyScore rates how soon a task is due on a 0..10 scale relative to
// today. Overdue tasks escalate past the scale but are capped at 10.
func UrgencyScore(t domain.Task, today time.Time) float64 {
	if t.DueDate == nil {
		return noDeadlineUrgency
	}

	daysLeft := DaysUntil(today, *t.DueDate)
	switch {
	case daysLeft < 0:
		overdue := -daysLeft
		if overdue >= 7 {
			return 10.0
		}
		return math.Min(10, 10+0.1*float64(overdue))
	case daysLeft == 0:
		return 10.0
	case daysLeft == 1:
		return 9.0
	case daysLeft <= 3:
		return 8.0
	case daysLeft <= 7:
		return 6.0
	case daysLeft <= 14:
		return 4.0
	case daysLeft <= 30:
		return 2.0
	default:
		return 1.0
	}
}

// EffortScore rates a task's size inversely on a 0..10 scale: quick tasks
// score high. Zero hours means no estimate and scores neutral.
func EffortScore(t domain.Task) float64 {
	h := t.EstimatedHours
	switch {
	case h == 0:
		return 5.0
	case h <= 1:
		return 10.0
	case h <= 3:
		return 8.0
	case h <= 6:
		return 6.0
	case h <= 12:
		return 4.0
	default:
		return 2.0
	}
}

// DependencyScore rates how many other tasks this one blocks on a 0..10
// scale, saturating at four.
func DependencyScore(t domain.Task) float64 {
	switch n := len(t.Dependencies); {
	case n == 0:
		return 0.0
	case n == 1:
		return 3.0
	case n == 2:
		return 6.0
	case n == 3:
		return 8.0
	default:
		return 10.0
	}
}

// DaysUntil returns the whole calendar days from today until due. Both
// instants are truncated to their UTC date first so time-of-day never
// shifts the result.
func DaysUntil(today, due time.Time) int {
	return int(truncateToDay(due).Sub(truncateToDay(today)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
