package scoring

import (
	"fmt"
	"time"

	"taskrank/internal/domain"
)

// Explain produces the human-readable reasons behind a task's score under
// the given strategy. There is always a due-date, importance and effort
// line; a blocking line appears only when the task blocks others, and a
// strategy fit line only when the task plays to the strategy's strengths.
func Explain(t domain.Task, s Strategy, today time.Time) []string {
	t = Sanitize(t)

	reasons := make([]string, 0, 5)
	reasons = append(reasons, dueReason(t, today))
	reasons = append(reasons, importanceReason(t.Importance))
	reasons = append(reasons, effortReason(t.EstimatedHours))

	if n := len(t.Dependencies); n > 0 {
		reasons = append(reasons, fmt.Sprintf("This task is blocking %d other task(s)", n))
	}
	if line, ok := strategyReason(t, s, today); ok {
		reasons = append(reasons, line)
	}

	// unreachable: the first three lines are unconditional
	if len(reasons) == 0 {
		reasons = append(reasons, "Balanced task with no extreme factors")
	}
	return reasons
}

func dueReason(t domain.Task, today time.Time) string {
	if t.DueDate == nil {
		return "No deadline set"
	}
	switch days := DaysUntil(today, *t.DueDate); {
	case days < 0:
		return fmt.Sprintf("Overdue by %d day(s), extremely urgent", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

func importanceReason(importance int) string {
	switch {
	case importance >= 9:
		return "Critical importance"
	case importance >= 7:
		return "High importance"
	case importance >= 5:
		return "Moderate importance"
	case importance >= 3:
		return "Low importance"
	default:
		return "Minimal importance"
	}
}

func effortReason(hours float64) string {
	switch {
	case hours == 0:
		return "No time estimate provided"
	case hours <= 1:
		return "Very quick, under an hour of work"
	case hours <= 3:
		return "Quick win, requires low effort"
	case hours <= 6:
		return "Moderate effort required"
	case hours <= 12:
		return "Large task, requires significant time"
	default:
		return "Very large task, consider breaking it down"
	}
}

func strategyReason(t domain.Task, s Strategy, today time.Time) (string, bool) {
	switch s {
	case StrategyFastestWins:
		if t.EstimatedHours > 0 && t.EstimatedHours <= 3 {
			return "Great pick for fastest wins: quick to knock out", true
		}
	case StrategyHighImpact:
		if t.Importance >= 8 {
			return "Great pick for high impact: delivers major value", true
		}
	case StrategyDeadlineDriven:
		if t.DueDate != nil && DaysUntil(today, *t.DueDate) <= 3 {
			return "Great pick for deadline driven: the due date is close", true
		}
	}
	return "", false
}
