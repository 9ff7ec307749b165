package scoring

import (
	"math"
	"strings"
	"time"

	"taskrank/internal/domain"
)

// Strategy names a fixed weighting formula that folds the component scores
// and raw importance into one priority number.
type Strategy string

const (
	StrategySmartBalance   Strategy = "smart_balance"
	StrategyFastestWins    Strategy = "fastest_wins"
	StrategyHighImpact     Strategy = "high_impact"
	StrategyDeadlineDriven Strategy = "deadline_driven"
)

// DefaultStrategy is used when the caller names no strategy at all.
const DefaultStrategy = StrategySmartBalance

// ParseStrategy maps a caller-supplied name onto the closed strategy set.
// Unknown names fall back to smart_balance rather than erroring; callers
// rely on that leniency.
func ParseStrategy(name string) Strategy {
	switch s := Strategy(strings.TrimSpace(name)); s {
	case StrategySmartBalance, StrategyFastestWins, StrategyHighImpact, StrategyDeadlineDriven:
		return s
	default:
		return DefaultStrategy
	}
}

// Weights are the linear coefficients applied to the urgency, importance,
// effort and dependency factors.
type Weights struct {
	Urgency      float64
	Importance   float64
	Effort       float64
	Dependencies float64
}

// Weights returns the fixed coefficient table for the strategy.
func (s Strategy) Weights() Weights {
	switch s {
	case StrategyFastestWins:
		return Weights{Urgency: 0.10, Importance: 0.20, Effort: 0.70}
	case StrategyHighImpact:
		return Weights{Urgency: 0.10, Importance: 0.80, Dependencies: 0.10}
	case StrategyDeadlineDriven:
		return Weights{Urgency: 0.80, Importance: 0.15, Effort: 0.05}
	default:
		return Weights{Urgency: 0.35, Importance: 0.35, Effort: 0.15, Dependencies: 0.15}
	}
}

// merge overlays caller-supplied weights onto the strategy defaults. Only
// smart_balance accepts overrides; the other formulas are fixed.
func (s Strategy) merge(custom map[string]float64) Weights {
	w := s.Weights()
	if s != StrategySmartBalance || len(custom) == 0 {
		return w
	}
	if v, ok := custom["urgency"]; ok {
		w.Urgency = v
	}
	if v, ok := custom["importance"]; ok {
		w.Importance = v
	}
	if v, ok := custom["effort"]; ok {
		w.Effort = v
	}
	if v, ok := custom["dependencies"]; ok {
		w.Dependencies = v
	}
	return w
}

// Score computes the task's priority under the given strategy, rounded to
// two decimals. The task is sanitized first, so re-scoring a sanitized task
// gives the same result. Importance enters as its raw 1..10 value, not as a
// normalized component.
func Score(t domain.Task, s Strategy, custom map[string]float64, today time.Time) float64 {
	t = Sanitize(t)
	w := s.merge(custom)

	raw := w.Urgency*UrgencyScore(t, today) +
		w.Importance*float64(t.Importance) +
		w.Effort*EffortScore(t) +
		w.Dependencies*DependencyScore(t)

	return math.Round(raw*100) / 100
}

// Catalog returns the static reference data for every strategy, in a fixed
// order with smart_balance first.
func Catalog() []domain.StrategyInfo {
	return []domain.StrategyInfo{
		{
			Name:        string(StrategySmartBalance),
			DisplayName: "Smart Balance",
			Description: "Balances urgency and importance with a nod to quick wins and unblocking work. The default.",
			Weights:     "35% urgency, 35% importance, 15% effort, 15% dependencies",
		},
		{
			Name:        string(StrategyFastestWins),
			DisplayName: "Fastest Wins",
			Description: "Favors tasks that can be finished quickly to build momentum.",
			Weights:     "70% effort, 20% importance, 10% urgency",
		},
		{
			Name:        string(StrategyHighImpact),
			DisplayName: "High Impact",
			Description: "Puts the most important work first, almost regardless of timing.",
			Weights:     "80% importance, 10% dependencies, 10% urgency",
		},
		{
			Name:        string(StrategyDeadlineDriven),
			DisplayName: "Deadline Driven",
			Description: "Chases the calendar: whatever is due soonest comes first.",
			Weights:     "80% urgency, 15% importance, 5% effort",
		},
	}
}
