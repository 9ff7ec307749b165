package service

import (
	"sort"
	"time"

	"taskrank/internal/domain"
	"taskrank/internal/graph"
	"taskrank/internal/scoring"
)

// AnalyzeService is the request-scoped facade over the scoring core: it
// sanitizes, scores, explains and sorts task lists. It holds no state
// beyond the injected clock, so a single instance serves concurrent
// requests.
type AnalyzeService struct {
	now func() time.Time
}

func New(now func() time.Time) (*AnalyzeService, error) {
	if now == nil {
		return nil, ErrClockNil
	}
	return &AnalyzeService{now: now}, nil
}

// ScoreTasks scores every task under the named strategy and returns them
// sorted by score descending. Ties keep the input order. Unknown strategy
// names score as smart_balance; custom weights only apply there.
func (s *AnalyzeService) ScoreTasks(tasks []domain.Task, strategy string, custom map[string]float64) []domain.ScoredTask {
	st := scoring.ParseStrategy(strategy)
	today := s.now()

	scored := make([]domain.ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		clean := scoring.Sanitize(t)
		scored = append(scored, domain.ScoredTask{
			Task:    clean,
			Score:   scoring.Score(clean, st, custom, today),
			Reasons: scoring.Explain(clean, st, today),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// TopN returns the n highest-scoring tasks with reasons attached. n is
// clamped to the list length; n <= 0 yields an empty slice.
func (s *AnalyzeService) TopN(tasks []domain.Task, n int, strategy string) []domain.ScoredTask {
	scored := s.ScoreTasks(tasks, strategy, nil)
	if n <= 0 {
		return []domain.ScoredTask{}
	}
	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n]
}

// DetectCycles reports every dependency loop reachable in the task list.
func (s *AnalyzeService) DetectCycles(tasks []domain.Task) domain.CycleReport {
	clean := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		clean = append(clean, scoring.Sanitize(t))
	}
	return graph.Detect(clean)
}

// ListStrategies returns the static strategy reference data.
func (s *AnalyzeService) ListStrategies() []domain.StrategyInfo {
	return scoring.Catalog()
}
