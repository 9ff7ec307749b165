package domain

import "time"

// Task is a single unit of work as supplied by the caller, already typed by
// the deserialization layer. Title doubles as the task's identity in the
// dependency graph; the data model does not enforce uniqueness, callers are
// expected to keep titles distinct.
type Task struct {
	Title          string
	DueDate        *time.Time // date-only; nil means no deadline
	EstimatedHours float64
	Importance     int // 1..10 after sanitization
	Dependencies   []string
}

// ScoredTask is a sanitized task annotated with its computed priority and
// the human-readable reasons behind it. It lives for one request only.
type ScoredTask struct {
	Task

	Score   float64
	Reasons []string
}

// Cycle is a closed dependency loop of task titles; the first title is
// repeated at the end.
type Cycle []string

// CycleReport is the result of scanning a task list for dependency loops.
type CycleReport struct {
	HasCircular bool
	Cycles      []Cycle
	Warnings    []string
}

// StrategyInfo is static reference data describing one scoring strategy.
type StrategyInfo struct {
	Name        string
	DisplayName string
	Description string
	Weights     string
}
