package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

var (
	ErrEmptyBody = errors.New("request body is empty")
	ErrNoTasks   = errors.New("request has no tasks array")
)

// AnalyzeRequest is the decoded wire form of a scoring request. Task
// records stay loosely typed here; field coercion is the core's job, date
// parsing is the handler's.
type AnalyzeRequest struct {
	Tasks         []map[string]any   `json:"tasks"`
	Strategy      string             `json:"strategy"`
	CustomWeights map[string]float64 `json:"custom_weights"`
}

// DecodeAnalyzeRequest accepts either a bare JSON array of task records or
// an envelope object with tasks, strategy and custom_weights. Anything else
// is a request-level error.
func DecodeAnalyzeRequest(r io.Reader) (AnalyzeRequest, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return AnalyzeRequest{}, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return AnalyzeRequest{}, ErrEmptyBody
	}

	if body[0] == '[' {
		var tasks []map[string]any
		if err := json.Unmarshal(body, &tasks); err != nil {
			return AnalyzeRequest{}, err
		}
		return AnalyzeRequest{Tasks: tasks}, nil
	}

	var req AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return AnalyzeRequest{}, err
	}
	if req.Tasks == nil {
		return AnalyzeRequest{}, ErrNoTasks
	}
	return req, nil
}

type ScoredTaskResponse struct {
	Title          string   `json:"title"`
	DueDate        string   `json:"due_date,omitempty"`
	EstimatedHours float64  `json:"estimated_hours"`
	Importance     int      `json:"importance"`
	Dependencies   []string `json:"dependencies"`
	Score          float64  `json:"score"`
	Reasons        []string `json:"reasons"`
}

type AnalyzeResponse struct {
	Strategy string               `json:"strategy"`
	Tasks    []ScoredTaskResponse `json:"tasks"`
	Warnings []string             `json:"warnings,omitempty"`
}

type CycleReportResponse struct {
	HasCircular bool       `json:"has_circular"`
	Cycles      [][]string `json:"cycles"`
	Warnings    []string   `json:"warnings"`
}

type StrategyResponse struct {
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Weights     string `json:"weights"`
}
