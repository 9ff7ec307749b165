package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"taskrank/internal/domain"
	"taskrank/internal/http/dto"
	"taskrank/internal/report"
	"taskrank/internal/scoring"
)

// ErrBadDueDate marks a due_date value the deserializer cannot turn into a
// calendar date. It rejects the whole request, field sanitization never
// sees it.
var ErrBadDueDate = errors.New("invalid due_date")

const dateLayout = "2006-01-02"

const defaultSuggestLimit = 3

type AnalyzeService interface {
	ScoreTasks(tasks []domain.Task, strategy string, custom map[string]float64) []domain.ScoredTask
	TopN(tasks []domain.Task, n int, strategy string) []domain.ScoredTask
	DetectCycles(tasks []domain.Task) domain.CycleReport
	ListStrategies() []domain.StrategyInfo
}

type ReportExporter interface {
	Export(tasks []domain.ScoredTask, format string) ([]byte, string, error)
}

// Options tune handler behavior from config; zero values fall back to the
// built-in defaults.
type Options struct {
	DefaultStrategy string
	SuggestLimit    int
}

type AnalyzeHandler struct {
	service  AnalyzeService
	exporter ReportExporter
	opts     Options
}

func New(service AnalyzeService, exporter ReportExporter, opts Options) *AnalyzeHandler {
	if opts.SuggestLimit <= 0 {
		opts.SuggestLimit = defaultSuggestLimit
	}
	return &AnalyzeHandler{service: service, exporter: exporter, opts: opts}
}

// POST /analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, tasks, ok := h.decode(w, r)
	if !ok {
		return
	}

	strategy := h.strategy(req.Strategy)
	scored := h.service.ScoreTasks(tasks, strategy, req.CustomWeights)
	cycles := h.service.DetectCycles(tasks)

	writeJSON(w, http.StatusOK, dto.AnalyzeResponse{
		Strategy: string(scoring.ParseStrategy(strategy)),
		Tasks:    toScoredResponses(scored),
		Warnings: cycles.Warnings,
	})
}

// POST /suggest?limit=N
func (h *AnalyzeHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	req, tasks, ok := h.decode(w, r)
	if !ok {
		return
	}

	limit := h.opts.SuggestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	strategy := h.strategy(req.Strategy)
	top := h.service.TopN(tasks, limit, strategy)

	writeJSON(w, http.StatusOK, dto.AnalyzeResponse{
		Strategy: string(scoring.ParseStrategy(strategy)),
		Tasks:    toScoredResponses(top),
	})
}

// GET /strategies
func (h *AnalyzeHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	response := make(map[string]dto.StrategyResponse)
	for _, info := range h.service.ListStrategies() {
		response[info.Name] = dto.StrategyResponse{
			DisplayName: info.DisplayName,
			Description: info.Description,
			Weights:     info.Weights,
		}
	}
	writeJSON(w, http.StatusOK, response)
}

// POST /cycles
func (h *AnalyzeHandler) Cycles(w http.ResponseWriter, r *http.Request) {
	_, tasks, ok := h.decode(w, r)
	if !ok {
		return
	}

	cycles := h.service.DetectCycles(tasks)

	response := dto.CycleReportResponse{
		HasCircular: cycles.HasCircular,
		Cycles:      make([][]string, 0, len(cycles.Cycles)),
		Warnings:    cycles.Warnings,
	}
	for _, c := range cycles.Cycles {
		response.Cycles = append(response.Cycles, []string(c))
	}

	writeJSON(w, http.StatusOK, response)
}

// POST /export?format=json|csv|pdf
func (h *AnalyzeHandler) Export(w http.ResponseWriter, r *http.Request) {
	req, tasks, ok := h.decode(w, r)
	if !ok {
		return
	}

	scored := h.service.ScoreTasks(tasks, h.strategy(req.Strategy), req.CustomWeights)

	payload, contentType, err := h.exporter.Export(scored, r.URL.Query().Get("format"))
	if err != nil {
		if errors.Is(err, report.ErrUnknownFormat) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed building report")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// GET /health
func (h *AnalyzeHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// decode parses the request body into typed tasks, writing the error
// response itself when the body is unusable.
func (h *AnalyzeHandler) decode(w http.ResponseWriter, r *http.Request) (dto.AnalyzeRequest, []domain.Task, bool) {
	req, err := dto.DecodeAnalyzeRequest(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return dto.AnalyzeRequest{}, nil, false
	}

	tasks, err := toTasks(req.Tasks)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return dto.AnalyzeRequest{}, nil, false
	}
	return req, tasks, true
}

func (h *AnalyzeHandler) strategy(requested string) string {
	if requested == "" {
		return h.opts.DefaultStrategy
	}
	return requested
}

// toTasks converts wire records into typed tasks. Date strings are parsed
// here; everything else is left to the core's coercion rules.
func toTasks(records []map[string]any) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(records))
	for i, rec := range records {
		switch v := rec["due_date"].(type) {
		case nil:
		case string:
			if v == "" {
				delete(rec, "due_date")
				break
			}
			d, err := time.Parse(dateLayout, v)
			if err != nil {
				return nil, fmt.Errorf("task[%d]: %w %q", i, ErrBadDueDate, v)
			}
			rec["due_date"] = d
		default:
			return nil, fmt.Errorf("task[%d]: %w: want %q string", i, ErrBadDueDate, dateLayout)
		}
		tasks = append(tasks, scoring.FromRecord(rec))
	}
	return tasks, nil
}

func toScoredResponses(scored []domain.ScoredTask) []dto.ScoredTaskResponse {
	response := make([]dto.ScoredTaskResponse, 0, len(scored))
	for _, t := range scored {
		item := dto.ScoredTaskResponse{
			Title:          t.Title,
			EstimatedHours: t.EstimatedHours,
			Importance:     t.Importance,
			Dependencies:   t.Dependencies,
			Score:          t.Score,
			Reasons:        t.Reasons,
		}
		if t.DueDate != nil {
			item.DueDate = t.DueDate.Format(dateLayout)
		}
		response = append(response, item)
	}
	return response
}
