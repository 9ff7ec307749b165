package router

import (
	"net/http"

	"taskrank/internal/http/handlers"
)

func New(handler *handlers.AnalyzeHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /analyze", handler.Analyze)
	mux.HandleFunc("POST /suggest", handler.Suggest)
	mux.HandleFunc("GET /strategies", handler.Strategies)
	mux.HandleFunc("POST /cycles", handler.Cycles)
	mux.HandleFunc("POST /export", handler.Export)
	mux.HandleFunc("GET /health", handler.Health)

	return RequestID(mux)
}
