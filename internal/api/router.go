package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"courier-profit-service/internal/api/handlers"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(pipeline handlers.Analyzer) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	analyze := &handlers.AnalyzeHandler{Pipeline: pipeline}

	r.Get("/health", handlers.Health)
	r.Post("/analyze", analyze.Analyze)

	return r
}
