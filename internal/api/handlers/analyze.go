package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync/atomic"

	"courier-profit-service/internal/api/dto"
	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/services"
)

// Analyzer is the pipeline entry point the handler depends on.
type Analyzer interface {
	Analyze(ctx context.Context, req services.AnalyzeRequest) (*domain.AnalysisReport, error)
}

// AnalyzeHandler exposes the profitability pipeline over HTTP. At most one
// calculation runs at a time: a request arriving while another is in flight
// is rejected outright rather than queued or cancelled.
type AnalyzeHandler struct {
	Pipeline Analyzer

	busy atomic.Bool
}

func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if !h.busy.CompareAndSwap(false, true) {
		writeError(w, r, http.StatusConflict,
			"a calculation is already in progress",
			"wait for the current calculation to finish, then retry")
		return
	}
	defer h.busy.Store(false)

	var body dto.AnalyzeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body", "")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object", "")
		return
	}

	req, err := body.Parse()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), "")
		return
	}

	report, err := h.Pipeline.Analyze(r.Context(), req)
	if err != nil {
		status, hint := statusAndHint(err)
		if status == http.StatusInternalServerError {
			log.Printf("analyze failed: %v", err)
		}
		writeError(w, r, status, err.Error(), hint)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewReportResponse(*report))
}

// statusAndHint maps the domain error taxonomy to HTTP statuses and the
// user-facing guidance the failure message carries.
func statusAndHint(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "check that the address or postal code is valid"
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway, "check connectivity to the OneMap services"
	case errors.Is(err, domain.ErrAuth):
		return http.StatusBadGateway, "add or refresh the OneMap API token"
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidParameter),
		errors.Is(err, domain.ErrInvalidConfiguration):
		return http.StatusBadRequest, ""
	default:
		return http.StatusInternalServerError, ""
	}
}
