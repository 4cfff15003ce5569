package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/services"
)

// stubAnalyzer returns a canned report or error; Block lets the busy-gate test
// hold one request in flight.
type stubAnalyzer struct {
	report *domain.AnalysisReport
	err    error

	block chan struct{}
}

func (s *stubAnalyzer) Analyze(ctx context.Context, req services.AnalyzeRequest) (*domain.AnalysisReport, error) {
	if s.block != nil {
		<-s.block
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func validBody() string {
	return `{
		"current_location": "1.3000,103.8000",
		"pickup": "BLK 1 TEST ROAD",
		"stops": ["VISION TOWER"],
		"fare": "10",
		"bike_model": "honda-pcx-150",
		"petrol_price_per_litre": "2.87"
	}`
}

func postAnalyze(h *AnalyzeHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)
	return rec
}

func TestAnalyzeHandlerOK(t *testing.T) {
	h := &AnalyzeHandler{Pipeline: &stubAnalyzer{report: &domain.AnalysisReport{
		Profitability: domain.ProfitabilityResult{Rating: domain.RatingGood},
	}}}

	rec := postAnalyze(h, validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
}

func TestAnalyzeHandlerRejectsBadJSON(t *testing.T) {
	h := &AnalyzeHandler{Pipeline: &stubAnalyzer{}}

	for _, body := range []string{
		"{not json",
		`{"current_location": "x", "unknown_field": 1}`,
		validBody() + `{"second": "object"}`,
	} {
		rec := postAnalyze(h, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestAnalyzeHandlerRejectsInvalidRequest(t *testing.T) {
	h := &AnalyzeHandler{Pipeline: &stubAnalyzer{}}

	rec := postAnalyze(h, `{"current_location": "", "pickup": "P", "stops": ["S"], "fare": "10", "petrol_price_per_litre": "2.87"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantHint   bool
	}{
		{err: fmt.Errorf("resolve: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound, wantHint: true},
		{err: fmt.Errorf("search: %w", domain.ErrNetwork), wantStatus: http.StatusBadGateway, wantHint: true},
		{err: fmt.Errorf("route: %w", domain.ErrAuth), wantStatus: http.StatusBadGateway, wantHint: true},
		{err: fmt.Errorf("bike: %w", domain.ErrInvalidConfiguration), wantStatus: http.StatusBadRequest},
		{err: fmt.Errorf("fuel: %w", domain.ErrInvalidParameter), wantStatus: http.StatusBadRequest},
		{err: errors.New("wat"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		h := &AnalyzeHandler{Pipeline: &stubAnalyzer{err: tc.err}}

		rec := postAnalyze(h, validBody())
		if rec.Code != tc.wantStatus {
			t.Fatalf("err %v: status = %d, want %d", tc.err, rec.Code, tc.wantStatus)
		}

		var body struct {
			Error string `json:"error"`
			Hint  string `json:"hint"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("err %v: response is not JSON: %v", tc.err, err)
		}
		if body.Error == "" {
			t.Fatalf("err %v: empty error message", tc.err)
		}
		if tc.wantHint && body.Hint == "" {
			t.Fatalf("err %v: expected a hint", tc.err)
		}
	}
}

// A second request arriving while one is in flight must be turned away with a
// conflict, and the gate must reopen once the first finishes.
func TestAnalyzeHandlerBusyGate(t *testing.T) {
	stub := &stubAnalyzer{
		report: &domain.AnalysisReport{},
		block:  make(chan struct{}),
	}
	h := &AnalyzeHandler{Pipeline: stub}

	firstDone := make(chan int)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		rec := postAnalyze(h, validBody())
		firstDone <- rec.Code
	}()

	// Spin until the first request holds the gate.
	for !h.busy.Load() {
	}

	rec := postAnalyze(h, validBody())
	if rec.Code != http.StatusConflict {
		t.Fatalf("concurrent request status = %d, want 409", rec.Code)
	}

	close(stub.block)
	if code := <-firstDone; code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", code)
	}
	wg.Wait()

	rec = postAnalyze(h, validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("gate did not reopen, status = %d", rec.Code)
	}
}
