package onemap

import (
	"context"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/ports"
)

// Test doubles for the service ports, used by pipeline tests that need
// deterministic external collaborators.

// MockSearcher returns canned results (or an error) per search text.
type MockSearcher struct {
	Results map[string][]ports.SearchResult
	Err     error
}

func (m *MockSearcher) Search(ctx context.Context, text string) ([]ports.SearchResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results[text], nil
}

// MockReverseGeocoder returns one canned attribute set or an error.
type MockReverseGeocoder struct {
	Result ports.ReverseResult
	Err    error
}

func (m *MockReverseGeocoder) ReverseGeocode(ctx context.Context, point domain.Coordinates) (ports.ReverseResult, error) {
	if m.Err != nil {
		return ports.ReverseResult{}, m.Err
	}
	return m.Result, nil
}

// MockRouteProvider returns a fixed result or error for every leg and counts
// invocations.
type MockRouteProvider struct {
	Result ports.RouteResult
	Err    error
	Calls  int
}

func (m *MockRouteProvider) Route(ctx context.Context, from, to domain.Coordinates, token string) (ports.RouteResult, error) {
	m.Calls++
	if m.Err != nil {
		return ports.RouteResult{}, m.Err
	}
	return m.Result, nil
}

// StaticToken satisfies ports.TokenProvider with a fixed value.
type StaticToken string

func (s StaticToken) Token(ctx context.Context) string { return string(s) }
