package onemap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/platform/obs"
	"courier-profit-service/internal/ports"
)

type routeResponse struct {
	RouteSummary struct {
		TotalTime     float64 `json:"total_time"`
		TotalDistance float64 `json:"total_distance"`
	} `json:"route_summary"`
}

// Route asks the routing service for one leg's road distance and travel time.
// Requires a bearer token; an empty token fails immediately so the caller can
// fall back to its estimate without a wasted round trip.
func (c *Client) Route(ctx context.Context, from, to domain.Coordinates, token string) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "onemap.Route")(&err)

	if token == "" {
		return ports.RouteResult{}, fmt.Errorf("route %s -> %s: no token: %w", from, to, domain.ErrAuth)
	}

	q := url.Values{}
	q.Set("start", from.String())
	q.Set("end", to.String())
	q.Set("routeType", "drive")

	endpoint := c.baseURL + "/api/public/routingsvc/route?" + q.Encode()

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, token)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route %s -> %s: %w", from, to, classify(err))
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("route %s -> %s: decode response: %w", from, to, classify(err))
	}

	if decoded.RouteSummary.TotalDistance <= 0 {
		return ports.RouteResult{}, fmt.Errorf("route %s -> %s: empty summary: %w", from, to, domain.ErrNotFound)
	}

	return ports.RouteResult{
		DistanceMeters:  decoded.RouteSummary.TotalDistance,
		DurationSeconds: decoded.RouteSummary.TotalTime,
	}, nil
}
