package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/ports"
)

// roadFactor scales straight-line distance up to an approximate road distance
// for the fallback estimator.
const roadFactor = 1.4

// Router computes a multi-leg route across an ordered point list. Each leg is
// attempted against the live routing service and falls back to a
// straight-line estimate on any failure, so routing itself is never fatal.
type Router struct {
	provider ports.RouteProvider
	tokens   ports.TokenProvider
	loc      *time.Location
	now      func() time.Time
}

// NewRouter wires the live provider and token source. Either may be nil, in
// which case every leg is estimated.
func NewRouter(provider ports.RouteProvider, tokens ports.TokenProvider) *Router {
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		// Singapore has no DST; a fixed offset is an exact substitute.
		loc = time.FixedZone("SGT", 8*60*60)
	}
	return &Router{
		provider: provider,
		tokens:   tokens,
		loc:      loc,
		now:      time.Now,
	}
}

// ComputeRoute processes consecutive point pairs sequentially (external rate
// limits bound the call pattern; fallback decisions are cheap and local).
// An empty traffic condition is auto-detected from the Singapore local hour.
func (r *Router) ComputeRoute(ctx context.Context, points []domain.Location, traffic domain.TrafficCondition) (domain.Route, error) {
	if len(points) < 2 {
		return domain.Route{}, fmt.Errorf(
			"compute route: need at least 2 points, got %d: %w",
			len(points), domain.ErrInvalidInput,
		)
	}

	if traffic == "" {
		traffic = DetectTraffic(r.now().In(r.loc))
	}
	if !traffic.Valid() {
		return domain.Route{}, fmt.Errorf(
			"compute route: unknown traffic condition %q: %w",
			traffic, domain.ErrInvalidInput,
		)
	}

	route := domain.Route{
		Legs:    make([]domain.RouteLeg, 0, len(points)-1),
		Traffic: traffic,
	}

	for i := 0; i < len(points)-1; i++ {
		leg := r.computeLeg(ctx, points[i], points[i+1], traffic)

		route.Legs = append(route.Legs, leg)
		route.TotalDistanceKm += leg.DistanceKm
		route.TotalTravelMinutes += leg.TimeMinutes
		if leg.IsEstimate {
			route.HasEstimates = true
		}
	}

	return route, nil
}

// computeLeg tries the live service once and degrades to the local estimate on
// any failure, including a missing or rejected token.
func (r *Router) computeLeg(ctx context.Context, from, to domain.Location, traffic domain.TrafficCondition) domain.RouteLeg {
	if r.provider == nil {
		return EstimateLeg(from, to, traffic)
	}

	token := ""
	if r.tokens != nil {
		token = r.tokens.Token(ctx)
	}

	res, err := r.provider.Route(ctx, from.Coords(), to.Coords(), token)
	if err != nil {
		log.Printf("route leg %q -> %q failed, using estimate: %v", from.FormattedAddress, to.FormattedAddress, err)
		return EstimateLeg(from, to, traffic)
	}

	// The service reports times at its own baseline speed; rescale to the
	// assumed traffic speed.
	minutes := res.DurationSeconds / 60 * (referenceSpeedKmh / speedFor(traffic))

	return domain.RouteLeg{
		FromAddress: from.FormattedAddress,
		ToAddress:   to.FormattedAddress,
		DistanceKm:  res.DistanceMeters / 1000,
		TimeMinutes: minutes,
	}
}

// EstimateLeg is the fallback heuristic: great-circle distance scaled by the
// road factor, timed at the traffic speed. Pure function of its inputs, so
// repeated calls for the same pair are identical.
func EstimateLeg(from, to domain.Location, traffic domain.TrafficCondition) domain.RouteLeg {
	distanceKm := haversineKm(from.Coords(), to.Coords()) * roadFactor

	return domain.RouteLeg{
		FromAddress: from.FormattedAddress,
		ToAddress:   to.FormattedAddress,
		DistanceKm:  distanceKm,
		TimeMinutes: distanceKm / speedFor(traffic) * 60,
		IsEstimate:  true,
	}
}
