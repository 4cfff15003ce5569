package ports

import (
	"context"

	"courier-profit-service/internal/domain"
)

// RouteResult is the raw road-network answer for a single leg.
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for the external routing service. The token is a bearer credential
// obtained from a TokenProvider; implementations reject empty tokens.
type RouteProvider interface {
	Route(ctx context.Context, from, to domain.Coordinates, token string) (RouteResult, error)
}

// TokenProvider yields a routing service credential. An empty string means
// "no token available, proceed estimate-only"; it is never an error.
// Implementations refresh expired tokens internally and are safe to race;
// the worst case is a redundant refresh.
type TokenProvider interface {
	Token(ctx context.Context) string
}
