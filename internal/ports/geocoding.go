package ports

import (
	"context"

	"courier-profit-service/internal/domain"
)

// SearchResult is one candidate returned by the address search service.
// Fields the upstream reports as "NIL" are normalized to empty strings.
type SearchResult struct {
	SearchValue  string
	BlockNumber  string
	RoadName     string
	BuildingName string
	Address      string
	PostalCode   string
	Latitude     float64
	Longitude    float64
}

// Contract for the forward address search service. An empty slice is a valid
// response (no matches); it is not an error at this layer.
type AddressSearcher interface {
	Search(ctx context.Context, text string) ([]SearchResult, error)
}

// ReverseResult carries the building attributes of a reverse-geocoded point.
type ReverseResult struct {
	BuildingName string
	BlockNumber  string
	RoadName     string
	PostalCode   string
}

// Contract for resolving a coordinate pair back to address attributes.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, point domain.Coordinates) (ReverseResult, error)
}

// GeocodeCache stores fully resolved locations keyed by normalized address
// text. Implementations must treat a miss as (zero, false, nil).
type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Location, bool, error)
	Put(ctx context.Context, address string, loc domain.Location) error
}
