package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/ports"
)

// maxConcurrentLookups bounds the geocoding fan-out per batch.
const maxConcurrentLookups = 5

// Geocoder resolves free-text addresses or raw coordinate pairs into
// Locations via the external search service, classifying the building type
// along the way. Forward-search results go through the cache when one is
// configured.
type Geocoder struct {
	searcher   ports.AddressSearcher
	reverse    ports.ReverseGeocoder
	cache      ports.GeocodeCache
	classifier *BuildingClassifier
}

func NewGeocoder(searcher ports.AddressSearcher, reverse ports.ReverseGeocoder, cache ports.GeocodeCache, classifier *BuildingClassifier) *Geocoder {
	return &Geocoder{
		searcher:   searcher,
		reverse:    reverse,
		cache:      cache,
		classifier: classifier,
	}
}

// normalize collapses whitespace so equivalent inputs share cache keys.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseCoordinatePair accepts "lat,lng" only when both numbers parse and the
// point falls inside the Singapore bounding box; anything else is treated as
// address text.
func parseCoordinatePair(input string) (domain.Coordinates, bool) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return domain.Coordinates{}, false
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLng != nil {
		return domain.Coordinates{}, false
	}

	c := domain.Coordinates{Lat: lat, Lng: lng}
	return c, c.InSingapore()
}

// Resolve maps one input string to a Location.
//
// Coordinate inputs short-circuit the forward search: a reverse lookup
// provides the human address and building type, and a reverse failure
// degrades to a coordinate-only Location instead of propagating.
func (g *Geocoder) Resolve(ctx context.Context, input string) (domain.Location, error) {
	input = normalize(input)
	if input == "" {
		return domain.Location{}, fmt.Errorf("resolve: empty input: %w", domain.ErrInvalidInput)
	}

	if coords, ok := parseCoordinatePair(input); ok {
		return g.resolveCoordinates(ctx, input, coords), nil
	}

	return g.resolveAddress(ctx, input)
}

func (g *Geocoder) resolveCoordinates(ctx context.Context, input string, coords domain.Coordinates) domain.Location {
	fallback := domain.Location{
		Latitude:         coords.Lat,
		Longitude:        coords.Lng,
		FormattedAddress: input,
		BuildingType:     domain.BuildingUnknown,
	}

	if g.reverse == nil {
		return fallback
	}

	rr, err := g.reverse.ReverseGeocode(ctx, coords)
	if err != nil {
		log.Printf("reverse geocode %s failed, keeping raw coordinates: %v", coords, err)
		return fallback
	}

	addressParts := make([]string, 0, 3)
	if rr.BlockNumber != "" {
		addressParts = append(addressParts, rr.BlockNumber)
	}
	if rr.RoadName != "" {
		addressParts = append(addressParts, rr.RoadName)
	}
	if rr.PostalCode != "" {
		addressParts = append(addressParts, "SINGAPORE "+rr.PostalCode)
	}

	address := strings.Join(addressParts, " ")
	if address == "" {
		address = input
	}

	buildingType := g.classifier.Classify(
		strings.TrimSpace(rr.BuildingName+" "+rr.RoadName),
		ClassifierHints{
			HasBlockNumber:  rr.BlockNumber != "",
			HasBuildingName: rr.BuildingName != "",
		},
	)

	return domain.Location{
		Latitude:         coords.Lat,
		Longitude:        coords.Lng,
		FormattedAddress: address,
		PostalCode:       rr.PostalCode,
		BuildingType:     buildingType,
		BuildingName:     rr.BuildingName,
	}
}

func (g *Geocoder) resolveAddress(ctx context.Context, input string) (domain.Location, error) {
	if g.cache != nil {
		loc, ok, err := g.cache.Get(ctx, input)
		if err != nil {
			log.Printf("geocode cache read failed for %q: %v", input, err)
		} else if ok {
			return loc, nil
		}
	}

	results, err := g.searcher.Search(ctx, input)
	if err != nil {
		return domain.Location{}, fmt.Errorf("resolve %q: %w", input, err)
	}
	if len(results) == 0 {
		return domain.Location{}, fmt.Errorf("resolve %q: no matches: %w", input, domain.ErrNotFound)
	}

	// The search service ranks results; the first is the best match.
	first := results[0]

	buildingType := g.classifier.Classify(
		strings.TrimSpace(first.BuildingName+" "+first.SearchValue+" "+first.Address),
		ClassifierHints{
			HasBlockNumber:  first.BlockNumber != "",
			HasBuildingName: first.BuildingName != "",
		},
	)

	loc := domain.Location{
		Latitude:         first.Latitude,
		Longitude:        first.Longitude,
		FormattedAddress: first.Address,
		PostalCode:       first.PostalCode,
		BuildingType:     buildingType,
		BuildingName:     first.BuildingName,
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, input, loc); err != nil {
			log.Printf("geocode cache write failed for %q: %v", input, err)
		}
	}

	return loc, nil
}

// ResolveAll resolves every input concurrently, preserving input order in the
// output. Any single failure fails the whole batch; there are no partial
// results.
func (g *Geocoder) ResolveAll(ctx context.Context, inputs []string) ([]domain.Location, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("resolve all: no inputs: %w", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]domain.Location, len(inputs))
	errs := make([]error, len(inputs))

	sem := make(chan struct{}, maxConcurrentLookups)
	var wg sync.WaitGroup

	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}

			loc, err := g.Resolve(ctx, input)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			out[i] = loc
		}(i, input)
	}

	wg.Wait()

	// Prefer the originating failure over cancellations it caused.
	var firstErr error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, context.Canceled) {
			return nil, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
