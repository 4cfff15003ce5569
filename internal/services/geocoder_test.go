package services

import (
	"context"
	"errors"
	"testing"

	"courier-profit-service/internal/adapters/onemap"
	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/ports"
)

// memoryCache is an in-process GeocodeCache for pipeline tests.
type memoryCache struct {
	entries map[string]domain.Location
	gets    int
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]domain.Location{}}
}

func (m *memoryCache) Get(ctx context.Context, address string) (domain.Location, bool, error) {
	m.gets++
	loc, ok := m.entries[address]
	return loc, ok, nil
}

func (m *memoryCache) Put(ctx context.Context, address string, loc domain.Location) error {
	m.puts++
	m.entries[address] = loc
	return nil
}

func newTestGeocoder(searcher ports.AddressSearcher, reverse ports.ReverseGeocoder, cache ports.GeocodeCache) *Geocoder {
	return NewGeocoder(searcher, reverse, cache, NewBuildingClassifier())
}

func TestResolveCoordinateInput(t *testing.T) {
	reverse := &onemap.MockReverseGeocoder{
		Result: ports.ReverseResult{
			BlockNumber: "123",
			RoadName:    "ALJUNIED CRESCENT",
			PostalCode:  "380123",
		},
	}
	g := newTestGeocoder(&onemap.MockSearcher{}, reverse, nil)

	loc, err := g.Resolve(context.Background(), "1.3201, 103.8852")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.Latitude != 1.3201 || loc.Longitude != 103.8852 {
		t.Fatalf("coordinates = %v,%v, want input values", loc.Latitude, loc.Longitude)
	}
	if loc.FormattedAddress != "123 ALJUNIED CRESCENT SINGAPORE 380123" {
		t.Fatalf("FormattedAddress = %q", loc.FormattedAddress)
	}
	if loc.BuildingType != domain.BuildingHDB {
		t.Fatalf("BuildingType = %q, want hdb", loc.BuildingType)
	}
}

// A failed reverse lookup must not fail the analysis: the coordinates are
// already usable, only the descriptive fields are lost.
func TestResolveCoordinateReverseFailure(t *testing.T) {
	reverse := &onemap.MockReverseGeocoder{Err: errors.New("service down")}
	g := newTestGeocoder(&onemap.MockSearcher{}, reverse, nil)

	loc, err := g.Resolve(context.Background(), "1.3000,103.8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.Latitude != 1.3 || loc.Longitude != 103.8 {
		t.Fatalf("coordinates = %v,%v, want raw input values", loc.Latitude, loc.Longitude)
	}
	if loc.BuildingType != domain.BuildingUnknown {
		t.Fatalf("BuildingType = %q, want unknown", loc.BuildingType)
	}
	if loc.FormattedAddress != "1.3000,103.8000" {
		t.Fatalf("FormattedAddress = %q, want the raw input", loc.FormattedAddress)
	}
}

// Coordinates outside the Singapore bounding box are treated as address text,
// not as a coordinate pair.
func TestResolveCoordinateOutsideBounds(t *testing.T) {
	g := newTestGeocoder(&onemap.MockSearcher{}, nil, nil)

	_, err := g.Resolve(context.Background(), "51.50,-0.12")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound via the search path", err)
	}
}

func TestResolveAddress(t *testing.T) {
	searcher := &onemap.MockSearcher{
		Results: map[string][]ports.SearchResult{
			"NEX MALL": {
				{
					SearchValue:  "NEX",
					BuildingName: "NEX SHOPPING MALL",
					Address:      "23 SERANGOON CENTRAL NEX SINGAPORE 556083",
					PostalCode:   "556083",
					Latitude:     1.3506,
					Longitude:    103.8718,
				},
				{SearchValue: "SECOND MATCH"},
			},
		},
	}
	g := newTestGeocoder(searcher, nil, nil)

	loc, err := g.Resolve(context.Background(), "  NEX   MALL ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.PostalCode != "556083" {
		t.Fatalf("PostalCode = %q, want 556083 (first result wins)", loc.PostalCode)
	}
	if loc.BuildingType != domain.BuildingMall {
		t.Fatalf("BuildingType = %q, want mall", loc.BuildingType)
	}
}

func TestResolveAddressNotFound(t *testing.T) {
	g := newTestGeocoder(&onemap.MockSearcher{}, nil, nil)

	_, err := g.Resolve(context.Background(), "NO SUCH PLACE")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	g := newTestGeocoder(&onemap.MockSearcher{}, nil, nil)

	_, err := g.Resolve(context.Background(), "   ")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestResolveUsesCache(t *testing.T) {
	cached := domain.Location{
		Latitude:         1.31,
		Longitude:        103.81,
		FormattedAddress: "CACHED ADDRESS",
		BuildingType:     domain.BuildingCondo,
	}
	cache := newMemoryCache()
	cache.entries["SOME CONDO"] = cached

	searcher := &onemap.MockSearcher{Err: errors.New("must not be called")}
	g := newTestGeocoder(searcher, nil, cache)

	loc, err := g.Resolve(context.Background(), "SOME CONDO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != cached {
		t.Fatalf("location = %+v, want the cached entry", loc)
	}
}

func TestResolvePopulatesCache(t *testing.T) {
	searcher := &onemap.MockSearcher{
		Results: map[string][]ports.SearchResult{
			"NEX MALL": {{SearchValue: "NEX", Address: "NEX", Latitude: 1.3506, Longitude: 103.8718}},
		},
	}
	cache := newMemoryCache()
	g := newTestGeocoder(searcher, nil, cache)

	if _, err := g.Resolve(context.Background(), "NEX MALL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}
	if _, ok := cache.entries["NEX MALL"]; !ok {
		t.Fatal("resolved location not stored under the normalized key")
	}
}

func TestResolveAllPreservesOrder(t *testing.T) {
	searcher := &onemap.MockSearcher{
		Results: map[string][]ports.SearchResult{
			"A": {{Address: "A", Latitude: 1.30, Longitude: 103.80}},
			"B": {{Address: "B", Latitude: 1.31, Longitude: 103.81}},
			"C": {{Address: "C", Latitude: 1.32, Longitude: 103.82}},
		},
	}
	g := newTestGeocoder(searcher, nil, nil)

	out, err := g.ResolveAll(context.Background(), []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(out))
	}
	for i, want := range []string{"A", "B", "C"} {
		if out[i].FormattedAddress != want {
			t.Fatalf("out[%d] = %q, want %q", i, out[i].FormattedAddress, want)
		}
	}
}

func TestResolveAllFailsWhole(t *testing.T) {
	searcher := &onemap.MockSearcher{
		Results: map[string][]ports.SearchResult{
			"A": {{Address: "A", Latitude: 1.30, Longitude: 103.80}},
		},
	}
	g := newTestGeocoder(searcher, nil, nil)

	_, err := g.ResolveAll(context.Background(), []string{"A", "MISSING"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want the originating ErrNotFound", err)
	}
}

func TestResolveAllEmpty(t *testing.T) {
	g := newTestGeocoder(&onemap.MockSearcher{}, nil, nil)

	_, err := g.ResolveAll(context.Background(), nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}
