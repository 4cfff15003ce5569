package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-profit-service/internal/domain"
	"courier-profit-service/internal/platform/obs"
)

// PostgresGeocodeCache is the Postgres variant of the geocode cache, for
// deployments sharing one cache across instances.
type PostgresGeocodeCache struct {
	DB *sql.DB
}

func NewPostgresGeocodeCache(db *sql.DB) *PostgresGeocodeCache {
	return &PostgresGeocodeCache{DB: db}
}

// EnsureSchema creates the cache table when missing.
func (s *PostgresGeocodeCache) EnsureSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS location_cache (
        address TEXT PRIMARY KEY,
        latitude DOUBLE PRECISION NOT NULL,
        longitude DOUBLE PRECISION NOT NULL,
        formatted_address TEXT NOT NULL,
        postal_code TEXT NOT NULL,
        building_type TEXT NOT NULL,
        building_name TEXT NOT NULL
    );
	`

	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("geocode cache: init schema: %w", err)
	}
	return nil
}

// Get fetches one cached location; a miss is (zero, false, nil).
func (s *PostgresGeocodeCache) Get(ctx context.Context, address string) (_ domain.Location, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Location{}, false, errors.New("geocode cache: db is nil")
	}

	q := `
	SELECT latitude, longitude, formatted_address, postal_code, building_type, building_name
    FROM location_cache
    WHERE address = $1;
	`

	var loc domain.Location
	var buildingType string
	err = s.DB.QueryRowContext(ctx, q, address).Scan(
		&loc.Latitude,
		&loc.Longitude,
		&loc.FormattedAddress,
		&loc.PostalCode,
		&buildingType,
		&loc.BuildingName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, false, nil
	}
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache %q: %w", address, err)
	}

	loc.BuildingType = domain.BuildingType(buildingType)
	return loc, true, nil
}

// Put stores or replaces one address -> location mapping.
func (s *PostgresGeocodeCache) Put(ctx context.Context, address string, loc domain.Location) (err error) {
	defer obs.Time(ctx, "geocode.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if address == "" {
		return errors.New("put geocode cache: empty address key")
	}

	q := `
	INSERT INTO location_cache (
        address, latitude, longitude, formatted_address, postal_code, building_type, building_name
    )
    VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (address) DO UPDATE
	SET latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		formatted_address = EXCLUDED.formatted_address,
		postal_code = EXCLUDED.postal_code,
		building_type = EXCLUDED.building_type,
		building_name = EXCLUDED.building_name;
	`

	_, err = s.DB.ExecContext(ctx, q,
		address,
		loc.Latitude,
		loc.Longitude,
		loc.FormattedAddress,
		loc.PostalCode,
		string(loc.BuildingType),
		loc.BuildingName,
	)
	if err != nil {
		return fmt.Errorf("put geocode cache %q: %w", address, err)
	}

	return nil
}
