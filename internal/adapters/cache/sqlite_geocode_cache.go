package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-profit-service/internal/domain"
)

// SQLite-backed cache mapping normalized address text to resolved locations.
// Address keys are expected to be normalized by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// EnsureSchema creates the cache table when missing.
func (s *SqliteGeocodeCache) EnsureSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS location_cache (
        address TEXT PRIMARY KEY,
        latitude REAL NOT NULL,
        longitude REAL NOT NULL,
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
func (s *SqliteGeocodeCache) Get(ctx context.Context, address string) (domain.Location, bool, error) {
	if s.DB == nil {
		return domain.Location{}, false, errors.New("geocode cache: db is nil")
	}

	q := `
	SELECT latitude, longitude, formatted_address, postal_code, building_type, building_name
    FROM location_cache
    WHERE address = ?;
	`

	var loc domain.Location
	var buildingType string
	err := s.DB.QueryRowContext(ctx, q, address).Scan(
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
func (s *SqliteGeocodeCache) Put(ctx context.Context, address string, loc domain.Location) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if address == "" {
		return errors.New("put geocode cache: empty address key")
	}

	q := `
	INSERT OR REPLACE INTO location_cache (
        address, latitude, longitude, formatted_address, postal_code, building_type, building_name
    )
    VALUES (?, ?, ?, ?, ?, ?, ?);
	`

	_, err := s.DB.ExecContext(ctx, q,
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
