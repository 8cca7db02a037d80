package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
	"github.com/aserravalle/travelling-salesman-backend/internal/platform/obs"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

// SQLGeocodeCache is a Postgres-backed cache mapping addresses to
// coordinates. It survives restarts, unlike the in-memory backend.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// InitSchema creates the geocode cache table.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address         TEXT PRIMARY KEY,
		lat             DOUBLE PRECISION NOT NULL,
		lon             DOUBLE PRECISION NOT NULL,
		display_address TEXT NOT NULL DEFAULT ''
	);
	`)
	if err != nil {
		return fmt.Errorf("init geocode cache schema: %w", err)
	}
	return nil
}

func (s *SQLGeocodeCache) Get(ctx context.Context, address string) (_ ports.GeocodeResult, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.sql.Get")(&err)

	if s.DB == nil {
		return ports.GeocodeResult{}, false, errors.New("geocode cache: db is nil")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return ports.GeocodeResult{}, false, errors.New("get geocode cache: address must not be empty")
	}

	q := `
	SELECT lat, lon, display_address
	FROM geocode_cache
	WHERE address = $1;
	`

	var lat, lon float64
	var display string
	err = s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lon, &display)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.GeocodeResult{}, false, nil
	}
	if err != nil {
		return ports.GeocodeResult{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return ports.GeocodeResult{
		Coordinates:    domain.Coordinates{Latitude: lat, Longitude: lon},
		DisplayAddress: display,
	}, true, nil
}

func (s *SQLGeocodeCache) Put(ctx context.Context, address string, result ports.GeocodeResult) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	q := `
	INSERT INTO geocode_cache (address, lat, lon, display_address)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		display_address = EXCLUDED.display_address;
	`

	_, err := s.DB.ExecContext(ctx, q,
		address, result.Coordinates.Latitude, result.Coordinates.Longitude, result.DisplayAddress)
	if err != nil {
		return fmt.Errorf("insert geocode cache addr=%q: %w", address, err)
	}
	return nil
}
