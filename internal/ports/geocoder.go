package ports

import (
	"context"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
)

// Resolved address geocoding result.
type GeocodeResult struct {
	Coordinates domain.Coordinates
	// DisplayAddress is the canonical form returned by the geocoding
	// backend, which may differ from the raw query.
	DisplayAddress string
}

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
}

// Shared read/write cache of geocoded addresses. Implementations must be
// safe for concurrent use: the cache is the one piece of state shared
// across parallel dispatch calls.
type GeocodeCache interface {
	// Get returns the cached result and whether it was present.
	Get(ctx context.Context, address string) (GeocodeResult, bool, error)
	Put(ctx context.Context, address string, result GeocodeResult) error
}
