package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/aserravalle/travelling-salesman-backend/internal/adapters/cache"
	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

type countingGeocoder struct {
	calls int
	res   ports.GeocodeResult
	err   error
}

func (g *countingGeocoder) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	g.calls++
	return g.res, g.err
}

func TestCachedGeocoderServesRepeatsFromCache(t *testing.T) {
	backing := &countingGeocoder{
		res: ports.GeocodeResult{
			Coordinates:    domain.Coordinates{Latitude: 41.3874, Longitude: 2.1686},
			DisplayAddress: "Barcelona, Spain",
		},
	}
	g := NewCachedGeocoder(backing, cache.NewMemoryGeocodeCache())
	ctx := context.Background()

	first, err := g.Geocode(ctx, "barcelona")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.Geocode(ctx, "barcelona")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if backing.calls != 1 {
		t.Fatalf("backing geocoder called %d times, want 1", backing.calls)
	}
	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestCachedGeocoderRejectsEmptyAddress(t *testing.T) {
	g := NewCachedGeocoder(&countingGeocoder{}, cache.NewMemoryGeocodeCache())
	if _, err := g.Geocode(context.Background(), "   "); err == nil {
		t.Fatal("expected an error for a blank address")
	}
}

func TestCachedGeocoderPropagatesBackendFailure(t *testing.T) {
	backing := &countingGeocoder{err: errors.New("nominatim down")}
	g := NewCachedGeocoder(backing, cache.NewMemoryGeocodeCache())
	if _, err := g.Geocode(context.Background(), "barcelona"); err == nil {
		t.Fatal("expected the backend error to propagate")
	}
}
