package cache

import (
	"context"
	"testing"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

func TestMemoryGeocodeCache(t *testing.T) {
	c := NewMemoryGeocodeCache()
	ctx := context.Background()

	if _, found, err := c.Get(ctx, "lisbon"); err != nil || found {
		t.Fatalf("expected a clean miss, found=%v err=%v", found, err)
	}

	want := ports.GeocodeResult{
		Coordinates:    domain.Coordinates{Latitude: 38.7223, Longitude: -9.1393},
		DisplayAddress: "Lisboa, Portugal",
	}
	if err := c.Put(ctx, "lisbon", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, found, err := c.Get(ctx, "lisbon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || got != want {
		t.Fatalf("got %+v (found=%v), want %+v", got, found, want)
	}
}
