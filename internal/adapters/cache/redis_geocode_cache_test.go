package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	c := NewRedisGeocodeCache(srv.Addr(), "", 0)
	defer c.Close()

	ctx := context.Background()
	want := ports.GeocodeResult{
		Coordinates:    domain.Coordinates{Latitude: 40.7128, Longitude: -74.006},
		DisplayAddress: "New York, NY, United States",
	}

	if _, found, err := c.Get(ctx, "new york"); err != nil || found {
		t.Fatalf("expected a clean miss, found=%v err=%v", found, err)
	}

	if err := c.Put(ctx, "new york", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, found, err := c.Get(ctx, "new york")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected a hit after put")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRedisGeocodeCacheEntriesExpire(t *testing.T) {
	srv := miniredis.RunT(t)
	c := NewRedisGeocodeCache(srv.Addr(), "", 0)
	defer c.Close()

	ctx := context.Background()
	res := ports.GeocodeResult{Coordinates: domain.Coordinates{Latitude: 1, Longitude: 2}}
	if err := c.Put(ctx, "somewhere", res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv.FastForward(c.TTL * 2)

	if _, found, err := c.Get(ctx, "somewhere"); err != nil || found {
		t.Fatalf("expected the entry to expire, found=%v err=%v", found, err)
	}
}
