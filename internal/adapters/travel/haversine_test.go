package travel

import (
	"context"
	"testing"
	"time"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
)

func loc(lat, lon float64) domain.Location {
	return domain.Location{Coordinates: &domain.Coordinates{Latitude: lat, Longitude: lon}}
}

func TestHaversineSamePlaceIsFree(t *testing.T) {
	h := NewHaversineEstimator(DefaultSpeedKmh)
	d, err := h.TravelTime(context.Background(), loc(40.0, -74.0), loc(40.0, -74.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("duration = %v, want 0", d)
	}
}

func TestHaversineOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111 km; at 40 km/h that is ~167 minutes.
	h := NewHaversineEstimator(40)
	d, err := h.TravelTime(context.Background(), loc(40.0, -74.0), loc(41.0, -74.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mins := d / time.Minute
	if mins < 166 || mins > 168 {
		t.Fatalf("duration = %v, want roughly 167 minutes", d)
	}
}

func TestHaversineRejectsUnresolvedLocation(t *testing.T) {
	h := NewHaversineEstimator(DefaultSpeedKmh)
	_, err := h.TravelTime(context.Background(),
		domain.Location{Address: "nowhere"}, loc(40.0, -74.0))
	if err == nil {
		t.Fatal("expected an error for an unresolved location")
	}
}

func TestNewHaversineEstimatorDefaultsSpeed(t *testing.T) {
	h := NewHaversineEstimator(0)
	if h.SpeedKmh != DefaultSpeedKmh {
		t.Fatalf("speed = %v, want %v", h.SpeedKmh, DefaultSpeedKmh)
	}
}
