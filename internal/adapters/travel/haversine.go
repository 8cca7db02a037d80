package travel

import (
	"context"
	"fmt"
	"time"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
)

// DefaultSpeedKmh is the assumed average door-to-door speed for the
// closed-form estimate.
const DefaultSpeedKmh = 40.0

// HaversineEstimator estimates travel time from great-circle distance at
// a fixed average speed. It is a crude stand-in for road routing but is
// symmetric, deterministic, and needs no network.
type HaversineEstimator struct {
	SpeedKmh float64
}

func NewHaversineEstimator(speedKmh float64) *HaversineEstimator {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}
	return &HaversineEstimator{SpeedKmh: speedKmh}
}

func (h *HaversineEstimator) TravelTime(ctx context.Context, from, to domain.Location) (time.Duration, error) {
	if !from.Resolved() || !to.Resolved() {
		return 0, fmt.Errorf("haversine travel time: unresolved location (from=%q to=%q)", from.Address, to.Address)
	}
	if from.SamePlace(to) {
		return 0, nil
	}

	meters := from.Coordinates.DistanceMeters(*to.Coordinates)
	hours := meters / 1000 / h.SpeedKmh
	return time.Duration(hours * float64(time.Hour)).Round(time.Minute), nil
}
