package ports

import (
	"context"
	"time"

	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
)

// Contract for estimating one-way travel time between two locations.
// Implementations may use a closed-form distance estimate or a
// geocoding-backed lookup; symmetry is not required.
type TravelTimeProvider interface {
	// Return the estimated travel duration from one location to another.
	TravelTime(ctx context.Context, from, to domain.Location) (time.Duration, error)
}
