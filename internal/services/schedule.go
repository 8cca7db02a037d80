package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aserravalle/travelling-salesman-backend/internal/config"
	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
	"github.com/aserravalle/travelling-salesman-backend/internal/platform/obs"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

type ScheduleRequest struct {
	Jobs     []*domain.Job
	Salesmen []*domain.Salesman
	// Clusters is the desired number of geographic groups; zero means
	// one per salesman.
	Clusters int
}

// BuildRoster runs one full scheduling pass: resolve address-only
// locations, cluster the jobs geographically, and dispatch. When
// clustering cannot run (no coordinates, zero k) the simple greedy
// dispatcher is used instead.
//
// Each call owns its jobs and salesmen; nothing is shared across calls
// except the geocode cache beneath the geocoder.
func BuildRoster(
	ctx context.Context,
	req ScheduleRequest,
	provider ports.TravelTimeProvider,
	geocoder ports.Geocoder,
	cfg config.Dispatch,
) (_ *domain.Roster, err error) {
	defer obs.Time(ctx, "services.BuildRoster")(&err)
	start := time.Now()

	if geocoder != nil {
		if err := resolveLocations(ctx, req, geocoder); err != nil {
			return nil, fmt.Errorf("build roster: %w", err)
		}
	}

	k := req.Clusters
	if k <= 0 {
		k = len(req.Salesmen)
	}

	strategy := "simple"
	var roster *domain.Roster
	if ClusterJobs(req.Jobs, k) {
		strategy = "clustered"
		roster, err = AssignJobsClustered(ctx, req.Jobs, req.Salesmen, provider, cfg)
	} else {
		roster, err = AssignJobs(ctx, req.Jobs, req.Salesmen, provider, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("build roster: %w", err)
	}

	obs.RecordDispatch(strategy, roster.AssignedCount(), len(roster.UnassignedJobs), time.Since(start))
	return roster, nil
}

// resolveLocations geocodes every location that has an address but no
// coordinates. A geocoding failure is a hard failure for the whole call:
// no partial roster is produced from half-resolved input.
func resolveLocations(ctx context.Context, req ScheduleRequest, geocoder ports.Geocoder) error {
	for _, job := range req.Jobs {
		if err := resolveLocation(ctx, &job.Location, geocoder); err != nil {
			return fmt.Errorf("resolve job %s location: %w", job.JobID, err)
		}
	}
	for _, s := range req.Salesmen {
		if err := resolveLocation(ctx, &s.HomeLocation, geocoder); err != nil {
			return fmt.Errorf("resolve salesman %s home location: %w", s.SalesmanID, err)
		}
	}
	return nil
}

func resolveLocation(ctx context.Context, loc *domain.Location, geocoder ports.Geocoder) error {
	if loc.Resolved() || loc.Address == "" {
		return nil
	}
	res, err := geocoder.Geocode(ctx, loc.Address)
	if err != nil {
		return err
	}
	loc.Coordinates = &res.Coordinates
	return nil
}
