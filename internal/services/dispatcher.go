package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aserravalle/travelling-salesman-backend/internal/config"
	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

// AssignJobs dispatches jobs with the simple greedy strategy.
//
// Jobs are processed in schedule order (date, entry time, window width);
// for each job every salesman is scored by earliest possible arrival.
// A candidate wins outright when it arrives earlier by more than the
// configured significant delta; within the delta the shorter travel time
// wins, so a much-closer salesman is not ignored for arriving marginally
// later. A job no salesman can take is recorded, not an error.
//
// The algorithm is strictly sequential: each acceptance must observe the
// effects of all prior acceptances on the same salesman.
func AssignJobs(
	ctx context.Context,
	jobs []*domain.Job,
	salesmen []*domain.Salesman,
	provider ports.TravelTimeProvider,
	cfg config.Dispatch,
) (*domain.Roster, error) {
	roster := domain.NewRoster(rosterDate(jobs))
	roster.AddSalesmen(salesmen)

	if len(jobs) == 0 {
		roster.Message = domain.MessageNoJobs
		return roster, nil
	}

	pool := make([]*domain.Job, len(jobs))
	copy(pool, jobs)
	sortJobsBySchedule(pool)

	order := make([]*domain.Salesman, len(salesmen))
	copy(order, salesmen)

	delta := time.Duration(cfg.SignificantDeltaMins) * time.Minute

	for _, job := range pool {
		// Idle-soonest salesmen are considered first; stable sort keeps
		// input order on ties so runs are deterministic.
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].EarliestAvailability().Before(order[j].EarliestAvailability())
		})

		var (
			best        *domain.Salesman
			bestArrival time.Time
			bestTravel  time.Duration
		)

		for _, s := range order {
			travel, err := provider.TravelTime(ctx, s.CurrentLocation, job.Location)
			if err != nil {
				return nil, fmt.Errorf("assign jobs: travel time for job %s salesman %s: %w",
					job.JobID, s.SalesmanID, err)
			}

			arrival := s.ArrivalTime(job, travel)
			completion := arrival.Add(job.Duration())
			if !s.CanCompleteInTime(job.ExitTime, completion) {
				continue
			}

			switch {
			case best == nil:
				best, bestArrival, bestTravel = s, arrival, travel
			case bestArrival.Sub(arrival) > delta:
				// Earlier by more than the delta wins outright.
				best, bestArrival, bestTravel = s, arrival, travel
			case absDiff(arrival, bestArrival) <= delta && travel < bestTravel:
				best, bestArrival, bestTravel = s, arrival, travel
			}
		}

		if best == nil {
			roster.MarkUnassigned(job)
			continue
		}
		roster.Assign(job, best, bestArrival)
	}

	if len(roster.UnassignedJobs) > 0 {
		roster.Message = domain.MessageUnassigned
	} else {
		roster.Message = domain.MessageAllAssigned
	}
	return roster, nil
}

// sortJobsBySchedule orders jobs by date, then entry time, then window
// tightness. Stable, so equal jobs keep their arrival order.
func sortJobsBySchedule(jobs []*domain.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.EntryTime.Equal(b.EntryTime) {
			return a.EntryTime.Before(b.EntryTime)
		}
		return a.WindowMins() < b.WindowMins()
	})
}

// sortJobsByUrgency orders jobs most-urgent-first. Stable.
func sortJobsByUrgency(jobs []*domain.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Urgency() > jobs[j].Urgency()
	})
}

func rosterDate(jobs []*domain.Job) time.Time {
	if len(jobs) > 0 {
		return jobs[0].Date
	}
	return time.Now()
}

func absDiff(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
