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

// ungroupedCluster buckets jobs the clustering pre-pass never touched,
// so the dispatcher treats them like any other cluster instead of
// special-casing nil.
const ungroupedCluster = -1

// AssignJobsClustered dispatches jobs with the clustering-aware strategy.
//
// The pool is ordered most-urgent-first. Salesmen are processed one at a
// time: the first feasible job a salesman accepts fixes their current
// cluster, and they keep taking feasible jobs from that cluster (the scan
// restarts after every pick because the salesman's clock and location
// moved) until nothing in it fits; the cluster is then exhausted for that
// salesman only. When no job is feasible anywhere the salesman's clock
// advances by the wait probe, which unblocks jobs whose entry time is
// still ahead. Greedy-by-arrival alone thrashes salesmen across the map;
// urgency-first-then-geography keeps each salesman's run spatially tight
// while still respecting deadlines.
func AssignJobsClustered(
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
	sortJobsByUrgency(pool)

	workers := make([]*domain.Salesman, len(salesmen))
	copy(workers, salesmen)
	sort.SliceStable(workers, func(i, j int) bool {
		return workers[i].EarliestAvailability().Before(workers[j].EarliestAvailability())
	})

	probe := time.Duration(cfg.WaitProbeMins) * time.Minute

	for _, s := range workers {
		exhausted := make(map[int]bool)
		var current *int

		for {
			if s.AtMaxCapacity(cfg.CapacityBufferMins) || len(pool) == 0 {
				break
			}

			idx, arrival, err := nextFeasibleJob(ctx, s, pool, current, exhausted, provider)
			if err != nil {
				return nil, fmt.Errorf("assign jobs clustered: salesman %s: %w", s.SalesmanID, err)
			}

			if idx >= 0 {
				job := pool[idx]
				c := clusterOf(job)
				roster.Assign(job, s, arrival)
				pool = append(pool[:idx], pool[idx+1:]...)
				current = &c
				continue
			}

			if current != nil {
				// Nothing left in the fixed cluster fits this salesman;
				// other salesmen may still draw from it.
				exhausted[*current] = true
				current = nil
				continue
			}

			if allClustersExhausted(pool, exhausted) {
				break
			}

			// Waiting only helps jobs whose entry time is still ahead;
			// past the end of the day nothing can become feasible.
			if s.CurrentTime.Add(probe).After(s.EndTime) {
				break
			}
			s.Wait(probe)
		}
	}

	for _, job := range pool {
		roster.MarkUnassigned(job)
	}

	switch {
	case len(roster.UnassignedJobs) > 0:
		roster.Message = domain.MessageUnassigned
	case roster.HasIdleSalesman():
		roster.Message = domain.MessageUnusedSalesmen
	default:
		roster.Message = domain.MessageAllAssigned
	}
	return roster, nil
}

// nextFeasibleJob scans the pool in urgency order and returns the index
// and arrival time of the first job the salesman can take, or -1.
// A salesman who has not started yet never jumps ahead in time, so jobs
// with a future entry time are skipped until the wait probe catches up.
func nextFeasibleJob(
	ctx context.Context,
	s *domain.Salesman,
	pool []*domain.Job,
	current *int,
	exhausted map[int]bool,
	provider ports.TravelTimeProvider,
) (int, time.Time, error) {
	for i, job := range pool {
		c := clusterOf(job)
		if exhausted[c] {
			continue
		}
		if current != nil && c != *current {
			continue
		}
		if s.IsFirstJob() && job.EntryTime.After(s.CurrentTime) {
			continue
		}

		travel, err := provider.TravelTime(ctx, s.CurrentLocation, job.Location)
		if err != nil {
			return -1, time.Time{}, fmt.Errorf("travel time for job %s: %w", job.JobID, err)
		}

		arrival := s.ArrivalTime(job, travel)
		completion := arrival.Add(job.Duration())
		if !s.CanCompleteInTime(job.ExitTime, completion) {
			continue
		}
		return i, arrival, nil
	}
	return -1, time.Time{}, nil
}

func clusterOf(j *domain.Job) int {
	if j.Cluster != nil {
		return *j.Cluster
	}
	return ungroupedCluster
}

func allClustersExhausted(pool []*domain.Job, exhausted map[int]bool) bool {
	for _, job := range pool {
		if !exhausted[clusterOf(job)] {
			return false
		}
	}
	return true
}
