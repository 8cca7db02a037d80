package services

import (
	"context"
	"testing"
	"time"

	"github.com/aserravalle/travelling-salesman-backend/internal/adapters/travel"
	"github.com/aserravalle/travelling-salesman-backend/internal/config"
	"github.com/aserravalle/travelling-salesman-backend/internal/domain"
)

func date(hour, min int) time.Time {
	return time.Date(2025, 2, 5, hour, min, 0, 0, time.UTC)
}

func newSalesman(id, home string) *domain.Salesman {
	return &domain.Salesman{
		SalesmanID:   id,
		HomeLocation: domain.Location{Address: home},
		StartTime:    date(9, 0),
		EndTime:      date(17, 0),
	}
}

func newJob(t *testing.T, id, addr string, durationMins int, entry, exit time.Time) *domain.Job {
	t.Helper()
	job, err := domain.NewJob(id, date(0, 0), domain.Location{Address: addr}, durationMins, entry, exit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return job
}

func TestAssignJobsSimpleFeasible(t *testing.T) {
	sman := newSalesman("1", "A")
	job := newJob(t, "1", "A", 60, date(10, 0), date(14, 0))

	roster, err := AssignJobs(context.Background(),
		[]*domain.Job{job}, []*domain.Salesman{sman},
		travel.NewFixedEstimator(30*time.Minute), config.DefaultDispatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roster.Jobs["1"]) != 1 {
		t.Fatalf("expected 1 assigned job, got %d", len(roster.Jobs["1"]))
	}
	if !job.StartTime.Equal(date(10, 0)) {
		t.Fatalf("start = %v, want %v", job.StartTime, date(10, 0))
	}
	if roster.Message != domain.MessageAllAssigned {
		t.Fatalf("message = %q, want %q", roster.Message, domain.MessageAllAssigned)
	}
}

func TestAssignJobsDeadlineMiss(t *testing.T) {
	sman := newSalesman("1", "A")
	// Entirely outside the salesman's 09:00-17:00 window.
	job := newJob(t, "1", "A", 30, date(18, 30), date(19, 0))

	roster, err := AssignJobs(context.Background(),
		[]*domain.Job{job}, []*domain.Salesman{sman},
		travel.NewFixedEstimator(30*time.Minute), config.DefaultDispatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roster.UnassignedJobs) != 1 {
		t.Fatalf("expected 1 unassigned job, got %d", len(roster.UnassignedJobs))
	}
	if len(roster.Jobs["1"]) != 0 {
		t.Fatal("salesman should have no jobs")
	}
	if roster.Message != domain.MessageUnassigned {
		t.Fatalf("message = %q, want %q", roster.Message, domain.MessageUnassigned)
	}
}

func TestAssignJobsEmptyInput(t *testing.T) {
	salesmen := []*domain.Salesman{newSalesman("1", "A"), newSalesman("2", "B")}

	roster, err := AssignJobs(context.Background(),
		nil, salesmen, travel.NewFixedEstimator(0), config.DefaultDispatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if roster.Message != domain.MessageNoJobs {
		t.Fatalf("message = %q, want %q", roster.Message, domain.MessageNoJobs)
	}
	if len(roster.UnassignedJobs) != 0 {
		t.Fatal("unassigned list should be empty")
	}
	for id, jobs := range roster.Jobs {
		if len(jobs) != 0 {
			t.Fatalf("salesman %s should have no jobs", id)
		}
	}
}

func TestAssignJobsTieBreakByTravelTime(t *testing.T) {
	// Both arrive at 10:00 (first-job arrival ignores travel), so the
	// arrival times are within the significant delta and the shorter
	// travel must win.
	near := newSalesman("near", "N")
	far := newSalesman("far", "F")
	job := newJob(t, "1", "J", 60, date(10, 0), date(14, 0))

	provider := travel.NewMockEstimator([]travel.MockPair{
		{From: "F", To: "J", Minutes: 5},
		{From: "N", To: "J", Minutes: 45},
	})

	roster, err := AssignJobs(context.Background(),
		[]*domain.Job{job}, []*domain.Salesman{near, far},
		provider, config.DefaultDispatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roster.Jobs["far"]) != 1 {
		t.Fatalf("expected the closer salesman to win, jobs: near=%d far=%d",
			len(roster.Jobs["near"]), len(roster.Jobs["far"]))
	}
}

func TestAssignJobsEarlierArrivalWinsOutright(t *testing.T) {
	early := newSalesman("early", "E")
	late := newSalesman("late", "L")
	late.StartTime = date(11, 0)

	job := newJob(t, "1", "J", 60, date(9, 0), date(16, 0))

	// The late salesman is much closer, but arrives two hours later:
	// well past the significant delta, so proximity does not matter.
	provider := travel.NewMockEstimator([]travel.MockPair{
		{From: "E", To: "J", Minutes: 55},
		{From: "L", To: "J", Minutes: 1},
	})

	roster, err := AssignJobs(context.Background(),
		[]*domain.Job{job}, []*domain.Salesman{late, early},
		provider, config.DefaultDispatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roster.Jobs["early"]) != 1 {
		t.Fatal("expected the earlier arrival to win outright")
	}
}

func TestAssignJobsConservationAndMonotonicity(t *testing.T) {
	sman := newSalesman("1", "H")
	jobs := []*domain.Job{
		newJob(t, "1", "X", 60, date(9, 0), date(12, 0)),
		newJob(t, "2", "Y", 60, date(9, 0), date(14, 0)),
		newJob(t, "3", "Z", 60, date(16, 30), date(17, 0)),
	}

	roster, err := AssignJobs(context.Background(),
		jobs, []*domain.Salesman{sman},
		travel.NewFixedEstimator(30*time.Minute), config.DefaultDispatch())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every input job lands in exactly one bucket.
	seen := make(map[string]int)
	for _, assigned := range roster.Jobs {
		for _, j := range assigned {
			seen[j.JobID]++
		}
	}
	for _, j := range roster.UnassignedJobs {
		seen[j.JobID]++
	}
	for _, j := range jobs {
		if seen[j.JobID] != 1 {
			t.Fatalf("job %s appears %d times, want exactly 1", j.JobID, seen[j.JobID])
		}
	}

	// Start times never go backwards within one salesman's list.
	assigned := roster.Jobs["1"]
	if len(assigned) != 2 {
		t.Fatalf("expected 2 assigned jobs, got %d", len(assigned))
	}
	for i := 1; i < len(assigned); i++ {
		if assigned[i].StartTime.Before(*assigned[i-1].StartTime) {
			t.Fatal("assigned start times must be non-decreasing")
		}
	}

	// The clock tracks the last completion.
	last := assigned[len(assigned)-1]
	if !sman.CurrentTime.Equal(last.StartTime.Add(last.Duration())) {
		t.Fatalf("current time = %v, want %v", sman.CurrentTime, last.StartTime.Add(last.Duration()))
	}
}
