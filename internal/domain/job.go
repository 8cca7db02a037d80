package domain

import (
	"fmt"
	"log"
	"time"
)

// A time-windowed unit of work at a location.
//
// Identity fields are set at construction and never change. The assignment
// fields (SalesmanID, SalesmanName, StartTime) are nil/empty until the
// dispatcher assigns the job, and are mutated exactly once.
type Job struct {
	JobID        string
	ClientName   string
	Date         time.Time
	Location     Location
	DurationMins int
	EntryTime    time.Time
	ExitTime     time.Time

	// Cluster is populated by the clustering pre-pass; nil means ungrouped.
	Cluster *int

	SalesmanID   string
	SalesmanName string
	StartTime    *time.Time
}

// NewJob validates and constructs a job.
//
// A non-positive duration is rejected. An inverted window (exit before
// entry) is not rejected: the exit time is widened to cover
// entry + duration. The repair is logged so callers can see their
// deadlines were changed.
func NewJob(id string, date time.Time, loc Location, durationMins int, entry, exit time.Time) (*Job, error) {
	if durationMins <= 0 {
		return nil, fmt.Errorf("new job %q: duration must be positive, got %d", id, durationMins)
	}

	if exit.Before(entry) {
		widened := entry.Add(time.Duration(durationMins) * time.Minute)
		log.Printf("job window repaired: job=%s exit=%s widened_to=%s",
			id, exit.Format(time.RFC3339), widened.Format(time.RFC3339))
		exit = widened
	}

	return &Job{
		JobID:        id,
		Date:         date,
		Location:     loc,
		DurationMins: durationMins,
		EntryTime:    entry,
		ExitTime:     exit,
	}, nil
}

// Duration returns the service time as a time.Duration.
func (j *Job) Duration() time.Duration {
	return time.Duration(j.DurationMins) * time.Minute
}

// WindowMins is the width of the job's time window in minutes.
func (j *Job) WindowMins() int {
	return int(j.ExitTime.Sub(j.EntryTime) / time.Minute)
}

// Urgency scores the job as duration² / window. A longer job in a tighter
// window is more urgent. A degenerate zero-width window is floored at one
// minute so the job sorts first rather than dividing by zero.
func (j *Job) Urgency() float64 {
	window := j.WindowMins()
	if window < 1 {
		window = 1
	}
	return float64(j.DurationMins*j.DurationMins) / float64(window)
}

// Assigned reports whether the dispatcher has already taken this job.
func (j *Job) Assigned() bool {
	return j.StartTime != nil
}

// Assign records the salesman and start time. Callers invoke this exactly
// once per job, through Roster.Assign.
func (j *Job) Assign(salesmanID, salesmanName string, start time.Time) {
	j.SalesmanID = salesmanID
	j.SalesmanName = salesmanName
	j.StartTime = &start
}
