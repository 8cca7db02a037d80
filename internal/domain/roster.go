package domain

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Roster status messages, evaluated once after a dispatch run.
const (
	MessageNoJobs         = "No jobs to assign"
	MessageUnassigned     = "Roster completed with unassigned jobs"
	MessageUnusedSalesmen = "Roster completed with unused salesmen"
	MessageAllAssigned    = "Roster completed with all jobs assigned"
)

// Roster accumulates the outcome of one dispatch run: per-salesman job
// sequences in assignment order, the jobs no salesman could take, and a
// human-readable status message. It is created once per run and never
// outlives it.
type Roster struct {
	RosterID       string
	Date           time.Time
	Jobs           map[string][]*Job
	UnassignedJobs []*Job
	Message        string
}

func NewRoster(date time.Time) *Roster {
	return &Roster{
		RosterID:       uuid.NewString(),
		Date:           date,
		Jobs:           make(map[string][]*Job),
		UnassignedJobs: []*Job{},
	}
}

// AddSalesmen initializes run state for each salesman and creates their
// empty assignment list. Must be called exactly once before dispatch.
func (r *Roster) AddSalesmen(salesmen []*Salesman) {
	for _, s := range salesmen {
		s.StartDay()
		r.Jobs[s.SalesmanID] = []*Job{}
	}
}

// Assign is the single mutation point for an accepted job. The ordering
// matters: the job's start time must be finalized before the salesman's
// state advances, because Salesman.Assign reads it.
func (r *Roster) Assign(job *Job, s *Salesman, start time.Time) {
	job.Assign(s.SalesmanID, s.Name, start)
	s.Assign(job)
	r.Jobs[s.SalesmanID] = append(r.Jobs[s.SalesmanID], job)

	log.Printf("assigned salesman=%s job=%s urgency=%.1f duration=%d start=%s addr=%q",
		s.SalesmanID, job.JobID, job.Urgency(), job.DurationMins,
		start.Format("15:04"), truncate(job.Location.Address, 40))
}

// MarkUnassigned records a job no salesman could take. Not an error.
func (r *Roster) MarkUnassigned(job *Job) {
	r.UnassignedJobs = append(r.UnassignedJobs, job)
}

// AssignedCount is the total number of jobs across all salesmen.
func (r *Roster) AssignedCount() int {
	n := 0
	for _, jobs := range r.Jobs {
		n += len(jobs)
	}
	return n
}

// HasIdleSalesman reports whether any salesman received zero jobs.
func (r *Roster) HasIdleSalesman() bool {
	for _, jobs := range r.Jobs {
		if len(jobs) == 0 {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
