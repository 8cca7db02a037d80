package domain

import "time"

// DefaultMaxWorkdayMins caps a salesman's working minutes per day when the
// caller does not supply a limit.
const DefaultMaxWorkdayMins = 9 * 60

// dayState tracks whether the salesman has started working. It replaces
// the fragile "current time equals start time" equality check: Wait can
// move StartTime itself, so equality is not a safe encoding.
type dayState int

const (
	dayNotStarted dayState = iota
	dayWorking
)

// A mobile worker who performs jobs.
//
// The identity fields describe availability for the day; the run-state
// fields (CurrentLocation, CurrentTime, TimeWorkedMins) evolve as the
// dispatcher assigns jobs. CurrentTime and TimeWorkedMins only ever
// increase within a run.
type Salesman struct {
	SalesmanID     string
	Name           string
	HomeLocation   Location
	StartTime      time.Time
	EndTime        time.Time
	MaxWorkdayMins int

	CurrentLocation Location
	CurrentTime     time.Time
	TimeWorkedMins  int
	state           dayState
}

// StartDay resets run state for a fresh dispatch run. Roster.AddSalesmen
// calls this exactly once before dispatch begins.
func (s *Salesman) StartDay() {
	if s.MaxWorkdayMins <= 0 {
		s.MaxWorkdayMins = DefaultMaxWorkdayMins
	}
	s.CurrentLocation = s.HomeLocation
	s.CurrentTime = s.StartTime
	s.TimeWorkedMins = 0
	s.state = dayNotStarted
}

// EarliestAvailability is when the salesman can next take a job. It drives
// the idle-soonest-first worker ordering.
func (s *Salesman) EarliestAvailability() time.Time {
	if s.CurrentTime.IsZero() {
		return s.StartTime
	}
	return s.CurrentTime
}

// IsFirstJob reports whether the salesman has not started working yet.
func (s *Salesman) IsFirstJob() bool {
	return s.state == dayNotStarted
}

// ArrivalTime is the earliest the salesman could begin the given job.
// Travel time only matters once the salesman has left home: the commute
// to the first job happens before the day starts.
func (s *Salesman) ArrivalTime(job *Job, travel time.Duration) time.Time {
	var arrival time.Time
	if s.IsFirstJob() {
		arrival = s.StartTime
	} else {
		arrival = s.CurrentTime.Add(travel)
	}
	if arrival.Before(job.EntryTime) {
		arrival = job.EntryTime
	}
	return arrival
}

// CanCompleteInTime reports whether finishing at completion violates
// neither the job's deadline, the salesman's end of day, nor the workday
// cap measured from the (possibly shifted) start of the day. Pure with
// respect to run state.
func (s *Salesman) CanCompleteInTime(jobExit, completion time.Time) bool {
	deadline := s.EndTime
	if jobExit.Before(deadline) {
		deadline = jobExit
	}
	if completion.After(deadline) {
		return false
	}
	return completion.Sub(s.StartTime) <= time.Duration(s.MaxWorkdayMins)*time.Minute
}

// AtMaxCapacity reports whether the salesman is close enough to the
// workday cap to stop receiving jobs. The buffer leaves intentional slack
// so the last assignable job of the day is not missed due to rounding.
func (s *Salesman) AtMaxCapacity(bufferMins int) bool {
	return s.TimeWorkedMins >= s.MaxWorkdayMins-bufferMins
}

// Assign advances run state after a job has been accepted. The buffer is
// the gap between the previous clock and the job's start, covering both
// travel and idle waiting. The first job of the day resets StartTime to
// the job's start and does not charge the buffer: the commute to the
// first job is unpaid.
func (s *Salesman) Assign(job *Job) {
	buffer := int(job.StartTime.Sub(s.CurrentTime) / time.Minute)
	if s.IsFirstJob() {
		s.StartTime = *job.StartTime
		buffer = 0
		s.state = dayWorking
	}
	s.CurrentLocation = job.Location
	s.CurrentTime = job.StartTime.Add(job.Duration())
	s.TimeWorkedMins += job.DurationMins + buffer
}

// Wait advances the salesman's clock without assigning a job, used when
// every remaining job's entry time is still in the future. Before the
// first job the wait is free and shifts the whole day forward; once
// working, idle time is paid and counts against the workday cap.
func (s *Salesman) Wait(d time.Duration) {
	if s.IsFirstJob() {
		s.StartTime = s.StartTime.Add(d)
		s.CurrentTime = s.CurrentTime.Add(d)
		return
	}
	s.CurrentTime = s.CurrentTime.Add(d)
	s.TimeWorkedMins += int(d / time.Minute)
}
