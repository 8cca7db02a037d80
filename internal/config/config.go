package config

import (
	"os"
	"strconv"
)

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the integer environment value for key, or fallback when
// unset or unparsable.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Dispatch holds the scheduling tunables. These were literals in earlier
// revisions of the algorithm; they are configuration now so operators can
// adjust them without a rebuild.
type Dispatch struct {
	// SignificantDeltaMins is how much earlier a candidate's arrival must
	// be to win outright; within the delta, shorter travel wins.
	SignificantDeltaMins int
	// CapacityBufferMins is the reserved slack below the workday cap at
	// which a salesman stops receiving jobs.
	CapacityBufferMins int
	// WaitProbeMins is how far the clustered dispatcher advances an idle
	// salesman's clock when no job is feasible yet.
	WaitProbeMins int
}

// DefaultDispatch returns the tunables at their long-standing defaults.
func DefaultDispatch() Dispatch {
	return Dispatch{
		SignificantDeltaMins: 10,
		CapacityBufferMins:   80,
		WaitProbeMins:        15,
	}
}

// LoadDispatch reads the tunables from the environment.
func LoadDispatch() Dispatch {
	d := DefaultDispatch()
	d.SignificantDeltaMins = GetInt("DISPATCH_SIGNIFICANT_DELTA_MINS", d.SignificantDeltaMins)
	d.CapacityBufferMins = GetInt("DISPATCH_CAPACITY_BUFFER_MINS", d.CapacityBufferMins)
	d.WaitProbeMins = GetInt("DISPATCH_WAIT_PROBE_MINS", d.WaitProbeMins)
	return d
}
