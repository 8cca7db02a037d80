package domain

import (
	"testing"
	"time"
)

func date(hour, min int) time.Time {
	return time.Date(2025, 2, 5, hour, min, 0, 0, time.UTC)
}

func TestJobUrgency(t *testing.T) {
	job, err := NewJob("1", date(0, 0), Location{Address: "A"}, 60, date(10, 0), date(14, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// duration² / window = 3600 / 240
	if got := job.Urgency(); got != 15 {
		t.Fatalf("urgency = %v, want 15", got)
	}
}

func TestJobUrgencyZeroWidthWindow(t *testing.T) {
	job, err := NewJob("1", date(0, 0), Location{Address: "A"}, 30, date(10, 0), date(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Window floored at one minute instead of dividing by zero.
	if got := job.Urgency(); got != 900 {
		t.Fatalf("urgency = %v, want 900", got)
	}
}

func TestNewJobRejectsNonPositiveDuration(t *testing.T) {
	if _, err := NewJob("1", date(0, 0), Location{Address: "A"}, 0, date(10, 0), date(14, 0)); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if _, err := NewJob("1", date(0, 0), Location{Address: "A"}, -30, date(10, 0), date(14, 0)); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestNewJobWidensInvertedWindow(t *testing.T) {
	// Exit before entry is repaired, not rejected: the window is widened
	// to cover entry + duration.
	job, err := NewJob("1", date(0, 0), Location{Address: "A"}, 60, date(10, 0), date(9, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !job.ExitTime.Equal(date(11, 0)) {
		t.Fatalf("exit = %v, want %v", job.ExitTime, date(11, 0))
	}
}

func TestJobAssign(t *testing.T) {
	job, err := NewJob("1", date(0, 0), Location{Address: "A"}, 60, date(10, 0), date(14, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.Assigned() {
		t.Fatal("new job must not be assigned")
	}

	job.Assign("7", "Ale", date(10, 30))

	if !job.Assigned() {
		t.Fatal("job should be assigned")
	}
	if job.SalesmanID != "7" || job.SalesmanName != "Ale" {
		t.Fatalf("salesman = %q/%q, want 7/Ale", job.SalesmanID, job.SalesmanName)
	}
	if !job.StartTime.Equal(date(10, 30)) {
		t.Fatalf("start = %v, want %v", job.StartTime, date(10, 30))
	}
}
