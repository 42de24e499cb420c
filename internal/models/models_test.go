package models

import (
	"testing"
	"time"
)

func TestTaskZeroValues(t *testing.T) {
	var task Task
	if task.StartedAt != nil {
		t.Fatalf("expected nil StartedAt by default")
	}
	if task.Running {
		t.Fatalf("expected Running to default to false")
	}
	if got := task.Elapsed(time.Now()); got != 0 {
		t.Fatalf("expected zero elapsed, got %d", got)
	}
}

func TestElapsedPausedIgnoresNow(t *testing.T) {
	task := Task{AccumulatedSec: 42}
	for _, offset := range []time.Duration{0, time.Second, time.Hour, 24 * time.Hour} {
		if got := task.Elapsed(time.Now().Add(offset)); got != 42 {
			t.Fatalf("paused elapsed at +%s = %d, want 42", offset, got)
		}
	}
}

func TestElapsedRunningAddsInterval(t *testing.T) {
	start := time.Unix(1000, 0)
	task := Task{AccumulatedSec: 10, Running: true, StartedAt: &start}
	if got := task.Elapsed(start.Add(60 * time.Second)); got != 70 {
		t.Fatalf("elapsed = %d, want 70", got)
	}
	// Sub-second remainders truncate.
	if got := task.Elapsed(start.Add(5*time.Second + 900*time.Millisecond)); got != 15 {
		t.Fatalf("elapsed = %d, want 15", got)
	}
}

func TestElapsedNeverNegative(t *testing.T) {
	start := time.Unix(1000, 0)
	task := Task{Running: true, StartedAt: &start}
	if got := task.Elapsed(start.Add(-time.Minute)); got != 0 {
		t.Fatalf("elapsed = %d, want 0 for a clock behind the start", got)
	}
}
