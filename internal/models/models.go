package models

import "time"

// Task represents a single named stopwatch.
type Task struct {
	ID             string
	Name           string
	AccumulatedSec int
	Running        bool
	StartedAt      *time.Time // set iff Running
}

// Elapsed derives the displayed elapsed seconds at instant now.
// While running, the current interval is computed from the absolute
// start timestamp, so time while the process was down still counts.
func (t Task) Elapsed(now time.Time) int {
	seconds := t.AccumulatedSec
	if t.Running && t.StartedAt != nil {
		seconds += int(now.Sub(*t.StartedAt) / time.Second)
	}
	if seconds < 0 {
		seconds = 0
	}
	return seconds
}
