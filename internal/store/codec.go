package store

import (
	"encoding/json"
	"time"

	"github.com/avelikan/tally/internal/models"
)

// taskRecord is the persisted wire shape of a task. Accumulated time is
// whole seconds, the start of the current running interval is
// epoch-milliseconds. Older snapshots used the long field names, so the
// decoder accepts both spellings.
type taskRecord struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Accumulated    int    `json:"accumulated"`
	StartTimestamp *int64 `json:"startTimestamp,omitempty"`
	Running        bool   `json:"running"`

	AccumulatedSeconds *int   `json:"accumulatedSeconds,omitempty"`
	StartedAt          *int64 `json:"startedAt,omitempty"`
}

// EncodeTasks serializes the full task list as a JSON array.
func EncodeTasks(tasks []models.Task) (string, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		rec := taskRecord{
			ID:          t.ID,
			Name:        t.Name,
			Accumulated: t.AccumulatedSec,
			Running:     t.Running,
		}
		if t.StartedAt != nil {
			ms := t.StartedAt.UnixMilli()
			rec.StartTimestamp = &ms
		}
		records = append(records, rec)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeTasks parses a serialized task list. Records violating the
// running/startedAt invariant are normalized rather than rejected.
func DecodeTasks(payload string) ([]models.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(records))
	for _, rec := range records {
		task := models.Task{
			ID:             rec.ID,
			Name:           rec.Name,
			AccumulatedSec: rec.Accumulated,
			Running:        rec.Running,
		}
		if rec.AccumulatedSeconds != nil {
			task.AccumulatedSec = *rec.AccumulatedSeconds
		}
		if task.AccumulatedSec < 0 {
			task.AccumulatedSec = 0
		}
		ms := rec.StartTimestamp
		if ms == nil {
			ms = rec.StartedAt
		}
		if task.Running && ms != nil {
			started := time.UnixMilli(*ms)
			task.StartedAt = &started
		} else {
			task.Running = false
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
