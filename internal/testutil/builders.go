// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"time"

	"github.com/avelikan/tally/internal/models"
	"github.com/rs/xid"
)

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:   xid.New().String(),
			Name: "Test Task",
		},
	}
}

func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.Name = name
	return b
}

func (b *TaskBuilder) WithAccumulated(seconds int) *TaskBuilder {
	b.task.AccumulatedSec = seconds
	return b
}

// RunningSince marks the task running with the given interval start.
func (b *TaskBuilder) RunningSince(start time.Time) *TaskBuilder {
	b.task.Running = true
	b.task.StartedAt = &start
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}
