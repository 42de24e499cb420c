// Package store implements the task-timer accounting model: a single
// owned task list whose displayed elapsed time is derived from absolute
// start timestamps, with whole-list persistence after every mutation.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/avelikan/tally/internal/models"
	"github.com/avelikan/tally/internal/util"
	"github.com/rs/xid"
)

// TasksKey is the KV key holding the serialized task list.
const TasksKey = "tasks"

// TimerStore owns the in-memory task list and its persistence
// round-trip. All mutations happen on the UI goroutine; only the
// saver's write lands asynchronously.
type TimerStore struct {
	tasks []models.Task
	kv    KV
	saver *Saver
	now   func() time.Time
}

func New(kv KV) *TimerStore {
	return &TimerStore{
		kv:    kv,
		saver: NewSaver(kv, TasksKey),
		now:   time.Now,
	}
}

// Load reads the persisted task list. A missing or unparsable payload
// leaves the store empty; startup is never blocked by bad state.
// Tasks persisted as running stay running with their original start
// timestamp — Elapsed accounts for the downtime without correction.
func (s *TimerStore) Load(ctx context.Context) {
	payload, ok := s.kv.Get(ctx, TasksKey)
	if !ok || strings.TrimSpace(payload) == "" {
		s.tasks = nil
		return
	}
	tasks, err := DecodeTasks(payload)
	if err != nil {
		util.LogError("load tasks", err)
		s.tasks = nil
		return
	}
	s.tasks = tasks
}

// Add creates a new running task and returns its id.
func (s *TimerStore) Add(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", wrapTaskErr("add", "", ErrEmptyName)
	}
	started := s.now()
	task := models.Task{
		ID:        xid.New().String(),
		Name:      name,
		Running:   true,
		StartedAt: &started,
	}
	s.tasks = append(s.tasks, task)
	s.persist()
	return task.ID, nil
}

// Toggle pauses a running task or resumes a paused one.
func (s *TimerStore) Toggle(id string) error {
	task := s.find(id)
	if task == nil {
		return wrapTaskErr("toggle", id, ErrNotFound)
	}
	if task.Running {
		return s.Pause(id)
	}
	return s.Resume(id)
}

// Pause banks the whole seconds of the current running interval into
// the accumulator and stops the task. No-op when already paused.
func (s *TimerStore) Pause(id string) error {
	task := s.find(id)
	if task == nil {
		return wrapTaskErr("pause", id, ErrNotFound)
	}
	if !task.Running {
		return nil
	}
	task.AccumulatedSec = task.Elapsed(s.now())
	task.Running = false
	task.StartedAt = nil
	s.persist()
	return nil
}

// Resume restarts accumulation from now. The accumulator is kept.
// No-op when already running.
func (s *TimerStore) Resume(id string) error {
	task := s.find(id)
	if task == nil {
		return wrapTaskErr("resume", id, ErrNotFound)
	}
	if task.Running {
		return nil
	}
	started := s.now()
	task.Running = true
	task.StartedAt = &started
	s.persist()
	return nil
}

// Reset zeroes the accumulator and stops the task regardless of prior
// state. Confirmation is the caller's responsibility.
func (s *TimerStore) Reset(id string) error {
	task := s.find(id)
	if task == nil {
		return wrapTaskErr("reset", id, ErrNotFound)
	}
	task.AccumulatedSec = 0
	task.Running = false
	task.StartedAt = nil
	s.persist()
	return nil
}

// Remove deletes the task permanently. Confirmation is the caller's
// responsibility.
func (s *TimerStore) Remove(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist()
			return nil
		}
	}
	return wrapTaskErr("remove", id, ErrNotFound)
}

// Elapsed derives the displayed elapsed seconds for a task at instant
// now. Pure read; safe to call once per task per render tick.
func (s *TimerStore) Elapsed(id string, now time.Time) (int, error) {
	task := s.find(id)
	if task == nil {
		return 0, wrapTaskErr("query", id, ErrNotFound)
	}
	return task.Elapsed(now), nil
}

// Tasks returns a copy of the task list for rendering.
func (s *TimerStore) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TimerStore) Len() int { return len(s.tasks) }

// Close flushes any pending snapshot write.
func (s *TimerStore) Close() {
	s.saver.Close()
}

func (s *TimerStore) find(id string) *models.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

// persist serializes the whole list and hands it to the async saver.
// The in-memory state stays authoritative if the write fails.
func (s *TimerStore) persist() {
	payload, err := EncodeTasks(s.tasks)
	if err != nil {
		util.LogError("encode tasks", err)
		return
	}
	s.saver.Enqueue(payload)
}
