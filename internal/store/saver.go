package store

import (
	"context"
	"time"

	"github.com/avelikan/tally/internal/util"
)

const saveTimeout = 5 * time.Second

// KV is the opaque persistence collaborator.
type KV interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Saver writes snapshots to the KV store off the UI goroutine.
// Its buffer holds at most one pending snapshot: enqueueing while a
// write is in flight replaces the pending payload, so the last
// mutation's snapshot is the one that lands.
type Saver struct {
	kv   KV
	key  string
	ch   chan string
	done chan struct{}
}

func NewSaver(kv KV, key string) *Saver {
	s := &Saver{
		kv:   kv,
		key:  key,
		ch:   make(chan string, 1),
		done: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *Saver) loop() {
	defer close(s.done)
	for payload := range s.ch {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		util.LogError("persist tasks", s.kv.Set(ctx, s.key, payload))
		cancel()
	}
}

// Enqueue hands a snapshot to the writer without blocking.
func (s *Saver) Enqueue(payload string) {
	for {
		select {
		case s.ch <- payload:
			return
		default:
			// Drop the stale pending snapshot and retry.
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// Close flushes the pending snapshot, if any, and stops the writer.
func (s *Saver) Close() {
	close(s.ch)
	<-s.done
}
