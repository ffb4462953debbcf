// internal/cache/cache.go
package cache

import (
	"sync"
	"sync/atomic"

	"dewdash/internal/status"
)

// Store holds the latest acquisition snapshot behind an atomic pointer
// swap. One writer (the poller), any number of readers. A reader never
// observes a torn update: the whole snapshot is replaced in one store.
type Store struct {
	cur atomic.Pointer[status.Snapshot]

	first     chan struct{}
	firstOnce sync.Once
}

// New returns a Store initialized to the disconnected, no-data state.
// The store exists before any reader can run.
func New() *Store {
	s := &Store{first: make(chan struct{})}
	initial := status.Snapshot{State: status.Disconnected}
	s.cur.Store(&initial)
	return s
}

// Snapshot returns the current snapshot by value.
func (s *Store) Snapshot() status.Snapshot {
	return *s.cur.Load()
}

// Update replaces the snapshot. Single-writer contract: only the
// acquisition loop may call this.
func (s *Store) Update(snap status.Snapshot) {
	s.cur.Store(&snap)
	if snap.Reading != nil {
		s.firstOnce.Do(func() { close(s.first) })
	}
}

// FirstReading is closed exactly once, when the first successful
// reading is published. Bootstrap hangs its one-shot browser launch
// off this channel.
func (s *Store) FirstReading() <-chan struct{} {
	return s.first
}
