package sqlite

import (
	"log"
	"sync"
	"time"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

// DefaultSaveDelay is the debounce window for coalesced auto-saves.
const DefaultSaveDelay = time.Second

// Saver debounces layout saves: each Schedule supersedes the pending one
// and restarts the delay, so a burst of edits produces a single write.
// Storage errors are logged, never surfaced — in-memory state stays the
// source of truth until the next successful save.
type Saver struct {
	backend *Backend
	delay   time.Duration
	logger  *log.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *types.Layout
	closed  bool
}

// NewSaver creates a debounced saver over the backend. A non-positive
// delay falls back to DefaultSaveDelay; a nil logger falls back to the
// standard logger.
func NewSaver(backend *Backend, delay time.Duration, logger *log.Logger) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Saver{backend: backend, delay: delay, logger: logger}
}

// Saver creates a debounced saver using the attached config's auto-save
// delay (DefaultSaveDelay when unset).
func (b *Backend) Saver(logger *log.Logger) *Saver {
	b.mu.RLock()
	delay := b.config.AutoSaveDelay
	b.mu.RUnlock()
	return NewSaver(b, delay, logger)
}

// Schedule queues the layout for saving after the debounce delay. The
// layout is snapshotted immediately so later in-memory edits do not leak
// into the pending write.
func (s *Saver) Schedule(l *types.Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.pending = l.Clone()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// fire writes the pending layout, if any.
func (s *Saver) fire() {
	s.mu.Lock()
	l := s.pending
	s.pending = nil
	s.mu.Unlock()

	if l == nil {
		return
	}
	if err := s.backend.SaveLayout(l); err != nil {
		s.logger.Printf("auto-save layout %s: %v", l.ID, err)
	}
}

// Flush writes any pending layout immediately, cancelling the timer.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fire()
}

// Close flushes and stops the saver; further Schedule calls are ignored.
func (s *Saver) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.Flush()
}
