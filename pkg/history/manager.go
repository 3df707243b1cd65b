package history

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/rewind/pkg/domain"
)

// Manager holds a linear timeline of snapshots and a cursor into it.
//
// Saving after an undo discards every entry after the cursor: the timeline is
// a line, not a tree. A Manager is owned by a single caller and is not safe
// for concurrent use.
type Manager struct {
	history      []domain.Snapshot
	currentIndex int

	capacity int
	hooks    domain.Hooks
	logger   *slog.Logger
	now      func() time.Time
}

// Option defines a functional option for configuring the Manager.
type Option func(*Manager)

// WithCapacity bounds the timeline length. When a save exceeds it, the
// oldest entries are evicted. Zero or negative means unbounded (the default).
func WithCapacity(n int) Option {
	return func(m *Manager) {
		m.capacity = n
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// WithLogger sets a structured logger for the manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates an empty timeline (Index() == -1).
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		currentIndex: -1,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save appends s as the new tip. Any redo entries after the cursor are
// discarded first.
func (m *Manager) Save(s domain.Snapshot) {
	discarded := 0
	if m.currentIndex < len(m.history)-1 {
		discarded = len(m.history) - 1 - m.currentIndex
		// Clear the tail so dropped snapshots do not linger in the backing array.
		clear(m.history[m.currentIndex+1:])
		m.history = m.history[:m.currentIndex+1]
	}

	m.history = append(m.history, s)
	m.currentIndex = len(m.history) - 1

	evicted := 0
	if m.capacity > 0 && len(m.history) > m.capacity {
		evicted = len(m.history) - m.capacity
		m.history = append(m.history[:0:0], m.history[evicted:]...)
		m.currentIndex -= evicted
	}

	m.logger.Debug("snapshot saved",
		"index", m.currentIndex,
		"len", len(m.history),
		"discarded", discarded,
		"evicted", evicted,
	)
	m.emit(&domain.Event{
		Type:      domain.EventSave,
		Discarded: discarded,
		Evicted:   evicted,
		Snapshot:  s,
	})
}

// Undo moves the cursor one entry back and returns the snapshot there.
// At or before the first entry it returns false and leaves the cursor alone.
func (m *Manager) Undo() (domain.Snapshot, bool) {
	if m.currentIndex <= 0 {
		m.boundary(domain.EventUndo)
		return domain.Snapshot{}, false
	}
	m.currentIndex--
	s := m.history[m.currentIndex]
	m.logger.Debug("undo", "index", m.currentIndex, "len", len(m.history))
	m.emit(&domain.Event{Type: domain.EventUndo, Snapshot: s})
	return s, true
}

// Redo moves the cursor one entry forward and returns the snapshot there.
// At the tip it returns false and leaves the cursor alone.
func (m *Manager) Redo() (domain.Snapshot, bool) {
	if m.currentIndex >= len(m.history)-1 {
		m.boundary(domain.EventRedo)
		return domain.Snapshot{}, false
	}
	m.currentIndex++
	s := m.history[m.currentIndex]
	m.logger.Debug("redo", "index", m.currentIndex, "len", len(m.history))
	m.emit(&domain.Event{Type: domain.EventRedo, Snapshot: s})
	return s, true
}

// Current returns the snapshot under the cursor, or false on an empty timeline.
func (m *Manager) Current() (domain.Snapshot, bool) {
	if m.currentIndex < 0 {
		return domain.Snapshot{}, false
	}
	return m.history[m.currentIndex], true
}

// Index returns the cursor position, -1 when the timeline is empty.
func (m *Manager) Index() int { return m.currentIndex }

// Len returns the number of snapshots in the timeline.
func (m *Manager) Len() int { return len(m.history) }

// CanUndo reports whether Undo would move the cursor.
func (m *Manager) CanUndo() bool { return m.currentIndex > 0 }

// CanRedo reports whether Redo would move the cursor.
func (m *Manager) CanRedo() bool { return m.currentIndex < len(m.history)-1 }

// Entries returns a copy of the timeline, oldest first.
func (m *Manager) Entries() []domain.Snapshot {
	out := make([]domain.Snapshot, len(m.history))
	copy(out, m.history)
	return out
}

// Reset empties the timeline.
func (m *Manager) Reset() {
	m.history = nil
	m.currentIndex = -1
	m.logger.Debug("timeline reset")
}

func (m *Manager) boundary(op domain.EventType) {
	// Hitting either end is a normal outcome, not an error.
	m.logger.Debug("nothing to "+string(op), "index", m.currentIndex, "len", len(m.history))
	m.emit(&domain.Event{Type: domain.EventBoundary, Op: op})
}

func (m *Manager) emit(e *domain.Event) {
	e.Timestamp = m.now()
	e.Index = m.currentIndex
	e.Len = len(m.history)
	m.hooks.Emit(e)
}
