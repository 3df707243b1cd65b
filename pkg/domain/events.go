package domain

import "time"

// EventType defines the category of a timeline event.
type EventType string

const (
	EventSave     EventType = "save"
	EventUndo     EventType = "undo"
	EventRedo     EventType = "redo"
	EventBoundary EventType = "boundary" // Undo/Redo requested with nothing to move to
)

// Event describes a completed timeline operation.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`

	// Op is the requested operation for boundary events ("undo" or "redo").
	Op EventType `json:"op,omitempty"`

	// Index is the cursor after the operation.
	Index int `json:"index"`
	// Len is the timeline length after the operation.
	Len int `json:"len"`

	// Discarded counts redo entries dropped by a save (branch discard).
	Discarded int `json:"discarded,omitempty"`
	// Evicted counts oldest entries dropped by a capacity bound.
	Evicted int `json:"evicted,omitempty"`

	Snapshot Snapshot `json:"-"`
}

// Hooks defines callbacks for timeline observability.
// Any callback may be nil.
type Hooks struct {
	OnSave     func(*Event)
	OnUndo     func(*Event)
	OnRedo     func(*Event)
	OnBoundary func(*Event)
}

// Emit dispatches e to the callback matching its type.
func (h Hooks) Emit(e *Event) {
	var fn func(*Event)
	switch e.Type {
	case EventSave:
		fn = h.OnSave
	case EventUndo:
		fn = h.OnUndo
	case EventRedo:
		fn = h.OnRedo
	case EventBoundary:
		fn = h.OnBoundary
	}
	if fn != nil {
		fn(e)
	}
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	chain := func(a, b func(*Event)) func(*Event) {
		switch {
		case a == nil:
			return b
		case b == nil:
			return a
		}
		return func(e *Event) {
			a(e)
			b(e)
		}
	}
	return Hooks{
		OnSave:     chain(h.OnSave, other.OnSave),
		OnUndo:     chain(h.OnUndo, other.OnUndo),
		OnRedo:     chain(h.OnRedo, other.OnRedo),
		OnBoundary: chain(h.OnBoundary, other.OnBoundary),
	}
}
