package rewind

import (
	"log/slog"

	"github.com/aretw0/rewind/internal/logging"
	"github.com/aretw0/rewind/internal/presentation"
	"github.com/aretw0/rewind/pkg/domain"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/ports"
)

// Version is the current release.
const Version = "0.1.0"

// Editor is the high-level entry point: it tracks the current snapshot of a
// document and records every edit on a history timeline.
// An Editor is not safe for concurrent use.
type Editor struct {
	timeline *history.Manager
	current  domain.Snapshot
	reporter ports.Reporter
	logger   *slog.Logger

	capacity int
	hooks    domain.Hooks
}

// Option defines a functional option for configuring the Editor.
type Option func(*Editor)

// WithReporter sets where Show writes. Defaults to ports.Discard.
func WithReporter(r ports.Reporter) Option {
	return func(e *Editor) {
		e.reporter = r
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithHooks registers timeline observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Editor) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithCapacity bounds the timeline length (0 is unbounded).
func WithCapacity(n int) Option {
	return func(e *Editor) {
		e.capacity = n
	}
}

// New creates an Editor and saves initial as the first timeline entry.
func New(initial domain.Snapshot, opts ...Option) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.reporter == nil {
		e.reporter = ports.Discard
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}

	e.timeline = history.NewManager(
		history.WithCapacity(e.capacity),
		history.WithHooks(e.hooks),
		history.WithLogger(e.logger),
	)
	e.current = initial
	e.timeline.Save(initial)
	return e
}

// Apply derives a snapshot from the current one, saves it and makes it current.
func (e *Editor) Apply(c domain.Changes) domain.Snapshot {
	e.current = e.current.WithChanges(c)
	e.timeline.Save(e.current)
	return e.current
}

// Save records the current snapshot again (e.g. after an explicit write).
func (e *Editor) Save() {
	e.timeline.Save(e.current)
}

// Undo steps back. It returns false, leaving the editor unchanged, when
// there is no earlier snapshot.
func (e *Editor) Undo() (domain.Snapshot, bool) {
	s, ok := e.timeline.Undo()
	if ok {
		e.current = s
	}
	return s, ok
}

// Redo steps forward. It returns false when already at the tip.
func (e *Editor) Redo() (domain.Snapshot, bool) {
	s, ok := e.timeline.Redo()
	if ok {
		e.current = s
	}
	return s, ok
}

// Current returns the snapshot being edited.
func (e *Editor) Current() domain.Snapshot {
	return e.current
}

// Timeline exposes the underlying history for inspection.
func (e *Editor) Timeline() *history.Manager {
	return e.timeline
}

// Show reports the current snapshot under title.
func (e *Editor) Show(title string) {
	e.reporter.Report(presentation.Block(title, e.current))
}

// Notify reports a plain message.
func (e *Editor) Notify(text string) {
	e.reporter.Report(text)
}
