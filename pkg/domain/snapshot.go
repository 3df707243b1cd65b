package domain

import (
	"fmt"
	"strings"
)

// Snapshot represents one immutable state of the edited content.
// Fields are unexported so the only way to "edit" a Snapshot is WithChanges,
// which returns a new value.
type Snapshot struct {
	content        string
	cursorPosition int
	unsavedChanges bool
}

// NewSnapshot creates a snapshot. A negative cursor is clamped to 0.
func NewSnapshot(content string, cursorPosition int, unsavedChanges bool) Snapshot {
	return Snapshot{
		content:        content,
		cursorPosition: max(cursorPosition, 0),
		unsavedChanges: unsavedChanges,
	}
}

// Content returns the edited text.
func (s Snapshot) Content() string { return s.content }

// CursorPosition returns the cursor offset.
func (s Snapshot) CursorPosition() int { return s.cursorPosition }

// UnsavedChanges reports whether the content differs from what was last written.
func (s Snapshot) UnsavedChanges() bool { return s.unsavedChanges }

// WithChanges derives a new Snapshot. Each supplied field in c overrides the
// receiver's value, including zero values such as a cursor of 0 or false.
// Fields left nil are copied from the receiver.
func (s Snapshot) WithChanges(c Changes) Snapshot {
	next := s
	if c.Content != nil {
		next.content = *c.Content
	}
	if c.CursorPosition != nil {
		next.cursorPosition = max(*c.CursorPosition, 0)
	}
	if c.UnsavedChanges != nil {
		next.unsavedChanges = *c.UnsavedChanges
	}
	return next
}

// Equal reports whether both snapshots hold the same field values.
func (s Snapshot) Equal(other Snapshot) bool {
	return s == other
}

// Describe formats the snapshot for display.
func (s Snapshot) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Content: %s\n", s.content)
	fmt.Fprintf(&b, "Cursor Pos: %d\n", s.cursorPosition)
	fmt.Fprintf(&b, "Unsaved changes: %t", s.unsavedChanges)
	return b.String()
}

// String implements fmt.Stringer.
func (s Snapshot) String() string {
	return fmt.Sprintf("Snapshot{cursor=%d unsaved=%t content=%q}", s.cursorPosition, s.unsavedChanges, s.content)
}
