package history_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/rewind/pkg/domain"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(i int) domain.Snapshot {
	return domain.NewSnapshot(fmt.Sprintf("v%d", i), i, i%2 == 0)
}

func TestManager_Empty(t *testing.T) {
	m := history.NewManager()

	assert.Equal(t, -1, m.Index())
	assert.Equal(t, 0, m.Len())

	_, ok := m.Undo()
	assert.False(t, ok, "undo on empty timeline")
	_, ok = m.Redo()
	assert.False(t, ok, "redo on empty timeline")
	_, ok = m.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, m.Index())
}

func TestManager_SaveAdvancesToTip(t *testing.T) {
	m := history.NewManager()
	for i := 1; i <= 4; i++ {
		m.Save(snap(i))
		assert.Equal(t, m.Len()-1, m.Index())
	}
	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, snap(4), cur)
}

func TestManager_UndoBoundaryIsIdempotent(t *testing.T) {
	m := history.NewManager()
	m.Save(snap(1))
	m.Save(snap(2))

	s, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, snap(1), s)

	for range 3 {
		_, ok := m.Undo()
		assert.False(t, ok)
		assert.Equal(t, 0, m.Index())
	}
}

func TestManager_RedoBoundaryIsIdempotent(t *testing.T) {
	m := history.NewManager()
	m.Save(snap(1))
	m.Save(snap(2))

	for range 3 {
		_, ok := m.Redo()
		assert.False(t, ok)
		assert.Equal(t, 1, m.Index())
	}
}

func TestManager_UndoRedoRoundTrip(t *testing.T) {
	for n := 2; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := history.NewManager()
			for i := 1; i <= n; i++ {
				m.Save(snap(i))
			}

			_, ok := m.Undo()
			require.True(t, ok)
			got, ok := m.Redo()
			require.True(t, ok)
			assert.Equal(t, snap(n), got)
			assert.Equal(t, n-1, m.Index())
		})
	}
}

func TestManager_SaveAfterUndoDiscardsBranch(t *testing.T) {
	m := history.NewManager()
	m.Save(snap(1))
	m.Save(snap(2))
	m.Save(snap(3))

	_, ok := m.Undo()
	require.True(t, ok)
	m.Save(snap(4))

	assert.Equal(t, []domain.Snapshot{snap(1), snap(2), snap(4)}, m.Entries())
	assert.Equal(t, 2, m.Index())

	_, ok = m.Redo()
	assert.False(t, ok, "redo branch must be gone")

	s, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, snap(2), s)
}

func TestManager_SaveAfterUndoToFirst(t *testing.T) {
	m := history.NewManager()
	m.Save(snap(1))
	m.Save(snap(2))
	m.Save(snap(3))
	m.Undo()
	m.Undo()

	m.Save(snap(9))
	assert.Equal(t, []domain.Snapshot{snap(1), snap(9)}, m.Entries())
	assert.False(t, m.CanRedo())
	assert.True(t, m.CanUndo())
}

func TestManager_SaveDuplicate(t *testing.T) {
	m := history.NewManager()
	m.Save(snap(1))
	m.Save(snap(1))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.Index())
}

func TestManager_EntriesIsACopy(t *testing.T) {
	m := history.NewManager()
	m.Save(snap(1))

	entries := m.Entries()
	entries[0] = snap(7)

	cur, _ := m.Current()
	assert.Equal(t, snap(1), cur)
}

func TestManager_Capacity(t *testing.T) {
	m := history.NewManager(history.WithCapacity(3))
	for i := 1; i <= 5; i++ {
		m.Save(snap(i))
	}

	assert.Equal(t, []domain.Snapshot{snap(3), snap(4), snap(5)}, m.Entries())
	assert.Equal(t, 2, m.Index())

	m.Undo()
	m.Undo()
	_, ok := m.Undo()
	assert.False(t, ok, "evicted entries are not reachable")
	assert.Equal(t, 0, m.Index())

	m.Save(snap(6))
	assert.Equal(t, []domain.Snapshot{snap(3), snap(6)}, m.Entries())
}

func TestManager_Reset(t *testing.T) {
	m := history.NewManager()
	m.Save(snap(1))
	m.Save(snap(2))
	m.Reset()

	assert.Equal(t, -1, m.Index())
	assert.Equal(t, 0, m.Len())
	_, ok := m.Undo()
	assert.False(t, ok)
}

func TestManager_Hooks(t *testing.T) {
	var events []domain.Event
	record := func(e *domain.Event) { events = append(events, *e) }

	m := history.NewManager(history.WithHooks(domain.Hooks{
		OnSave:     record,
		OnUndo:     record,
		OnRedo:     record,
		OnBoundary: record,
	}))

	m.Save(snap(1))
	m.Save(snap(2))
	m.Save(snap(3))
	m.Undo()
	m.Undo()
	m.Save(snap(4))
	m.Redo()

	require.Len(t, events, 7)

	assert.Equal(t, domain.EventUndo, events[3].Type)
	assert.Equal(t, 1, events[3].Index)

	save := events[5]
	assert.Equal(t, domain.EventSave, save.Type)
	assert.Equal(t, 2, save.Discarded)
	assert.Equal(t, 1, save.Index)
	assert.Equal(t, 2, save.Len)
	assert.Equal(t, snap(4), save.Snapshot)

	last := events[6]
	assert.Equal(t, domain.EventBoundary, last.Type)
	assert.Equal(t, domain.EventRedo, last.Op)
	assert.False(t, last.Timestamp.IsZero())
}

// Mirrors the editor walkthrough: seed, edit, move cursor, undo, redo.
func TestManager_EditorScenario(t *testing.T) {
	m := history.NewManager()

	s1 := domain.NewSnapshot("console.log('Hola mundo')", 2, false)
	m.Save(s1)
	assert.Equal(t, 0, m.Index())

	s2 := s1.WithChanges(domain.Changes{}.
		SetContent("console.log('Hola Mundo'); \nconsole.log('Nueva linea')").
		SetCursor(3).
		SetUnsaved(true))
	m.Save(s2)
	assert.Equal(t, 1, m.Index())

	s3 := s2.WithChanges(domain.Changes{}.SetCursor(5))
	m.Save(s3)
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, s2.Content(), s3.Content())
	assert.True(t, s3.UnsavedChanges())

	got, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, s2, got)
	assert.Equal(t, 1, m.Index())

	got, ok = m.Redo()
	require.True(t, ok)
	assert.Equal(t, s3, got)
	assert.Equal(t, 2, m.Index())
}
