// Package history provides linear undo/redo over immutable snapshots.
//
// The Manager keeps an ordered timeline and a cursor (Index) into it:
//
//	m := history.NewManager()
//	m.Save(s1)        // [s1]        index 0
//	m.Save(s2)        // [s1 s2]     index 1
//	m.Undo()          // returns s1  index 0
//	m.Save(s3)        // [s1 s3]     index 1, s2 is gone
//	m.Redo()          // returns false: s3 is the tip
//
// Undo and Redo report the timeline boundary with a false result; it is never
// an error.
package history
