/*
Package rewind is a small in-memory state-history manager for an editable document.

It records successive immutable snapshots (content, cursor position, unsaved
flag) on a linear timeline and supports undo/redo. Saving after an undo
discards the abandoned future, as editors do.

# Concept

The core is split the same way as the rest of the module: values in
pkg/domain, the timeline state machine in pkg/history, and presentation behind
the ports.Reporter sink so nothing in the core writes to the terminal.

# Usage

	package main

	import (
		"os"

		"github.com/aretw0/rewind"
		"github.com/aretw0/rewind/pkg/adapters/console"
		"github.com/aretw0/rewind/pkg/domain"
	)

	func main() {
		ed := rewind.New(
			domain.NewSnapshot("console.log('Hola mundo')", 2, false),
			rewind.WithReporter(console.NewPlain(os.Stdout)),
		)
		ed.Show("Initial state")

		ed.Apply(domain.Changes{}.SetCursor(5).SetUnsaved(true))
		ed.Show("After moving the cursor")

		if _, ok := ed.Undo(); ok {
			ed.Show("After undo")
		}
	}
*/
package rewind
