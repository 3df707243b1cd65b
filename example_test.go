package rewind_test

import (
	"fmt"
	"os"

	"github.com/aretw0/rewind"
	"github.com/aretw0/rewind/pkg/adapters/console"
	"github.com/aretw0/rewind/pkg/domain"
)

func Example() {
	ed := rewind.New(
		domain.NewSnapshot("console.log('Hola mundo')", 2, false),
		rewind.WithReporter(console.NewPlain(os.Stdout)),
	)

	ed.Apply(domain.Changes{}.SetCursor(5).SetUnsaved(true))
	ed.Undo()
	ed.Show("After undo")

	_, ok := ed.Undo()
	fmt.Println("undo again:", ok)

	// Output:
	// After undo
	//
	// Content: console.log('Hola mundo')
	// Cursor Pos: 2
	// Unsaved changes: false
	// undo again: false
}
