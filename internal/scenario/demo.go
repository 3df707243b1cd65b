package scenario

// Demo is the built-in walkthrough: seed, edit, move the cursor, undo, redo.
func Demo() *Scenario {
	return &Scenario{
		Name:  "demo",
		Title: "Initial state",
		Initial: map[string]any{
			"content":        "console.log('Hola mundo')",
			"cursorPosition": 2,
			"unsavedChanges": false,
		},
		Steps: []Step{
			{
				Op:    OpEdit,
				Title: "After the first change",
				Changes: map[string]any{
					"content":        "console.log('Hola Mundo'); \nconsole.log('Nueva linea')",
					"cursorPosition": 3,
					"unsavedChanges": true,
				},
			},
			{
				Op:      OpEdit,
				Title:   "After moving the cursor",
				Changes: map[string]any{"cursorPosition": 5},
			},
			{Op: OpUndo, Title: "After undo"},
			{Op: OpRedo, Title: "After redo"},
		},
	}
}
