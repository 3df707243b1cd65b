package domain

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Changes is a partial update applied by Snapshot.WithChanges.
// A nil field means "not supplied"; a non-nil field is applied even when it
// points to a zero value.
type Changes struct {
	Content        *string `json:"content,omitempty" yaml:"content,omitempty"`
	CursorPosition *int    `json:"cursorPosition,omitempty" yaml:"cursorPosition,omitempty"`
	UnsavedChanges *bool   `json:"unsavedChanges,omitempty" yaml:"unsavedChanges,omitempty"`
}

// SetContent returns a copy of c with Content supplied.
func (c Changes) SetContent(content string) Changes {
	c.Content = &content
	return c
}

// SetCursor returns a copy of c with CursorPosition supplied.
func (c Changes) SetCursor(pos int) Changes {
	c.CursorPosition = &pos
	return c
}

// SetUnsaved returns a copy of c with UnsavedChanges supplied.
func (c Changes) SetUnsaved(unsaved bool) Changes {
	c.UnsavedChanges = &unsaved
	return c
}

// IsEmpty reports whether no field was supplied.
func (c Changes) IsEmpty() bool {
	return c.Content == nil && c.CursorPosition == nil && c.UnsavedChanges == nil
}

// changeFields mirrors Changes for loosely typed input.
// Both camelCase and snake_case spellings are accepted; camelCase wins when both are present.
type changeFields struct {
	Content             *string `mapstructure:"content"`
	CursorPosition      *int    `mapstructure:"cursorPosition"`
	CursorPositionSnake *int    `mapstructure:"cursor_position"`
	UnsavedChanges      *bool   `mapstructure:"unsavedChanges"`
	UnsavedChangesSnake *bool   `mapstructure:"unsaved_changes"`
}

// ChangesFromMap decodes a partial update such as one read from YAML or JSON.
// Unrecognised keys are ignored. Keys holding nil count as not supplied.
// A recognised key whose value cannot be converted yields ErrInvalidChange.
func ChangesFromMap(raw map[string]any) (Changes, error) {
	var fields changeFields
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fields,
		WeaklyTypedInput: true,
		DecodeHook:       wholeNumberHook,
	})
	if err != nil {
		return Changes{}, fmt.Errorf("failed to build change decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Changes{}, fmt.Errorf("%w: %v", ErrInvalidChange, err)
	}

	c := Changes{Content: fields.Content}

	c.CursorPosition = fields.CursorPositionSnake
	if fields.CursorPosition != nil {
		c.CursorPosition = fields.CursorPosition
	}
	c.UnsavedChanges = fields.UnsavedChangesSnake
	if fields.UnsavedChanges != nil {
		c.UnsavedChanges = fields.UnsavedChanges
	}
	return c, nil
}

// wholeNumberHook refuses floats that would be truncated or overflow when
// decoded into an integer field.
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	if f < math.MinInt || f >= math.MaxInt {
		return nil, fmt.Errorf("%v is out of range", data)
	}
	return int(f), nil
}
