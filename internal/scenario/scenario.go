package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/rewind"
	"github.com/aretw0/rewind/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned when a scenario file is malformed.
var ErrInvalidScenario = errors.New("invalid scenario")

// Op is a scripted timeline operation.
type Op string

const (
	OpEdit Op = "edit" // derive from the current snapshot and save
	OpSave Op = "save" // save the current snapshot again
	OpUndo Op = "undo"
	OpRedo Op = "redo"
	OpShow Op = "show"
)

// Step is one scripted operation. Title, when set, reports the current
// snapshot after the step.
type Step struct {
	Op      Op             `yaml:"op"`
	Title   string         `yaml:"title"`
	Changes map[string]any `yaml:"changes"`
}

// Scenario seeds an editor and replays steps on it.
type Scenario struct {
	Name    string         `yaml:"name"`
	Title   string         `yaml:"title"`
	Initial map[string]any `yaml:"initial"`
	Steps   []Step         `yaml:"steps"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks every step is a known operation with well-typed changes.
func (sc *Scenario) Validate() error {
	if _, err := domain.ChangesFromMap(sc.Initial); err != nil {
		return fmt.Errorf("%w: initial: %v", ErrInvalidScenario, err)
	}
	for i, st := range sc.Steps {
		switch st.Op {
		case OpEdit:
			if _, err := domain.ChangesFromMap(st.Changes); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalidScenario, i+1, err)
			}
		case OpSave, OpUndo, OpRedo, OpShow:
			if len(st.Changes) > 0 {
				return fmt.Errorf("%w: step %d: %q takes no changes", ErrInvalidScenario, i+1, st.Op)
			}
		default:
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScenario, i+1, st.Op)
		}
	}
	return nil
}

// Seed returns the initial snapshot described by the scenario.
func (sc *Scenario) Seed() (domain.Snapshot, error) {
	c, err := domain.ChangesFromMap(sc.Initial)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: initial: %v", ErrInvalidScenario, err)
	}
	return domain.Snapshot{}.WithChanges(c), nil
}

// Run seeds an editor with opts and replays every step on it.
// Hitting either end of the timeline is reported, not returned as an error.
func Run(sc *Scenario, opts ...rewind.Option) (*rewind.Editor, error) {
	seed, err := sc.Seed()
	if err != nil {
		return nil, err
	}

	ed := rewind.New(seed, opts...)
	if sc.Title != "" {
		ed.Show(sc.Title)
	}

	for i, st := range sc.Steps {
		switch st.Op {
		case OpEdit:
			c, err := domain.ChangesFromMap(st.Changes)
			if err != nil {
				return ed, fmt.Errorf("%w: step %d: %v", ErrInvalidScenario, i+1, err)
			}
			ed.Apply(c)
		case OpSave:
			ed.Save()
		case OpUndo:
			if _, ok := ed.Undo(); !ok {
				ed.Notify("Nothing to undo")
				continue
			}
		case OpRedo:
			if _, ok := ed.Redo(); !ok {
				ed.Notify("Nothing to redo")
				continue
			}
		case OpShow:
		default:
			return ed, fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScenario, i+1, st.Op)
		}

		if st.Title != "" {
			ed.Show(st.Title)
		}
	}
	return ed, nil
}
