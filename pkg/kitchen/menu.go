package kitchen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/rewind/pkg/ports"
)

// ErrUnknownKind is returned when no constructor is registered for a kind.
var ErrUnknownKind = errors.New("unknown kind")

// Kind is the category tag used to select a constructor.
type Kind string

const (
	Chicken Kind = "chicken"
	Beef    Kind = "beef"
	Bean    Kind = "bean"
)

// ParseKind normalises user input into a Kind. It does not check the menu.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownKind)
	}
	return k, nil
}

// Constructor builds a fresh Preparer.
type Constructor func() Preparer

// Menu maps kinds to constructors.
type Menu struct {
	mu    sync.RWMutex
	items map[Kind]Constructor
}

// NewMenu creates an empty menu.
func NewMenu() *Menu {
	return &Menu{
		items: make(map[Kind]Constructor),
	}
}

// DefaultMenu creates a menu with the chicken, beef and bean burgers.
func DefaultMenu() *Menu {
	m := NewMenu()
	m.Register(Chicken, NewChicken)
	m.Register(Beef, NewBeef)
	m.Register(Bean, NewBean)
	return m
}

// Register adds a constructor to the menu.
// If the kind is already registered, it is overwritten.
func (m *Menu) Register(kind Kind, fn Constructor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[kind] = fn
}

// Create looks up a kind and builds it.
// Returns ErrUnknownKind if the kind is not on the menu.
func (m *Menu) Create(kind Kind) (Preparer, error) {
	m.mu.RLock()
	fn, ok := m.items[kind]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return fn(), nil
}

// Order creates the kind and prepares it through r.
func (m *Menu) Order(kind Kind, r ports.Reporter) error {
	p, err := m.Create(kind)
	if err != nil {
		return err
	}
	p.Prepare(r)
	return nil
}

// Kinds returns the registered kinds, sorted.
func (m *Menu) Kinds() []Kind {
	m.mu.RLock()
	defer m.mu.RUnlock()

	kinds := make([]Kind, 0, len(m.items))
	for k := range m.items {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
