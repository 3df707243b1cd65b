package kitchen

import (
	"fmt"

	"github.com/aretw0/rewind/pkg/ports"
)

// Filling colours.
const (
	ChickenColor = "#facc15" // yellow
	BeefColor    = "#8b4513" // brown
	BeanColor    = "#22c55e" // green
)

// Preparer is anything the kitchen can prepare.
type Preparer interface {
	Prepare(r ports.Reporter)
}

// Burger is a hamburger of a given kind.
type Burger struct {
	kind    Kind
	filling string
	color   string
}

// Kind returns the tag the burger was created from.
func (b Burger) Kind() Kind { return b.kind }

// Color returns the colour the filling is reported in.
func (b Burger) Color() string { return b.color }

// Prepare reports the preparation step, painting the filling when the
// reporter supports colour.
func (b Burger) Prepare(r ports.Reporter) {
	r.Report(fmt.Sprintf("Preparing a %s hamburger", ports.Paint(r, b.filling, b.color)))
}

// NewChicken creates a chicken burger.
func NewChicken() Preparer { return Burger{kind: Chicken, filling: "chicken", color: ChickenColor} }

// NewBeef creates a beef burger.
func NewBeef() Preparer { return Burger{kind: Beef, filling: "beef", color: BeefColor} }

// NewBean creates a bean burger.
func NewBean() Preparer { return Burger{kind: Bean, filling: "bean", color: BeanColor} }
