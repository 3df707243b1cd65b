package kitchen_test

import (
	"testing"

	"github.com/aretw0/rewind/pkg/adapters/memory"
	"github.com/aretw0/rewind/pkg/kitchen"
	"github.com/aretw0/rewind/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMenu_Order(t *testing.T) {
	tests := []struct {
		kind kitchen.Kind
		want string
	}{
		{kitchen.Chicken, "Preparing a chicken hamburger"},
		{kitchen.Beef, "Preparing a beef hamburger"},
		{kitchen.Bean, "Preparing a bean hamburger"},
	}

	menu := kitchen.DefaultMenu()
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			r := memory.NewReporter()
			require.NoError(t, menu.Order(tt.kind, r))
			assert.Equal(t, []string{tt.want}, r.Lines())
		})
	}
}

type paintRecorder struct {
	lines  []string
	colors map[string]string
}

func (p *paintRecorder) Report(text string) { p.lines = append(p.lines, text) }

func (p *paintRecorder) Paint(text, color string) string {
	p.colors[text] = color
	return "<" + text + ">"
}

func TestBurger_PaintsFilling(t *testing.T) {
	r := &paintRecorder{colors: map[string]string{}}
	menu := kitchen.DefaultMenu()

	for _, k := range menu.Kinds() {
		require.NoError(t, menu.Order(k, r))
	}

	assert.Equal(t, []string{
		"Preparing a <bean> hamburger",
		"Preparing a <beef> hamburger",
		"Preparing a <chicken> hamburger",
	}, r.lines)
	assert.Equal(t, map[string]string{
		"bean":    kitchen.BeanColor,
		"beef":    kitchen.BeefColor,
		"chicken": kitchen.ChickenColor,
	}, r.colors)
}

func TestMenu_Create(t *testing.T) {
	menu := kitchen.DefaultMenu()

	p, err := menu.Create(kitchen.Beef)
	require.NoError(t, err)
	burger, ok := p.(kitchen.Burger)
	require.True(t, ok)
	assert.Equal(t, kitchen.Beef, burger.Kind())
	assert.Equal(t, kitchen.BeefColor, burger.Color())
}

func TestMenu_UnknownKind(t *testing.T) {
	menu := kitchen.DefaultMenu()

	_, err := menu.Create("tofu")
	assert.ErrorIs(t, err, kitchen.ErrUnknownKind)

	r := memory.NewReporter()
	err = menu.Order("tofu", r)
	assert.ErrorIs(t, err, kitchen.ErrUnknownKind)
	assert.Empty(t, r.Lines())
}

type veggie struct{}

func (veggie) Prepare(r ports.Reporter) { r.Report("Preparing a veggie hamburger") }

func TestMenu_Register(t *testing.T) {
	menu := kitchen.NewMenu()
	assert.Empty(t, menu.Kinds())

	menu.Register("veggie", func() kitchen.Preparer { return veggie{} })
	menu.Register(kitchen.Bean, kitchen.NewBean)

	assert.Equal(t, []kitchen.Kind{kitchen.Bean, "veggie"}, menu.Kinds())

	r := memory.NewReporter()
	require.NoError(t, menu.Order("veggie", r))
	assert.Equal(t, "Preparing a veggie hamburger", r.String())
}

func TestParseKind(t *testing.T) {
	k, err := kitchen.ParseKind("  Chicken\n")
	require.NoError(t, err)
	assert.Equal(t, kitchen.Chicken, k)

	_, err = kitchen.ParseKind("   ")
	assert.ErrorIs(t, err, kitchen.ErrUnknownKind)
}
