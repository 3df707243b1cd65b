package markdown

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Reporter renders reported text as markdown using glamour.
type Reporter struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *glamour.TermRenderer
}

// NewReporter creates a reporter that writes rendered markdown to w.
// An empty style selects glamour's automatic light/dark detection.
func NewReporter(w io.Writer, style string) (*Reporter, error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &Reporter{w: w, renderer: r}, nil
}

// Report renders text. If rendering fails the raw text is written instead.
func (r *Reporter) Report(text string) {
	out, err := r.renderer.Render(text)
	if err != nil {
		out = text + "\n"
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.w, out)
}

// Paint emphasises text; glamour styles do not take arbitrary colours.
func (r *Reporter) Paint(text, _ string) string {
	return "**" + text + "**"
}
