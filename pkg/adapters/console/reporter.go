package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Default heading colour (blue, as the walkthrough titles).
const DefaultHeadingColor = "#60a5fa"

// Reporter writes reported text to an io.Writer.
// Lines starting with "#" are treated as headings: the markers are stripped
// and the text is coloured according to the terminal profile. Code fence
// lines are dropped and the fenced text is written as is. A fence closes
// only on a bare backtick run at least as long as the one that opened it.
type Reporter struct {
	mu      sync.Mutex
	out     *termenv.Output
	heading termenv.Color
}

// Option configures a Reporter.
type Option func(*config)

type config struct {
	profile      termenv.Profile
	profileSet   bool
	headingColor string
}

// WithProfile forces a colour profile. Use termenv.Ascii for plain text.
func WithProfile(p termenv.Profile) Option {
	return func(c *config) {
		c.profile = p
		c.profileSet = true
	}
}

// WithHeadingColor sets the heading colour as a hex string or ANSI index.
func WithHeadingColor(color string) Option {
	return func(c *config) {
		c.headingColor = color
	}
}

// NewReporter creates a reporter writing to w. Without WithProfile the
// profile is detected from w.
func NewReporter(w io.Writer, opts ...Option) *Reporter {
	cfg := config{headingColor: DefaultHeadingColor}
	for _, opt := range opts {
		opt(&cfg)
	}

	var outOpts []termenv.OutputOption
	if cfg.profileSet {
		outOpts = append(outOpts, termenv.WithProfile(cfg.profile))
	}
	out := termenv.NewOutput(w, outOpts...)

	return &Reporter{
		out:     out,
		heading: out.Color(cfg.headingColor),
	}
}

// NewPlain creates a reporter that never emits escape sequences.
func NewPlain(w io.Writer) *Reporter {
	return NewReporter(w, WithProfile(termenv.Ascii))
}

// Report writes text followed by a newline.
func (r *Reporter) Report(text string) {
	var lines []string
	fence := 0 // length of the open fence, 0 outside one
	for line := range strings.SplitSeq(text, "\n") {
		if n := fenceLen(line); n >= 3 {
			switch {
			case fence == 0:
				fence = n
				continue
			case n >= fence && strings.TrimRight(line, " ") == strings.Repeat("`", n):
				fence = 0
				continue
			}
		}
		if title, ok := headingText(line); ok && fence == 0 {
			line = r.out.String(title).Foreground(r.heading).Bold().String()
		}
		lines = append(lines, line)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, strings.Join(lines, "\n"))
}

// Paint colours text with the output's profile. The Ascii profile leaves it plain.
func (r *Reporter) Paint(text, color string) string {
	return r.out.String(text).Foreground(r.out.Color(color)).String()
}

func fenceLen(line string) int {
	return len(line) - len(strings.TrimLeft(line, "`"))
}

func headingText(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, "#")
	if trimmed == line || !strings.HasPrefix(trimmed, " ") {
		return "", false
	}
	return strings.TrimSpace(trimmed), true
}
