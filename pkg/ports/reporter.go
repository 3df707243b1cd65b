package ports

// Reporter is the presentation sink. Implementations decide where the text goes.
type Reporter interface {
	// Report displays a block of formatted text.
	Report(text string)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(text string)

// Report calls f(text).
func (f ReporterFunc) Report(text string) { f(text) }

// Discard is a Reporter that drops everything.
var Discard Reporter = ReporterFunc(func(string) {})

// Painter is implemented by reporters that can colour a span of text.
// Color is a hex string or an ANSI index. Reporters that cannot colour
// simply don't implement it.
type Painter interface {
	Paint(text, color string) string
}

// Paint colours text through r when r is a Painter and returns it unchanged otherwise.
func Paint(r Reporter, text, color string) string {
	if p, ok := r.(Painter); ok {
		return p.Paint(text, color)
	}
	return text
}
