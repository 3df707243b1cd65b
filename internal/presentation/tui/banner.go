package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  _ __ _____      _(_)_ __   __| |`, "#60a5fa"},
	{` | '__/ _ \ \ /\ / / | '_ \ / _' |`, "#818cf8"},
	{` | | |  __/\ V  V /| | | | | (_| |`, "#a78bfa"},
	{` |_|  \___| \_/\_/ |_|_| |_|\__,_|`, "#c084fc"},
}

// PrintBanner writes the rewind banner and version to w.
// Colours are dropped when w is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(out)
	for _, l := range bannerLines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(out, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(out)
}
