package presentation

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/rewind/pkg/adapters/console"
	"github.com/aretw0/rewind/pkg/adapters/markdown"
	"github.com/aretw0/rewind/pkg/ports"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how reported text is rendered.
type Mode string

const (
	ModeAuto     Mode = "auto"     // colour on a terminal, plain otherwise
	ModePlain    Mode = "plain"    // no escape sequences
	ModeColor    Mode = "color"    // termenv colours, even when piped
	ModeMarkdown Mode = "markdown" // glamour rendering
)

// ParseMode validates a mode name. Empty means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModePlain, ModeColor, ModeMarkdown:
		return m, nil
	default:
		return "", fmt.Errorf("unknown render mode %q (want auto, plain, color or markdown)", s)
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewReporter builds the reporter for mode writing to w.
func NewReporter(mode Mode, w io.Writer) (ports.Reporter, error) {
	if mode == ModeAuto {
		mode = ModePlain
		if IsTerminal(w) {
			mode = ModeColor
		}
	}

	switch mode {
	case ModePlain:
		return console.NewPlain(w), nil
	case ModeColor:
		return console.NewReporter(w, console.WithProfile(termenv.ANSI256)), nil
	case ModeMarkdown:
		style := "notty"
		if IsTerminal(w) {
			style = ""
		}
		r, err := markdown.NewReporter(w, style)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown render mode %q", mode)
	}
}
