package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/rewind/internal/config"
	"github.com/aretw0/rewind/internal/presentation"
	"github.com/aretw0/rewind/pkg/kitchen"
)

// ErrNoKind is returned when no kind was given and stdin is not interactive.
var ErrNoKind = errors.New("no hamburger kind given")

// Order prepares a hamburger of the given kind. With an empty kind and
// interactive set, it prompts for one on stdio.In.
func Order(cfg config.Config, kind string, interactive bool, stdio IO) error {
	logger, err := newLogger(cfg, stdio.Err)
	if err != nil {
		return err
	}

	mode, err := presentation.ParseMode(cfg.Render)
	if err != nil {
		return err
	}
	reporter, err := presentation.NewReporter(mode, stdio.Out)
	if err != nil {
		return err
	}

	menu := kitchen.DefaultMenu()

	if strings.TrimSpace(kind) == "" {
		if !interactive {
			return ErrNoKind
		}
		if kind, err = prompt(stdio, menu.Kinds()); err != nil {
			return err
		}
	}

	k, err := kitchen.ParseKind(kind)
	if err != nil {
		return err
	}

	logger.Debug("ordering", "kind", k)
	if err := menu.Order(k, reporter); err != nil {
		logger.Error("order failed", "kind", k, "error", err)
		return err
	}
	return nil
}

func prompt(stdio IO, kinds []kitchen.Kind) (string, error) {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	fmt.Fprintf(stdio.Out, "Which hamburger do you want? (%s): ", strings.Join(names, "/"))

	line, err := bufio.NewReader(stdio.In).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read choice: %w", err)
	}
	return strings.TrimSpace(line), nil
}
