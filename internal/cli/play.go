package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/rewind"
	"github.com/aretw0/rewind/internal/config"
	"github.com/aretw0/rewind/internal/logging"
	"github.com/aretw0/rewind/internal/presentation"
	"github.com/aretw0/rewind/internal/presentation/tui"
	"github.com/aretw0/rewind/internal/scenario"
	"github.com/aretw0/rewind/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// IO bundles the streams a command works with.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Play replays the scenario at path, or the built-in demo when path is empty.
func Play(cfg config.Config, path string, stdio IO) error {
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

	sc := scenario.Demo()
	if path != "" {
		if sc, err = scenario.Load(path); err != nil {
			return err
		}
	}

	opts := []rewind.Option{
		rewind.WithReporter(reporter),
		rewind.WithLogger(logger.With("scenario", sc.Name)),
		rewind.WithCapacity(cfg.Capacity),
	}

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		collector := metrics.NewCollector(cfg.MetricsNamespace)
		if err := reg.Register(collector); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		opts = append(opts, rewind.WithHooks(collector.Hooks()))
	}

	if presentation.IsTerminal(stdio.Out) {
		tui.PrintBanner(stdio.Out, rewind.Version)
	}

	logger.Info("playing scenario", "scenario", sc.Name, "steps", len(sc.Steps))
	ed, err := scenario.Run(sc, opts...)
	if err != nil {
		logger.Error("scenario failed", "error", err)
		return err
	}
	logger.Info("scenario finished",
		"scenario", sc.Name,
		"index", ed.Timeline().Index(),
		"len", ed.Timeline().Len(),
	)

	if reg != nil {
		return dumpMetrics(reg, stdio.Err)
	}
	return nil
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, level), nil
}

func dumpMetrics(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
