package metrics

import (
	"github.com/aretw0/rewind/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector turns timeline events into Prometheus metrics.
// It implements prometheus.Collector so it can be registered directly.
type Collector struct {
	operations *prometheus.CounterVec
	boundaries *prometheus.CounterVec
	discarded  prometheus.Counter
	evicted    prometheus.Counter
	length     prometheus.Gauge
	index      prometheus.Gauge
}

// NewCollector creates the metric set under the given namespace ("rewind" if empty).
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "rewind"
	}
	return &Collector{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Timeline operations that moved or extended the timeline.",
			},
			[]string{"op"},
		),
		boundaries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "boundary_hits_total",
				Help:      "Undo/redo requests with nothing to move to.",
			},
			[]string{"op"},
		),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discarded_snapshots_total",
			Help:      "Redo entries dropped by saving after an undo.",
		}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evicted_snapshots_total",
			Help:      "Oldest entries dropped by the capacity bound.",
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "timeline_length",
			Help:      "Number of snapshots in the timeline.",
		}),
		index: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "timeline_index",
			Help:      "Cursor position in the timeline (-1 when empty).",
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.operations.Describe(ch)
	c.boundaries.Describe(ch)
	c.discarded.Describe(ch)
	c.evicted.Describe(ch)
	c.length.Describe(ch)
	c.index.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.operations.Collect(ch)
	c.boundaries.Collect(ch)
	c.discarded.Collect(ch)
	c.evicted.Collect(ch)
	c.length.Collect(ch)
	c.index.Collect(ch)
}

// Hooks returns timeline hooks that record into this collector.
func (c *Collector) Hooks() domain.Hooks {
	record := func(e *domain.Event) {
		c.operations.WithLabelValues(string(e.Type)).Inc()
		c.discarded.Add(float64(e.Discarded))
		c.evicted.Add(float64(e.Evicted))
		c.observe(e)
	}
	return domain.Hooks{
		OnSave: record,
		OnUndo: record,
		OnRedo: record,
		OnBoundary: func(e *domain.Event) {
			c.boundaries.WithLabelValues(string(e.Op)).Inc()
			c.observe(e)
		},
	}
}

func (c *Collector) observe(e *domain.Event) {
	c.length.Set(float64(e.Len))
	c.index.Set(float64(e.Index))
}
