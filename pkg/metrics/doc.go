// Package metrics exposes timeline activity as Prometheus metrics.
//
// Register a Collector and pass its Hooks to the history manager:
//
//	c := metrics.NewCollector("rewind")
//	prometheus.MustRegister(c)
//	m := history.NewManager(history.WithHooks(c.Hooks()))
package metrics
