// Package metrics exposes unit runs as Prometheus metrics. Attach a
// Collector with interact.WithObservers.
package metrics
