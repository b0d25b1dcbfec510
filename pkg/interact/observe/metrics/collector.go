package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ib-77/interactor/pkg/interact"
)

// Collector records unit runs and compensations as Prometheus metrics.
type Collector struct {
	runsStarted    *prometheus.CounterVec
	runsFinished   *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	rollbacks      *prometheus.CounterVec
	rollbackErrors *prometheus.CounterVec
	activeRuns     prometheus.Gauge
}

// NewCollector registers the collector's metrics with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		runsStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unit_runs_started_total",
				Help:      "Total number of unit and organizer runs started",
			},
			[]string{"unit", "kind"},
		),
		runsFinished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unit_runs_total",
				Help:      "Total number of unit and organizer runs by final status",
			},
			[]string{"unit", "kind", "status"},
		),
		runDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "unit_run_duration_seconds",
				Help:      "Unit and organizer run duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"unit", "kind"},
		),
		rollbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unit_rollbacks_total",
				Help:      "Total number of compensations invoked",
			},
			[]string{"unit"},
		),
		rollbackErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unit_rollback_errors_total",
				Help:      "Total number of compensations that returned an error",
			},
			[]string{"unit"},
		),
		activeRuns: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "unit_runs_active",
				Help:      "Number of runs currently in progress",
			},
		),
	}
}

func (c *Collector) Started(ctx context.Context, r *interact.Record) context.Context {
	c.runsStarted.WithLabelValues(r.Unit(), r.Kind().String()).Inc()
	c.activeRuns.Inc()
	return ctx
}

func (c *Collector) Finished(_ context.Context, r *interact.Record) {
	c.activeRuns.Dec()
	c.runsFinished.WithLabelValues(r.Unit(), r.Kind().String(), r.Status().String()).Inc()
	c.runDuration.WithLabelValues(r.Unit(), r.Kind().String()).Observe(r.Duration().Seconds())
}

func (c *Collector) RolledBack(_ context.Context, r *interact.Record, err error) {
	c.rollbacks.WithLabelValues(r.Unit()).Inc()
	if err != nil {
		c.rollbackErrors.WithLabelValues(r.Unit()).Inc()
	}
}
