package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fsmlab/automata/pkg/domain"
)

// Metrics holds the Prometheus collectors for one automaton kind.
type Metrics struct {
	steps    *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on the given registerer.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_steps_total",
				Help: "Total number of consumed symbols, by kind and result",
			},
			[]string{"kind", "result"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_runs_total",
				Help: "Total number of finished runs, by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automata_run_duration_seconds",
				Help:    "Wall-clock duration of finished runs, by kind",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.steps, m.runs, m.duration)
	return m
}

// Hooks returns lifecycle hooks that record step metrics for one kind.
func (m *Metrics) Hooks(kind string) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.steps.WithLabelValues(kind, "accepted").Inc()
		},
		OnReject: func(ctx context.Context, e *domain.RejectEvent) {
			m.steps.WithLabelValues(kind, "rejected").Inc()
		},
	}
}

// ObserveRun records the outcome and duration of a finished run.
func (m *Metrics) ObserveRun(kind string, outcome domain.RunOutcome, elapsed time.Duration) {
	m.runs.WithLabelValues(kind, string(outcome)).Inc()
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
