// Package metrics provides Prometheus metrics for the plan service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansGeneratedTotal tracks generation runs by currency and outcome (ok, over_budget, error)
	PlansGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifeplan",
			Subsystem: "generator",
			Name:      "plans_total",
			Help:      "Total number of plan generations by currency and outcome",
		},
		[]string{"currency", "outcome"},
	)

	// GenerationDuration tracks how long one generation takes
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lifeplan",
			Subsystem: "generator",
			Name:      "duration_seconds",
			Help:      "Duration of plan generation in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// VersionsAppendedTotal tracks versions written to stored plans
	VersionsAppendedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lifeplan",
			Subsystem: "store",
			Name:      "versions_appended_total",
			Help:      "Total number of plan versions appended, first versions included",
		},
	)

	// ShareDecodeFailuresTotal tracks share tokens that could not be opened
	ShareDecodeFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lifeplan",
			Subsystem: "share",
			Name:      "decode_failures_total",
			Help:      "Total number of share tokens rejected as malformed",
		},
	)
)

// Outcome labels for PlansGeneratedTotal.
const (
	OutcomeOK         = "ok"
	OutcomeOverBudget = "over_budget"
	OutcomeError      = "error"
)
