package workflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric outcome label values.
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

var (
	// transitionsTotal tracks transitions by machine, edge, event, and outcome.
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workflow_transitions_total",
		Help: "Total number of workflow transitions by machine, from_state, to_state, event, and outcome",
	}, []string{"machine", "from_state", "to_state", "event", "outcome"})

	// guardRejectionsTotal tracks guard rejections separately so noisy
	// guard-heavy charts stand out without digging through outcomes.
	guardRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workflow_guard_rejections_total",
		Help: "Total number of guard rejections by machine, state, and event",
	}, []string{"machine", "state", "event"})

	// transitionDuration tracks end-to-end transition time including hooks
	// and actions.
	transitionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "workflow_transition_duration_seconds",
		Help:    "Duration of workflow transitions by machine, event, and outcome",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	}, []string{"machine", "event", "outcome"})
)

func sanitizeLabel(value string) string {
	if value == "" {
		return "none"
	}

	return value
}
