package operator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var actionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "hustle_tracker",
		Subsystem: "operator",
		Name:      "actions_total",
		Help:      "Actions processed by the operator, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

var actionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "hustle_tracker",
		Subsystem: "operator",
		Name:      "action_duration_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"action"},
)

var queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "hustle_tracker",
	Subsystem: "operator",
	Name:      "queue_depth",
	Help:      "Actions waiting for a worker.",
})

func observeAction(name, outcome string, elapsed time.Duration) {
	actionsTotal.WithLabelValues(name, outcome).Inc()
	actionDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}
