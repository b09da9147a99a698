package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analyticsOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "operations_total",
		Help:      "Count of forensic analytics operations.",
	}, []string{"operation", "status"})
	analyticsOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "operation_duration_seconds",
		Help:      "Duration of forensic analytics operations.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"operation", "status"})
)

// Analytics tracks traces, cluster detection, scoring and correlation runs.
type Analytics struct{}

func NewAnalytics() *Analytics {
	return &Analytics{}
}

func (m Analytics) Observe(operation string, err error, started time.Time) {
	s := status(err)
	analyticsOperationsTotal.WithLabelValues(operation, s).Inc()
	analyticsOperationDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}
