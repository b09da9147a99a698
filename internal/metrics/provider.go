package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "operations_total",
		Help:      "Count of external provider calls, retries included.",
	}, []string{"provider", "operation", "status"})
	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "operation_duration_seconds",
		Help:      "Duration of external provider calls, retries included.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 40, 80},
	}, []string{"provider", "operation", "status"})
	providerRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider",
		Name:      "retries_total",
		Help:      "Count of provider attempts retried, by failure class.",
	}, []string{"provider", "operation", "class"})
)

// Provider tracks calls to one external data provider.
type Provider struct {
	name string
}

func NewProvider(name string) *Provider {
	if name == "" {
		name = "unknown"
	}
	return &Provider{name: name}
}

// Observe records the outcome and duration of one provider call.
func (m Provider) Observe(operation string, err error, started time.Time) {
	s := status(err)
	providerRequestsTotal.WithLabelValues(m.name, operation, s).Inc()
	providerRequestDuration.WithLabelValues(m.name, operation, s).Observe(time.Since(started).Seconds())
}

// ObserveRetry counts one retried attempt.
func (m Provider) ObserveRetry(operation, class string) {
	providerRetriesTotal.WithLabelValues(m.name, operation, class).Inc()
}
