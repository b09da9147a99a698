package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	alertsRaisedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "alerts",
		Name:      "raised_total",
		Help:      "Count of risk alerts raised, by band.",
	}, []string{"band"})
	alertsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "alerts",
		Name:      "published_total",
		Help:      "Count of alert deliveries, by sink.",
	}, []string{"sink", "status"})
)

type Alerts struct{}

func NewAlerts() *Alerts {
	return &Alerts{}
}

func (m Alerts) ObserveAlert(band string) {
	alertsRaisedTotal.WithLabelValues(band).Inc()
}

func (m Alerts) ObservePublish(sink string, err error) {
	alertsPublishedTotal.WithLabelValues(sink, status(err)).Inc()
}
