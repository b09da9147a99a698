// Package alerting raises one alert per address and risk band and fans it
// out to the configured sinks.
package alerting

import (
	"context"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"
)

type Notifier struct {
	store   Store
	sinks   []Sink
	metrics Metrics
	logger  *zap.Logger
	// locks serializes the exists check and insert per address.
	locks *xsync.Map[string, *sync.Mutex]
}

func NewNotifier(store Store, metrics Metrics, logger *zap.Logger, sinks ...Sink) *Notifier {
	return &Notifier{
		store:   store,
		sinks:   sinks,
		metrics: metrics,
		logger:  logger.Named("alerting"),
		locks:   xsync.NewMap[string, *sync.Mutex](),
	}
}

// Raise stores an alert when factors fall in an alerting band and no alert
// for the same address and band exists yet. Sink failures are only logged.
func (n *Notifier) Raise(ctx context.Context, address string, factors model.RiskFactors) (model.Alert, bool, error) {
	if !factors.Band.Alerting() {
		return model.Alert{}, false, nil
	}

	lock, _ := n.locks.LoadOrStore(address, &sync.Mutex{})
	lock.Lock()
	defer lock.Unlock()

	exists, err := n.store.AlertExists(ctx, address, factors.Band)
	if err != nil {
		return model.Alert{}, false, fmt.Errorf("check alert: %w", err)
	}
	if exists {
		return model.Alert{}, false, nil
	}

	alert, err := n.store.InsertAlert(ctx, model.Alert{
		Address: address,
		Band:    factors.Band,
		Total:   factors.Total,
	})
	if err != nil {
		return model.Alert{}, false, fmt.Errorf("store alert: %w", err)
	}
	n.metrics.ObserveAlert(string(alert.Band))

	for _, sink := range n.sinks {
		err := sink.Publish(ctx, alert)
		n.metrics.ObservePublish(sink.Name(), err)
		if err != nil {
			n.logger.Warn("alert not published",
				zap.String("sink", sink.Name()),
				zap.String("address", address),
				zap.Error(err),
			)
		}
	}
	return alert, true, nil
}
