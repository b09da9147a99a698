package alerting

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		AlertExists(ctx context.Context, address string, band model.RiskBand) (bool, error)
		InsertAlert(ctx context.Context, a model.Alert) (model.Alert, error)
	}

	// Sink delivers a raised alert to a downstream consumer.
	Sink interface {
		Name() string
		Publish(ctx context.Context, a model.Alert) error
	}

	RedisPublisher interface {
		Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	}

	Metrics interface {
		ObserveAlert(band string)
		ObservePublish(sink string, err error)
	}
)
