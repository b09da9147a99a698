package alerting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

const DefaultRedisChannel = "forensics:risk-alerts"

// RedisSink publishes alerts as JSON on a pub/sub channel.
type RedisSink struct {
	client  RedisPublisher
	channel string
}

func NewRedisSink(client RedisPublisher, channel string) *RedisSink {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Name() string {
	return "redis"
}

func (s *RedisSink) Publish(ctx context.Context, a model.Alert) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", s.channel, err)
	}
	return nil
}
