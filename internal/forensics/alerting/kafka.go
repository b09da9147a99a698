package alerting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

const (
	DefaultKafkaTopic = "forensics.risk-alerts"
	alertEventType    = "risk_alert"
)

// envelope wraps every event written to Kafka.
type envelope struct {
	Type string          `json:"type"`
	TS   int64           `json:"ts"`
	Data json.RawMessage `json:"data"`
}

// KafkaSink writes alerts to a topic keyed by address.
type KafkaSink struct {
	topic    string
	producer sarama.SyncProducer
	now      func() time.Time
}

// NewKafkaProducer dials brokers with a producer configured for acknowledged sends.
func NewKafkaProducer(brokers []string, cfg *sarama.Config) (sarama.SyncProducer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return p, nil
}

func NewKafkaSink(producer sarama.SyncProducer, topic string) *KafkaSink {
	if topic == "" {
		topic = DefaultKafkaTopic
	}
	return &KafkaSink{topic: topic, producer: producer, now: time.Now}
}

func (s *KafkaSink) Name() string {
	return "kafka"
}

func (s *KafkaSink) Publish(ctx context.Context, a model.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}
	value, err := json.Marshal(envelope{Type: alertEventType, TS: s.now().UnixMilli(), Data: data})
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(a.Address),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send to %s: %w", s.topic, err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.producer.Close()
}
