package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishOrderEvent keys messages by product so all events for one product
// land on one partition in commit order.
func (k *KafkaPublisher) PublishOrderEvent(event domain.OrderEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ProductID, 10)),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

// NoopPublisher swallows events. Used when the events topic is disabled and
// in tests that do not assert on publishing.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (*NoopPublisher) PublishOrderEvent(domain.OrderEvent) error {
	return nil
}
