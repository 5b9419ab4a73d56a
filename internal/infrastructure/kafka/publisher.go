package kafka

import (
	"context"
	"time"

	"github.com/msmarket/market-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}
