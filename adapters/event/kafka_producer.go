package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/hrahman/profilio/internal/config"
	"github.com/hrahman/profilio/internal/reminder"
	"github.com/hrahman/profilio/pkg/logger"
)

const TopicReminderDeliveries = "reminder.deliveries"

type KafkaProducerClient struct {
	DeliveryWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'reminder.deliveries'
	deliveryWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicReminderDeliveries,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		DeliveryWriter: deliveryWriter,
	}, nil
}

// RecordDelivery publishes a reminder dispatch outcome to the audit topic.
// Implements reminder.DeliveryRecorder.
func (c *KafkaProducerClient) RecordDelivery(ctx context.Context, d reminder.Delivery) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("cannot marshal delivery record: %w", err)
	}

	err = c.DeliveryWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(d.EventID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("cannot publish delivery record: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.DeliveryWriter != nil {
		c.DeliveryWriter.Close()
	}
}
