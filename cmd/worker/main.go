package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hrahman/profilio/adapters/event"
	"github.com/hrahman/profilio/adapters/persistence"
	"github.com/hrahman/profilio/internal/application/usecase/audit"
	"github.com/hrahman/profilio/internal/config"
	"github.com/hrahman/profilio/internal/reminder"
	"github.com/hrahman/profilio/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting profilio worker...")

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Repositories
	deliveryRepo := persistence.NewPostgresDeliveryLogRepo(dbPool)

	// Worker Use Case
	recordDeliveryUC := audit.NewRecordDeliveryUseCase(deliveryRepo, appLogger)

	// Kafka Consumer
	deliveryConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicReminderDeliveries,
		GroupID:  "reminder-audit-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer deliveryConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicReminderDeliveries))

	ctx := context.Background()
	for {
		msg, err := deliveryConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("failed to read message from Kafka", err)
			continue
		}

		var delivery reminder.Delivery
		if err := json.Unmarshal(msg.Value, &delivery); err != nil {
			appLogger.Error("failed to unmarshal delivery record, skipping", err,
				zap.String("key", string(msg.Key)))
			commitMessage(deliveryConsumer, msg, appLogger)
			continue
		}

		if err := recordDeliveryUC.Execute(ctx, delivery); err != nil {
			appLogger.Error("failed to record delivery", err,
				zap.String("event_id", delivery.EventID))
			continue
		}

		commitMessage(deliveryConsumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("failed to commit message", err)
	}
}
