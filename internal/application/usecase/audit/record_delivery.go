package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/hrahman/profilio/adapters/persistence"
	"github.com/hrahman/profilio/internal/reminder"
	"github.com/hrahman/profilio/pkg/logger"
)

// RecordDeliveryUseCase is the worker-side half of the reminder audit
// trail: it takes a delivery record off the bus and persists it.
type RecordDeliveryUseCase struct {
	deliveryRepo persistence.DeliveryLogRepository
	logger       logger.Logger
}

func NewRecordDeliveryUseCase(repo persistence.DeliveryLogRepository, log logger.Logger) *RecordDeliveryUseCase {
	return &RecordDeliveryUseCase{deliveryRepo: repo, logger: log}
}

func (uc *RecordDeliveryUseCase) Execute(ctx context.Context, d reminder.Delivery) error {
	if err := uc.deliveryRepo.Insert(ctx, d); err != nil {
		return err
	}

	if d.Status == reminder.DeliveryStatusFailed {
		uc.logger.Warn("reminder delivery failed",
			zap.String("event_id", d.EventID),
			zap.String("recipient", d.Recipient),
			zap.String("error", d.Error))
	}
	return nil
}
