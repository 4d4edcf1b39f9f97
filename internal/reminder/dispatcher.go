package reminder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hrahman/profilio/internal/domain/calendar"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/logger"
)

const timeLayout = "2006-01-02 15:04:05"

// MailSender is the outbound email collaborator. One call per fired reminder.
type MailSender interface {
	Send(to, subject, body string) error
}

const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// Delivery is the audit record of one dispatch attempt.
type Delivery struct {
	EventID   string    `json:"event_id"`
	Recipient string    `json:"recipient"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	FiredAt   time.Time `json:"fired_at"`
}

// DeliveryRecorder publishes dispatch outcomes to the operator channel.
type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, d Delivery) error
}

// EmailDispatcher renders the reminder mail for an event snapshot and hands
// it to the mail collaborator. There is no retry: a failed send is recorded
// and surfaced to the caller, nothing more.
type EmailDispatcher struct {
	sender   MailSender
	recorder DeliveryRecorder
	logger   logger.Logger
}

func NewEmailDispatcher(sender MailSender, recorder DeliveryRecorder, log logger.Logger) *EmailDispatcher {
	return &EmailDispatcher{
		sender:   sender,
		recorder: recorder,
		logger:   log,
	}
}

func (d *EmailDispatcher) Dispatch(snap calendar.EventSnapshot) error {
	subject := "Event Reminder: " + snap.Title
	body := fmt.Sprintf(`Reminder for your event:
Title: %s
Description: %s
Start Time: %s
End Time: %s

Please do not reply to this email.
`,
		snap.Title,
		snap.Description,
		snap.StartTime.UTC().Format(timeLayout),
		snap.EndTime.UTC().Format(timeLayout),
	)

	sendErr := d.sender.Send(snap.OwnerEmail, subject, body)

	d.record(snap, sendErr)

	if sendErr != nil {
		return apperror.NewDependencyFailure("mail sender", sendErr)
	}

	d.logger.Info("reminder sent",
		zap.String("event_id", snap.ID.String()),
		zap.String("recipient", snap.OwnerEmail))
	return nil
}

func (d *EmailDispatcher) record(snap calendar.EventSnapshot, sendErr error) {
	if d.recorder == nil {
		return
	}

	delivery := Delivery{
		EventID:   snap.ID.String(),
		Recipient: snap.OwnerEmail,
		Status:    DeliveryStatusSent,
		FiredAt:   time.Now().UTC(),
	}
	if sendErr != nil {
		delivery.Status = DeliveryStatusFailed
		delivery.Error = sendErr.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.recorder.RecordDelivery(ctx, delivery); err != nil {
		d.logger.Warn("failed to record reminder delivery",
			zap.String("event_id", snap.ID.String()), zap.Error(err))
	}
}
