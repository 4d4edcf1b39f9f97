package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hrahman/profilio/internal/domain/calendar"
	"github.com/hrahman/profilio/internal/domain/user"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/logger"
)

// ReminderScheduler is the event lifecycle hook into the reminder core.
// Create arms a reminder, update re-arms it, delete cancels it.
type ReminderScheduler interface {
	Schedule(snap calendar.EventSnapshot)
	Reschedule(snap calendar.EventSnapshot)
	Cancel(eventID uuid.UUID)
}

type CalendarUseCase struct {
	eventRepo calendar.Repository
	userRepo  user.Repository
	scheduler ReminderScheduler
	logger    logger.Logger
}

func NewCalendarUseCase(
	eRepo calendar.Repository,
	uRepo user.Repository,
	scheduler ReminderScheduler,
	log logger.Logger,
) *CalendarUseCase {
	return &CalendarUseCase{
		eventRepo: eRepo,
		userRepo:  uRepo,
		scheduler: scheduler,
		logger:    log,
	}
}

var tracer = otel.Tracer("calendar_usecase")

type CreateEventInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

func (uc *CalendarUseCase) CreateEvent(ctx context.Context, input CreateEventInput) (*calendar.Event, error) {
	ctx, span := tracer.Start(ctx, "CreateEvent")
	defer span.End()

	owner, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	now := time.Now().UTC()
	event := &calendar.Event{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime.UTC(),
		EndTime:     input.EndTime.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := event.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("event validation failed", err)
	}

	if err := uc.eventRepo.Save(ctx, event); err != nil {
		span.RecordError(err)
		return nil, err
	}

	// Fire-and-forget: the caller gets no acknowledgment of reminder
	// delivery, only that a best-effort attempt was registered.
	uc.scheduler.Schedule(event.Snapshot(owner.Email))

	span.SetAttributes(attribute.String("event_id", event.ID.String()))
	return event, nil
}

func (uc *CalendarUseCase) ListEvents(ctx context.Context, ownerID uuid.UUID, day time.Time) ([]*calendar.Event, error) {
	return uc.eventRepo.ListByOwner(ctx, ownerID, day)
}

type UpdateEventInput struct {
	EventID     uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

func (uc *CalendarUseCase) UpdateEvent(ctx context.Context, input UpdateEventInput) (*calendar.Event, error) {
	ctx, span := tracer.Start(ctx, "UpdateEvent")
	defer span.End()

	event, err := uc.eventRepo.FindByID(ctx, input.EventID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.StartTime = input.StartTime.UTC()
	event.EndTime = input.EndTime.UTC()
	event.UpdatedAt = time.Now().UTC()

	if err := event.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("event validation failed", err)
	}

	if err := uc.eventRepo.Update(ctx, event); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.scheduler.Reschedule(event.Snapshot(owner.Email))

	uc.logger.Info("event updated, reminder rescheduled",
		zap.String("event_id", event.ID.String()))
	return event, nil
}

func (uc *CalendarUseCase) DeleteEvent(ctx context.Context, eventID, ownerID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "DeleteEvent")
	defer span.End()

	if err := uc.eventRepo.Delete(ctx, eventID, ownerID); err != nil {
		span.RecordError(err)
		return err
	}

	uc.scheduler.Cancel(eventID)

	uc.logger.Info("event deleted, pending reminder cancelled",
		zap.String("event_id", eventID.String()))
	return nil
}
