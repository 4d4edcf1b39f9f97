package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrEventNotFound = errors.New("event not found")

func (e *Event) Validate() error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.StartTime.IsZero() {
		return errors.New("start_time is required")
	}
	if e.EndTime.IsZero() {
		return errors.New("end_time is required")
	}
	return nil
}

// EventSnapshot is the immutable view of an event captured when a reminder
// is scheduled. Later changes to the stored record do not reach an already
// registered reminder; lifecycle hooks must go through the scheduler.
type EventSnapshot struct {
	ID          uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	OwnerEmail  string
}

func (e *Event) Snapshot(ownerEmail string) EventSnapshot {
	return EventSnapshot{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		OwnerEmail:  ownerEmail,
	}
}

type Repository interface {
	Save(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Event, error)
	// ListByOwner returns the owner's events, restricted to events starting
	// within [day, day+24h) when day is non-zero.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, day time.Time) ([]*Event, error)
}
