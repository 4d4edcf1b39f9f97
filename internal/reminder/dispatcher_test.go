package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrahman/profilio/internal/domain/calendar"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/logger"
)

type captureSender struct {
	to      []string
	subject []string
	body    []string
	err     error
}

func (s *captureSender) Send(to, subject, body string) error {
	s.to = append(s.to, to)
	s.subject = append(s.subject, subject)
	s.body = append(s.body, body)
	return s.err
}

type captureRecorder struct {
	deliveries []Delivery
	err        error
}

func (r *captureRecorder) RecordDelivery(_ context.Context, d Delivery) error {
	r.deliveries = append(r.deliveries, d)
	return r.err
}

func TestDispatchRendersReminderMail(t *testing.T) {
	sender := &captureSender{}
	recorder := &captureRecorder{}
	d := NewEmailDispatcher(sender, recorder, logger.NewNop())

	start := time.Date(2026, 9, 14, 15, 30, 0, 0, time.UTC)
	snap := calendar.EventSnapshot{
		ID:          uuid.New(),
		Title:       "Dentist appointment",
		Description: "Bring insurance card",
		StartTime:   start,
		EndTime:     start.Add(45 * time.Minute),
		OwnerEmail:  "alex@example.com",
	}

	err := d.Dispatch(snap)
	require.NoError(t, err)

	require.Len(t, sender.to, 1)
	assert.Equal(t, "alex@example.com", sender.to[0])
	assert.Equal(t, "Event Reminder: Dentist appointment", sender.subject[0])

	expectedBody := `Reminder for your event:
Title: Dentist appointment
Description: Bring insurance card
Start Time: 2026-09-14 15:30:00
End Time: 2026-09-14 16:15:00

Please do not reply to this email.
`
	assert.Equal(t, expectedBody, sender.body[0])

	require.Len(t, recorder.deliveries, 1)
	assert.Equal(t, snap.ID.String(), recorder.deliveries[0].EventID)
	assert.Equal(t, "alex@example.com", recorder.deliveries[0].Recipient)
	assert.Equal(t, DeliveryStatusSent, recorder.deliveries[0].Status)
	assert.Empty(t, recorder.deliveries[0].Error)
}

func TestDispatchSendFailure(t *testing.T) {
	sender := &captureSender{err: errors.New("dial tcp: connection refused")}
	recorder := &captureRecorder{}
	d := NewEmailDispatcher(sender, recorder, logger.NewNop())

	snap := calendar.EventSnapshot{
		ID:         uuid.New(),
		Title:      "Team sync",
		StartTime:  time.Now().UTC().Add(time.Hour),
		EndTime:    time.Now().UTC().Add(2 * time.Hour),
		OwnerEmail: "alex@example.com",
	}

	err := d.Dispatch(snap)
	require.Error(t, err)

	assert.ErrorIs(t, err, apperror.ErrDependency)

	// failure still lands in the audit stream, with the reason attached
	require.Len(t, recorder.deliveries, 1)
	assert.Equal(t, DeliveryStatusFailed, recorder.deliveries[0].Status)
	assert.Contains(t, recorder.deliveries[0].Error, "connection refused")

	// one attempt only
	assert.Len(t, sender.to, 1)
}

func TestDispatchWithoutRecorder(t *testing.T) {
	sender := &captureSender{}
	d := NewEmailDispatcher(sender, nil, logger.NewNop())

	snap := calendar.EventSnapshot{
		ID:         uuid.New(),
		Title:      "Solo run",
		StartTime:  time.Now().UTC().Add(time.Hour),
		EndTime:    time.Now().UTC().Add(2 * time.Hour),
		OwnerEmail: "alex@example.com",
	}

	assert.NoError(t, d.Dispatch(snap))
	assert.Len(t, sender.to, 1)
}

func TestDispatchRecorderFailureDoesNotFailDispatch(t *testing.T) {
	sender := &captureSender{}
	recorder := &captureRecorder{err: errors.New("kafka: broker unreachable")}
	d := NewEmailDispatcher(sender, recorder, logger.NewNop())

	snap := calendar.EventSnapshot{
		ID:         uuid.New(),
		Title:      "Team sync",
		StartTime:  time.Now().UTC().Add(time.Hour),
		EndTime:    time.Now().UTC().Add(2 * time.Hour),
		OwnerEmail: "alex@example.com",
	}

	assert.NoError(t, d.Dispatch(snap))
	assert.Len(t, sender.to, 1)
}
