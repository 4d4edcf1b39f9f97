package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrahman/profilio/internal/domain/calendar"
	"github.com/hrahman/profilio/internal/domain/user"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/logger"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*calendar.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*calendar.Event)}
}

func (r *fakeEventRepo) Save(_ context.Context, e *calendar.Event) error {
	stored := *e
	r.events[e.ID] = &stored
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, e *calendar.Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return calendar.ErrEventNotFound
	}
	stored := *e
	r.events[e.ID] = &stored
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	e, ok := r.events[id]
	if !ok || e.OwnerID != ownerID {
		return apperror.NewNotFound("event", id.String())
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*calendar.Event, error) {
	e, ok := r.events[id]
	if !ok || e.OwnerID != ownerID {
		return nil, apperror.NewNotFound("event", id.String())
	}
	found := *e
	return &found, nil
}

func (r *fakeEventRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, day time.Time) ([]*calendar.Event, error) {
	var out []*calendar.Event
	for _, e := range r.events {
		if e.OwnerID != ownerID {
			continue
		}
		if !day.IsZero() {
			dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
			if e.StartTime.Before(dayStart) || !e.StartTime.Before(dayStart.Add(24*time.Hour)) {
				continue
			}
		}
		found := *e
		out = append(out, &found)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return apperror.NewNotFound("user", id.String())
	}
	u.PasswordHash = hash
	return nil
}

type fakeScheduler struct {
	scheduled   []calendar.EventSnapshot
	rescheduled []calendar.EventSnapshot
	cancelled   []uuid.UUID
}

func (s *fakeScheduler) Schedule(snap calendar.EventSnapshot)   { s.scheduled = append(s.scheduled, snap) }
func (s *fakeScheduler) Reschedule(snap calendar.EventSnapshot) { s.rescheduled = append(s.rescheduled, snap) }
func (s *fakeScheduler) Cancel(id uuid.UUID)                    { s.cancelled = append(s.cancelled, id) }

func newCalendarFixture() (*CalendarUseCase, *fakeEventRepo, *fakeScheduler, *user.User) {
	owner := &user.User{
		ID:    uuid.New(),
		Name:  "Alex",
		Email: "alex@example.com",
		Role:  user.RoleUser,
	}
	eventRepo := newFakeEventRepo()
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*user.User{owner.ID: owner}}
	scheduler := &fakeScheduler{}
	uc := NewCalendarUseCase(eventRepo, userRepo, scheduler, logger.NewNop())
	return uc, eventRepo, scheduler, owner
}

func TestCreateEventSchedulesReminder(t *testing.T) {
	uc, repo, scheduler, owner := newCalendarFixture()

	start := time.Now().UTC().Add(2 * time.Hour)
	event, err := uc.CreateEvent(context.Background(), CreateEventInput{
		OwnerID:     owner.ID,
		Title:       "Standup",
		Description: "Daily standup",
		StartTime:   start,
		EndTime:     start.Add(15 * time.Minute),
	})
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Contains(t, repo.events, event.ID)

	require.Len(t, scheduler.scheduled, 1)
	snap := scheduler.scheduled[0]
	assert.Equal(t, event.ID, snap.ID)
	assert.Equal(t, "Standup", snap.Title)
	assert.Equal(t, owner.Email, snap.OwnerEmail)
}

func TestCreateEventInvalidInput(t *testing.T) {
	uc, repo, scheduler, owner := newCalendarFixture()

	_, err := uc.CreateEvent(context.Background(), CreateEventInput{
		OwnerID:   owner.ID,
		Title:     "",
		StartTime: time.Now().UTC().Add(time.Hour),
		EndTime:   time.Now().UTC().Add(2 * time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	assert.Empty(t, repo.events)
	assert.Empty(t, scheduler.scheduled)
}

func TestCreateEventUnknownOwner(t *testing.T) {
	uc, _, scheduler, _ := newCalendarFixture()

	start := time.Now().UTC().Add(time.Hour)
	_, err := uc.CreateEvent(context.Background(), CreateEventInput{
		OwnerID:   uuid.New(),
		Title:     "Orphan event",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Empty(t, scheduler.scheduled)
}

func TestUpdateEventReschedulesReminder(t *testing.T) {
	uc, _, scheduler, owner := newCalendarFixture()

	start := time.Now().UTC().Add(2 * time.Hour)
	event, err := uc.CreateEvent(context.Background(), CreateEventInput{
		OwnerID:   owner.ID,
		Title:     "Standup",
		StartTime: start,
		EndTime:   start.Add(15 * time.Minute),
	})
	require.NoError(t, err)

	newStart := start.Add(3 * time.Hour)
	updated, err := uc.UpdateEvent(context.Background(), UpdateEventInput{
		EventID:   event.ID,
		OwnerID:   owner.ID,
		Title:     "Standup (moved)",
		StartTime: newStart,
		EndTime:   newStart.Add(15 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "Standup (moved)", updated.Title)

	require.Len(t, scheduler.rescheduled, 1)
	assert.Equal(t, event.ID, scheduler.rescheduled[0].ID)
	assert.True(t, scheduler.rescheduled[0].StartTime.Equal(newStart))
}

func TestUpdateEventOfOtherOwner(t *testing.T) {
	uc, _, scheduler, owner := newCalendarFixture()

	start := time.Now().UTC().Add(2 * time.Hour)
	event, err := uc.CreateEvent(context.Background(), CreateEventInput{
		OwnerID:   owner.ID,
		Title:     "Private event",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = uc.UpdateEvent(context.Background(), UpdateEventInput{
		EventID:   event.ID,
		OwnerID:   uuid.New(),
		Title:     "Hijacked",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Empty(t, scheduler.rescheduled)
}

func TestDeleteEventCancelsReminder(t *testing.T) {
	uc, repo, scheduler, owner := newCalendarFixture()

	start := time.Now().UTC().Add(2 * time.Hour)
	event, err := uc.CreateEvent(context.Background(), CreateEventInput{
		OwnerID:   owner.ID,
		Title:     "Standup",
		StartTime: start,
		EndTime:   start.Add(15 * time.Minute),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteEvent(context.Background(), event.ID, owner.ID))

	assert.Empty(t, repo.events)
	require.Len(t, scheduler.cancelled, 1)
	assert.Equal(t, event.ID, scheduler.cancelled[0])
}

func TestListEventsFiltersByDay(t *testing.T) {
	uc, _, _, owner := newCalendarFixture()

	day := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	onDay := day.Add(10 * time.Hour)
	offDay := day.Add(30 * time.Hour)

	for _, start := range []time.Time{onDay, offDay} {
		_, err := uc.CreateEvent(context.Background(), CreateEventInput{
			OwnerID:   owner.ID,
			Title:     "Event",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		require.NoError(t, err)
	}

	events, err := uc.ListEvents(context.Background(), owner.ID, day)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].StartTime.Equal(onDay))
}
