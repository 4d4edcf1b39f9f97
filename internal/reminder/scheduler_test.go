package reminder

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrahman/profilio/internal/domain/calendar"
	"github.com/hrahman/profilio/pkg/logger"
)

type captureDispatcher struct {
	mu    sync.Mutex
	calls []calendar.EventSnapshot
	err   error
	fired chan calendar.EventSnapshot
}

func newCaptureDispatcher() *captureDispatcher {
	return &captureDispatcher{fired: make(chan calendar.EventSnapshot, 8)}
}

func (d *captureDispatcher) Dispatch(snap calendar.EventSnapshot) error {
	d.mu.Lock()
	d.calls = append(d.calls, snap)
	d.mu.Unlock()
	d.fired <- snap
	return d.err
}

func (d *captureDispatcher) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

func waitForFire(t *testing.T, d *captureDispatcher, within time.Duration) calendar.EventSnapshot {
	t.Helper()
	select {
	case snap := <-d.fired:
		return snap
	case <-time.After(within):
		t.Fatal("reminder did not fire in time")
		return calendar.EventSnapshot{}
	}
}

func testSnapshot(start time.Time) calendar.EventSnapshot {
	return calendar.EventSnapshot{
		ID:          uuid.New(),
		Title:       "Team sync",
		Description: "Weekly catch-up",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		OwnerEmail:  "owner@example.com",
	}
}

func TestScheduleFiresAtLeadTimeBeforeStart(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	lead := 50 * time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())
	defer s.Close()

	snap := testSnapshot(time.Now().UTC().Add(lead + 60*time.Millisecond))
	s.Schedule(snap)

	require.Equal(t, 1, s.PendingCount())

	fired := waitForFire(t, dispatcher, time.Second)
	assert.Equal(t, snap.ID, fired.ID)
	assert.Equal(t, snap.Title, fired.Title)
	assert.Equal(t, snap.Description, fired.Description)
	assert.Equal(t, snap.StartTime, fired.StartTime)
	assert.Equal(t, snap.EndTime, fired.EndTime)

	assert.Equal(t, 0, s.PendingCount())
	assert.Equal(t, 1, dispatcher.callCount())
}

func TestSchedulePastDeadlineIsSilentNoop(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	s := NewScheduler(dispatcher, 30*time.Minute, clock.New(), logger.NewNop())
	defer s.Close()

	// starts in 10 minutes, within the 30 minute lead window
	s.Schedule(testSnapshot(time.Now().UTC().Add(10 * time.Minute)))
	// already started
	s.Schedule(testSnapshot(time.Now().UTC().Add(-time.Hour)))

	assert.Equal(t, 0, s.PendingCount())

	select {
	case <-dispatcher.fired:
		t.Fatal("no reminder should fire for past-deadline events")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFiredSnapshotIgnoresLaterMutation(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	lead := 40 * time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())
	defer s.Close()

	event := &calendar.Event{
		ID:          uuid.New(),
		Title:       "Original title",
		Description: "Original description",
		StartTime:   time.Now().UTC().Add(lead + 50*time.Millisecond),
		EndTime:     time.Now().UTC().Add(2 * time.Hour),
	}
	s.Schedule(event.Snapshot("owner@example.com"))

	// Mutating the backing record after scheduling must not reach the
	// registered reminder.
	event.Title = "Changed title"
	event.Description = "Changed description"

	fired := waitForFire(t, dispatcher, time.Second)
	assert.Equal(t, "Original title", fired.Title)
	assert.Equal(t, "Original description", fired.Description)
}

func TestDispatchFailureIsNotRetried(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	dispatcher.err = errors.New("smtp connection refused")
	lead := 30 * time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())
	defer s.Close()

	s.Schedule(testSnapshot(time.Now().UTC().Add(lead + 40*time.Millisecond)))

	waitForFire(t, dispatcher, time.Second)

	// give a hypothetical retry time to show up
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, dispatcher.callCount())
	assert.Equal(t, 0, s.PendingCount())
}

func TestRemindersFireInFireTimeOrder(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	lead := 30 * time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())
	defer s.Close()

	now := time.Now().UTC()
	later := testSnapshot(now.Add(lead + 160*time.Millisecond))
	sooner := testSnapshot(now.Add(lead + 60*time.Millisecond))

	// registered in reverse of their fire order
	s.Schedule(later)
	s.Schedule(sooner)
	require.Equal(t, 2, s.PendingCount())

	first := waitForFire(t, dispatcher, time.Second)
	second := waitForFire(t, dispatcher, time.Second)
	assert.Equal(t, sooner.ID, first.ID)
	assert.Equal(t, later.ID, second.ID)
}

func TestCancelSuppressesFire(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	lead := 30 * time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())
	defer s.Close()

	snap := testSnapshot(time.Now().UTC().Add(lead + 80*time.Millisecond))
	s.Schedule(snap)
	require.Equal(t, 1, s.PendingCount())

	s.Cancel(snap.ID)
	assert.Equal(t, 0, s.PendingCount())

	select {
	case <-dispatcher.fired:
		t.Fatal("cancelled reminder must not fire")
	case <-time.After(250 * time.Millisecond):
	}
}

func TestCancelUnknownEventIsNoop(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	s := NewScheduler(dispatcher, time.Minute, clock.New(), logger.NewNop())
	defer s.Close()

	s.Cancel(uuid.New())
	assert.Equal(t, 0, s.PendingCount())
}

func TestRescheduleReplacesPendingReminder(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	lead := 30 * time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())
	defer s.Close()

	snap := testSnapshot(time.Now().UTC().Add(lead + 60*time.Millisecond))
	s.Schedule(snap)

	moved := snap
	moved.Title = "Moved event"
	moved.StartTime = time.Now().UTC().Add(lead + 150*time.Millisecond)
	s.Reschedule(moved)

	require.Equal(t, 1, s.PendingCount())

	fired := waitForFire(t, dispatcher, time.Second)
	assert.Equal(t, "Moved event", fired.Title)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, dispatcher.callCount())
}

func TestRescheduleIntoLeadWindowCancels(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	lead := 50 * time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())
	defer s.Close()

	snap := testSnapshot(time.Now().UTC().Add(lead + 200*time.Millisecond))
	s.Schedule(snap)
	require.Equal(t, 1, s.PendingCount())

	moved := snap
	moved.StartTime = time.Now().UTC().Add(10 * time.Millisecond)
	s.Reschedule(moved)

	assert.Equal(t, 0, s.PendingCount())

	select {
	case <-dispatcher.fired:
		t.Fatal("reminder rescheduled inside the lead window must not fire")
	case <-time.After(300 * time.Millisecond):
	}
}

type countingDispatcher struct {
	calls atomic.Int64
}

func (d *countingDispatcher) Dispatch(calendar.EventSnapshot) error {
	d.calls.Add(1)
	return nil
}

// Timers armed with near-zero delay fire while Schedule is still returning,
// so the callback and the registration path overlap. Every reminder must
// still reach the dispatcher exactly once.
func TestScheduleBurstWithTinyDelays(t *testing.T) {
	dispatcher := &countingDispatcher{}
	lead := time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())
	defer s.Close()

	const n = 500
	for i := 0; i < n; i++ {
		start := time.Now().UTC().Add(lead + 50*time.Microsecond)
		s.Schedule(testSnapshot(start))
	}

	require.Eventually(t, func() bool {
		return dispatcher.calls.Load() == n && s.PendingCount() == 0
	}, 5*time.Second, 10*time.Millisecond)

	// nothing fires twice afterwards
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(n), dispatcher.calls.Load())
}

func TestCloseAbandonsPendingReminders(t *testing.T) {
	dispatcher := newCaptureDispatcher()
	lead := 30 * time.Millisecond
	s := NewScheduler(dispatcher, lead, clock.New(), logger.NewNop())

	s.Schedule(testSnapshot(time.Now().UTC().Add(lead + 50*time.Millisecond)))
	s.Schedule(testSnapshot(time.Now().UTC().Add(lead + 70*time.Millisecond)))
	require.Equal(t, 2, s.PendingCount())

	s.Close()
	assert.Equal(t, 0, s.PendingCount())

	// a scheduler that has been closed accepts no new work
	s.Schedule(testSnapshot(time.Now().UTC().Add(time.Hour)))
	assert.Equal(t, 0, s.PendingCount())

	select {
	case <-dispatcher.fired:
		t.Fatal("abandoned reminder must not fire")
	case <-time.After(200 * time.Millisecond):
	}
}
