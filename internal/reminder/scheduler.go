package reminder

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"
	"go.uber.org/zap"

	"github.com/hrahman/profilio/internal/domain/calendar"
	"github.com/hrahman/profilio/pkg/logger"
)

// DefaultLeadTime is how long before an event starts its reminder fires.
const DefaultLeadTime = 30 * time.Minute

// Dispatcher delivers the reminder for one event snapshot. Exactly one
// delivery attempt is made per fired reminder; a returned error is logged
// and the reminder is considered lost.
type Dispatcher interface {
	Dispatch(snap calendar.EventSnapshot) error
}

// Scheduler owns the pending one-shot reminder timers, keyed by event ID.
// All state is in memory; pending reminders do not survive a restart.
type Scheduler struct {
	dispatcher Dispatcher
	lead       time.Duration
	clk        clock.Clock
	logger     logger.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]*pendingEntry
	closed  bool
}

// pendingEntry is the identity of one armed reminder. The firing callback
// captures the entry, not the timer, so the handle exists in the map before
// the timer is armed and the timer field is only touched under the mutex.
type pendingEntry struct {
	timer *time.Timer
}

func NewScheduler(d Dispatcher, lead time.Duration, clk clock.Clock, log logger.Logger) *Scheduler {
	if lead <= 0 {
		lead = DefaultLeadTime
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Scheduler{
		dispatcher: d,
		lead:       lead,
		clk:        clk,
		logger:     log,
		pending:    make(map[uuid.UUID]*pendingEntry),
	}
}

// Schedule registers a one-shot reminder firing lead-time before the event
// starts. Events whose fire time has already passed are skipped silently.
// Any reminder already registered for the same event is replaced, so a
// reschedule to a start time inside the lead window cancels the old timer
// without arming a new one.
func (s *Scheduler) Schedule(snap calendar.EventSnapshot) {
	fireTime := snap.StartTime.Add(-s.lead)
	delay := fireTime.Sub(s.clk.Now().UTC())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if e, ok := s.pending[snap.ID]; ok {
		e.timer.Stop()
		delete(s.pending, snap.ID)
	}

	if delay <= 0 {
		s.logger.Debug("reminder window already passed, skipping",
			zap.String("event_id", snap.ID.String()),
			zap.Time("start_time", snap.StartTime))
		return
	}

	e := &pendingEntry{}
	s.pending[snap.ID] = e
	e.timer = time.AfterFunc(delay, func() {
		s.fire(snap, e)
	})

	s.logger.Info("reminder scheduled",
		zap.String("event_id", snap.ID.String()),
		zap.Time("fire_time", fireTime))
}

// Reschedule replaces any pending reminder for the event with one computed
// from the new snapshot.
func (s *Scheduler) Reschedule(snap calendar.EventSnapshot) {
	s.Schedule(snap)
}

// Cancel stops a pending reminder. Cancelling an unknown or already fired
// event is a no-op.
func (s *Scheduler) Cancel(eventID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.pending[eventID]; ok {
		e.timer.Stop()
		delete(s.pending, eventID)
		s.logger.Info("reminder cancelled", zap.String("event_id", eventID.String()))
	}
}

// PendingCount reports how many reminders are armed.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close stops every pending timer. Reminders not yet fired are abandoned.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, e := range s.pending {
		e.timer.Stop()
		delete(s.pending, id)
	}
}

func (s *Scheduler) fire(snap calendar.EventSnapshot, self *pendingEntry) {
	s.mu.Lock()
	// A Cancel or Reschedule that raced the timer firing wins: only the
	// still-registered handle may dispatch.
	if s.pending[snap.ID] != self {
		s.mu.Unlock()
		return
	}
	delete(s.pending, snap.ID)
	s.mu.Unlock()

	if err := s.dispatcher.Dispatch(snap); err != nil {
		s.logger.Error("reminder dispatch failed", err,
			zap.String("event_id", snap.ID.String()),
			zap.String("recipient", snap.OwnerEmail))
	}
}
