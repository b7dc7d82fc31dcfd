// Package scheduler implements named, cancellable delayed deliveries.
//
// Each slot holds at most one pending delivery. Scheduling or cancelling a
// slot bumps its generation; a delivery is accepted only if its generation
// still matches when the owner processes it. The owner must call Accept on
// the same goroutine that calls Schedule and Cancel, so whichever of a
// cancellation and a firing is processed first decides the outcome.
package scheduler

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// Slot names a single cancellable delivery.
type Slot string

// Fired is handed to the delivery callback when a timer elapses.
type Fired struct {
	Slot       Slot
	Generation uint64
	Payload    any
}

type Opt func(*Scheduler)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Opt {
	return func(s *Scheduler) {
		s.clock = clock
	}
}

type Scheduler struct {
	logger  *zap.Logger
	clock   clockwork.Clock
	deliver func(Fired)

	mu          sync.Mutex
	closed      bool
	generations map[Slot]uint64
	timers      map[Slot]clockwork.Timer
}

// New creates a scheduler. deliver is called from timer goroutines and must not block.
func New(deliver func(Fired), opts ...Opt) *Scheduler {
	s := &Scheduler{
		logger:      zap.NewNop(),
		clock:       clockwork.NewRealClock(),
		deliver:     deliver,
		generations: make(map[Slot]uint64),
		timers:      make(map[Slot]clockwork.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule invalidates any pending delivery for slot and arms a new one.
// It returns the generation of the new delivery.
func (s *Scheduler) Schedule(slot Slot, delay time.Duration, payload any) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	s.stopLocked(slot)
	s.generations[slot]++
	gen := s.generations[slot]
	s.timers[slot] = s.clock.AfterFunc(delay, func() {
		s.deliver(Fired{Slot: slot, Generation: gen, Payload: payload})
	})
	s.logger.Debug("scheduled delivery",
		zap.String("slot", string(slot)),
		zap.Uint64("generation", gen),
		zap.Duration("delay", delay),
	)
	return gen
}

// Cancel invalidates the pending delivery for slot, if any.
func (s *Scheduler) Cancel(slot Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[slot]; !ok {
		return
	}
	s.stopLocked(slot)
	s.generations[slot]++
	s.logger.Debug("cancelled delivery", zap.String("slot", string(slot)))
}

// Accept reports whether f is the current delivery for its slot. An accepted
// delivery clears the slot, so the same Fired is accepted at most once.
func (s *Scheduler) Accept(f Fired) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if _, ok := s.timers[f.Slot]; !ok || s.generations[f.Slot] != f.Generation {
		s.logger.Debug("dropped stale delivery",
			zap.String("slot", string(f.Slot)),
			zap.Uint64("generation", f.Generation),
		)
		return false
	}
	delete(s.timers, f.Slot)
	return true
}

// Pending reports whether slot has an armed delivery.
func (s *Scheduler) Pending(slot Slot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[slot]
	return ok
}

// Close stops every outstanding timer. Deliveries already in flight are
// rejected by Accept.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, timer := range maps.Values(s.timers) {
		timer.Stop()
	}
	clear(s.timers)
}

func (s *Scheduler) stopLocked(slot Slot) {
	if timer, ok := s.timers[slot]; ok {
		timer.Stop()
		delete(s.timers, slot)
	}
}
