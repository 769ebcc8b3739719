// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/kp-refresher/internal/config"
	"github.com/MKhiriev/kp-refresher/internal/logger"
	"github.com/jonboulle/clockwork"
)

// State of the scheduler slot.
type State int

const (
	// StateIdle means nothing is armed.
	StateIdle State = iota
	// StateArmed means a task is waiting for its deadline.
	StateArmed
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == StateArmed {
		return "armed"
	}
	return "idle"
}

// Action is the deferred work. ctx is cancelled when the scheduler stops.
type Action func(ctx context.Context)

// RetryScheduler holds at most one delayed task.
//
// Arming replaces whatever was armed before. Each arm bumps a generation
// counter; a timer whose generation is no longer current never runs its
// action, so once Cancel or Arm returns the replaced action cannot start.
// A timer that already claimed the slot has left the Armed state and
// Cancel reports false for it.
type RetryScheduler struct {
	clock    clockwork.Clock
	minDelay time.Duration
	maxDelay time.Duration

	mu         sync.Mutex
	generation uint64
	timer      clockwork.Timer
	reason     string
	dueAt      time.Time
	stopped    bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRetryScheduler creates an idle scheduler on clock. Delays are clamped
// to [config.MinDelayMinutes, config.MaxDelayMinutes] minutes.
func NewRetryScheduler(clock clockwork.Clock, log *logger.Logger) *RetryScheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &RetryScheduler{
		clock:    clock,
		minDelay: config.MinDelayMinutes * time.Minute,
		maxDelay: config.MaxDelayMinutes * time.Minute,
		ctx:      ctx,
		cancel:   cancel,
		logger:   log.WithStr("worker", "retry_scheduler"),
	}
}

// Arm schedules action to run after delay, replacing any armed task.
// It returns the effective, clamped delay, or 0 when the scheduler has been
// stopped.
func (s *RetryScheduler) Arm(delay time.Duration, reason string, action Action) time.Duration {
	delay = max(s.minDelay, min(delay, s.maxDelay))

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		s.logger.Warn().Str("reason", reason).Msg("arm ignored, scheduler stopped")
		return 0
	}

	if s.timer != nil {
		s.timer.Stop()
		s.logger.Debug().Str("replaced", s.reason).Str("reason", reason).Msg("armed task replaced")
	}

	s.generation++
	generation := s.generation
	s.reason = reason
	s.dueAt = s.clock.Now().Add(delay)
	s.timer = s.clock.AfterFunc(delay, func() {
		s.fire(generation, action)
	})

	s.logger.Info().Str("reason", reason).Dur("delay", delay).Msg("armed")

	return delay
}

func (s *RetryScheduler) fire(generation uint64, action Action) {
	s.mu.Lock()
	if s.stopped || generation != s.generation || s.timer == nil {
		s.mu.Unlock()
		return
	}
	reason := s.reason
	s.clearLocked()
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()

	s.logger.Info().Str("reason", reason).Msg("fired")
	action(s.ctx)
}

// Cancel disarms the pending task. It reports whether something was armed.
func (s *RetryScheduler) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancelLocked()
}

// CancelIf disarms the pending task only when it was armed for reason.
func (s *RetryScheduler) CancelIf(reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil || s.reason != reason {
		return false
	}
	return s.cancelLocked()
}

func (s *RetryScheduler) cancelLocked() bool {
	if s.timer == nil {
		return false
	}

	s.timer.Stop()
	s.generation++
	s.logger.Info().Str("reason", s.reason).Msg("cancelled")
	s.clearLocked()

	return true
}

func (s *RetryScheduler) clearLocked() {
	s.timer = nil
	s.reason = ""
	s.dueAt = time.Time{}
}

// Remaining returns the time left before the armed task fires. An overdue
// task reports 0. ok is false when nothing is armed.
func (s *RetryScheduler) Remaining() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil {
		return 0, false
	}
	return max(0, s.dueAt.Sub(s.clock.Now())), true
}

// Pending returns the reason of the armed task.
func (s *RetryScheduler) Pending() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reason, s.timer != nil
}

// State returns the current slot state.
func (s *RetryScheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil {
		return StateIdle
	}
	return StateArmed
}

// Stop implements [Worker]. Pending work is cancelled, running actions see
// their context cancelled and Stop waits for them to return. Later Arm calls
// are ignored.
func (s *RetryScheduler) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		s.cancelLocked()
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
