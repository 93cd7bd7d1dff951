// Package task provides the task store, query layer, and progression API
// for taskdeck.
//
// This file implements the ephemeral per-link review timers. Timer state is
// a display affordance only: it is never persisted, never gates completion,
// and resets when the next link review starts.
package task

import (
	"fmt"
	"sync"
	"time"

	"github.com/kvarley/taskdeck/internal/clock"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

// LinkKey addresses a link inside the store for timer bookkeeping.
type LinkKey struct {
	TaskID    int
	SubtaskID int
	LinkID    int
}

// ReviewTimers tracks wall-clock elapsed time for links under review.
// At most one timer runs at a time: starting a review resets any other
// running timer, matching the one-link-at-a-time review flow.
type ReviewTimers struct {
	mu     sync.Mutex
	clock  clock.Clock
	active map[LinkKey]time.Time
}

// NewReviewTimers creates a ReviewTimers using the given clock.
func NewReviewTimers(c clock.Clock) *ReviewTimers {
	return &ReviewTimers{
		clock:  c,
		active: make(map[LinkKey]time.Time),
	}
}

// Start begins timing a link review, clearing any previously running timer.
func (rt *ReviewTimers) Start(key LinkKey) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	for k := range rt.active {
		delete(rt.active, k)
	}
	rt.active[key] = rt.clock.Now()
}

// Elapsed returns the running elapsed time for a link review.
// Returns ErrReviewNotStarted if no timer is running for the link.
func (rt *ReviewTimers) Elapsed(key LinkKey) (time.Duration, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	started, ok := rt.active[key]
	if !ok {
		return 0, fmt.Errorf("task %d subtask %d link %d: %w",
			key.TaskID, key.SubtaskID, key.LinkID, deckerrors.ErrReviewNotStarted)
	}
	return rt.clock.Now().Sub(started), nil
}

// Stop ends the timer for a link review and returns the elapsed time.
// Returns zero and false if no timer was running for the link.
func (rt *ReviewTimers) Stop(key LinkKey) (time.Duration, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	started, ok := rt.active[key]
	if !ok {
		return 0, false
	}
	delete(rt.active, key)
	return rt.clock.Now().Sub(started), true
}
