// Package task provides the task store, query layer, and progression API
// for taskdeck.
//
// This file implements the task state machine, which enforces valid state
// transitions and maintains an audit trail of all status changes.
//
// Import rules:
//   - CAN import: internal/constants, internal/domain, internal/errors, std lib
//   - MUST NOT import: internal/cli, internal/config
package task

import (
	"fmt"
	"time"

	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/domain"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

// ValidTransitions defines all allowed state transitions in the task lifecycle.
// Format: from_status -> []to_statuses
//
// The state machine follows this flow:
//
//	Assigned → InProgress
//	InProgress → Completed
//
// Completed is terminal. Status is monotonic: no operation moves a
// task backward.
//
//nolint:gochecknoglobals // Exported for testing and read-only lookup table
var ValidTransitions = map[constants.TaskStatus][]constants.TaskStatus{
	constants.TaskStatusAssigned:   {constants.TaskStatusInProgress},
	constants.TaskStatusInProgress: {constants.TaskStatusCompleted},
}

// terminalStatuses defines states where no further transitions are allowed.
// Terminal states are those NOT present as keys in ValidTransitions.
//
//nolint:gochecknoglobals // Read-only lookup table for terminal state checks
var terminalStatuses = map[constants.TaskStatus]bool{
	constants.TaskStatusCompleted: true,
}

// IsValidTransition checks if a transition from one status to another is allowed.
// Returns false for transitions from terminal states or to the same state.
func IsValidTransition(from, to constants.TaskStatus) bool {
	// Same status is not a valid transition
	if from == to {
		return false
	}

	validTargets, exists := ValidTransitions[from]
	if !exists {
		return false // Terminal state or unknown state
	}
	for _, target := range validTargets {
		if target == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus returns true for states where no further transitions are allowed.
// Terminal states: Completed
func IsTerminalStatus(status constants.TaskStatus) bool {
	return terminalStatuses[status]
}

// transition validates and applies a state transition to the task.
// It records the transition in the task's history and updates timestamps.
// The caller is responsible for persisting the updated task.
//
// Returns a wrapped ErrInvalidTransition if the transition is not allowed.
func transition(task *domain.Task, to constants.TaskStatus, reason string, now time.Time) error {
	from := task.Status

	if !IsValidTransition(from, to) {
		return fmt.Errorf("%w: cannot transition from %s to %s",
			deckerrors.ErrInvalidTransition, from, to)
	}

	task.Transitions = append(task.Transitions, domain.Transition{
		FromStatus: from,
		ToStatus:   to,
		Timestamp:  now,
		Reason:     reason,
	})

	task.Status = to
	task.UpdatedAt = now

	if IsTerminalStatus(to) {
		task.CompletedAt = &now
	}

	return nil
}
