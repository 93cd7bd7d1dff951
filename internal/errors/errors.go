// Package errors provides centralized error handling for taskdeck.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrTaskNotFound indicates the requested task does not exist in the store.
	ErrTaskNotFound = errors.New("task not found")

	// ErrSubtaskNotFound indicates the requested subtask does not exist under the task.
	ErrSubtaskNotFound = errors.New("subtask not found")

	// ErrLinkNotFound indicates the requested link does not exist under the subtask.
	ErrLinkNotFound = errors.New("link not found")

	// ErrNoClickerTask indicates the task has no clicker subtask to complete.
	ErrNoClickerTask = errors.New("task has no clicker subtask")

	// ErrInvalidTransition indicates an attempt to make an invalid state transition.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrLinkAlreadyCompleted indicates an attempt to re-review a completed link.
	// Blocking re-completion keeps the task metrics tied to the link count.
	ErrLinkAlreadyCompleted = errors.New("link already completed")

	// ErrSubtaskIncomplete indicates a submission was attempted before all
	// required links or subtasks were completed.
	ErrSubtaskIncomplete = errors.New("subtask has incomplete links")

	// ErrTaskIncomplete indicates a final submission was attempted before all
	// subtasks and the clicker subtask were completed.
	ErrTaskIncomplete = errors.New("task has incomplete subtasks")

	// ErrInvalidQuality indicates a rating outside {good, bad} was supplied.
	ErrInvalidQuality = errors.New("invalid quality rating")

	// ErrPersistence indicates the durable slot could not be written.
	// The in-memory mutation has been rolled back when this is returned.
	ErrPersistence = errors.New("persistence failed")

	// ErrCorruptSlot indicates the persisted task list could not be parsed.
	ErrCorruptSlot = errors.New("task slot corrupted")

	// ErrLockTimeout indicates the slot file lock could not be acquired
	// within the timeout period. Another process holds the slot.
	ErrLockTimeout = errors.New("lock acquisition timeout")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUserNotFound indicates the user id is not present in the directory.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRole indicates an unknown role value in the user directory.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidWorkerType indicates an unknown worker type in the user directory.
	ErrInvalidWorkerType = errors.New("invalid worker type")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidStorage indicates an invalid storage configuration value.
	ErrConfigInvalidStorage = errors.New("invalid storage configuration")

	// ErrConfigInvalidReview indicates an invalid review configuration value.
	ErrConfigInvalidReview = errors.New("invalid review configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrNoCurrentTask indicates the user has no assigned or in-progress task.
	ErrNoCurrentTask = errors.New("no current task")

	// ErrReviewNotStarted indicates elapsed time was requested for a link
	// whose review has not been started.
	ErrReviewNotStarted = errors.New("link review not started")
)
