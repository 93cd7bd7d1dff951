// Package domain provides shared domain types for the taskdeck operations system.
package domain

import "github.com/kvarley/taskdeck/internal/constants"

// Re-export status and enum types from the constants package.
// This allows consumers to import domain types and status types together,
// providing a unified API for working with taskdeck domain objects.
//
// Example usage:
//
//	import "github.com/kvarley/taskdeck/internal/domain"
//
//	task := domain.Task{
//	    Status: domain.TaskStatusAssigned,
//	}
type (
	// TaskStatus represents the state of a task in the taskdeck state machine.
	TaskStatus = constants.TaskStatus

	// SubtaskStatus represents the state of a subtask.
	SubtaskStatus = constants.SubtaskStatus

	// LinkStatus represents the review state of a link.
	LinkStatus = constants.LinkStatus

	// TaskType determines which sub-structures of a task are meaningful.
	TaskType = constants.TaskType

	// Priority is a display-only urgency hint on a task.
	Priority = constants.Priority

	// Quality is the good/bad verdict for a completed review.
	Quality = constants.Quality
)

// Re-export TaskStatus constants for convenience.
// These mirror the values in internal/constants/status.go.
const (
	// TaskStatusAssigned indicates a task is assigned but not yet started.
	TaskStatusAssigned = constants.TaskStatusAssigned

	// TaskStatusInProgress indicates the worker is actively on the task.
	TaskStatusInProgress = constants.TaskStatusInProgress

	// TaskStatusCompleted indicates the final submission has been made.
	TaskStatusCompleted = constants.TaskStatusCompleted
)

// Re-export SubtaskStatus constants for convenience.
const (
	// SubtaskStatusPending indicates no link under the subtask has started.
	SubtaskStatusPending = constants.SubtaskStatusPending

	// SubtaskStatusInProgress indicates at least one link review has started.
	SubtaskStatusInProgress = constants.SubtaskStatusInProgress

	// SubtaskStatusCompleted indicates the subtask submission has been made.
	SubtaskStatusCompleted = constants.SubtaskStatusCompleted
)

// Re-export LinkStatus constants for convenience.
const (
	// LinkStatusPending indicates the link has not been opened for review.
	LinkStatusPending = constants.LinkStatusPending

	// LinkStatusInProgress indicates the link review has started.
	LinkStatusInProgress = constants.LinkStatusInProgress

	// LinkStatusCompleted indicates the link has been reviewed and rated.
	LinkStatusCompleted = constants.LinkStatusCompleted
)

// Re-export TaskType constants for convenience.
const (
	// TaskTypeViewer indicates a task built from viewer subtasks with links.
	TaskTypeViewer = constants.TaskTypeViewer

	// TaskTypeClicker indicates a task centered on a clicker subtask.
	TaskTypeClicker = constants.TaskTypeClicker
)

// Re-export Quality constants for convenience.
const (
	// QualityGood marks a review outcome as good.
	QualityGood = constants.QualityGood

	// QualityBad marks a review outcome as bad.
	QualityBad = constants.QualityBad
)

// Re-export Priority constants for convenience.
const (
	// PriorityLow marks a task as low urgency.
	PriorityLow = constants.PriorityLow

	// PriorityMedium marks a task as normal urgency.
	PriorityMedium = constants.PriorityMedium

	// PriorityHigh marks a task as high urgency.
	PriorityHigh = constants.PriorityHigh
)
