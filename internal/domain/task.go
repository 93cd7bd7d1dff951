// Package domain provides shared domain types for the taskdeck operations system.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case per architecture requirements.
package domain

import (
	"time"

	"github.com/kvarley/taskdeck/internal/constants"
)

// Task represents a single unit of click/view work assigned to a worker.
// A task is composed of zero or more viewer subtasks (each an ordered list
// of links requiring individual review) and at most one clicker subtask.
// It is completed by an explicit final submission once every part is done.
//
// Example JSON representation:
//
//	{
//	    "id": 3,
//	    "title": "Campaign batch 14",
//	    "type": "viewer",
//	    "assigned_to": 102,
//	    "assigned_by": 7,
//	    "status": "in_progress",
//	    "priority": "medium",
//	    "subtasks": [...],
//	    "metrics": {...},
//	    "created_at": "2026-08-29T10:00:00Z"
//	}
type Task struct {
	// ID is the unique integer identifier for the task.
	// New IDs are assigned as max(existing ids)+1.
	ID int `json:"id"`

	// Title is a human-readable summary of the task.
	Title string `json:"title"`

	// Description explains the work in more detail.
	Description string `json:"description,omitempty"`

	// Type determines which sub-structures are meaningful:
	// viewer tasks carry subtasks, clicker tasks carry a clicker subtask.
	Type constants.TaskType `json:"type"`

	// AssignedTo is the user ID of the worker performing the task.
	// No referential integrity is enforced against the directory.
	AssignedTo int `json:"assigned_to"`

	// AssignedBy is the user ID of the manager who created the task.
	AssignedBy int `json:"assigned_by"`

	// Status is the current state in the task lifecycle.
	// Uses constants.TaskStatus values (assigned, in_progress, completed).
	Status constants.TaskStatus `json:"status"`

	// Priority is a display-only urgency hint.
	Priority constants.Priority `json:"priority"`

	// ExpiryDate is when the task should be finished by. Soft deadline;
	// nothing is enforced against it.
	ExpiryDate time.Time `json:"expiry_date"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`

	// CompletedAt is when the final submission was made (nil until then).
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// SessionInstructions is a static display block shown before the session.
	SessionInstructions InstructionBlock `json:"session_instructions"`

	// TaskInstructions is a static display block shown with the task.
	TaskInstructions InstructionBlock `json:"task_instructions"`

	// Subtasks is the ordered list of viewer subtasks.
	// Empty for pure-clicker tasks.
	Subtasks []Subtask `json:"subtasks"`

	// ClickerTask is the optional single clicker subtask.
	// Nil for pure-viewer tasks.
	ClickerTask *Subtask `json:"clicker_task,omitempty"`

	// FinalSubmission records the terminal submission that completes the task.
	FinalSubmission Submission `json:"final_submission"`

	// Metrics holds accumulated view/click counters. Counters only ever
	// increase, by at most one per link or click completion.
	Metrics Metrics `json:"metrics"`

	// Transitions is the audit trail of status changes.
	Transitions []Transition `json:"transitions,omitempty"`
}

// InstructionBlock is a static titled text block attached to a task.
// Presentation state (collapsed/expanded) is deliberately not part of it.
type InstructionBlock struct {
	// Title is the heading of the block.
	Title string `json:"title"`

	// Content is the body text of the block.
	Content string `json:"content"`
}

// Subtask is a grouping of one or more links requiring individual review.
// The same shape serves viewer subtasks and the clicker subtask; a clicker
// subtask conventionally holds one logical unit.
type Subtask struct {
	// ID is the subtask identifier, unique within its task.
	ID int `json:"id"`

	// Title is a human-readable summary of the subtask.
	Title string `json:"title"`

	// Type mirrors the kind of work (viewer or clicker).
	Type constants.TaskType `json:"type"`

	// Status is the current state of the subtask.
	Status constants.SubtaskStatus `json:"status"`

	// Links is the ordered list of links to review.
	Links []Link `json:"links"`

	// Submission records the subtask's completion submission.
	Submission Submission `json:"submission"`
}

// Link is a single reviewable URL with an expected review duration and a
// good/bad quality outcome. The display URL is masked and regenerable;
// the real URL is never shown to the worker.
type Link struct {
	// ID is the link identifier, unique within its subtask.
	ID int `json:"id"`

	// DisplayURL is the masked, regenerable URL shown to the worker.
	DisplayURL string `json:"display_url"`

	// RealURL is the actual target. Never logged or displayed.
	RealURL string `json:"real_url"`

	// Proxy is the proxy address to use when opening the link.
	Proxy string `json:"proxy,omitempty"`

	// Title is a short label for the link.
	Title string `json:"title"`

	// Instructions explain what to check during the review.
	Instructions string `json:"instructions,omitempty"`

	// TimeRequired is the expected review duration in seconds.
	// A soft expectation only; completion is never gated on it.
	TimeRequired int `json:"time_required"`

	// Status is the review state of the link.
	Status constants.LinkStatus `json:"status"`

	// Completed reports whether the review has been recorded.
	Completed bool `json:"completed"`

	// CompletedAt is when the review was recorded (nil until then).
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Notes are the reviewer's notes recorded at completion.
	Notes string `json:"notes,omitempty"`

	// Quality is the good/bad verdict, set once completed.
	Quality constants.Quality `json:"quality,omitempty"`
}

// Submission is the single shape used for subtask, clicker, and final
// submissions.
type Submission struct {
	// Completed reports whether the submission has been made.
	Completed bool `json:"completed"`

	// Notes are free-form notes attached to the submission.
	Notes string `json:"notes,omitempty"`

	// Screenshot is an optional reference to a captured screenshot.
	Screenshot string `json:"screenshot,omitempty"`

	// SubmittedAt is when the submission was made (nil until then).
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// Metrics holds the accumulated view and click counters for a task.
// Counters are never decremented.
type Metrics struct {
	// TotalViews counts completed link reviews.
	TotalViews int `json:"total_views"`

	// GoodViews counts link reviews rated good.
	GoodViews int `json:"good_views"`

	// BadViews counts link reviews rated bad.
	BadViews int `json:"bad_views"`

	// TotalClicks counts completed click analyses.
	TotalClicks int `json:"total_clicks"`

	// GoodClicks counts click analyses rated good.
	GoodClicks int `json:"good_clicks"`

	// BadClicks counts click analyses rated bad.
	BadClicks int `json:"bad_clicks"`
}

// Transition records a single status change in a task's audit trail.
type Transition struct {
	// FromStatus is the status before the change.
	FromStatus constants.TaskStatus `json:"from_status"`

	// ToStatus is the status after the change.
	ToStatus constants.TaskStatus `json:"to_status"`

	// Timestamp is when the change happened (UTC).
	Timestamp time.Time `json:"timestamp"`

	// Reason is an optional explanation for the change.
	Reason string `json:"reason,omitempty"`
}

// Slot is the serialized form of the durable task slot: the full task list
// plus a schema version for forward migration.
type Slot struct {
	// SchemaVersion is the version of this structure.
	SchemaVersion string `json:"schema_version"`

	// Tasks is the full task list, in insertion order.
	Tasks []Task `json:"tasks"`
}
