package constants

// TaskStatus represents the state of a task in the taskdeck state machine.
// Status values use snake_case for JSON serialization compatibility.
type TaskStatus string

// Task status constants define the valid states a task can be in.
// These follow the state machine defined in the architecture:
//
//	Assigned → InProgress
//	InProgress → Completed
//
// Completed is terminal; no operation transitions a task backward.
const (
	// TaskStatusAssigned indicates a task has been assigned to a worker
	// but work has not started yet.
	TaskStatusAssigned TaskStatus = "assigned"

	// TaskStatusInProgress indicates the worker is actively reviewing
	// links or recording clicks for the task.
	TaskStatusInProgress TaskStatus = "in_progress"

	// TaskStatusCompleted indicates the final submission has been made.
	// This state is terminal.
	TaskStatusCompleted TaskStatus = "completed"
)

// String returns the string representation of the TaskStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s TaskStatus) String() string {
	return string(s)
}

// SubtaskStatus represents the state of a subtask (viewer or clicker).
type SubtaskStatus string

// Subtask status constants. A subtask starts pending, moves to in_progress
// when its first link review starts, and is completed by an explicit
// submission once every link under it is completed.
const (
	// SubtaskStatusPending indicates no link under the subtask has been started.
	SubtaskStatusPending SubtaskStatus = "pending"

	// SubtaskStatusInProgress indicates at least one link review has started.
	SubtaskStatusInProgress SubtaskStatus = "in_progress"

	// SubtaskStatusCompleted indicates the subtask submission has been made.
	SubtaskStatusCompleted SubtaskStatus = "completed"
)

// String returns the string representation of the SubtaskStatus.
func (s SubtaskStatus) String() string {
	return string(s)
}

// LinkStatus represents the review state of a single link.
type LinkStatus string

// Link status constants.
const (
	// LinkStatusPending indicates the link has not been opened for review.
	LinkStatusPending LinkStatus = "pending"

	// LinkStatusInProgress indicates the link review has started and the
	// ephemeral review timer is running.
	LinkStatusInProgress LinkStatus = "in_progress"

	// LinkStatusCompleted indicates the link has been reviewed and rated.
	LinkStatusCompleted LinkStatus = "completed"
)

// String returns the string representation of the LinkStatus.
func (s LinkStatus) String() string {
	return string(s)
}

// TaskType determines which sub-structures of a task are meaningful.
type TaskType string

// Task type constants.
const (
	// TaskTypeViewer indicates a task built from viewer subtasks with links.
	TaskTypeViewer TaskType = "viewer"

	// TaskTypeClicker indicates a task centered on a single clicker subtask.
	TaskTypeClicker TaskType = "clicker"
)

// String returns the string representation of the TaskType.
func (t TaskType) String() string {
	return string(t)
}

// Priority is a display-only urgency hint on a task.
type Priority string

// Priority constants.
const (
	// PriorityLow marks a task as low urgency.
	PriorityLow Priority = "low"

	// PriorityMedium marks a task as normal urgency.
	PriorityMedium Priority = "medium"

	// PriorityHigh marks a task as high urgency.
	PriorityHigh Priority = "high"
)

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// Quality is the good/bad verdict recorded when a link review or click
// analysis completes.
type Quality string

// Quality constants.
const (
	// QualityGood marks a review outcome as good.
	QualityGood Quality = "good"

	// QualityBad marks a review outcome as bad.
	QualityBad Quality = "bad"
)

// String returns the string representation of the Quality.
func (q Quality) String() string {
	return string(q)
}

// Role identifies a user's position in the operations hierarchy.
type Role string

// Role constants for the user directory.
const (
	// RoleAdmin has full visibility across the dashboard.
	RoleAdmin Role = "admin"

	// RoleManager assigns tasks and reviews team output.
	RoleManager Role = "manager"

	// RoleHR manages employee records and attendance.
	RoleHR Role = "hr"

	// RoleQC audits completed reviews for quality.
	RoleQC Role = "qc"

	// RoleWorker performs click/view tasks.
	RoleWorker Role = "worker"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// WorkerType identifies which kinds of tasks a worker can take.
type WorkerType string

// Worker type constants.
const (
	// WorkerTypeViewer takes viewer tasks only.
	WorkerTypeViewer WorkerType = "viewer"

	// WorkerTypeClicker takes clicker tasks only.
	WorkerTypeClicker WorkerType = "clicker"

	// WorkerTypeBoth takes either kind of task.
	WorkerTypeBoth WorkerType = "both"
)

// String returns the string representation of the WorkerType.
func (w WorkerType) String() string {
	return string(w)
}
