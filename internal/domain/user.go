package domain

import "github.com/kvarley/taskdeck/internal/constants"

// User is a record in the user directory consumed by assignment pickers
// and the CLI. The directory is an external collaborator contract; taskdeck
// reads it but does not manage it.
type User struct {
	// ID is the opaque integer identifier used in task assignments.
	ID int `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Role is the user's position (admin, manager, hr, qc, worker).
	Role constants.Role `json:"role" yaml:"role"`

	// WorkerType is which kinds of tasks the user can take
	// (viewer, clicker, both). Only meaningful for workers.
	WorkerType constants.WorkerType `json:"worker_type,omitempty" yaml:"worker_type,omitempty"`
}

// CanTake reports whether the user can be assigned a task of the given type.
// Non-workers never take tasks.
func (u User) CanTake(t TaskType) bool {
	if u.Role != constants.RoleWorker {
		return false
	}
	switch u.WorkerType {
	case constants.WorkerTypeBoth:
		return true
	case constants.WorkerTypeViewer:
		return t == TaskTypeViewer
	case constants.WorkerTypeClicker:
		return t == TaskTypeClicker
	default:
		return false
	}
}
