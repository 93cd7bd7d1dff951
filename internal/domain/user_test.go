package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvarley/taskdeck/internal/constants"
)

func TestUserCanTake(t *testing.T) {
	tests := []struct {
		name string
		user User
		task TaskType
		want bool
	}{
		{"viewer takes viewer", User{Role: constants.RoleWorker, WorkerType: constants.WorkerTypeViewer}, TaskTypeViewer, true},
		{"viewer rejects clicker", User{Role: constants.RoleWorker, WorkerType: constants.WorkerTypeViewer}, TaskTypeClicker, false},
		{"clicker takes clicker", User{Role: constants.RoleWorker, WorkerType: constants.WorkerTypeClicker}, TaskTypeClicker, true},
		{"clicker rejects viewer", User{Role: constants.RoleWorker, WorkerType: constants.WorkerTypeClicker}, TaskTypeViewer, false},
		{"both takes either", User{Role: constants.RoleWorker, WorkerType: constants.WorkerTypeBoth}, TaskTypeViewer, true},
		{"manager never takes tasks", User{Role: constants.RoleManager, WorkerType: constants.WorkerTypeBoth}, TaskTypeViewer, false},
		{"worker without type", User{Role: constants.RoleWorker}, TaskTypeViewer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.CanTake(tt.task))
		})
	}
}
