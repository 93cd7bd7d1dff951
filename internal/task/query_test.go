package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvarley/taskdeck/internal/domain"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

// queryFixture builds a service over a hand-laid task list so the list
// order is under the test's control. IDs are deliberately out of order to
// show that queries follow list position, not id.
func queryFixture(t *testing.T) *Service {
	t.Helper()

	tasks := []domain.Task{
		{ID: 5, Title: "first in list", Type: domain.TaskTypeViewer, AssignedTo: 101, Status: domain.TaskStatusAssigned},
		{ID: 2, Title: "second in list", Type: domain.TaskTypeViewer, AssignedTo: 101, Status: domain.TaskStatusInProgress},
		{ID: 9, Title: "other user", Type: domain.TaskTypeViewer, AssignedTo: 102, Status: domain.TaskStatusAssigned},
		{ID: 3, Title: "already done", Type: domain.TaskTypeViewer, AssignedTo: 101, Status: domain.TaskStatusCompleted},
		{ID: 7, Title: "third active", Type: domain.TaskTypeClicker, AssignedTo: 101, Status: domain.TaskStatusAssigned},
	}
	storage := &memStorage{tasks: tasks}

	svc, err := NewService(context.Background(), storage, WithClock(newMockClock(testNow)))
	require.NoError(t, err)
	return svc
}

func TestTasksForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns tasks in list order", func(t *testing.T) {
		svc := queryFixture(t)

		got, err := svc.TasksForUser(ctx, 101)
		require.NoError(t, err)
		require.Len(t, got, 4)

		ids := []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
		assert.Equal(t, []int{5, 2, 3, 7}, ids, "list order, not id order")
	})

	t.Run("includes completed tasks", func(t *testing.T) {
		svc := queryFixture(t)

		got, err := svc.TasksForUser(ctx, 101)
		require.NoError(t, err)
		statuses := make([]domain.TaskStatus, 0, len(got))
		for _, task := range got {
			statuses = append(statuses, task.Status)
		}
		assert.Contains(t, statuses, domain.TaskStatusCompleted)
	})

	t.Run("empty for unknown user", func(t *testing.T) {
		svc := queryFixture(t)

		got, err := svc.TasksForUser(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCurrentTask(t *testing.T) {
	ctx := context.Background()

	t.Run("first active task in list order", func(t *testing.T) {
		svc := queryFixture(t)

		got, err := svc.CurrentTask(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, 5, got.ID)
	})

	t.Run("in_progress counts as active", func(t *testing.T) {
		svc := queryFixture(t)
		require.NoError(t, svc.StartTask(ctx, 5))

		got, err := svc.CurrentTask(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, 5, got.ID)
	})

	t.Run("no active tasks", func(t *testing.T) {
		svc := queryFixture(t)

		_, err := svc.CurrentTask(ctx, 103)
		require.ErrorIs(t, err, deckerrors.ErrNoCurrentTask)
	})
}

func TestNextTask(t *testing.T) {
	ctx := context.Background()

	t.Run("second active task in list order", func(t *testing.T) {
		svc := queryFixture(t)

		got, err := svc.NextTask(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ID)
	})

	t.Run("positional, not a completion forecast", func(t *testing.T) {
		svc := queryFixture(t)

		// Task 2 is in_progress but sits second; next still returns it.
		got, err := svc.NextTask(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusInProgress, got.Status)
	})

	t.Run("single active task has no next", func(t *testing.T) {
		svc := queryFixture(t)

		_, err := svc.NextTask(ctx, 102)
		require.ErrorIs(t, err, deckerrors.ErrNoCurrentTask)
	})
}

func TestAllSubtasksCompleted(t *testing.T) {
	completed := domain.Subtask{Status: domain.SubtaskStatusCompleted}
	pending := domain.Subtask{Status: domain.SubtaskStatusPending}

	tests := []struct {
		name string
		task domain.Task
		want bool
	}{
		{"no subtasks no clicker", domain.Task{}, true},
		{"all subtasks completed", domain.Task{Subtasks: []domain.Subtask{completed, completed}}, true},
		{"one subtask pending", domain.Task{Subtasks: []domain.Subtask{completed, pending}}, false},
		{"clicker pending", domain.Task{ClickerTask: &pending}, false},
		{"clicker completed", domain.Task{ClickerTask: &completed}, true},
		{"subtasks done clicker pending", domain.Task{Subtasks: []domain.Subtask{completed}, ClickerTask: &pending}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllSubtasksCompleted(tt.task))
		})
	}
}
