// Package task provides the task store, query layer, and progression API
// for taskdeck. This file implements the pure read functions over the store.
package task

import (
	"context"
	"fmt"

	"github.com/kvarley/taskdeck/internal/ctxutil"
	"github.com/kvarley/taskdeck/internal/domain"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

// TasksForUser returns all tasks assigned to the user, in store order
// (insertion order; no sort is applied).
func (s *Service) TasksForUser(ctx context.Context, userID int) ([]domain.Task, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, 0)
	for i := range s.tasks {
		if s.tasks[i].AssignedTo == userID {
			out = append(out, cloneTask(s.tasks[i]))
		}
	}
	return out, nil
}

// CurrentTask returns the first task for the user, in list order, whose
// status is assigned or in_progress. Returns ErrNoCurrentTask if none.
func (s *Service) CurrentTask(ctx context.Context, userID int) (domain.Task, error) {
	return s.nthActive(ctx, userID, 0)
}

// NextTask returns the second such task in list order. This is positional,
// not priority- or date-based: the task after the current one, or
// ErrNoCurrentTask if there is no second match.
func (s *Service) NextTask(ctx context.Context, userID int) (domain.Task, error) {
	return s.nthActive(ctx, userID, 1)
}

// nthActive returns the n-th (zero-based) assigned or in-progress task for
// the user in list order.
func (s *Service) nthActive(ctx context.Context, userID, n int) (domain.Task, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return domain.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := 0
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.AssignedTo != userID {
			continue
		}
		if t.Status != domain.TaskStatusAssigned && t.Status != domain.TaskStatusInProgress {
			continue
		}
		if seen == n {
			return cloneTask(*t), nil
		}
		seen++
	}
	return domain.Task{}, fmt.Errorf("user %d: %w", userID, deckerrors.ErrNoCurrentTask)
}

// AllSubtasksCompleted reports whether every subtask of the task is completed
// and, if a clicker subtask is present, it is completed too. A task with zero
// subtasks and no clicker counts as complete.
func AllSubtasksCompleted(t domain.Task) bool {
	for i := range t.Subtasks {
		if t.Subtasks[i].Status != domain.SubtaskStatusCompleted {
			return false
		}
	}
	if t.ClickerTask != nil && t.ClickerTask.Status != domain.SubtaskStatusCompleted {
		return false
	}
	return true
}
