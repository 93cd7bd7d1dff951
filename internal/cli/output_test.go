package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvarley/taskdeck/internal/domain"
)

func sampleTask() domain.Task {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return domain.Task{
		ID:         1,
		Title:      "Campaign review",
		Type:       domain.TaskTypeViewer,
		AssignedTo: 101,
		AssignedBy: 7,
		Status:     domain.TaskStatusInProgress,
		Priority:   domain.PriorityHigh,
		ExpiryDate: now.AddDate(0, 0, 3),
		Subtasks: []domain.Subtask{
			{
				ID:     1,
				Title:  "Landing pages",
				Status: domain.SubtaskStatusCompleted,
				Links: []domain.Link{
					{ID: 1, DisplayURL: "https://view.taskdeck.io/r/abc", Status: domain.LinkStatusCompleted, TimeRequired: 90},
				},
			},
			{
				ID:     2,
				Title:  "Checkout flow",
				Status: domain.SubtaskStatusPending,
				Links: []domain.Link{
					{ID: 1, DisplayURL: "https://view.taskdeck.io/r/def", Status: domain.LinkStatusPending, TimeRequired: 60},
				},
			},
		},
		Metrics: domain.Metrics{TotalViews: 1, GoodViews: 1},
	}
}

func TestPrintTaskTable(t *testing.T) {
	var buf bytes.Buffer
	printTaskTable(&buf, []domain.Task{sampleTask()})

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Campaign review")
	assert.Contains(t, out, "in_progress")
	assert.Contains(t, out, "1/2")
}

func TestPrintTaskDetail(t *testing.T) {
	var buf bytes.Buffer
	printTaskDetail(&buf, sampleTask())

	out := buf.String()
	assert.Contains(t, out, "Task 1: Campaign review")
	assert.Contains(t, out, "subtask 1 [completed] Landing pages")
	assert.Contains(t, out, "https://view.taskdeck.io/r/def")
	assert.Contains(t, out, "views: 1 (1 good, 0 bad)")
	// Real URLs and proxies never appear in output
	assert.NotContains(t, out, "real_url")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]int{"task_id": 3}))
	assert.JSONEq(t, `{"task_id": 3}`, buf.String())
}
