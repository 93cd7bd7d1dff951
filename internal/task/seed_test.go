package task

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvarley/taskdeck/internal/domain"
)

func TestSeedTasks(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	seeds := SeedTasks(now)

	require.Len(t, seeds, 2)

	t.Run("viewer seed", func(t *testing.T) {
		viewer := seeds[0]
		assert.Equal(t, 1, viewer.ID)
		assert.Equal(t, domain.TaskTypeViewer, viewer.Type)
		assert.Equal(t, domain.TaskStatusAssigned, viewer.Status)
		assert.Nil(t, viewer.ClickerTask)
		require.Len(t, viewer.Subtasks, 2)
		assert.Len(t, viewer.Subtasks[0].Links, 2)
		assert.Len(t, viewer.Subtasks[1].Links, 1)
		assert.Equal(t, now, viewer.CreatedAt)
		assert.True(t, viewer.ExpiryDate.After(now))
	})

	t.Run("clicker seed", func(t *testing.T) {
		clicker := seeds[1]
		assert.Equal(t, 2, clicker.ID)
		assert.Equal(t, domain.TaskTypeClicker, clicker.Type)
		require.NotNil(t, clicker.ClickerTask)
		assert.Len(t, clicker.ClickerTask.Links, 1)
		assert.Empty(t, clicker.Subtasks)
	})

	t.Run("links start pending with unique masked urls", func(t *testing.T) {
		seen := map[string]bool{}
		for _, task := range seeds {
			subtasks := task.Subtasks
			if task.ClickerTask != nil {
				subtasks = append(subtasks, *task.ClickerTask)
			}
			for _, st := range subtasks {
				for _, l := range st.Links {
					assert.Equal(t, domain.LinkStatusPending, l.Status)
					assert.False(t, l.Completed)
					assert.True(t, strings.HasPrefix(l.DisplayURL, maskedURLBase))
					assert.False(t, seen[l.DisplayURL], "display urls must be unique")
					seen[l.DisplayURL] = true
					assert.NotEmpty(t, l.RealURL)
				}
			}
		}
	})
}
