package task

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvarley/taskdeck/internal/domain"
)

func TestStateChangeNotifier(t *testing.T) {
	t.Run("notifies with bell on completion", func(t *testing.T) {
		var buf bytes.Buffer
		n := NewStateChangeNotifierWithWriter(DefaultNotificationConfig(), &buf)

		n.NotifyStateChange(3, domain.TaskStatusInProgress, domain.TaskStatusCompleted)

		assert.Equal(t, "\atask 3 is now completed\n", buf.String())
	})

	t.Run("bell disabled", func(t *testing.T) {
		var buf bytes.Buffer
		n := NewStateChangeNotifierWithWriter(NotificationConfig{BellEnabled: false}, &buf)

		n.NotifyStateChange(3, domain.TaskStatusInProgress, domain.TaskStatusCompleted)

		assert.Equal(t, "task 3 is now completed\n", buf.String())
	})

	t.Run("quiet suppresses everything", func(t *testing.T) {
		var buf bytes.Buffer
		n := NewStateChangeNotifierWithWriter(NotificationConfig{BellEnabled: true, Quiet: true}, &buf)

		n.NotifyStateChange(3, domain.TaskStatusInProgress, domain.TaskStatusCompleted)

		assert.Empty(t, buf.String())
	})

	t.Run("silent on non-attention transitions", func(t *testing.T) {
		var buf bytes.Buffer
		n := NewStateChangeNotifierWithWriter(DefaultNotificationConfig(), &buf)

		n.NotifyStateChange(3, domain.TaskStatusAssigned, domain.TaskStatusInProgress)

		assert.Empty(t, buf.String())
	})

	t.Run("silent when already in an attention status", func(t *testing.T) {
		var buf bytes.Buffer
		n := NewStateChangeNotifierWithWriter(DefaultNotificationConfig(), &buf)

		n.NotifyStateChange(3, domain.TaskStatusCompleted, domain.TaskStatusCompleted)

		assert.Empty(t, buf.String())
	})
}
