// Package task provides the task store, query layer, and progression API
// for taskdeck.
//
// This file implements state change notifications, the console equivalent of
// the dashboard's toast sink. It emits a terminal bell and a short message
// when tasks reach states worth the operator's attention.
package task

import (
	"fmt"
	"io"
	"os"

	"github.com/kvarley/taskdeck/internal/constants"
)

// attentionStatuses defines task statuses that warrant a notification.
//
//nolint:gochecknoglobals // Read-only lookup table for attention status checks
var attentionStatuses = map[constants.TaskStatus]bool{
	constants.TaskStatusCompleted: true,
}

// NotificationConfig holds configuration for state change notifications.
type NotificationConfig struct {
	// BellEnabled controls whether the terminal bell is rung.
	BellEnabled bool

	// Quiet suppresses all notifications.
	Quiet bool
}

// DefaultNotificationConfig returns sensible defaults.
func DefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		BellEnabled: true,
		Quiet:       false,
	}
}

// StateChangeNotifier emits console notices for task state transitions.
type StateChangeNotifier struct {
	config NotificationConfig
	writer io.Writer
}

// NewStateChangeNotifier creates a notifier with the given configuration.
func NewStateChangeNotifier(cfg NotificationConfig) *StateChangeNotifier {
	return &StateChangeNotifier{
		config: cfg,
		writer: os.Stdout,
	}
}

// NewStateChangeNotifierWithWriter creates a notifier with a custom writer.
// This is useful for testing.
func NewStateChangeNotifierWithWriter(cfg NotificationConfig, w io.Writer) *StateChangeNotifier {
	return &StateChangeNotifier{
		config: cfg,
		writer: w,
	}
}

// NotifyStateChange emits a notice if the state change warrants it.
// Notices fire only on entry into an attention status, not while staying
// in one.
func (n *StateChangeNotifier) NotifyStateChange(taskID int, oldStatus, newStatus constants.TaskStatus) {
	if n.config.Quiet {
		return
	}
	if !attentionStatuses[newStatus] || attentionStatuses[oldStatus] {
		return
	}

	if n.config.BellEnabled {
		_, _ = fmt.Fprint(n.writer, "\a")
	}
	_, _ = fmt.Fprintf(n.writer, "task %d is now %s\n", taskID, newStatus)
}
