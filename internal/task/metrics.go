// Package task provides the task store, query layer, and progression API
// for taskdeck.
package task

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/kvarley/taskdeck/internal/domain"
)

// Recorder collects metrics about task progression events.
// Implementations can send these to monitoring systems like Prometheus,
// StatsD, or custom observability platforms.
type Recorder interface {
	// TaskCreated is called when a new task is appended to the store.
	TaskCreated(taskID int, taskType domain.TaskType)

	// TaskStarted is called when a task moves to in_progress.
	TaskStarted(taskID int)

	// LinkReviewed is called after each link review completes.
	// elapsed is the ephemeral review timer reading, zero if no timer ran.
	LinkReviewed(taskID int, quality domain.Quality, elapsed time.Duration)

	// ClickRecorded is called after a click analysis completes.
	ClickRecorded(taskID int, quality domain.Quality)

	// TaskCompleted is called when the final submission is made.
	TaskCompleted(taskID int, duration time.Duration)
}

// NoopRecorder is a no-op implementation of Recorder for default behavior.
// Use this when metrics collection is not needed.
type NoopRecorder struct{}

// Ensure NoopRecorder implements Recorder interface.
var _ Recorder = (*NoopRecorder)(nil)

// TaskCreated implements Recorder.
func (NoopRecorder) TaskCreated(int, domain.TaskType) {}

// TaskStarted implements Recorder.
func (NoopRecorder) TaskStarted(int) {}

// LinkReviewed implements Recorder.
func (NoopRecorder) LinkReviewed(int, domain.Quality, time.Duration) {}

// ClickRecorded implements Recorder.
func (NoopRecorder) ClickRecorded(int, domain.Quality) {}

// TaskCompleted implements Recorder.
func (NoopRecorder) TaskCompleted(int, time.Duration) {}

// LogRecorder emits progression metrics as structured log events.
type LogRecorder struct {
	logger zerolog.Logger
}

// Ensure LogRecorder implements Recorder interface.
var _ Recorder = (*LogRecorder)(nil)

// NewLogRecorder creates a Recorder that logs metrics at debug level.
func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger.With().Str("component", "metrics").Logger()}
}

// TaskCreated implements Recorder.
func (r *LogRecorder) TaskCreated(taskID int, taskType domain.TaskType) {
	r.logger.Debug().Int("task_id", taskID).Str("type", taskType.String()).Msg("task created")
}

// TaskStarted implements Recorder.
func (r *LogRecorder) TaskStarted(taskID int) {
	r.logger.Debug().Int("task_id", taskID).Msg("task started")
}

// LinkReviewed implements Recorder.
func (r *LogRecorder) LinkReviewed(taskID int, quality domain.Quality, elapsed time.Duration) {
	r.logger.Debug().
		Int("task_id", taskID).
		Str("quality", quality.String()).
		Dur("elapsed", elapsed).
		Msg("link reviewed")
}

// ClickRecorded implements Recorder.
func (r *LogRecorder) ClickRecorded(taskID int, quality domain.Quality) {
	r.logger.Debug().Int("task_id", taskID).Str("quality", quality.String()).Msg("click recorded")
}

// TaskCompleted implements Recorder.
func (r *LogRecorder) TaskCompleted(taskID int, duration time.Duration) {
	r.logger.Debug().Int("task_id", taskID).Dur("duration", duration).Msg("task completed")
}
