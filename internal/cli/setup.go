package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kvarley/taskdeck/internal/config"
	"github.com/kvarley/taskdeck/internal/errors"
	"github.com/kvarley/taskdeck/internal/task"
)

// newTaskService loads configuration and wires up a task service backed by
// the file slot under the resolved home directory. Every command goes through
// this so config, storage, metrics, and notifications are assembled in one
// place.
func newTaskService(ctx context.Context) (*task.Service, *config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	home, err := config.ResolveHome(cfg)
	if err != nil {
		return nil, nil, err
	}

	storage, err := task.NewFileStorageWithTimeout(home, cfg.Storage.LockTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open task storage: %w", err)
	}

	logger := GetLogger()
	notifier := task.NewStateChangeNotifier(task.NotificationConfig{
		BellEnabled: cfg.Notifications.BellEnabled,
	})

	svc, err := task.NewService(ctx, storage,
		task.WithLogger(logger),
		task.WithRecorder(task.NewLogRecorder(logger)),
		task.WithNotifier(notifier),
	)
	if err != nil {
		return nil, nil, err
	}

	return svc, cfg, nil
}

// parseID parses a positional numeric id argument.
func parseID(name, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q must be a positive integer", errors.ErrInvalidArgument, name, raw)
	}
	return id, nil
}
