package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvarley/taskdeck/internal/config"
	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/domain"
	"github.com/kvarley/taskdeck/internal/errors"
)

const testUsersYAML = `users:
  - id: 101
    name: Vera
    role: worker
    worker_type: viewer
  - id: 102
    name: Clark
    role: worker
    worker_type: clicker
  - id: 7
    name: Mona
    role: manager
`

// seedUsersFile writes a user directory into a fresh home and returns it.
func seedUsersFile(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, constants.UsersFileName), []byte(content), 0o600))
	return home
}

func homeConfig(home string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Storage.Home = home
	return cfg
}

func TestValidateAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("no directory skips the check", func(t *testing.T) {
		cfg := homeConfig(t.TempDir())
		require.NoError(t, validateAssignment(ctx, cfg, 999, domain.TaskTypeViewer))
	})

	t.Run("viewer worker takes viewer tasks", func(t *testing.T) {
		cfg := homeConfig(seedUsersFile(t, testUsersYAML))
		require.NoError(t, validateAssignment(ctx, cfg, 101, domain.TaskTypeViewer))
	})

	t.Run("viewer worker cannot take clicker tasks", func(t *testing.T) {
		cfg := homeConfig(seedUsersFile(t, testUsersYAML))
		err := validateAssignment(ctx, cfg, 101, domain.TaskTypeClicker)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "Vera")
	})

	t.Run("non-workers never take tasks", func(t *testing.T) {
		cfg := homeConfig(seedUsersFile(t, testUsersYAML))
		err := validateAssignment(ctx, cfg, 7, domain.TaskTypeViewer)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
	})

	t.Run("unknown assignee", func(t *testing.T) {
		cfg := homeConfig(seedUsersFile(t, testUsersYAML))
		err := validateAssignment(ctx, cfg, 999, domain.TaskTypeViewer)
		require.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestRunCreateAssigneeCheck(t *testing.T) {
	ctx := context.Background()

	inputs := func(taskType string, assignedTo int) createInputs {
		return createInputs{
			title:      "Review batch 7",
			taskType:   taskType,
			assignedTo: assignedTo,
			assignedBy: 7,
			priority:   string(domain.PriorityMedium),
		}
	}

	t.Run("rejects a mismatched worker type", func(t *testing.T) {
		home := seedUsersFile(t, testUsersYAML)
		t.Setenv(constants.EnvHome, home)

		var out bytes.Buffer
		err := runCreate(ctx, &out, inputs(string(domain.TaskTypeClicker), 101), OutputText)
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
		assert.NoFileExists(t, filepath.Join(home, constants.TasksFileName))
	})

	t.Run("accepts a matching worker type", func(t *testing.T) {
		home := seedUsersFile(t, testUsersYAML)
		t.Setenv(constants.EnvHome, home)

		var out bytes.Buffer
		require.NoError(t, runCreate(ctx, &out, inputs(string(domain.TaskTypeViewer), 101), OutputText))
		assert.Contains(t, out.String(), "Created task")
		assert.FileExists(t, filepath.Join(home, constants.TasksFileName))
	})

	t.Run("create works without a directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(constants.EnvHome, home)

		var out bytes.Buffer
		require.NoError(t, runCreate(ctx, &out, inputs(string(domain.TaskTypeViewer), 999), OutputText))
		assert.Contains(t, out.String(), "Created task")
	})
}
