package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvarley/taskdeck/internal/constants"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

func writeUsersFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, constants.UsersFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return tmpDir
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("reads users in file order", func(t *testing.T) {
		home := writeUsersFile(t, `
users:
  - id: 7
    name: Priya
    role: manager
  - id: 101
    name: Wen
    role: worker
    worker_type: viewer
  - id: 102
    name: Sam
    role: worker
    worker_type: both
`)

		dir, err := Load(ctx, home)
		require.NoError(t, err)
		require.False(t, dir.Empty())

		users := dir.List()
		require.Len(t, users, 3)
		assert.Equal(t, 7, users[0].ID)
		assert.Equal(t, constants.RoleManager, users[0].Role)
		assert.Equal(t, constants.WorkerTypeViewer, users[1].WorkerType)
	})

	t.Run("missing file yields empty directory", func(t *testing.T) {
		dir, err := Load(ctx, t.TempDir())
		require.NoError(t, err)
		assert.True(t, dir.Empty())
		assert.Empty(t, dir.List())
	})

	t.Run("invalid role", func(t *testing.T) {
		home := writeUsersFile(t, `
users:
  - id: 1
    name: Bob
    role: overlord
`)
		_, err := Load(ctx, home)
		require.ErrorIs(t, err, deckerrors.ErrInvalidRole)
	})

	t.Run("invalid worker type", func(t *testing.T) {
		home := writeUsersFile(t, `
users:
  - id: 1
    name: Bob
    role: worker
    worker_type: dreamer
`)
		_, err := Load(ctx, home)
		require.ErrorIs(t, err, deckerrors.ErrInvalidWorkerType)
	})

	t.Run("missing name", func(t *testing.T) {
		home := writeUsersFile(t, `
users:
  - id: 1
    role: worker
`)
		_, err := Load(ctx, home)
		require.ErrorIs(t, err, deckerrors.ErrEmptyValue)
	})

	t.Run("non-positive id", func(t *testing.T) {
		home := writeUsersFile(t, `
users:
  - id: 0
    name: Bob
    role: worker
`)
		_, err := Load(ctx, home)
		require.ErrorIs(t, err, deckerrors.ErrInvalidArgument)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		home := writeUsersFile(t, "users: [}")
		_, err := Load(ctx, home)
		require.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	home := writeUsersFile(t, `
users:
  - id: 101
    name: Wen
    role: worker
    worker_type: clicker
`)

	dir, err := Load(ctx, home)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		u, err := dir.Lookup(101)
		require.NoError(t, err)
		assert.Equal(t, "Wen", u.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := dir.Lookup(999)
		require.ErrorIs(t, err, deckerrors.ErrUserNotFound)
	})
}
