package task

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/domain"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

func setupTestStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()
	tmpDir := t.TempDir()

	storage, err := NewFileStorage(tmpDir)
	require.NoError(t, err)
	return storage, tmpDir
}

func TestFileStorageLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("absent slot is not an error", func(t *testing.T) {
		storage, _ := setupTestStorage(t)

		got, err := storage.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt slot", func(t *testing.T) {
		storage, tmpDir := setupTestStorage(t)
		slotPath := filepath.Join(tmpDir, constants.TasksFileName)
		require.NoError(t, os.WriteFile(slotPath, []byte("{not json"), 0o600))

		_, err := storage.Load(ctx)
		require.ErrorIs(t, err, deckerrors.ErrCorruptSlot)
	})

	t.Run("canceled context", func(t *testing.T) {
		storage, _ := setupTestStorage(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := storage.Load(canceled)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileStorageSaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip preserves the task list", func(t *testing.T) {
		storage, _ := setupTestStorage(t)
		seeds := SeedTasks(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

		require.NoError(t, storage.Save(ctx, seeds))

		got, err := storage.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, len(seeds))
		assert.Equal(t, seeds[0].ID, got[0].ID)
		assert.Equal(t, seeds[0].Title, got[0].Title)
		assert.Equal(t, seeds[0].Subtasks[0].Links[0].RealURL, got[0].Subtasks[0].Links[0].RealURL)
		require.NotNil(t, got[1].ClickerTask)
		assert.Equal(t, seeds[1].ClickerTask.Title, got[1].ClickerTask.Title)
	})

	t.Run("save replaces the whole list", func(t *testing.T) {
		storage, _ := setupTestStorage(t)
		seeds := SeedTasks(time.Now().UTC())

		require.NoError(t, storage.Save(ctx, seeds))
		require.NoError(t, storage.Save(ctx, seeds[:1]))

		got, err := storage.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("slot carries the schema version", func(t *testing.T) {
		storage, tmpDir := setupTestStorage(t)
		require.NoError(t, storage.Save(ctx, nil))

		data, err := os.ReadFile(filepath.Join(tmpDir, constants.TasksFileName))
		require.NoError(t, err)

		var slot domain.Slot
		require.NoError(t, json.Unmarshal(data, &slot))
		assert.Equal(t, constants.TaskSchemaVersion, slot.SchemaVersion)
	})

	t.Run("creates the home directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		nested := filepath.Join(tmpDir, "deep", "home")
		storage, err := NewFileStorage(nested)
		require.NoError(t, err)

		require.NoError(t, storage.Save(ctx, nil))
		_, err = os.Stat(filepath.Join(nested, constants.TasksFileName))
		require.NoError(t, err)
	})

	t.Run("no temp file left behind", func(t *testing.T) {
		storage, tmpDir := setupTestStorage(t)
		require.NoError(t, storage.Save(ctx, SeedTasks(time.Now().UTC())))

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp")
		}
	})
}
