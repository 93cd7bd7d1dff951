package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Storage.Home)
	assert.Equal(t, constants.LockTimeout, cfg.Storage.LockTimeout)
	assert.Equal(t, constants.DefaultLinkTimeSeconds, cfg.Review.DefaultLinkSeconds)
	assert.Equal(t, constants.DefaultTaskExpiryDays, cfg.Review.DefaultExpiryDays)
	assert.True(t, cfg.Notifications.BellEnabled)

	require.NoError(t, Validate(cfg), "defaults must validate")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return DefaultConfig()
	}

	t.Run("nil config", func(t *testing.T) {
		require.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
	})

	t.Run("lock timeout too small", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.LockTimeout = 50 * time.Millisecond
		require.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalidStorage)
	})

	t.Run("lock timeout too large", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.LockTimeout = 2 * time.Minute
		require.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalidStorage)
	})

	t.Run("non-positive link seconds", func(t *testing.T) {
		cfg := valid()
		cfg.Review.DefaultLinkSeconds = 0
		require.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalidReview)
	})

	t.Run("expiry days out of range", func(t *testing.T) {
		cfg := valid()
		cfg.Review.DefaultExpiryDays = 0
		require.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalidReview)

		cfg.Review.DefaultExpiryDays = 400
		require.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalidReview)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when no config file exists", func(t *testing.T) {
		t.Setenv(constants.EnvHome, t.TempDir())

		cfg, err := Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, constants.LockTimeout, cfg.Storage.LockTimeout)
		assert.True(t, cfg.Notifications.BellEnabled)
	})

	t.Run("global config file overrides defaults", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(constants.EnvHome, home)

		content := []byte(`
storage:
  lock_timeout: 2s
review:
  default_link_seconds: 45
  default_expiry_days: 14
notifications:
  bell_enabled: false
`)
		require.NoError(t, os.WriteFile(filepath.Join(home, constants.ConfigFileName), content, 0o600))

		cfg, err := Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, cfg.Storage.LockTimeout)
		assert.Equal(t, 45, cfg.Review.DefaultLinkSeconds)
		assert.Equal(t, 14, cfg.Review.DefaultExpiryDays)
		assert.False(t, cfg.Notifications.BellEnabled)
	})

	t.Run("environment overrides config file", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(constants.EnvHome, home)

		content := []byte("review:\n  default_link_seconds: 45\n")
		require.NoError(t, os.WriteFile(filepath.Join(home, constants.ConfigFileName), content, 0o600))
		t.Setenv("TASKDECK_REVIEW_DEFAULT_LINK_SECONDS", "90")

		cfg, err := Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 90, cfg.Review.DefaultLinkSeconds)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(constants.EnvHome, home)

		content := []byte("storage:\n  lock_timeout: 10m\n")
		require.NoError(t, os.WriteFile(filepath.Join(home, constants.ConfigFileName), content, 0o600))

		_, err := Load(ctx)
		require.ErrorIs(t, err, errors.ErrConfigInvalidStorage)
	})

	t.Run("malformed config file", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(constants.EnvHome, home)

		require.NoError(t, os.WriteFile(filepath.Join(home, constants.ConfigFileName), []byte("storage: ["), 0o600))

		_, err := Load(ctx)
		require.Error(t, err)
	})
}

func TestResolveHome(t *testing.T) {
	t.Run("configured home wins", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Storage.Home = "/srv/taskdeck"

		got, err := ResolveHome(cfg)
		require.NoError(t, err)
		assert.Equal(t, "/srv/taskdeck", got)
	})

	t.Run("environment home", func(t *testing.T) {
		t.Setenv(constants.EnvHome, "/tmp/deckhome")

		got, err := ResolveHome(DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, "/tmp/deckhome", got)
	})

	t.Run("defaults under the user home", func(t *testing.T) {
		t.Setenv(constants.EnvHome, "")

		got, err := ResolveHome(DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(mustUserHome(t), constants.DeckHome), got)
	})
}

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv(constants.EnvHome, "/tmp/deckhome")

	got, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/deckhome", constants.ConfigFileName), got)
}

func mustUserHome(t *testing.T) string {
	t.Helper()
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	return home
}
