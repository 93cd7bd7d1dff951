package config

import (
	"github.com/kvarley/taskdeck/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// the config file and environment variables.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			// Home: empty means ~/.taskdeck (or $TASKDECK_HOME).
			Home: "",

			// LockTimeout: the slot is a single-writer resource; waiting
			// longer than this means another process is holding it.
			LockTimeout: constants.LockTimeout,
		},
		Review: ReviewConfig{
			// DefaultLinkSeconds: one minute per link unless specified.
			DefaultLinkSeconds: constants.DefaultLinkTimeSeconds,

			// DefaultExpiryDays: a week unless specified.
			DefaultExpiryDays: constants.DefaultTaskExpiryDays,
		},
		Notifications: NotificationsConfig{
			// BellEnabled: ring the terminal bell when tasks complete.
			BellEnabled: true,
		},
	}
}
