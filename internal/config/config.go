// Package config provides configuration management for taskdeck with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. Environment variables (TASKDECK_* prefix)
//  2. Global config (~/.taskdeck/config.yaml)
//  3. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for taskdeck.
// It contains all configuration sections for the application.
type Config struct {
	// Storage contains settings for the durable task slot.
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Review contains settings for link review behavior.
	Review ReviewConfig `yaml:"review" mapstructure:"review"`

	// Notifications contains settings for console notifications.
	Notifications NotificationsConfig `yaml:"notifications" mapstructure:"notifications"`
}

// StorageConfig contains settings for the durable task slot.
type StorageConfig struct {
	// Home is the taskdeck home directory holding the slot, directory file,
	// and logs. Empty means ~/.taskdeck (or $TASKDECK_HOME).
	// Default: ""
	Home string `yaml:"home" mapstructure:"home"`

	// LockTimeout is the maximum duration to wait for the slot file lock.
	// Default: 5s
	LockTimeout time.Duration `yaml:"lock_timeout" mapstructure:"lock_timeout"`
}

// ReviewConfig contains settings for link review behavior.
type ReviewConfig struct {
	// DefaultLinkSeconds is the expected review duration applied to links
	// created without an explicit one. Soft expectation; never enforced.
	// Default: 60
	DefaultLinkSeconds int `yaml:"default_link_seconds" mapstructure:"default_link_seconds"`

	// DefaultExpiryDays is how far in the future a new task's expiry date
	// is set when the creator does not specify one.
	// Default: 7
	DefaultExpiryDays int `yaml:"default_expiry_days" mapstructure:"default_expiry_days"`
}

// NotificationsConfig contains settings for console notifications.
type NotificationsConfig struct {
	// BellEnabled controls whether the terminal bell is rung on completion.
	// Default: true
	BellEnabled bool `yaml:"bell_enabled" mapstructure:"bell_enabled"`
}
