package config

import (
	"time"

	"github.com/kvarley/taskdeck/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - storage lock timeout must be between 100ms and 1 minute
//   - review default link seconds must be positive
//   - review default expiry days must be between 1 and 365
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateStorageConfig(&cfg.Storage); err != nil {
		return err
	}

	if err := validateReviewConfig(&cfg.Review); err != nil {
		return err
	}

	return nil
}

// validateStorageConfig checks storage-specific configuration values.
func validateStorageConfig(cfg *StorageConfig) error {
	if cfg.LockTimeout < 100*time.Millisecond || cfg.LockTimeout > time.Minute {
		return errors.Wrapf(errors.ErrConfigInvalidStorage,
			"storage.lock_timeout must be between 100ms and 1m, got %s", cfg.LockTimeout)
	}

	return nil
}

// validateReviewConfig checks review-specific configuration values.
func validateReviewConfig(cfg *ReviewConfig) error {
	if cfg.DefaultLinkSeconds <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidReview,
			"review.default_link_seconds must be positive, got %d", cfg.DefaultLinkSeconds)
	}

	if cfg.DefaultExpiryDays < 1 || cfg.DefaultExpiryDays > 365 {
		return errors.Wrapf(errors.ErrConfigInvalidReview,
			"review.default_expiry_days must be between 1 and 365, got %d", cfg.DefaultExpiryDays)
	}

	return nil
}
