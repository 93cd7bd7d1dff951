package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/errors"
)

// newViperInstance creates a new Viper instance with standard taskdeck
// configuration. This includes environment variable prefix (TASKDECK_),
// key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TASKDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers built-in defaults with viper.
// These mirror DefaultConfig and form the lowest precedence layer.
func setDefaults(v *viper.Viper) {
	// Storage defaults
	v.SetDefault("storage.home", "")
	v.SetDefault("storage.lock_timeout", "5s")

	// Review defaults
	v.SetDefault("review.default_link_seconds", constants.DefaultLinkTimeSeconds)
	v.SetDefault("review.default_expiry_days", constants.DefaultTaskExpiryDays)

	// Notification defaults
	v.SetDefault("notifications.bell_enabled", true)
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected and not an error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (TASKDECK_* prefix)
//  2. Global config (~/.taskdeck/config.yaml)
//  3. Built-in defaults
//
// The function returns an error only for actual configuration problems,
// not for missing config files (which are expected in many scenarios).
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Log loaded configuration for debugging
	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("storage.home", cfg.Storage.Home).
		Dur("storage.lock_timeout", cfg.Storage.LockTimeout).
		Int("review.default_link_seconds", cfg.Review.DefaultLinkSeconds).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// loadGlobalConfig attempts to load the global config file
// (~/.taskdeck/config.yaml). Returns nil if the file doesn't exist or the
// home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, ok := globalConfigPathIfExists()
	if !ok {
		// Global config doesn't exist or home dir unavailable, skip silently
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// globalConfigPathIfExists returns the global config path if it exists.
// Returns empty string and false if the home directory cannot be determined
// or the config file does not exist.
func globalConfigPathIfExists() (string, bool) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(dir, constants.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// viperDecoderOption returns the decode hooks used when unmarshaling
// configuration, enabling "5s"-style duration strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
