package config

import (
	"os"
	"path/filepath"

	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/errors"
)

// GlobalConfigDir returns the path to the taskdeck home directory.
// If the TASKDECK_HOME environment variable is set, it is used directly.
// Otherwise this is ~/.taskdeck.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	if deckHome := os.Getenv(constants.EnvHome); deckHome != "" {
		return deckHome, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.DeckHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
// This is typically ~/.taskdeck/config.yaml on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ResolveHome returns the effective taskdeck home directory for the given
// config: the configured storage home if set, else TASKDECK_HOME, else
// ~/.taskdeck.
func ResolveHome(cfg *Config) (string, error) {
	if cfg != nil && cfg.Storage.Home != "" {
		return cfg.Storage.Home, nil
	}
	return GlobalConfigDir()
}
