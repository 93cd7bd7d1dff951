// Package constants provides centralized constant values used throughout taskdeck.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// File names used by taskdeck for state persistence.
const (
	// TasksFileName is the name of the JSON file that stores the full task list.
	// The entire list is serialized to this single slot after every mutation.
	TasksFileName = "tasks.json"

	// UsersFileName is the name of the YAML file that stores the user directory.
	UsersFileName = "users.yaml"

	// ConfigFileName is the name of the global configuration file.
	ConfigFileName = "config.yaml"
)

// Directory names and paths used by taskdeck for organizing data.
const (
	// DeckHome is the hidden directory name where taskdeck stores all its data.
	// This directory is created in the user's home directory.
	DeckHome = ".taskdeck"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "taskdeck.log"
)

// EnvHome is the environment variable that overrides the taskdeck home directory.
const EnvHome = "TASKDECK_HOME"

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before log rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of retained log files.
	LogMaxAgeDays = 30

	// LogCompress controls whether rotated log files are gzip compressed.
	LogCompress = true
)

// Lock configuration for the shared task slot.
const (
	// LockTimeout is the maximum duration to wait for the task slot file lock.
	// The slot is a single-writer resource; a second writer fails loudly
	// instead of silently interleaving with the first.
	LockTimeout = 5 * time.Second

	// LockRetryInterval is the pause between lock acquisition attempts.
	LockRetryInterval = 50 * time.Millisecond
)

// Review defaults.
const (
	// DefaultLinkTimeSeconds is the expected review duration for a link when
	// the creator does not specify one. It is a soft expectation used for
	// display; completion is never gated on it.
	DefaultLinkTimeSeconds = 60

	// DefaultTaskExpiryDays is how far in the future a new task's expiry
	// date is set when the creator does not specify one.
	DefaultTaskExpiryDays = 7
)

// Schema version constants for data migration support.
const (
	// TaskSchemaVersion is the current version of the persisted task list schema.
	// This enables forward-compatible schema migrations.
	TaskSchemaVersion = "1.0"
)
