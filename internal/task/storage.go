// Package task provides the task store, query layer, and progression API
// for taskdeck. This file implements the durable storage port for the task
// slot, with atomic writes and file locking for data integrity.
package task

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/ctxutil"
	"github.com/kvarley/taskdeck/internal/domain"
	deckerrors "github.com/kvarley/taskdeck/internal/errors"
	"github.com/kvarley/taskdeck/internal/flock"
)

// Directory and file permission constants.
const (
	dirPerm  = 0o750 // Secure directory permissions
	filePerm = 0o600 // Secure file permissions
)

// Storage is the persistence port for the task slot. The entire task list
// is read at startup and written back after every mutation, so the contract
// is intentionally whole-list: no targeted single-record patches.
//
// Implementations must make Save atomic: a crash mid-write must never leave
// a partially written slot behind.
type Storage interface {
	// Load reads the full task list from the durable slot.
	// Returns ErrCorruptSlot (wrapped) if the slot exists but cannot be parsed.
	// An absent slot is not an error; it returns (nil, nil) so the caller
	// can fall back to seed data.
	Load(ctx context.Context) ([]domain.Task, error)

	// Save writes the full task list to the durable slot atomically.
	Save(ctx context.Context, tasks []domain.Task) error
}

// FileStorage implements Storage using a single JSON file under the
// taskdeck home directory, guarded by an advisory file lock so two
// processes cannot silently overwrite each other's state.
type FileStorage struct {
	deckHome    string // Usually ~/.taskdeck
	lockTimeout time.Duration
}

// NewFileStorage creates a FileStorage rooted at the given home directory.
// If deckHome is empty, uses the default ~/.taskdeck directory.
func NewFileStorage(deckHome string) (*FileStorage, error) {
	return NewFileStorageWithTimeout(deckHome, constants.LockTimeout)
}

// NewFileStorageWithTimeout creates a FileStorage with an explicit lock
// timeout, usually sourced from configuration.
func NewFileStorageWithTimeout(deckHome string, lockTimeout time.Duration) (*FileStorage, error) {
	if deckHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		deckHome = filepath.Join(home, constants.DeckHome)
	}
	if lockTimeout <= 0 {
		lockTimeout = constants.LockTimeout
	}
	return &FileStorage{
		deckHome:    deckHome,
		lockTimeout: lockTimeout,
	}, nil
}

// Load reads the full task list from the slot file.
func (s *FileStorage) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	slotPath := s.slotPath()
	if _, err := os.Stat(slotPath); os.IsNotExist(err) {
		// No slot yet; caller falls back to seed data.
		return nil, nil
	}

	lockFile, err := s.acquireLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load task slot: %w", err)
	}
	defer func() { _ = s.releaseLock(lockFile) }()

	data, err := os.ReadFile(slotPath) //#nosec G304 -- path is constructed from trusted base
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read task slot: %w", err)
	}

	var slot domain.Slot
	if err := json.Unmarshal(data, &slot); err != nil {
		return nil, fmt.Errorf("failed to parse task slot: %w: %w", deckerrors.ErrCorruptSlot, err)
	}

	return slot.Tasks, nil
}

// Save writes the full task list to the slot file atomically.
func (s *FileStorage) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if err := os.MkdirAll(s.deckHome, dirPerm); err != nil {
		return fmt.Errorf("failed to create taskdeck home: %w", err)
	}

	lockFile, err := s.acquireLock(ctx)
	if err != nil {
		return fmt.Errorf("failed to save task slot: %w", err)
	}
	defer func() { _ = s.releaseLock(lockFile) }()

	slot := domain.Slot{
		SchemaVersion: constants.TaskSchemaVersion,
		Tasks:         tasks,
	}

	data, err := json.MarshalIndent(slot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal task slot: %w", err)
	}

	if err := atomicWrite(s.slotPath(), data); err != nil {
		return fmt.Errorf("failed to save task slot: %w", err)
	}

	return nil
}

// slotPath returns the path to the task slot file.
func (s *FileStorage) slotPath() string {
	return filepath.Join(s.deckHome, constants.TasksFileName)
}

// lockPath returns the path to the slot lock file.
func (s *FileStorage) lockPath() string {
	return s.slotPath() + ".lock"
}

// acquireLock acquires an exclusive file lock for the slot.
// It respects context cancellation during the lock acquisition retry loop.
func (s *FileStorage) acquireLock(ctx context.Context) (*os.File, error) {
	if err := os.MkdirAll(s.deckHome, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	f, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, filePerm) //#nosec G302,G304 -- lock file needs write access, path is constructed internally
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(s.lockTimeout)
	for {
		select {
		case <-ctx.Done():
			_ = f.Close()
			return nil, ctx.Err()
		default:
		}

		if err := flock.Exclusive(f.Fd()); err == nil {
			return f, nil
		}

		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("failed to acquire lock: %w", deckerrors.ErrLockTimeout)
		}

		time.Sleep(constants.LockRetryInterval)
	}
}

// releaseLock releases a file lock.
func (s *FileStorage) releaseLock(f *os.File) error {
	if f == nil {
		return nil
	}

	if err := flock.Unlock(f.Fd()); err != nil {
		// Still try to close the file
		_ = f.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return f.Close()
}

// atomicWrite writes data to a file atomically using write-then-rename.
// Uses filePerm (0o600) for secure file permissions.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	// Sync to disk (ensure data is persisted before rename)
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
