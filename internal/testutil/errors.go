// Package testutil provides testing utilities for taskdeck.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockSaveFailed indicates a mock storage save failure (used in tests).
	ErrMockSaveFailed = errors.New("save failed")

	// ErrMockLoadFailed indicates a mock storage load failure (used in tests).
	ErrMockLoadFailed = errors.New("load failed")

	// ErrMockNotFound indicates a mock resource was not found (used in tests).
	ErrMockNotFound = errors.New("not found")

	// ErrMockDiskFull indicates a mock disk-full condition (used in tests).
	ErrMockDiskFull = errors.New("disk full")
)
