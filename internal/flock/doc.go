// Package flock provides cross-platform file locking utilities.
//
// The durable task slot is a single-writer resource. This package provides
// the exclusive, non-blocking lock used to guard it against concurrent
// processes, working on both Unix and Windows systems.
//
// Usage:
//
//	file, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
//	if err := flock.Exclusive(file.Fd()); err != nil {
//	    // Lock not acquired - slot is in use
//	}
//	defer flock.Unlock(file.Fd())
package flock
