// Package filelock guards the snapshot output file: a flock-based run
// lock keeps two concurrent invocations from interleaving writes, and
// the final body is persisted with a temp-file-plus-rename write so a
// failed run never leaves a truncated snapshot behind.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RunLock serializes snapshot runs targeting the same output file. The
// lock lives in a sidecar file next to the output so the output itself
// is never created before the write succeeds.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// NewRunLock creates a lock for the given output path. The sidecar lock
// file is <output>.lock.
func NewRunLock(outputPath string) *RunLock {
	lockPath := outputPath + ".lock"
	return &RunLock{
		flock: flock.New(lockPath),
		path:  lockPath,
	}
}

// TryAcquire attempts to take the lock without blocking. It returns
// false when another run holds it.
func (l *RunLock) TryAcquire() (bool, error) {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to acquire run lock %s: %w", l.path, err)
	}
	return acquired, nil
}

// Release unlocks and removes the sidecar file. Removal failure is
// ignored; a stale empty lock file is harmless.
func (l *RunLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release run lock %s: %w", l.path, err)
	}
	_ = os.Remove(l.path)
	return nil
}

// WriteSnapshot persists the snapshot body as a single atomic-enough
// write: the body goes to a temp file in the target directory, which is
// then renamed over the output path. Any prior snapshot at the path is
// replaced whole or not at all.
func WriteSnapshot(path string, body []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	// Same directory as the target so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write snapshot body: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}

	return nil
}
