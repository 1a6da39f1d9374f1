// Package file provides file system operations adapter implementation.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang-ifconf/internal/port"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
)

const (
	defaultPerm      = 0644
	lockSuffix       = ".lock"
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the advisory lock cannot be taken before the context is done.
var ErrLockTimeout = errors.New("timed out waiting for file lock")

// ManagerAdapter is an adapter that implements the FileManager port using the os package
// and flock(2) from golang.org/x/sys/unix.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the FileManager port
var _ port.FileManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new file manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// ReadFile reads the contents of a file.
func (f *ManagerAdapter) ReadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return data, nil
}

// WriteFile writes data to a temporary file next to filename and renames it into place.
// A symlinked filename is resolved first, so the link keeps pointing at the new content.
// With perm 0 the mode of the existing file is kept, or 0644 for a new file.
func (f *ManagerAdapter) WriteFile(filename string, data []byte, perm int) (err error) {
	target := filename
	if resolved, evalErr := filepath.EvalSymlinks(filename); evalErr == nil {
		target = resolved
	}

	mode := os.FileMode(perm)
	if perm == 0 {
		mode = defaultPerm
		if info, statErr := os.Stat(target); statErr == nil {
			mode = info.Mode().Perm()
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				err = multierr.Append(err, rmErr)
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("failed to write file %s: %w", filename, err), tmp.Close())
	}
	if err = tmp.Sync(); err != nil {
		return multierr.Append(fmt.Errorf("failed to sync file %s: %w", filename, err), tmp.Close())
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	if err = os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", filename, err)
	}
	if err = os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to replace file %s: %w", filename, err)
	}
	return nil
}

// FileExists checks if a file exists.
func (f *ManagerAdapter) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// Lock takes an exclusive flock on filename + ".lock", polling until ctx is done.
func (f *ManagerAdapter) Lock(ctx context.Context, filename string) (func() error, error) {
	lockPath := filename + lockSuffix
	fd, err := unix.Open(lockPath, unix.O_CREAT|unix.O_RDWR|unix.O_CLOEXEC, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", lockPath, err)
	}

	for {
		err = unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			break
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			unix.Close(fd)
			return nil, fmt.Errorf("failed to lock %s: %w", lockPath, err)
		}

		select {
		case <-ctx.Done():
			unix.Close(fd)
			return nil, fmt.Errorf("%w: %s: %v", ErrLockTimeout, lockPath, ctx.Err())
		case <-time.After(lockPollInterval):
		}
	}

	return func() error {
		if err := multierr.Combine(unix.Flock(fd, unix.LOCK_UN), unix.Close(fd)); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", lockPath, err)
		}
		return nil
	}, nil
}
