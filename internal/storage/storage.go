package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// fileName is the single slot holding the serialized document.
const fileName = "dayboard.json"

const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// BaseDir returns the root data directory (~/.dayboard).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".dayboard"), nil
}

// Blob persists the application document as a single JSON file. Writes are
// atomic (temp file + rename) and reads/writes take a cross-process lock on
// a sidecar .lock file, so two concurrent invocations cannot interleave.
type Blob struct {
	path     string
	fileLock *flock.Flock
}

// New returns a Blob rooted at baseDir. Nothing is touched on disk until the
// first Read or Write.
func New(baseDir string) *Blob {
	path := filepath.Join(baseDir, fileName)
	return &Blob{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
}

// Path returns the on-disk location of the document.
func (b *Blob) Path() string {
	return b.path
}

func (b *Blob) withLock(fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := os.MkdirAll(filepath.Dir(b.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	locked, err := b.fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("storage error acquiring lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("document %s is locked by another process", b.path)
	}
	defer func() { _ = b.fileLock.Unlock() }()
	return fn()
}

// Read returns the raw document blob. ok is false when nothing has been
// persisted yet.
func (b *Blob) Read() (data []byte, ok bool, err error) {
	err = b.withLock(func() error {
		raw, readErr := os.ReadFile(b.path)
		if os.IsNotExist(readErr) {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("storage error reading %s: %w", b.path, readErr)
		}
		data = raw
		ok = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, ok, nil
}

// Write atomically replaces the document blob.
func (b *Blob) Write(data []byte) error {
	return b.withLock(func() error {
		tmpPath := b.path + ".tmp"
		if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
			return fmt.Errorf("storage error writing temp file: %w", err)
		}
		if err := os.Rename(tmpPath, b.path); err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("storage error renaming temp file: %w", err)
		}
		return nil
	})
}

// Quarantine moves an unreadable blob aside with a .corrupt suffix so the
// application can start fresh without destroying the user's data.
func (b *Blob) Quarantine() error {
	return b.withLock(func() error {
		backupPath := b.path + ".corrupt"
		if err := os.Rename(b.path, backupPath); err != nil {
			return fmt.Errorf("storage error backing up corrupt file: %w", err)
		}
		return nil
	})
}
