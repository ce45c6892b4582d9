// Package lockfile enforces a single running instance via a pid file.
package lockfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrAlreadyRunning means another live process holds the lock.
var ErrAlreadyRunning = errors.New("already running")

// Lock is a held pid file. Release removes it.
type Lock struct {
	path string
}

// DefaultPath returns the per-user lock file location.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("voicetype-%d.lock", os.Getuid()))
}

// Acquire writes our pid to path. If the file already holds the pid of a
// live process, acquisition fails. A stale or garbled pid is reclaimed.
func Acquire(path string) (*Lock, error) {
	if data, err := os.ReadFile(path); err == nil {
		pid, perr := strconv.Atoi(strings.TrimSpace(string(data)))
		if perr == nil && pid > 0 && processAlive(pid) {
			return nil, fmt.Errorf("%w (pid %d, lock %s)", ErrAlreadyRunning, pid, path)
		}
		// stale lock, take it over
		_ = os.Remove(path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating lock dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return nil, fmt.Errorf("writing lock file: %w", err)
	}
	return &Lock{path: path}, nil
}

// Release removes the lock file. Safe to call more than once.
func (l *Lock) Release() {
	if l == nil || l.path == "" {
		return
	}
	_ = os.Remove(l.path)
	l.path = ""
}
