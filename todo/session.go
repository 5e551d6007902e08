package todo

import (
	"os"
	"path/filepath"
	"syscall"
)

// LockPath returns the advisory lock file guarding the store at path.
func LockPath(path string) string {
	return path + ".lock"
}

// Update loads the store at path under an exclusive lock, calls fn, and saves
// the result before releasing the lock. If fn fails nothing is written.
func Update(path string, opts Options, fn func(s *Store) error) error {
	return withStoreLock(path, syscall.LOCK_EX, func() error {
		store, err := Load(path, opts)
		if err != nil {
			return err
		}

		if err := fn(store); err != nil {
			return err
		}

		return store.Save()
	})
}

// View loads the store at path under a shared lock and calls fn.
// Changes fn makes to the store are discarded.
func View(path string, opts Options, fn func(s *Store) error) error {
	return withStoreLock(path, syscall.LOCK_SH, func() error {
		store, err := Load(path, opts)
		if err != nil {
			return err
		}
		return fn(store)
	})
}

// withStoreLock executes fn while holding a flock on the store's lock file.
func withStoreLock(path string, how int, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &IOError{Op: "create directory for", Path: path, Err: err}
	}

	lockPath := LockPath(path)
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return &IOError{Op: "open lock file", Path: lockPath, Err: err}
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), how); err != nil {
		return &IOError{Op: "acquire lock", Path: lockPath, Err: err}
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}
