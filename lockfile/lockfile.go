// FILE: tidelock/plog/lockfile/lockfile.go

// Package lockfile provides a mutual-exclusion token visible across OS
// process boundaries, built on flock(2). One FileLock guards one shared file;
// every cooperating process creates a FileLock on the same lock path and
// brackets its file access with Acquire/Release.
package lockfile

import (
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// FileLock serializes file access between goroutines of one process and
// between independent processes on the same machine. The in-process mutex is
// held for the whole Acquire..Release window so goroutines queue on the same
// token that flock gives separate processes.
//
// Acquire blocks until the lock is held; false means the lock could not be
// obtained at all (open or flock failure) and the guarded operation should be
// skipped. Release is idempotent; releasing an unheld lock is a no-op.
type FileLock struct {
	path string
	mu   sync.Mutex
	file *os.File
	held atomic.Bool
}

// New creates a lock token for the given lock file path. The file is created
// on first Acquire and left in place afterwards; its content is meaningless.
func New(path string) *FileLock {
	return &FileLock{path: path}
}

// Path returns the lock file path
func (fl *FileLock) Path() string {
	return fl.path
}

// Acquire obtains the lock, blocking while another holder exists. It returns
// false when the lock file cannot be opened or flocked; the caller must treat
// that as "operation not performed".
func (fl *FileLock) Acquire() bool {
	fl.mu.Lock()

	f, err := os.OpenFile(fl.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		fl.mu.Unlock()
		return false
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		fl.mu.Unlock()
		return false
	}

	fl.file = f
	fl.held.Store(true)
	return true
}

// Release drops the lock. Safe to call without holding it and safe to call
// more than once per Acquire.
func (fl *FileLock) Release() {
	if !fl.held.CompareAndSwap(true, false) {
		return
	}
	if fl.file != nil {
		_ = unix.Flock(int(fl.file.Fd()), unix.LOCK_UN)
		_ = fl.file.Close()
		fl.file = nil
	}
	fl.mu.Unlock()
}
