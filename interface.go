// FILE: interface.go
package plog

// Locker is the mutual-exclusion token guarding the shared log file. Acquire
// blocks until the lock is held and returns false only when the lock cannot be
// obtained at all; callers treat false as "operation not performed". Release
// is idempotent and never panics.
//
// A nil Locker on a Logger means no locking: every write proceeds as if
// Acquire always succeeded, with zero overhead. All loggers derived from one
// root share the same Locker by reference.
type Locker interface {
	Acquire() bool
	Release()
}

// Sink accepts a fully formatted record and persists it. The production
// implementation is FileSink; tests and adapters provide their own. Writes are
// already serialized by the logger's Locker when one is configured, but a Sink
// must still be safe for concurrent use from multiple goroutines since locking
// is optional.
type Sink interface {
	Write(level int64, p []byte) error
	Sync() error
	Close() error
}
