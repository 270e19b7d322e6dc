// FILE: tidelock/plog/type.go
package plog

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/tidelock/plog/formatter"
)

// Logger writes leveled, timestamped records to a single file shared across
// processes. A root Logger owns the sink, the inter-process lock and the
// counters; loggers created with Named are lightweight views that share those
// by reference and carry only their own configuration snapshot.
type Logger struct {
	currentConfig atomic.Value // stores *Config

	// root points at the instance owning sink, lock, state and maintenance.
	// For a root logger it points at itself.
	root *Logger

	// Owned by the root instance only
	state     State
	sinkBox   atomic.Value // stores sinkBox
	lockBox   atomic.Value // stores lockBox
	stdoutBox atomic.Value // stores stdoutBox
	decorator *formatter.Decorator
	initMu    sync.Mutex
	maint     *maintenance
}

// sinkBox wraps a Sink, atomic value type change workaround
type sinkBox struct {
	s Sink
}

// lockBox wraps a Locker, atomic value type change workaround
type lockBox struct {
	lk Locker
}

// stdoutBox wraps the console mirror writer, atomic value type change workaround
type stdoutBox struct {
	w io.Writer
}

// maintenance tracks the optional background truncation/heartbeat loop
type maintenance struct {
	stop chan struct{}
	done chan struct{}
}
