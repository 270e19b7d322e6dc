// FILE: state.go
package plog

import (
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
)

// State encapsulates the runtime state of the logger. It lives on the root
// logger; named children observe it through their root pointer.
type State struct {
	IsInitialized atomic.Bool
	CloseCalled   atomic.Bool

	LoggerStartTime atomic.Value // stores time.Time for uptime calculation

	// Counters
	TotalRecords      atomic.Uint64 // Records accepted and written to the sink
	DroppedRecords    atomic.Uint64 // Records abandoned (lock acquisition failed)
	FormatFallbacks   atomic.Uint64 // Records written with the raw template after a format failure
	InternalErrors    atomic.Uint64 // Internal faults swallowed on the emit path
	Truncations       atomic.Uint64 // Completed truncation passes
	TruncatedBytes    atomic.Uint64 // Bytes discarded by truncation
	BytesWritten      atomic.Uint64 // Encoded bytes handed to the sink
	HeartbeatSequence atomic.Uint64 // Counter for heartbeat sequence numbers
}

// Stats is a point-in-time snapshot of the logger's counters
type Stats struct {
	Name            string
	Level           int64
	Uptime          time.Duration
	TotalRecords    uint64
	DroppedRecords  uint64
	FormatFallbacks uint64
	InternalErrors  uint64
	Truncations     uint64
	TruncatedBytes  uint64
	BytesWritten    uint64
	HeartbeatSeq    uint64
}

// Stats returns a snapshot of the logger's runtime counters. Counters are
// shared with the root, so a child reports the same totals as its parent.
func (l *Logger) Stats() Stats {
	cfg := l.getConfig()
	st := &l.root.state

	var uptime time.Duration
	if start, ok := st.LoggerStartTime.Load().(time.Time); ok && !start.IsZero() {
		uptime = time.Since(start)
	}

	return Stats{
		Name:            cfg.Name,
		Level:           cfg.Level,
		Uptime:          uptime,
		TotalRecords:    st.TotalRecords.Load(),
		DroppedRecords:  st.DroppedRecords.Load(),
		FormatFallbacks: st.FormatFallbacks.Load(),
		InternalErrors:  st.InternalErrors.Load(),
		Truncations:     st.Truncations.Load(),
		TruncatedBytes:  st.TruncatedBytes.Load(),
		BytesWritten:    st.BytesWritten.Load(),
		HeartbeatSeq:    st.HeartbeatSequence.Load(),
	}
}

// Close terminates the logger: the maintenance goroutine is stopped and the
// sink is synced and closed. Close is idempotent. Calling it on a named child
// is a no-op since the root owns the shared resources.
func (l *Logger) Close() error {
	if l != l.root {
		return nil
	}

	if !l.state.CloseCalled.CompareAndSwap(false, true) {
		return nil
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if !l.state.IsInitialized.Load() {
		l.state.CloseCalled.Store(false)
		return nil
	}

	l.stopMaintenance()

	l.state.IsInitialized.Store(false)

	var finalErr error
	s := l.getSink()
	if s != nil {
		if err := s.Sync(); err != nil {
			finalErr = multierr.Append(finalErr, fmtErrorf("failed to sync sink during close: %w", err))
		}
		if err := s.Close(); err != nil {
			finalErr = multierr.Append(finalErr, fmtErrorf("failed to close sink: %w", err))
		}
	}
	// Drop the closed sink so a later ApplyConfig opens a fresh one
	l.sinkBox.Store(sinkBox{})

	return finalErr
}

// Sync flushes the sink's buffers to stable storage
func (l *Logger) Sync() error {
	if !l.root.state.IsInitialized.Load() {
		return fmtErrorf("logger not initialized")
	}
	s := l.getSink()
	if s == nil {
		return nil
	}
	return s.Sync()
}
