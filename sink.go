// FILE: tidelock/plog/sink.go
package plog

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// FileSink appends records to a single file. The file is opened with O_APPEND
// so the descriptor stays valid across an in-place truncation of the same
// inode, and every process appending to the path lands at the current end.
type FileSink struct {
	path    string
	mu      sync.Mutex
	file    *os.File
	written atomic.Uint64
}

// NewFileSink opens (creating if needed) the log file at path for appending.
// Parent directories are created as required.
func NewFileSink(path string) (*FileSink, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmtErrorf("failed to create log directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file %s: %w", path, err)
	}

	return &FileSink{
		path: path,
		file: file,
	}, nil
}

// Path returns the file path the sink appends to
func (s *FileSink) Path() string {
	return s.path
}

// Written returns the number of bytes written since the sink was opened
func (s *FileSink) Written() uint64 {
	return s.written.Load()
}

// Write appends one encoded record. The level is accepted to satisfy Sink but
// does not influence the destination.
func (s *FileSink) Write(_ int64, p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmtErrorf("sink is closed")
	}
	n, err := s.file.Write(p)
	s.written.Add(uint64(n))
	if err != nil {
		return fmtErrorf("failed to write record: %w", err)
	}
	return nil
}

// Sync flushes file system buffers for the log file
func (s *FileSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file: %w", err)
	}
	return nil
}

// Close syncs and closes the underlying file. Further writes fail.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	syncErr := s.file.Sync()
	closeErr := s.file.Close()
	s.file = nil
	if closeErr != nil {
		return fmtErrorf("failed to close log file: %w", closeErr)
	}
	if syncErr != nil {
		return fmtErrorf("failed to sync log file: %w", syncErr)
	}
	return nil
}

// WriterSink adapts any io.Writer into a Sink. Sync and Close are forwarded
// when the writer implements them, otherwise they are no-ops.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w as a Sink
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write forwards one encoded record to the wrapped writer
func (s *WriterSink) Write(_ int64, p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.Write(p); err != nil {
		return fmtErrorf("failed to write record: %w", err)
	}
	return nil
}

// Sync forwards to the wrapped writer when it supports syncing
func (s *WriterSink) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.w.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}

// Close forwards to the wrapped writer when it supports closing
func (s *WriterSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
