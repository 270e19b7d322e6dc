// FILE: tidelock/plog/compat/lumberjack.go
package compat

import (
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tidelock/plog"
)

// LumberjackSink adapts a lumberjack rolling file as a plog.Sink, for
// deployments that want size-based rotation with numbered backups instead of
// in-place truncation. Rotation and truncation should not be combined on the
// same file.
type LumberjackSink struct {
	roller *lumberjack.Logger
}

var _ plog.Sink = (*LumberjackSink)(nil)

// NewLumberjackSink creates a rolling-file sink. maxSizeMB caps the file
// before rotation, maxBackups bounds the number of rotated files kept,
// maxAgeDays expires old backups, and compress gzips them.
func NewLumberjackSink(path string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) *LumberjackSink {
	return &LumberjackSink{
		roller: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   compress,
		},
	}
}

// Write appends one encoded record to the rolling file
func (s *LumberjackSink) Write(_ int64, p []byte) error {
	if _, err := s.roller.Write(p); err != nil {
		return err
	}
	return nil
}

// Sync is a no-op; lumberjack hands every write straight to the OS
func (s *LumberjackSink) Sync() error {
	return nil
}

// Close closes the current rolling file
func (s *LumberjackSink) Close() error {
	return s.roller.Close()
}

// Rotate forces an immediate rotation regardless of file size
func (s *LumberjackSink) Rotate() error {
	return s.roller.Rotate()
}
