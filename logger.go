// FILE: logger.go
package plog

import (
	"io"
	"os"
	"time"

	"github.com/tidelock/plog/formatter"
	"github.com/tidelock/plog/lockfile"
)

// NewLogger creates a new Logger instance with default settings
func NewLogger() *Logger {
	l := &Logger{}
	l.root = l

	// Set default configuration
	l.currentConfig.Store(DefaultConfig())
	l.decorator = formatter.New()

	// Initialize the state
	l.state.IsInitialized.Store(false)
	l.state.CloseCalled.Store(false)
	l.state.LoggerStartTime.Store(time.Time{})

	// Empty boxes so getters never see a nil atomic.Value
	l.sinkBox.Store(sinkBox{})
	l.lockBox.Store(lockBox{})
	l.stdoutBox.Store(stdoutBox{w: io.Discard})

	return l
}

// ApplyConfig applies a validated configuration to the logger
// This is the primary way applications should configure the logger
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if l != l.root {
		return fmtErrorf("configuration must be applied on the root logger")
	}

	if err := cfg.Validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// IsEnabled reports whether a record at the given level would be written.
// It is a pure threshold comparison and performs no lock or format work.
func (l *Logger) IsEnabled(level int64) bool {
	return level >= l.getConfig().Level
}

// Level returns the logger's current threshold level
func (l *Logger) Level() int64 {
	return l.getConfig().Level
}

// SetLevel changes only the threshold level of this logger instance
func (l *Logger) SetLevel(level int64) {
	cfg := l.getConfig().Clone()
	cfg.Level = level
	l.currentConfig.Store(cfg)
}

// Named returns a child logger whose records carry the extended dotted name.
// The child shares the root's sink, lock and counters by reference and owns
// an independent copy of the configuration, so its level can be tuned without
// affecting the parent.
func (l *Logger) Named(name string) *Logger {
	cfg := l.getConfig().Clone()
	if name != "" {
		if cfg.Name == "" {
			cfg.Name = name
		} else {
			cfg.Name = cfg.Name + "." + name
		}
	}

	child := &Logger{
		root:      l.root,
		decorator: l.decorator,
	}
	child.currentConfig.Store(cfg)
	return child
}

// Debug logs a message at debug level
func (l *Logger) Debug(args ...any) {
	l.log(LevelDebug, 0, nil, "", false, args)
}

// Info logs a message at info level
func (l *Logger) Info(args ...any) {
	l.log(LevelInfo, 0, nil, "", false, args)
}

// Warn logs a message at warning level
func (l *Logger) Warn(args ...any) {
	l.log(LevelWarn, 0, nil, "", false, args)
}

// Error logs a message at error level
func (l *Logger) Error(args ...any) {
	l.log(LevelError, 0, nil, "", false, args)
}

// Fatal logs a message at fatal level. It does not terminate the process;
// fatal is the highest severity, nothing more.
func (l *Logger) Fatal(args ...any) {
	l.log(LevelFatal, 0, nil, "", false, args)
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, 0, nil, format, true, args)
}

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, 0, nil, format, true, args)
}

// Warnf logs a formatted message at warning level
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, 0, nil, format, true, args)
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, 0, nil, format, true, args)
}

// Fatalf logs a formatted message at fatal level
func (l *Logger) Fatalf(format string, args ...any) {
	l.log(LevelFatal, 0, nil, format, true, args)
}

// DebugErr logs a formatted debug message with its causing error chain
func (l *Logger) DebugErr(err error, format string, args ...any) {
	l.log(LevelDebug, 0, err, format, true, args)
}

// InfoErr logs a formatted info message with its causing error chain
func (l *Logger) InfoErr(err error, format string, args ...any) {
	l.log(LevelInfo, 0, err, format, true, args)
}

// WarnErr logs a formatted warning message with its causing error chain
func (l *Logger) WarnErr(err error, format string, args ...any) {
	l.log(LevelWarn, 0, err, format, true, args)
}

// ErrorErr logs a formatted error message with its causing error chain
func (l *Logger) ErrorErr(err error, format string, args ...any) {
	l.log(LevelError, 0, err, format, true, args)
}

// FatalErr logs a formatted fatal message with its causing error chain
func (l *Logger) FatalErr(err error, format string, args ...any) {
	l.log(LevelFatal, 0, err, format, true, args)
}

// DebugTrace logs a debug message attributed depth frames up the call stack
func (l *Logger) DebugTrace(depth int, args ...any) {
	l.log(LevelDebug, int64(depth), nil, "", false, args)
}

// InfoTrace logs an info message attributed depth frames up the call stack
func (l *Logger) InfoTrace(depth int, args ...any) {
	l.log(LevelInfo, int64(depth), nil, "", false, args)
}

// WarnTrace logs a warning message attributed depth frames up the call stack
func (l *Logger) WarnTrace(depth int, args ...any) {
	l.log(LevelWarn, int64(depth), nil, "", false, args)
}

// ErrorTrace logs an error message attributed depth frames up the call stack
func (l *Logger) ErrorTrace(depth int, args ...any) {
	l.log(LevelError, int64(depth), nil, "", false, args)
}

// FatalTrace logs a fatal message attributed depth frames up the call stack
func (l *Logger) FatalTrace(depth int, args ...any) {
	l.log(LevelFatal, int64(depth), nil, "", false, args)
}

// Log writes a formatted record at an arbitrary level with explicit
// attribution depth and optional cause
func (l *Logger) Log(level int64, depth int, cause error, format string, args ...any) {
	l.log(level, int64(depth), cause, format, true, args)
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// getSink returns the shared sink, which lives on the root
func (l *Logger) getSink() Sink {
	if b, ok := l.root.sinkBox.Load().(sinkBox); ok {
		return b.s
	}
	return nil
}

// getLock returns the shared inter-process lock, which lives on the root
func (l *Logger) getLock() Locker {
	if b, ok := l.root.lockBox.Load().(lockBox); ok {
		return b.lk
	}
	return nil
}

// getStdout returns the console mirror writer, which lives on the root
func (l *Logger) getStdout() io.Writer {
	if b, ok := l.root.stdoutBox.Load().(stdoutBox); ok {
		return b.w
	}
	return nil
}

// applyConfig is the internal implementation for applying configuration, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	oldSink := l.getSink()
	oldFileSink, wasFileSink := oldSink.(*FileSink)

	// Open the new sink first so a failure leaves the logger untouched.
	// Injected non-file sinks are kept; file sinks follow the path.
	var newSink Sink
	if oldSink == nil || (wasFileSink && oldFileSink.Path() != cfg.FilePath) {
		s, err := NewFileSink(cfg.FilePath)
		if err != nil {
			return err
		}
		newSink = s
	}

	l.currentConfig.Store(cfg)

	// Lock setup: an injected custom Locker is kept as-is, a file lock
	// follows the configured path
	switch lk := l.getLock().(type) {
	case nil:
		if cfg.LockPath != "" {
			l.lockBox.Store(lockBox{lk: lockfile.New(cfg.LockPath)})
		}
	case *lockfile.FileLock:
		if cfg.LockPath == "" {
			l.lockBox.Store(lockBox{})
		} else if lk.Path() != cfg.LockPath {
			l.lockBox.Store(lockBox{lk: lockfile.New(cfg.LockPath)})
		}
	default:
		// Keep the injected Locker
	}

	if newSink != nil {
		l.sinkBox.Store(sinkBox{s: newSink})
		if wasFileSink && oldFileSink != nil {
			_ = oldFileSink.Sync()
			if err := oldFileSink.Close(); err != nil {
				l.internalLog("failed to close old sink: %v\n", err)
			}
		}
	}

	// Setup console writer based on config
	if cfg.EnableStdout {
		var writer io.Writer
		if cfg.StdoutTarget == "stderr" {
			writer = os.Stderr
		} else {
			writer = os.Stdout
		}
		l.stdoutBox.Store(stdoutBox{w: writer})
	} else {
		l.stdoutBox.Store(stdoutBox{w: io.Discard})
	}

	if cfg.EnableMetrics {
		registerMetrics()
	}

	// Mark as initialized
	if !l.state.IsInitialized.Load() {
		l.state.LoggerStartTime.Store(time.Now())
	}
	l.state.IsInitialized.Store(true)
	l.state.CloseCalled.Store(false)

	l.restartMaintenance(cfg)

	return nil
}
