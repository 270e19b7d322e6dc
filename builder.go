// FILE: builder.go
package plog

import (
	"github.com/tidelock/plog/lockfile"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg  *Config
	lock Locker
	sink Sink
	err  error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	// Injected resources go in before configuration so ApplyConfig keeps them
	if b.lock != nil {
		if fl, ok := b.lock.(*lockfile.FileLock); ok {
			b.cfg.LockPath = fl.Path()
		}
		logger.lockBox.Store(lockBox{lk: b.lock})
	}
	if b.sink != nil {
		logger.sinkBox.Store(sinkBox{s: b.sink})
	}

	// Apply the built configuration. ApplyConfig handles all initialization and validation.
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Level sets the log level.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the log level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Name sets the logger name.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// FilePath sets the log file path.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// LockPath sets the inter-process lock file path.
func (b *Builder) LockPath(path string) *Builder {
	b.cfg.LockPath = path
	return b
}

// Strict makes internal failures surface instead of being swallowed.
func (b *Builder) Strict(strict bool) *Builder {
	b.cfg.Strict = strict
	return b
}

// TimestampFormat sets the record timestamp layout.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// CallerSkip sets extra stack frames to skip for call-site attribution.
func (b *Builder) CallerSkip(skip int64) *Builder {
	b.cfg.CallerSkip = skip
	return b
}

// EnableStdout enables mirroring logs to stdout/stderr.
func (b *Builder) EnableStdout(enable bool) *Builder {
	b.cfg.EnableStdout = enable
	return b
}

// StdoutTarget selects the console mirror target, "stdout" or "stderr".
func (b *Builder) StdoutTarget(target string) *Builder {
	b.cfg.StdoutTarget = target
	return b
}

// AutoTruncate configures periodic truncation: the check interval in seconds,
// the file size that arms truncation, and the tail size to retain.
func (b *Builder) AutoTruncate(intervalS, trigger, retain int64) *Builder {
	b.cfg.AutoTruncateIntervalS = intervalS
	b.cfg.TruncateTrigger = trigger
	b.cfg.TruncateRetain = retain
	return b
}

// HeartbeatIntervalS sets the heartbeat interval in seconds.
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	b.cfg.HeartbeatIntervalS = interval
	return b
}

// EnableMetrics registers Prometheus collectors for logger activity.
func (b *Builder) EnableMetrics(enable bool) *Builder {
	b.cfg.EnableMetrics = enable
	return b
}

// InternalErrorsToStderr writes internal logger diagnostics to stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Lock injects a custom Locker. For plain file locks prefer LockPath.
func (b *Builder) Lock(lk Locker) *Builder {
	b.lock = lk
	return b
}

// Sink injects a custom Sink in place of the default file sink.
func (b *Builder) Sink(s Sink) *Builder {
	b.sink = s
	return b
}

// Example usage:
// logger, err := plog.NewBuilder().
//
//	FilePath("/var/log/app.log").
//	LockPath("/var/log/app.lock").
//	LevelString("debug").
//	EnableStdout(true).
//	Build()
//
// if err == nil {
//
//	 defer logger.Close()
//	 logger.Info("Logger initialized successfully")
//
// }
