// --- File: default.go ---
package plog

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger.
// Emitting functions call the internal log method directly so call-site
// attribution skips the same number of frames as the Logger methods.

// Default returns the package-level logger instance
func Default() *Logger {
	return defaultLogger
}

// Init initializes or reconfigures the default logger with the given config
func Init(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// InitWithDefaults initializes the default logger with built-in defaults and
// optional "key=value" overrides
func InitWithDefaults(overrides ...string) error {
	return defaultLogger.ApplyOverride(overrides...)
}

// InitFromFile initializes the default logger from a TOML config file
func InitFromFile(path string) error {
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		return err
	}
	return defaultLogger.ApplyConfig(cfg)
}

// Named returns a child of the default logger carrying the extended name
func Named(name string) *Logger {
	return defaultLogger.Named(name)
}

// IsEnabled reports whether the default logger would write at the given level
func IsEnabled(level int64) bool {
	return defaultLogger.IsEnabled(level)
}

// SetLevel changes the default logger's threshold level
func SetLevel(level int64) {
	defaultLogger.SetLevel(level)
}

// GetStats returns a snapshot of the default logger's counters
func GetStats() Stats {
	return defaultLogger.Stats()
}

// Truncate shrinks the default logger's file once it exceeds triggerSize
func Truncate(triggerSize, retainedSize int64) error {
	return defaultLogger.Truncate(triggerSize, retainedSize)
}

// Sync flushes the default logger's sink
func Sync() error {
	return defaultLogger.Sync()
}

// Close terminates the default logger
func Close() error {
	return defaultLogger.Close()
}

// Debug logs a message at debug level
func Debug(args ...any) {
	defaultLogger.log(LevelDebug, 0, nil, "", false, args)
}

// Info logs a message at info level
func Info(args ...any) {
	defaultLogger.log(LevelInfo, 0, nil, "", false, args)
}

// Warn logs a message at warning level
func Warn(args ...any) {
	defaultLogger.log(LevelWarn, 0, nil, "", false, args)
}

// Error logs a message at error level
func Error(args ...any) {
	defaultLogger.log(LevelError, 0, nil, "", false, args)
}

// Fatal logs a message at fatal level
func Fatal(args ...any) {
	defaultLogger.log(LevelFatal, 0, nil, "", false, args)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...any) {
	defaultLogger.log(LevelDebug, 0, nil, format, true, args)
}

// Infof logs a formatted message at info level
func Infof(format string, args ...any) {
	defaultLogger.log(LevelInfo, 0, nil, format, true, args)
}

// Warnf logs a formatted message at warning level
func Warnf(format string, args ...any) {
	defaultLogger.log(LevelWarn, 0, nil, format, true, args)
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) {
	defaultLogger.log(LevelError, 0, nil, format, true, args)
}

// Fatalf logs a formatted message at fatal level
func Fatalf(format string, args ...any) {
	defaultLogger.log(LevelFatal, 0, nil, format, true, args)
}

// DebugErr logs a formatted debug message with its causing error chain
func DebugErr(err error, format string, args ...any) {
	defaultLogger.log(LevelDebug, 0, err, format, true, args)
}

// InfoErr logs a formatted info message with its causing error chain
func InfoErr(err error, format string, args ...any) {
	defaultLogger.log(LevelInfo, 0, err, format, true, args)
}

// WarnErr logs a formatted warning message with its causing error chain
func WarnErr(err error, format string, args ...any) {
	defaultLogger.log(LevelWarn, 0, err, format, true, args)
}

// ErrorErr logs a formatted error message with its causing error chain
func ErrorErr(err error, format string, args ...any) {
	defaultLogger.log(LevelError, 0, err, format, true, args)
}

// FatalErr logs a formatted fatal message with its causing error chain
func FatalErr(err error, format string, args ...any) {
	defaultLogger.log(LevelFatal, 0, err, format, true, args)
}

// DebugTrace logs a debug message attributed depth frames up the call stack
func DebugTrace(depth int, args ...any) {
	defaultLogger.log(LevelDebug, int64(depth), nil, "", false, args)
}

// InfoTrace logs an info message attributed depth frames up the call stack
func InfoTrace(depth int, args ...any) {
	defaultLogger.log(LevelInfo, int64(depth), nil, "", false, args)
}

// WarnTrace logs a warning message attributed depth frames up the call stack
func WarnTrace(depth int, args ...any) {
	defaultLogger.log(LevelWarn, int64(depth), nil, "", false, args)
}

// ErrorTrace logs an error message attributed depth frames up the call stack
func ErrorTrace(depth int, args ...any) {
	defaultLogger.log(LevelError, int64(depth), nil, "", false, args)
}

// FatalTrace logs a fatal message attributed depth frames up the call stack
func FatalTrace(depth int, args ...any) {
	defaultLogger.log(LevelFatal, int64(depth), nil, "", false, args)
}

// Log writes a formatted record at an arbitrary level with explicit
// attribution depth and optional cause
func Log(level int64, depth int, cause error, format string, args ...any) {
	defaultLogger.log(level, int64(depth), cause, format, true, args)
}
