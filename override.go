// FILE: override.go
package plog

import (
	"strconv"

	"go.uber.org/multierr"
)

// ApplyOverride applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	logger := plog.NewLogger()
//	err := logger.ApplyOverride(
//	    "file_path=/var/log/app.log",
//	    "level=-4",
//	    "strict=true",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.getConfig().Clone()

	var errs error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		return errs
	}

	return l.ApplyConfig(cfg)
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Basic settings
	case "level":
		// Special handling: accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = numVal
		} else {
			// Try parsing as named level
			levelVal, err := Level(value)
			if err != nil {
				return fmtErrorf("invalid level value '%s': %w", value, err)
			}
			cfg.Level = levelVal
		}
	case "name":
		cfg.Name = value
	case "file_path":
		cfg.FilePath = value
	case "lock_path":
		cfg.LockPath = value
	case "strict":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for strict '%s': %w", value, err)
		}
		cfg.Strict = boolVal

	// Formatting
	case "timestamp_format":
		cfg.TimestampFormat = value
	case "caller_skip":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for caller_skip '%s': %w", value, err)
		}
		cfg.CallerSkip = intVal

	// Truncation
	case "auto_truncate_interval_s":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for auto_truncate_interval_s '%s': %w", value, err)
		}
		cfg.AutoTruncateIntervalS = intVal
	case "truncate_trigger":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for truncate_trigger '%s': %w", value, err)
		}
		cfg.TruncateTrigger = intVal
	case "truncate_retain":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for truncate_retain '%s': %w", value, err)
		}
		cfg.TruncateRetain = intVal

	// Heartbeat
	case "heartbeat_interval_s":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for heartbeat_interval_s '%s': %w", value, err)
		}
		cfg.HeartbeatIntervalS = intVal

	// Stdout/console output settings
	case "enable_stdout":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_stdout '%s': %w", value, err)
		}
		cfg.EnableStdout = boolVal
	case "stdout_target":
		cfg.StdoutTarget = value

	// Observability
	case "enable_metrics":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_metrics '%s': %w", value, err)
		}
		cfg.EnableMetrics = boolVal
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
