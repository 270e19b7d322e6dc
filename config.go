// FILE: config.go
package plog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Basic settings
	Level    int64  `toml:"level"`
	Name     string `toml:"name"` // Logger name stamped into every record
	FilePath string `toml:"file_path"`
	LockPath string `toml:"lock_path"` // Lock file path ("" = no inter-process lock)
	Strict   bool   `toml:"strict"`    // Escalate internal failures instead of swallowing

	// Formatting
	TimestampFormat string `toml:"timestamp_format"` // Time format for record timestamps
	CallerSkip      int64  `toml:"caller_skip"`      // Extra stack frames to skip for call-site attribution (0-10)

	// Truncation
	AutoTruncateIntervalS int64 `toml:"auto_truncate_interval_s"` // 0 = disabled
	TruncateTrigger       int64 `toml:"truncate_trigger"`         // File size in bytes that arms truncation
	TruncateRetain        int64 `toml:"truncate_retain"`          // Bytes from the tail to keep

	// Heartbeat
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // 0 = disabled

	// Stdout/console output settings
	EnableStdout bool   `toml:"enable_stdout"` // Mirror records to stdout/stderr
	StdoutTarget string `toml:"stdout_target"` // "stdout" or "stderr"

	// Observability
	EnableMetrics          bool `toml:"enable_metrics"`            // Register and update Prometheus collectors
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	// Basic settings
	Level:    LevelInfo,
	Name:     "plog",
	FilePath: defaultFilePath,
	LockPath: "",
	Strict:   false,

	// Formatting
	TimestampFormat: defaultTimestampFormat,
	CallerSkip:      0,

	// Truncation
	AutoTruncateIntervalS: 0,
	TruncateTrigger:       defaultTruncateTrigger,
	TruncateRetain:        defaultTruncateRetain,

	// Heartbeat
	HeartbeatIntervalS: 0,

	// Stdout settings
	EnableStdout: false,
	StdoutTarget: "stdout",

	// Observability
	EnableMetrics:          false,
	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	// Create a copy to prevent modifications to the original
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("plog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "plog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	// Validate the loaded configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	// Apply overrides using reflection
	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		// Get value from loader
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		// Set the field value with type conversion
		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	// Create a map of field names to field values for efficient lookup
	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	// String validations
	if strings.TrimSpace(c.Name) == "" {
		return fmtErrorf("logger name cannot be empty")
	}

	if strings.TrimSpace(c.FilePath) == "" {
		return fmtErrorf("file_path cannot be empty")
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.StdoutTarget != "stdout" && c.StdoutTarget != "stderr" {
		return fmtErrorf("invalid stdout_target: '%s' (use stdout or stderr)", c.StdoutTarget)
	}

	// Numeric validations
	if c.CallerSkip < 0 || c.CallerSkip > 10 {
		return fmtErrorf("caller_skip must be between 0 and 10: %d", c.CallerSkip)
	}

	if c.TruncateTrigger < 0 || c.TruncateRetain < 0 {
		return fmtErrorf("truncation sizes cannot be negative")
	}

	if c.AutoTruncateIntervalS < 0 {
		return fmtErrorf("auto_truncate_interval_s cannot be negative: %d", c.AutoTruncateIntervalS)
	}

	if c.HeartbeatIntervalS < 0 {
		return fmtErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS)
	}

	// Cross-field validations
	if c.TruncateRetain > c.TruncateTrigger {
		return fmtErrorf("truncate_retain (%d) cannot be greater than truncate_trigger (%d)",
			c.TruncateRetain, c.TruncateTrigger)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
