// FILE: config_test.go
package plog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, "plog", cfg.Name)
	assert.Equal(t, defaultFilePath, cfg.FilePath)
	assert.Empty(t, cfg.LockPath)
	assert.False(t, cfg.Strict)
	assert.Equal(t, defaultTimestampFormat, cfg.TimestampFormat)
	assert.Equal(t, int64(defaultTruncateTrigger), cfg.TruncateTrigger)
	assert.Equal(t, int64(defaultTruncateRetain), cfg.TruncateRetain)
	assert.Equal(t, "stdout", cfg.StdoutTarget)
	assert.Zero(t, cfg.AutoTruncateIntervalS)
	assert.Zero(t, cfg.HeartbeatIntervalS)
}

func TestConfigClone(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.Level = LevelDebug
	cfg1.FilePath = "/custom/path.log"

	cfg2 := cfg1.Clone()

	assert.Equal(t, cfg1.Level, cfg2.Level)
	assert.Equal(t, cfg1.FilePath, cfg2.FilePath)

	// Modify original
	cfg1.Level = LevelError

	// Verify clone unchanged
	assert.Equal(t, LevelDebug, cfg2.Level)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:      "valid config",
			modify:    func(c *Config) {},
			wantError: "",
		},
		{
			name:      "empty name",
			modify:    func(c *Config) { c.Name = "" },
			wantError: "logger name cannot be empty",
		},
		{
			name:      "empty file path",
			modify:    func(c *Config) { c.FilePath = " " },
			wantError: "file_path cannot be empty",
		},
		{
			name:      "empty timestamp format",
			modify:    func(c *Config) { c.TimestampFormat = "" },
			wantError: "timestamp_format cannot be empty",
		},
		{
			name:      "invalid stdout target",
			modify:    func(c *Config) { c.StdoutTarget = "pipe" },
			wantError: "invalid stdout_target",
		},
		{
			name:      "caller skip out of range",
			modify:    func(c *Config) { c.CallerSkip = 11 },
			wantError: "caller_skip must be between 0 and 10",
		},
		{
			name:      "negative truncation size",
			modify:    func(c *Config) { c.TruncateRetain = -1 },
			wantError: "truncation sizes cannot be negative",
		},
		{
			name:      "negative truncate interval",
			modify:    func(c *Config) { c.AutoTruncateIntervalS = -1 },
			wantError: "auto_truncate_interval_s cannot be negative",
		},
		{
			name:      "negative heartbeat interval",
			modify:    func(c *Config) { c.HeartbeatIntervalS = -5 },
			wantError: "heartbeat_interval_s cannot be negative",
		},
		{
			name: "retain above trigger",
			modify: func(c *Config) {
				c.TruncateTrigger = 1000
				c.TruncateRetain = 2000
			},
			wantError: "truncate_retain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestNewConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "plog.toml")

	content := `[plog]
level = -4
name = "filecfg"
file_path = "` + filepath.Join(tmpDir, "app.log") + `"
lock_path = "` + filepath.Join(tmpDir, "app.lock") + `"
strict = true
heartbeat_interval_s = 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, "filecfg", cfg.Name)
	assert.True(t, cfg.Strict)
	assert.Equal(t, int64(30), cfg.HeartbeatIntervalS)

	// Unset keys keep their defaults
	assert.Equal(t, defaultTimestampFormat, cfg.TimestampFormat)
	assert.Equal(t, int64(defaultTruncateTrigger), cfg.TruncateTrigger)
}

func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewConfigFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "plog.toml")

	content := `[plog]
truncate_trigger = 10
truncate_retain = 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "truncate_retain")
}

func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"level":       int64(8),
		"name":        "mapcfg",
		"strict":      true,
		"caller_skip": 3,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelError, cfg.Level)
	assert.Equal(t, "mapcfg", cfg.Name)
	assert.True(t, cfg.Strict)
	assert.Equal(t, int64(3), cfg.CallerSkip)

	_, err = NewConfigFromDefaults(map[string]any{"bogus": 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")

	_, err = NewConfigFromDefaults(map[string]any{"name": 42})
	assert.Error(t, err)

	_, err = NewConfigFromDefaults(map[string]any{"stdout_target": "pipe"})
	assert.Error(t, err)
}

func TestApplyOverride(t *testing.T) {
	logger, _ := createTestLogger(t)
	defer logger.Close()

	tests := []struct {
		name      string
		overrides []string
		verify    func(t *testing.T, cfg *Config)
		wantError []string
	}{
		{
			name: "basic overrides",
			overrides: []string{
				"level=-4",
				"name=alpha",
				"strict=true",
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, LevelDebug, cfg.Level)
				assert.Equal(t, "alpha", cfg.Name)
				assert.True(t, cfg.Strict)
			},
		},
		{
			name:      "level by name",
			overrides: []string{"level=warn"},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, LevelWarn, cfg.Level)
			},
		},
		{
			name: "boolean values",
			overrides: []string{
				"enable_stdout=true",
				"stdout_target=stderr",
				"internal_errors_to_stderr=true",
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.EnableStdout)
				assert.Equal(t, "stderr", cfg.StdoutTarget)
				assert.True(t, cfg.InternalErrorsToStderr)
			},
		},
		{
			name: "truncation tuning",
			overrides: []string{
				"auto_truncate_interval_s=0",
				"truncate_trigger=5000",
				"truncate_retain=500",
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int64(5000), cfg.TruncateTrigger)
				assert.Equal(t, int64(500), cfg.TruncateRetain)
			},
		},
		{
			name:      "invalid format",
			overrides: []string{"invalid"},
			wantError: []string{"expected key=value"},
		},
		{
			name:      "unknown key",
			overrides: []string{"unknown_key=value"},
			wantError: []string{"unknown configuration key"},
		},
		{
			name:      "invalid value type",
			overrides: []string{"caller_skip=not_a_number"},
			wantError: []string{"invalid integer value"},
		},
		{
			name:      "errors aggregate",
			overrides: []string{"caller_skip=x", "strict=maybe"},
			wantError: []string{"caller_skip", "strict"},
		},
		{
			name:      "validation after parse",
			overrides: []string{"truncate_retain=99999999999"},
			wantError: []string{"truncate_retain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.ApplyOverride(tt.overrides...)

			if len(tt.wantError) > 0 {
				require.Error(t, err)
				for _, want := range tt.wantError {
					assert.Contains(t, err.Error(), want)
				}
			} else {
				require.NoError(t, err)
				tt.verify(t, logger.GetConfig())
			}
		})
	}
}
