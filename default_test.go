// FILE: default_test.go
package plog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The package-level functions share one process-wide logger, so every test
// here initializes it from scratch and closes it before returning. Counters
// survive reinitialization, which is why assertions work on deltas.

func TestDefaultLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.log")

	cfg := DefaultConfig()
	cfg.Level = LevelDebug
	cfg.FilePath = path
	cfg.LockPath = path + ".lock"
	require.NoError(t, Init(cfg))
	defer func() { require.NoError(t, Close()) }()

	require.Same(t, defaultLogger, Default())
	before := GetStats().TotalRecords

	Debug("default debug")
	Infof("default info %d", 1)
	WarnErr(Wrap(os.ErrNotExist, "probe failed"), "opening %s", "state file")
	Log(LevelError, 0, nil, "explicit %s", "level")

	require.True(t, IsEnabled(LevelDebug))
	SetLevel(LevelError)
	assert.False(t, IsEnabled(LevelInfo))
	Info("hidden by threshold")
	SetLevel(LevelDebug)

	child := Named("api")
	child.Info("child record")

	require.NoError(t, Sync())

	records := readRecords(t, path)
	require.Len(t, records, 5)
	assert.Equal(t, before+5, GetStats().TotalRecords)

	joined := strings.Join(records, "\x0b")
	assert.Contains(t, joined, "plog.TestDefaultLogger")
	assert.Contains(t, joined, "default_test.go:")
	assert.Contains(t, joined, " plog.api ")
	assert.Contains(t, joined, "cause: ")
	assert.NotContains(t, joined, "hidden by threshold")
}

func TestInitWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.log")

	require.NoError(t, InitWithDefaults(
		"file_path="+path,
		"lock_path="+path+".lock",
		"level=debug",
	))
	defer func() { require.NoError(t, Close()) }()

	Debug("from overrides")
	require.NoError(t, Sync())

	records := readRecords(t, path)
	require.Len(t, records, 1)
	assert.Contains(t, records[0], "DEBUG: ")
	assert.Contains(t, records[0], "from overrides")

	// A bad key fails before any config is applied
	require.Error(t, InitWithDefaults("no_such_key=1"))
}

func TestInitFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.log")

	content := "[plog]\n" +
		"level = -4\n" +
		"file_path = \"" + path + "\"\n" +
		"lock_path = \"" + path + ".lock\"\n"
	cfgPath := filepath.Join(dir, "plog.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	require.NoError(t, InitFromFile(cfgPath))
	defer func() { require.NoError(t, Close()) }()

	Debug("configured from file")
	require.NoError(t, Sync())

	records := readRecords(t, path)
	require.Len(t, records, 1)
	assert.Contains(t, records[0], "configured from file")

	// Validation failures leave the current configuration in place
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[plog]\ntruncate_trigger = 10\ntruncate_retain = 100\n"), 0o644))
	require.Error(t, InitFromFile(bad))

	Debug("still on old config")
	require.NoError(t, Sync())
	assert.Len(t, readRecords(t, path), 2)
}
