package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load(NewFlagSet("test"))
	require.NoError(t, err)

	assert.Equal(t, "production", config.Mode)
	assert.True(t, config.Production())
	assert.False(t, config.Development())
	assert.Empty(t, config.Difficulty)
	assert.Zero(t, config.Seed)
	assert.Equal(t, LogConfig{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28}, config.Log)

	level, err := config.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, level)
}

func TestLoadNilFlagSet(t *testing.T) {
	config, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "production", config.Mode)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"mode": "development",
		"difficulty": "Medium",
		"seed": 42,
		"log": {"file": "/tmp/mines.log", "max_backups": 1}
	}`), 0o600))

	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"--config", path}))

	config, err := Load(fs)
	require.NoError(t, err)

	assert.True(t, config.Development())
	assert.Equal(t, "Medium", config.Difficulty)
	assert.Equal(t, uint64(42), config.Seed)
	assert.Equal(t, "/tmp/mines.log", config.Log.File)
	assert.Equal(t, 1, config.Log.MaxBackups)
	assert.Equal(t, 10, config.Log.MaxSizeMB)

	level, err := config.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestLoadPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"difficulty: Easy\nseed: 1\nlog:\n  level: warn\n",
	), 0o600))

	t.Setenv("MINES_CONFIG", path)
	t.Setenv("MINES_SEED", "2")
	t.Setenv("MINES_LOG_LEVEL", "error")

	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse([]string{"-d", "Hard"}))

	config, err := Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "Hard", config.Difficulty)
	assert.Equal(t, uint64(2), config.Seed)
	assert.Equal(t, "error", config.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		fs := NewFlagSet("test")
		require.NoError(t, fs.Parse([]string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
		_, err := Load(fs)
		assert.Error(t, err)
	})

	t.Run("bad mode", func(t *testing.T) {
		fs := NewFlagSet("test")
		require.NoError(t, fs.Parse([]string{"--mode", "staging"}))
		_, err := Load(fs)
		assert.ErrorContains(t, err, "unknown mode")
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("MINES_LOG_LEVEL", "loud")
		_, err := Load(NewFlagSet("test"))
		assert.Error(t, err)
	})
}

func TestFields(t *testing.T) {
	config := Config{Mode: "development", Difficulty: "Easy", Seed: 3}
	fields := config.Fields()
	assert.Equal(t, "development", fields["mode"])
	assert.Equal(t, "Easy", fields["difficulty"])
	assert.Equal(t, uint64(3), fields["seed"])
}
