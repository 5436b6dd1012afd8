package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Server.Source)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "rooms/rooms.json", cfg.Storage.RoomsObject)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("STORAGE_ROOMS_OBJECT", "snapshots/today.json")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "snapshots/today.json", cfg.Storage.RoomsObject)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nSERVER_SOURCE=database\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_SOURCE")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "database", cfg.Server.Source)
}

func TestBindValues(t *testing.T) {
	type inner struct {
		Name string `mapstructure:"name" default:"x"`
		Skip string
	}
	type outer struct {
		Inner inner `mapstructure:"inner"`
		Count int   `mapstructure:"count" default:"3"`
	}

	v := viper.New()
	bindValues(v, &outer{}, "")

	assert.Equal(t, "x", v.GetString("inner.name"))
	assert.Equal(t, 3, v.GetInt("count"))
	assert.False(t, v.IsSet("inner.skip"))
}
