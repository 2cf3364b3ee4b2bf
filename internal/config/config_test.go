package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_DefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.GeoJSONCacheTTL)
	assert.Equal(t, DefaultCenterLat, cfg.Map.CenterLat)
	assert.Equal(t, DefaultCenterLon, cfg.Map.CenterLon)
	assert.Equal(t, DefaultZoom, cfg.Map.Zoom)
	assert.Equal(t, float64(DefaultThumbZoom), cfg.Map.ThumbZoom)
	assert.Equal(t, DefaultTileURL, cfg.Map.TileURL)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, DefaultCatalogReloadInterval, cfg.Catalog.ReloadInterval)
}

func TestLoadFile_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_HOST=127.0.0.1\nAPI_PORT=9090\nREDIS_ENABLED=true\nMAP_THUMB_ZOOM=15\nGEOJSON_CACHE_TTL=60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 15.0, cfg.Map.ThumbZoom)
	assert.Equal(t, time.Minute, cfg.Cache.GeoJSONCacheTTL)
}

func TestLoadFile_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_PATH", "/etc/catalog.yaml")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoadFile_CatalogReloadInterval(t *testing.T) {
	t.Run("custom", func(t *testing.T) {
		t.Setenv("CATALOG_RELOAD_INTERVAL", "5")
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.Catalog.ReloadInterval)
	})

	t.Run("negative disables", func(t *testing.T) {
		t.Setenv("CATALOG_RELOAD_INTERVAL", "-1")
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Zero(t, cfg.Catalog.ReloadInterval)
	})
}
