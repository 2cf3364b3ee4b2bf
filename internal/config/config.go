package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Log     LogConfig
	Catalog CatalogConfig
	Map     MapConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeoJSONCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// CatalogConfig - откуда брать каталог объектов; пустой путь означает встроенный набор.
// ReloadInterval == 0 выключает перечитывание файла.
type CatalogConfig struct {
	Path           string
	ReloadInterval time.Duration
}

// MapConfig - начальный вьюпорт карты и подложка
type MapConfig struct {
	CenterLat   float64
	CenterLon   float64
	Zoom        float64
	ThumbZoom   float64
	TileURL     string
	Attribution string
}

const (
	DefaultCenterLat   = 43.6481
	DefaultCenterLon   = 51.1722
	DefaultZoom        = 12.5
	DefaultThumbZoom   = 14
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = "&copy; OpenStreetMap contributors"

	DefaultCatalogReloadInterval = 30 * time.Second
)

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию из указанного env-файла; отсутствие файла не ошибка
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeoJSONCacheTTL: time.Duration(v.GetInt("GEOJSON_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Catalog: CatalogConfig{
			Path:           v.GetString("CATALOG_PATH"),
			ReloadInterval: time.Duration(v.GetInt("CATALOG_RELOAD_INTERVAL")) * time.Second,
		},
		Map: MapConfig{
			CenterLat:   v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:   v.GetFloat64("MAP_CENTER_LON"),
			Zoom:        v.GetFloat64("MAP_ZOOM"),
			ThumbZoom:   v.GetFloat64("MAP_THUMB_ZOOM"),
			TileURL:     v.GetString("MAP_TILE_URL"),
			Attribution: v.GetString("MAP_ATTRIBUTION"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.GeoJSONCacheTTL == 0 {
		cfg.Cache.GeoJSONCacheTTL = time.Hour
	}
	// отрицательное значение явно выключает перечитывание
	switch {
	case cfg.Catalog.ReloadInterval == 0:
		cfg.Catalog.ReloadInterval = DefaultCatalogReloadInterval
	case cfg.Catalog.ReloadInterval < 0:
		cfg.Catalog.ReloadInterval = 0
	}
	if cfg.Map.CenterLat == 0 && cfg.Map.CenterLon == 0 {
		cfg.Map.CenterLat = DefaultCenterLat
		cfg.Map.CenterLon = DefaultCenterLon
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = DefaultZoom
	}
	if cfg.Map.ThumbZoom == 0 {
		cfg.Map.ThumbZoom = DefaultThumbZoom
	}
	if cfg.Map.TileURL == "" {
		cfg.Map.TileURL = DefaultTileURL
	}
	if cfg.Map.Attribution == "" {
		cfg.Map.Attribution = DefaultAttribution
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
