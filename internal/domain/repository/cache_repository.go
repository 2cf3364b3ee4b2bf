package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем ответов
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetGeoJSON получает слой полигонов для версии каталога
	GetGeoJSON(ctx context.Context, version string) ([]byte, error)

	// SetGeoJSON сохраняет слой полигонов для версии каталога
	SetGeoJSON(ctx context.Context, version string, data []byte, ttl time.Duration) error
}
