package cache

import (
	"context"
	"time"

	"github.com/construction-map/internal/domain/repository"
)

// noopRepository используется, когда Redis выключен: всегда промах, запись игнорируется
type noopRepository struct{}

func NewNoopRepository() repository.CacheRepository {
	return noopRepository{}
}

func (noopRepository) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (noopRepository) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopRepository) Delete(context.Context, string) error { return nil }

func (noopRepository) GetGeoJSON(context.Context, string) ([]byte, error) { return nil, nil }

func (noopRepository) SetGeoJSON(context.Context, string, []byte, time.Duration) error { return nil }
