package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/construction-map/internal/config"
	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/domain/repository"
	"github.com/construction-map/internal/repository/cache"
	"github.com/construction-map/internal/repository/static"
	"github.com/construction-map/internal/usecase"
)

// MockCacheRepository - мок кеша ответов
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetGeoJSON(ctx context.Context, version string) ([]byte, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetGeoJSON(ctx context.Context, version string, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, version, data, ttl)
	return args.Error(0)
}

// MockObjectRepository - мок каталога
type MockObjectRepository struct {
	mock.Mock
}

func (m *MockObjectRepository) List(ctx context.Context) ([]*domain.ConstructionObject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ConstructionObject), args.Error(1)
}

func (m *MockObjectRepository) GetByID(ctx context.Context, id string) (*domain.ConstructionObject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConstructionObject), args.Error(1)
}

func (m *MockObjectRepository) Version() string {
	return m.Called().String(0)
}

func testMapConfig() config.MapConfig {
	return config.MapConfig{
		CenterLat:   config.DefaultCenterLat,
		CenterLon:   config.DefaultCenterLon,
		Zoom:        config.DefaultZoom,
		ThumbZoom:   config.DefaultThumbZoom,
		TileURL:     config.DefaultTileURL,
		Attribution: config.DefaultAttribution,
	}
}

func sampleRepo(t *testing.T) repository.ObjectRepository {
	repo, err := static.NewSampleRepository(zap.NewNop())
	require.NoError(t, err)
	return repo
}

func newUseCases(repo repository.ObjectRepository, cacheRepo repository.CacheRepository) (*usecase.DashboardUseCase, *usecase.MapUseCase) {
	if cacheRepo == nil {
		cacheRepo = cache.NewNoopRepository()
	}
	logger := zap.NewNop()
	mapUC := usecase.NewMapUseCase(repo, cacheRepo, testMapConfig(), logger, time.Hour)
	return usecase.NewDashboardUseCase(repo, mapUC, logger), mapUC
}
