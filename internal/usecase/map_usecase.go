package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/construction-map/internal/config"
	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/domain/repository"
	"github.com/construction-map/internal/mapview"
	"github.com/construction-map/internal/pkg/errors"
	"github.com/construction-map/internal/pkg/format"
	"github.com/construction-map/internal/pkg/metrics"
	"github.com/construction-map/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	minZoom = 0
	maxZoom = 22

	tooltipOffsetY = -8
)

// MapUseCase строит слой полигонов, GeoJSON и миниатюры
type MapUseCase struct {
	objectRepo repository.ObjectRepository
	cacheRepo  repository.CacheRepository
	mapCfg     config.MapConfig
	logger     *zap.Logger
	geoJSONTTL time.Duration
}

func NewMapUseCase(
	objectRepo repository.ObjectRepository,
	cacheRepo repository.CacheRepository,
	mapCfg config.MapConfig,
	logger *zap.Logger,
	geoJSONTTL time.Duration,
) *MapUseCase {
	return &MapUseCase{
		objectRepo: objectRepo,
		cacheRepo:  cacheRepo,
		mapCfg:     mapCfg,
		logger:     logger,
		geoJSONTTL: geoJSONTTL,
	}
}

// Settings возвращает начальный вьюпорт и параметры подложки
func (uc *MapUseCase) Settings() dto.MapSettings {
	return dto.MapSettings{
		Center:      domain.LatLng{Lat: uc.mapCfg.CenterLat, Lng: uc.mapCfg.CenterLon},
		Zoom:        uc.mapCfg.Zoom,
		ThumbZoom:   uc.mapCfg.ThumbZoom,
		TileURL:     uc.mapCfg.TileURL,
		Attribution: uc.mapCfg.Attribution,
	}
}

// Layer возвращает полигоны всех объектов со стилем для текущей подсветки
func (uc *MapUseCase) Layer(ctx context.Context, state domain.ViewState) ([]dto.PolygonView, error) {
	objects, err := uc.objectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	views := make([]dto.PolygonView, 0, len(objects))
	for _, o := range objects {
		hovered := state.Hovered(o.ID)
		views = append(views, dto.PolygonView{
			ID:         o.ID,
			Positions:  o.Polygon,
			Hovered:    hovered,
			Style:      domain.StyleFor(o.Status, hovered),
			BaseStyle:  domain.StyleFor(o.Status, false),
			HoverStyle: domain.StyleFor(o.Status, true),
			Tooltip:    tooltipFor(o),
		})
	}
	return views, nil
}

// List возвращает объекты для списка в боковой панели
func (uc *MapUseCase) List(ctx context.Context) ([]dto.ObjectListItem, error) {
	objects, err := uc.objectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	items := make([]dto.ObjectListItem, 0, len(objects))
	for _, o := range objects {
		item := dto.ObjectListItem{
			ID:         o.ID,
			Name:       o.Name,
			Contractor: o.Contractor,
			Status:     o.Status,
		}
		if c, ok := format.Centroid(o.Polygon); ok {
			item.Centroid = &c
		}
		items = append(items, item)
	}
	return items, nil
}

// Version возвращает версию загруженного каталога
func (uc *MapUseCase) Version() string {
	return uc.objectRepo.Version()
}

// GeoJSON возвращает слой полигонов, используя кеш когда возможно
func (uc *MapUseCase) GeoJSON(ctx context.Context) ([]byte, error) {
	version := uc.objectRepo.Version()

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetGeoJSON(ctx, version)
	if err == nil && cached != nil {
		metrics.CacheHitsTotal.Inc()
		uc.logger.Debug("GeoJSON fetched from cache", zap.String("version", version))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get GeoJSON from cache", zap.Error(err))
	}
	metrics.CacheMissesTotal.Inc()

	// 2. Строим из каталога
	objects, err := uc.objectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	data, err := json.Marshal(BuildFeatureCollection(objects))
	if err != nil {
		return nil, fmt.Errorf("marshal geojson: %w", err)
	}

	// 3. Кешируем; ошибка кеша не мешает ответу
	if err := uc.cacheRepo.SetGeoJSON(ctx, version, data, uc.geoJSONTTL); err != nil {
		uc.logger.Warn("Failed to cache GeoJSON", zap.Error(err))
	}

	return data, nil
}

// Thumbnails возвращает миниатюры для заданного зума.
// Слой подписывается на вьюпорт только на время вызова.
func (uc *MapUseCase) Thumbnails(ctx context.Context, zoom float64) ([]mapview.Marker, error) {
	if !validZoom(zoom) {
		return nil, errors.ErrInvalidZoom
	}

	objects, err := uc.objectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	settings := uc.Settings()
	viewport := mapview.NewViewport(settings.Center, settings.Zoom)

	overlay := mapview.NewThumbnailOverlay(objects, uc.mapCfg.ThumbZoom)
	overlay.Mount(viewport)
	defer overlay.Unmount()

	viewport.SetZoom(zoom)

	markers := overlay.Markers()
	if markers == nil {
		markers = []mapview.Marker{}
	}
	return markers, nil
}

// BuildFeatureCollection переводит каталог в GeoJSON: [lng, lat], контур замкнут
func BuildFeatureCollection(objects []*domain.ConstructionObject) dto.FeatureCollection {
	fc := dto.FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]dto.Feature, 0, len(objects)),
	}

	for _, o := range objects {
		ring := make([][2]float64, 0, len(o.Polygon)+1)
		for _, p := range o.Polygon {
			ring = append(ring, [2]float64{p.Lng, p.Lat})
		}
		if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}

		fc.Features = append(fc.Features, dto.Feature{
			Type: "Feature",
			ID:   o.ID,
			Geometry: dto.PolygonGeometry{
				Type:        "Polygon",
				Coordinates: [][][2]float64{ring},
			},
			Properties: dto.FeatureProperties{
				Name:       o.Name,
				Contractor: o.Contractor,
				Status:     o.Status,
				Style:      domain.StyleFor(o.Status, false),
				HoverStyle: domain.StyleFor(o.Status, true),
			},
		})
	}
	return fc
}

// validZoom ложен и для NaN: любое сравнение с NaN ложно
func validZoom(z float64) bool {
	return z >= minZoom && z <= maxZoom
}

func tooltipFor(o *domain.ConstructionObject) dto.Tooltip {
	return dto.Tooltip{
		Title:     o.Name,
		Subtitle:  o.Contractor,
		Direction: "top",
		OffsetY:   tooltipOffsetY,
		Sticky:    true,
	}
}
