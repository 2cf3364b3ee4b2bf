package handler

import (
	"strconv"

	"github.com/construction-map/internal/pkg/errors"
	"github.com/construction-map/internal/pkg/utils"
	"github.com/construction-map/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderCatalogVersion несёт версию каталога, из которой собран ответ
const HeaderCatalogVersion = "X-Catalog-Version"

// ObjectHandler - JSON API каталога объектов и слоёв карты
type ObjectHandler struct {
	dashboardUC *usecase.DashboardUseCase
	mapUC       *usecase.MapUseCase
	logger      *zap.Logger
}

// NewObjectHandler создает новый экземпляр ObjectHandler
func NewObjectHandler(dashboardUC *usecase.DashboardUseCase, mapUC *usecase.MapUseCase, logger *zap.Logger) *ObjectHandler {
	return &ObjectHandler{
		dashboardUC: dashboardUC,
		mapUC:       mapUC,
		logger:      logger,
	}
}

// List godoc
// @Summary List construction objects
// @Description Список объектов для боковой панели с центроидами
// @Tags Objects
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/objects [get]
func (h *ObjectHandler) List(c *fiber.Ctx) error {
	items, err := h.mapUC.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list objects", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, items, &utils.Meta{
		Total:   len(items),
		Version: h.mapUC.Version(),
	})
}

// GetByID godoc
// @Summary Get object card
// @Description Карточка объекта: реквизиты, суммы, статус и фотографии
// @Tags Objects
// @Produce json
// @Param id path string true "Object ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/objects/{id} [get]
func (h *ObjectHandler) GetByID(c *fiber.Ctx) error {
	card, err := h.dashboardUC.Card(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, card, nil)
}

// GeoJSON godoc
// @Summary Object polygons as GeoJSON
// @Tags Map
// @Produce json
// @Success 200 {object} dto.FeatureCollection
// @Header 200 {string} X-Catalog-Version "Версия каталога"
// @Router /api/v1/objects.geojson [get]
func (h *ObjectHandler) GeoJSON(c *fiber.Ctx) error {
	data, err := h.mapUC.GeoJSON(c.Context())
	if err != nil {
		h.logger.Error("Failed to build GeoJSON", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	c.Set(HeaderCatalogVersion, h.mapUC.Version())
	return c.Send(data)
}

// Summary godoc
// @Summary Catalog summary
// @Description Число объектов и суммы себестоимости, факта и плана до конца года
// @Tags Objects
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/summary [get]
func (h *ObjectHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.dashboardUC.Summary(c.Context())
	if err != nil {
		h.logger.Error("Failed to build summary", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary, nil)
}

// Thumbnails godoc
// @Summary Photo thumbnails for zoom level
// @Description Миниатюры аэрофото в центроидах; пусто, пока зум ниже порога
// @Tags Map
// @Produce json
// @Param zoom query number true "Zoom level"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/thumbnails [get]
func (h *ObjectHandler) Thumbnails(c *fiber.Ctx) error {
	zoom, err := strconv.ParseFloat(c.Query("zoom"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidZoom)
	}

	markers, err := h.mapUC.Thumbnails(c.Context(), zoom)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, markers, &utils.Meta{
		Total: len(markers),
	})
}
