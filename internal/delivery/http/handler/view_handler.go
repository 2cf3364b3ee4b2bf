package handler

import (
	"github.com/construction-map/internal/pkg/errors"
	"github.com/construction-map/internal/pkg/utils"
	"github.com/construction-map/internal/usecase"
	"github.com/construction-map/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ViewHandler - переходы состояния интерфейса
type ViewHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

func NewViewHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// PostEvent godoc
// @Summary Apply a view event
// @Description Применяет событие (hover_enter, hover_leave, select, close, zoom) к состоянию клиента
// @Tags View
// @Accept json
// @Produce json
// @Param request body dto.ViewEventRequest true "Current state and event"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/view/events [post]
func (h *ViewHandler) PostEvent(c *fiber.Ctx) error {
	var req dto.ViewEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	next, err := h.dashboardUC.Transition(c.Context(), req.State, req.Event)
	if err != nil {
		h.logger.Debug("View event rejected", zap.String("type", string(req.Event.Type)), zap.Error(err))
		return utils.SendError(c, err)
	}

	panel := dto.PanelList
	if next.HasActive() {
		panel = dto.PanelCard
	}

	return utils.SendSuccess(c, dto.ViewEventResponse{
		State: next,
		Panel: panel,
	}, nil)
}
