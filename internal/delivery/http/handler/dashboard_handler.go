package handler

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/pkg/utils"
	"github.com/construction-map/internal/usecase"
	"github.com/construction-map/internal/usecase/dto"
	"github.com/construction-map/templates"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardData - данные для шаблона страницы
type DashboardData struct {
	Page *dto.DashboardPage
}

// DashboardHandler - рендеринг страницы дашборда и фрагмента боковой панели
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	templates   *template.Template
	logger      *zap.Logger
}

// NewDashboardHandler - создание хендлера; шаблоны берутся из встроенной FS
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) (*DashboardHandler, error) {
	tmpl, err := template.ParseFS(templates.FS, "dashboard/*.html")
	if err != nil {
		return nil, err
	}

	return &DashboardHandler{
		dashboardUC: dashboardUC,
		templates:   tmpl,
		logger:      logger,
	}, nil
}

// RenderPage - страница целиком; состояние берётся из ?active=&hover=&zoom=
func (h *DashboardHandler) RenderPage(c *fiber.Ctx) error {
	state := stateFromQuery(c)

	page, err := h.dashboardUC.Page(c.Context(), state)
	if err != nil {
		h.logger.Error("Failed to build dashboard page", zap.Error(err))
		return utils.SendError(c, err)
	}

	return h.render(c, "page.html", DashboardData{Page: page})
}

// RenderPanel - только боковая панель для ?active=
func (h *DashboardHandler) RenderPanel(c *fiber.Ctx) error {
	state := domain.ViewState{ActiveID: c.Query("active")}

	panel, err := h.dashboardUC.Panel(c.Context(), state)
	if err != nil {
		return utils.SendError(c, err)
	}

	return h.render(c, "panel.html", panel)
}

func (h *DashboardHandler) render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func stateFromQuery(c *fiber.Ctx) domain.ViewState {
	state := domain.ViewState{
		HoverID:  c.Query("hover"),
		ActiveID: c.Query("active"),
	}
	if z, err := strconv.ParseFloat(c.Query("zoom"), 64); err == nil {
		state.Zoom = z
	}
	return state
}
