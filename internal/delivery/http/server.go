package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/construction-map/internal/config"
	"github.com/construction-map/internal/delivery/http/handler"
	"github.com/construction-map/internal/delivery/http/middleware"
	"github.com/construction-map/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	dashboardHandler *handler.DashboardHandler
	objectHandler    *handler.ObjectHandler
	viewHandler      *handler.ViewHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	dashboardHandler *handler.DashboardHandler,
	objectHandler *handler.ObjectHandler,
	viewHandler *handler.ViewHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Construction Map",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		dashboardHandler: dashboardHandler,
		objectHandler:    objectHandler,
		viewHandler:      viewHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (используется в тестах через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.config.Server.Env))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Dashboard
	s.app.Get("/", s.dashboardHandler.RenderPage)
	s.app.Get("/panel", s.dashboardHandler.RenderPanel)

	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Objects; .geojson регистрируется раньше :id
	api.Get("/objects", s.objectHandler.List)
	api.Get("/objects.geojson", s.objectHandler.GeoJSON)
	api.Get("/objects/:id", s.objectHandler.GetByID)
	api.Get("/summary", s.objectHandler.Summary)

	// Map
	api.Get("/thumbnails", s.objectHandler.Thumbnails)

	// View state
	api.Post("/view/events", s.viewHandler.PostEvent)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, ошибки шаблонов)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return c.Status(appErr.StatusCode).JSON(fiber.Map{"error": appErr})
		}

		code := fiber.StatusInternalServerError
		errCode := errors.ErrInternalServer.Code
		message := errors.ErrInternalServer.Message

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": message,
			},
		})
	}
}
