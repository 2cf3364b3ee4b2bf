package main

// @title Construction Map API
// @version 1.0.0
// @description Дашборд объектов строительства на карте. Отдаёт страницу с картой и боковой панелью, а также JSON API каталога, слоя полигонов, сводки и миниатюр.
// @description
// @description Основные возможности:
// @description - Полигоны объектов с цветом по статусу
// @description - Сводка по себестоимости, факту и плану до конца года
// @description - Карточка выбранного объекта с фотографиями
// @description - Миниатюры аэрофото при приближении

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/construction-map/docs"
	"github.com/construction-map/internal/config"
	httpDelivery "github.com/construction-map/internal/delivery/http"
	"github.com/construction-map/internal/delivery/http/handler"
	"github.com/construction-map/internal/domain/repository"
	"github.com/construction-map/internal/pkg/logger"
	"github.com/construction-map/internal/pkg/metrics"
	"github.com/construction-map/internal/repository/cache"
	"github.com/construction-map/internal/repository/static"
	"github.com/construction-map/internal/usecase"
	"github.com/construction-map/internal/worker"
	"github.com/construction-map/internal/worker/catalog"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Construction Map")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load catalog
	var loaded repository.ObjectRepository
	if cfg.Catalog.Path != "" {
		loaded, err = static.NewFileRepository(cfg.Catalog.Path, log)
	} else {
		loaded, err = static.NewSampleRepository(log)
	}
	if err != nil {
		log.Fatal("Failed to load catalog", zap.Error(err))
	}
	objectRepo := static.NewReloadable(loaded)

	workers := worker.NewWorkerManager(log)
	if cfg.Catalog.Path != "" && cfg.Catalog.ReloadInterval > 0 {
		workers.Register(catalog.NewReloadWorker(cfg.Catalog.Path, cfg.Catalog.ReloadInterval, objectRepo, log))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objects, err := objectRepo.List(ctx)
	if err != nil {
		log.Fatal("Failed to list catalog", zap.Error(err))
	}
	metrics.CatalogObjects.Set(float64(len(objects)))

	// 4. Connect to Redis (optional)
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		cacheRepo = cache.NewNoopRepository()
		log.Info("Redis disabled, GeoJSON is rebuilt on every request")
	}

	// 5. Initialize Use Cases
	mapUC := usecase.NewMapUseCase(
		objectRepo,
		cacheRepo,
		cfg.Map,
		log,
		cfg.Cache.GeoJSONCacheTTL,
	)
	dashboardUC := usecase.NewDashboardUseCase(objectRepo, mapUC, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	dashboardHandler, err := handler.NewDashboardHandler(dashboardUC, log)
	if err != nil {
		log.Fatal("Failed to parse dashboard templates", zap.Error(err))
	}
	objectHandler := handler.NewObjectHandler(dashboardUC, mapUC, log)
	viewHandler := handler.NewViewHandler(dashboardUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		dashboardHandler,
		objectHandler,
		viewHandler,
	)

	// 8. Start background workers and server
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	workers.Start(workersCtx)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
		zap.Int("objects", len(objects)),
		zap.String("catalog_version", objectRepo.Version()),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workers.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}
	stopWorkers()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
