package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/construction-map/internal/pkg/metrics"
	"github.com/construction-map/internal/repository/static"
	"github.com/construction-map/internal/worker"
	"go.uber.org/zap"
)

// ReloadWorker следит за файлом каталога и подменяет каталог при изменении.
// Битый файл не применяется: продолжает работать предыдущая версия.
type ReloadWorker struct {
	*worker.BaseWorker
	path     string
	interval time.Duration
	target   *static.Reloadable

	lastMod  time.Time
	lastSize int64
}

// NewReloadWorker создает новый ReloadWorker; текущее состояние файла считается уже загруженным
func NewReloadWorker(path string, interval time.Duration, target *static.Reloadable, logger *zap.Logger) *ReloadWorker {
	w := &ReloadWorker{
		BaseWorker: worker.NewBaseWorker("catalog-reload", logger),
		path:       path,
		interval:   interval,
		target:     target,
	}
	if fi, err := os.Stat(path); err == nil {
		w.remember(fi)
	}
	return w
}

// Start опрашивает файл каждые interval до остановки
func (w *ReloadWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Watching catalog file",
		zap.String("path", w.path),
		zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// битый файл перечитывается на каждом тике; предупреждаем один раз
	failing := false

	for {
		select {
		case <-w.StopChan():
			return nil

		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			_, err := w.Reload(ctx)
			switch {
			case err == nil:
				failing = false
			case failing:
				logger.Debug("Catalog reload still failing", zap.Error(err))
			default:
				failing = true
				logger.Warn("Catalog reload failed, keeping previous version",
					zap.String("version", w.target.Version()),
					zap.Error(err))
			}
		}
	}
}

// Reload перечитывает файл, если он изменился с последней успешной загрузки.
// Возвращает true, если каталог был подменён.
func (w *ReloadWorker) Reload(ctx context.Context) (bool, error) {
	fi, err := os.Stat(w.path)
	if err != nil {
		return false, fmt.Errorf("stat catalog: %w", err)
	}
	if fi.ModTime().Equal(w.lastMod) && fi.Size() == w.lastSize {
		return false, nil
	}

	// метка запоминается только после успешного разбора, иначе файл,
	// дописанный без смены mtime и размера, больше не перечитался бы
	next, err := static.NewFileRepository(w.path, w.Logger())
	if err != nil {
		return false, err
	}
	w.remember(fi)

	prevVersion := w.target.Version()
	if next.Version() == prevVersion {
		return false, nil
	}

	objects, err := next.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list reloaded catalog: %w", err)
	}

	w.target.Swap(next)
	metrics.CatalogObjects.Set(float64(len(objects)))

	w.Logger().Info("Catalog reloaded",
		zap.String("previous_version", prevVersion),
		zap.String("version", next.Version()),
		zap.Int("objects", len(objects)))

	return true, nil
}

func (w *ReloadWorker) remember(fi os.FileInfo) {
	w.lastMod = fi.ModTime()
	w.lastSize = fi.Size()
}
