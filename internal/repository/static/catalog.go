package static

import (
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/domain/repository"
	"github.com/construction-map/internal/pkg/errors"
	"github.com/construction-map/internal/pkg/validator"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var sampleCatalog []byte

type catalogFile struct {
	Objects []*domain.ConstructionObject `yaml:"objects"`
}

// objectRepository - неизменяемый каталог в памяти
type objectRepository struct {
	objects []*domain.ConstructionObject
	byID    map[string]*domain.ConstructionObject
	version string
}

// NewSampleRepository загружает встроенный демонстрационный каталог
func NewSampleRepository(logger *zap.Logger) (repository.ObjectRepository, error) {
	return newRepository(sampleCatalog, "embedded", logger)
}

// NewFileRepository загружает каталог из YAML-файла
func NewFileRepository(path string, logger *zap.Logger) (repository.ObjectRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return newRepository(data, path, logger)
}

// NewRepository строит каталог из уже готового списка (данные копируются)
func NewRepository(objects []domain.ConstructionObject) (repository.ObjectRepository, error) {
	list := make([]*domain.ConstructionObject, len(objects))
	for i := range objects {
		obj := objects[i]
		list[i] = &obj
	}
	data, err := yaml.Marshal(catalogFile{Objects: list})
	if err != nil {
		return nil, fmt.Errorf("fingerprint catalog: %w", err)
	}
	return build(list, data)
}

func newRepository(data []byte, source string, logger *zap.Logger) (repository.ObjectRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", source, err)
	}

	repo, err := build(file.Objects, data)
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded",
		zap.String("source", source),
		zap.Int("objects", len(file.Objects)),
		zap.String("version", repo.version),
	)
	for _, o := range file.Objects {
		if !o.Status.Known() {
			logger.Warn("Unknown object status, rendered as in_progress",
				zap.String("id", o.ID),
				zap.String("status", string(o.Status)),
			)
		}
	}

	return repo, nil
}

func build(objects []*domain.ConstructionObject, raw []byte) (*objectRepository, error) {
	byID := make(map[string]*domain.ConstructionObject, len(objects))
	for i, o := range objects {
		if o == nil {
			return nil, errors.ErrInvalidCatalog.WithDetails(map[string]interface{}{
				"index":  i,
				"reason": "empty record",
			})
		}
		if err := validator.Validate(o); err != nil {
			return nil, errors.ErrInvalidCatalog.WithDetails(map[string]interface{}{
				"index":  i,
				"id":     o.ID,
				"reason": validator.Describe(err),
			})
		}
		if _, dup := byID[o.ID]; dup {
			return nil, errors.ErrInvalidCatalog.WithDetails(map[string]interface{}{
				"id":     o.ID,
				"reason": "duplicate id",
			})
		}
		byID[o.ID] = o
	}

	sum := sha256.Sum256(raw)

	return &objectRepository{
		objects: objects,
		byID:    byID,
		version: hex.EncodeToString(sum[:8]),
	}, nil
}

func (r *objectRepository) List(_ context.Context) ([]*domain.ConstructionObject, error) {
	out := make([]*domain.ConstructionObject, len(r.objects))
	copy(out, r.objects)
	return out, nil
}

func (r *objectRepository) GetByID(_ context.Context, id string) (*domain.ConstructionObject, error) {
	obj, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrObjectNotFound.WithDetails(map[string]interface{}{"id": id})
	}
	return obj, nil
}

func (r *objectRepository) Version() string {
	return r.version
}
