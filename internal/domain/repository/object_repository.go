package repository

import (
	"context"

	"github.com/construction-map/internal/domain"
)

// ObjectRepository - источник каталога объектов строительства.
// Каталог загружается один раз и далее только читается.
type ObjectRepository interface {
	// List возвращает все объекты в порядке каталога
	List(ctx context.Context) ([]*domain.ConstructionObject, error)

	// GetByID возвращает объект по идентификатору или errors.ErrObjectNotFound
	GetByID(ctx context.Context, id string) (*domain.ConstructionObject, error)

	// Version - отпечаток содержимого каталога, используется в ключах кеша
	Version() string
}
