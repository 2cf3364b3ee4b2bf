package static

import (
	"context"
	"sync"

	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/domain/repository"
)

// Reloadable - каталог, который можно подменить целиком на лету.
// Читатели всегда видят один согласованный снимок.
type Reloadable struct {
	mu      sync.RWMutex
	current repository.ObjectRepository
}

var _ repository.ObjectRepository = (*Reloadable)(nil)

func NewReloadable(initial repository.ObjectRepository) *Reloadable {
	return &Reloadable{current: initial}
}

// Swap заменяет каталог и возвращает предыдущий
func (r *Reloadable) Swap(next repository.ObjectRepository) repository.ObjectRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.current
	r.current = next
	return prev
}

func (r *Reloadable) snapshot() repository.ObjectRepository {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Reloadable) List(ctx context.Context) ([]*domain.ConstructionObject, error) {
	return r.snapshot().List(ctx)
}

func (r *Reloadable) GetByID(ctx context.Context, id string) (*domain.ConstructionObject, error) {
	return r.snapshot().GetByID(ctx, id)
}

func (r *Reloadable) Version() string {
	return r.snapshot().Version()
}
