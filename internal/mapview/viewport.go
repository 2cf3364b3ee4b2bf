// Package mapview моделирует вьюпорт карты и слои, которые зависят от его событий.
package mapview

import (
	"sync"

	"github.com/construction-map/internal/domain"
)

// EventName - имя события вьюпорта (как в Leaflet)
type EventName string

const EventZoomEnd EventName = "zoomend"

// Handler вызывается после изменения вьюпорта
type Handler func(v *Viewport)

// Viewport - центр и зум карты плюс подписки на его события
type Viewport struct {
	mu       sync.Mutex
	center   domain.LatLng
	zoom     float64
	nextID   int
	handlers map[EventName]map[int]Handler
}

func NewViewport(center domain.LatLng, zoom float64) *Viewport {
	return &Viewport{
		center:   center,
		zoom:     zoom,
		handlers: make(map[EventName]map[int]Handler),
	}
}

func (v *Viewport) Center() domain.LatLng {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.center
}

func (v *Viewport) Zoom() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom
}

// On подписывает обработчик и возвращает функцию отписки.
// Повторный вызов отписки ничего не делает.
func (v *Viewport) On(name EventName, h Handler) (off func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	if v.handlers[name] == nil {
		v.handlers[name] = make(map[int]Handler)
	}
	v.handlers[name][id] = h

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.handlers[name], id)
		})
	}
}

// SetZoom меняет зум и рассылает zoomend
func (v *Viewport) SetZoom(zoom float64) {
	v.mu.Lock()
	v.zoom = zoom
	v.mu.Unlock()

	v.emit(EventZoomEnd)
}

// Listeners - число активных подписок на событие
func (v *Viewport) Listeners(name EventName) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.handlers[name])
}

func (v *Viewport) emit(name EventName) {
	v.mu.Lock()
	hs := make([]Handler, 0, len(v.handlers[name]))
	for _, h := range v.handlers[name] {
		hs = append(hs, h)
	}
	v.mu.Unlock()

	// обработчики вызываются без блокировки, они могут читать вьюпорт
	for _, h := range hs {
		h(v)
	}
}
