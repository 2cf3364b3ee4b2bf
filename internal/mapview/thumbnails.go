package mapview

import (
	"sync"

	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/pkg/format"
)

const (
	// DefaultThumbnailZoom - минимальный зум, с которого показываются миниатюры
	DefaultThumbnailZoom = 14

	ThumbnailWidth  = 84
	ThumbnailHeight = 56
)

// Marker - миниатюра аэрофото в центроиде участка
type Marker struct {
	ObjectID string        `json:"object_id"`
	Position domain.LatLng `json:"position"`
	PhotoURL string        `json:"photo_url"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
}

// ThumbnailOverlay следит за зумом вьюпорта и отдаёт маркеры миниатюр
type ThumbnailOverlay struct {
	mu        sync.Mutex
	objects   []*domain.ConstructionObject
	threshold float64
	zoom      float64
	off       func()
}

func NewThumbnailOverlay(objects []*domain.ConstructionObject, threshold float64) *ThumbnailOverlay {
	return &ThumbnailOverlay{
		objects:   objects,
		threshold: threshold,
	}
}

// Mount подписывает слой на zoomend. Вызывающий обязан сделать Unmount,
// обычно через defer сразу после Mount.
func (o *ThumbnailOverlay) Mount(v *Viewport) {
	o.Unmount()

	off := v.On(EventZoomEnd, func(v *Viewport) {
		o.mu.Lock()
		o.zoom = v.Zoom()
		o.mu.Unlock()
	})

	o.mu.Lock()
	o.zoom = v.Zoom()
	o.off = off
	o.mu.Unlock()
}

// Unmount снимает подписку; безопасен при повторном вызове
func (o *ThumbnailOverlay) Unmount() {
	o.mu.Lock()
	off := o.off
	o.off = nil
	o.mu.Unlock()

	if off != nil {
		off()
	}
}

// Zoom - последний зум, полученный слоем
func (o *ThumbnailOverlay) Zoom() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.zoom
}

// Markers возвращает миниатюры для текущего зума
func (o *ThumbnailOverlay) Markers() []Marker {
	return Thumbnails(o.objects, o.Zoom(), o.threshold)
}

// Thumbnails строит маркеры: ниже порога - ничего, иначе по одному на объект
// с центроидом и хотя бы одним аэрофото. Остальные объекты пропускаются.
func Thumbnails(objects []*domain.ConstructionObject, zoom, threshold float64) []Marker {
	if !(zoom >= threshold) {
		return nil
	}

	markers := make([]Marker, 0, len(objects))
	for _, obj := range objects {
		if obj == nil {
			continue
		}
		pos, ok := format.Centroid(obj.Polygon)
		if !ok {
			continue
		}
		photo, ok := obj.Photos.FirstBird()
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			ObjectID: obj.ID,
			Position: pos,
			PhotoURL: photo,
			Width:    ThumbnailWidth,
			Height:   ThumbnailHeight,
		})
	}
	return markers
}
