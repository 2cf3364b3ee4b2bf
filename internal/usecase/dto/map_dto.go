package dto

import "github.com/construction-map/internal/domain"

// MapSettings - начальный вьюпорт и подложка
type MapSettings struct {
	Center      domain.LatLng `json:"center"`
	Zoom        float64       `json:"zoom"`
	ThumbZoom   float64       `json:"thumb_zoom"`
	TileURL     string        `json:"tile_url"`
	Attribution string        `json:"attribution"`
}

// Tooltip - всплывающая подпись полигона
type Tooltip struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Direction string `json:"direction"`
	OffsetX   int    `json:"offset_x"`
	OffsetY   int    `json:"offset_y"`
	Sticky    bool   `json:"sticky"`
}

// PolygonView - полигон объекта в текущем состоянии интерфейса
type PolygonView struct {
	ID         string           `json:"id"`
	Positions  domain.Polygon   `json:"positions"`
	Hovered    bool             `json:"hovered"`
	Style      domain.PathStyle `json:"style"`
	BaseStyle  domain.PathStyle `json:"base_style"`
	HoverStyle domain.PathStyle `json:"hover_style"`
	Tooltip    Tooltip          `json:"tooltip"`
}

// ObjectListItem - строка списка объектов в боковой панели
type ObjectListItem struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Contractor string         `json:"contractor"`
	Status     domain.Status  `json:"status"`
	Centroid   *domain.LatLng `json:"centroid,omitempty"`
}

// FeatureCollection - слой полигонов в GeoJSON (координаты [lng, lat])
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Geometry   PolygonGeometry   `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

type PolygonGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

type FeatureProperties struct {
	Name       string           `json:"name"`
	Contractor string           `json:"contractor"`
	Status     domain.Status    `json:"status"`
	Style      domain.PathStyle `json:"style"`
	HoverStyle domain.PathStyle `json:"hover_style"`
}
