package dto

import (
	"github.com/construction-map/internal/domain"
	"github.com/construction-map/internal/mapview"
)

// ViewEventRequest - событие интерфейса вместе с текущим состоянием клиента
type ViewEventRequest struct {
	State domain.ViewState `json:"state"`
	Event domain.Event     `json:"event"`
}

// ViewEventResponse - следующее состояние и режим боковой панели
type ViewEventResponse struct {
	State domain.ViewState `json:"state"`
	Panel PanelMode        `json:"panel"`
}

// PanelMode - что показывает боковая панель
type PanelMode string

const (
	PanelList PanelMode = "list"
	PanelCard PanelMode = "card"
)

// SidePanel - содержимое боковой панели: легенда со списком или карточка
type SidePanel struct {
	Mode   PanelMode           `json:"mode"`
	Title  string              `json:"title,omitempty"`
	Hint   string              `json:"hint,omitempty"`
	Legend []domain.LegendItem `json:"legend,omitempty"`
	Items  []ObjectListItem    `json:"items,omitempty"`
	Card   *ObjectCard         `json:"card,omitempty"`
}

// DashboardPage - всё, что нужно для отрисовки страницы
type DashboardPage struct {
	State    domain.ViewState `json:"state"`
	Map      MapSettings      `json:"map"`
	Summary  Summary          `json:"summary"`
	Polygons []PolygonView    `json:"polygons"`
	Markers  []mapview.Marker `json:"markers"`
	Panel    SidePanel        `json:"panel"`
}
