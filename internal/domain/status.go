package domain

// Status - состояние проекта
type Status string

const (
	StatusOK         Status = "ok"
	StatusInProgress Status = "in_progress"
	StatusRisk       Status = "risk"
)

// Цвета статусов на карте и в легенде
const (
	ColorRisk       = "#ef4444"
	ColorInProgress = "#3b82f6"
	ColorOK         = "#10b981"
)

// Known сообщает, входит ли статус в перечисление
func (s Status) Known() bool {
	switch s {
	case StatusOK, StatusInProgress, StatusRisk:
		return true
	}
	return false
}

// Label - человекочитаемое название статуса для карточки объекта.
// Всё, что не ok и не risk, считается «в процессе».
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "успешно"
	case StatusRisk:
		return "риск/отставание"
	default:
		return "в процессе"
	}
}

// Color возвращает цвет контура. Неизвестный статус рисуется цветом in_progress.
func (s Status) Color() string {
	switch s {
	case StatusRisk:
		return ColorRisk
	case StatusOK:
		return ColorOK
	default:
		return ColorInProgress
	}
}

// PathStyle - параметры отрисовки полигона (совпадают с Leaflet pathOptions)
type PathStyle struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	Weight      int     `json:"weight"`
	FillOpacity float64 `json:"fillOpacity"`
	Opacity     float64 `json:"opacity"`
}

// StyleFor возвращает стиль полигона для статуса с учётом наведения
func StyleFor(s Status, hovered bool) PathStyle {
	style := PathStyle{
		Color:       s.Color(),
		FillColor:   s.Color(),
		Weight:      3,
		FillOpacity: 0.05,
		Opacity:     1,
	}
	if hovered {
		style.Weight = 6
		style.FillOpacity = 0.15
	}
	return style
}

// LegendItem - строка легенды
type LegendItem struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// Legend - легенда боковой панели в фиксированном порядке
func Legend() []LegendItem {
	return []LegendItem{
		{Color: ColorOK, Label: "Зелёный — успешно"},
		{Color: ColorInProgress, Label: "Синий — в работе"},
		{Color: ColorRisk, Label: "Красный — риск/отставание"},
	}
}
