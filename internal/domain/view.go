package domain

// EventType - тип события взаимодействия с картой и боковой панелью
type EventType string

const (
	EventHoverEnter EventType = "hover_enter"
	EventHoverLeave EventType = "hover_leave"
	EventSelect     EventType = "select"
	EventClose      EventType = "close"
	EventZoom       EventType = "zoom"
)

// Event - одно действие пользователя или изменение вьюпорта
type Event struct {
	Type     EventType `json:"type" validate:"required,oneof=hover_enter hover_leave select close zoom"`
	ObjectID string    `json:"object_id,omitempty"`
	Zoom     float64   `json:"zoom,omitempty"`
}

// NeedsObject сообщает, ссылается ли событие на объект каталога
func (e Event) NeedsObject() bool {
	switch e.Type {
	case EventHoverEnter, EventHoverLeave, EventSelect:
		return true
	}
	return false
}

// ViewState - состояние интерфейса: подсвеченный и открытый объект, текущий зум.
// Пустая строка означает отсутствие значения.
type ViewState struct {
	HoverID  string  `json:"hover_id"`
	ActiveID string  `json:"active_id"`
	Zoom     float64 `json:"zoom"`
}

// Apply возвращает следующее состояние. Исходное состояние не меняется.
func (s ViewState) Apply(e Event) ViewState {
	next := s
	switch e.Type {
	case EventHoverEnter:
		next.HoverID = e.ObjectID
	case EventHoverLeave:
		// уход с полигона, который уже не подсвечен, не сбрасывает чужую подсветку
		if next.HoverID == e.ObjectID {
			next.HoverID = ""
		}
	case EventSelect:
		next.ActiveID = e.ObjectID
	case EventClose:
		next.ActiveID = ""
	case EventZoom:
		next.Zoom = e.Zoom
	}
	return next
}

// Hovered сообщает, подсвечен ли объект
func (s ViewState) Hovered(id string) bool {
	return id != "" && s.HoverID == id
}

// HasActive сообщает, открыта ли карточка объекта
func (s ViewState) HasActive() bool {
	return s.ActiveID != ""
}
