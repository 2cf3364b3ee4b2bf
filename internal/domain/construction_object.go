package domain

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ConstructionObject - объект строительства из каталога.
// Создаётся один раз при загрузке каталога и далее не изменяется.
type ConstructionObject struct {
	ID         string  `json:"id" yaml:"id" validate:"required"`
	Region     string  `json:"region" yaml:"region"`
	City       string  `json:"city" yaml:"city"`
	Name       string  `json:"name" yaml:"name"`
	Contractor string  `json:"contractor" yaml:"contractor"`
	StartDate  string  `json:"start_date" yaml:"startDate"`
	EndDate    string  `json:"end_date" yaml:"endDate"`
	Cost       int64   `json:"cost" yaml:"cost"`
	Fact       int64   `json:"fact" yaml:"fact"`
	PlanEOY    int64   `json:"plan_eoy" yaml:"planEOY"`
	Status     Status  `json:"status" yaml:"status"`
	Polygon    Polygon `json:"polygon" yaml:"polygon" validate:"min=3,dive"`
	Photos     Photos  `json:"photos" yaml:"photos"`
}

// Photos - ссылки на фотографии объекта
type Photos struct {
	Bird   []string `json:"bird" yaml:"bird"`     // аэрофотосъёмка
	Ground []string `json:"ground" yaml:"ground"` // фото с площадки
}

// FirstBird возвращает первое аэрофото, если оно есть
func (p Photos) FirstBird() (string, bool) {
	if len(p.Bird) == 0 || p.Bird[0] == "" {
		return "", false
	}
	return p.Bird[0], true
}

// Polygon - замкнутый контур участка; последняя точка неявно соединена с первой.
// В YAML/JSON каталога записывается как [[lat, lng], ...].
type Polygon []LatLng

// UnmarshalYAML разбирает контур из списка пар [lat, lng]
func (p *Polygon) UnmarshalYAML(value *yaml.Node) error {
	var pairs [][2]float64
	if err := value.Decode(&pairs); err != nil {
		return err
	}
	*p = polygonFromPairs(pairs)
	return nil
}

// MarshalYAML записывает контур парами [lat, lng]
func (p Polygon) MarshalYAML() (interface{}, error) {
	return p.pairs(), nil
}

// MarshalJSON записывает контур парами [lat, lng]
func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.pairs())
}

// UnmarshalJSON разбирает контур из пар [lat, lng]
func (p *Polygon) UnmarshalJSON(data []byte) error {
	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	*p = polygonFromPairs(pairs)
	return nil
}

func (p Polygon) pairs() [][2]float64 {
	out := make([][2]float64, len(p))
	for i, pt := range p {
		out[i] = [2]float64{pt.Lat, pt.Lng}
	}
	return out
}

func polygonFromPairs(pairs [][2]float64) Polygon {
	out := make(Polygon, len(pairs))
	for i, pair := range pairs {
		out[i] = LatLng{Lat: pair[0], Lng: pair[1]}
	}
	return out
}
