package domain

// LatLng - географическая точка в порядке (широта, долгота), как в исходных данных
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat" validate:"latitude"`
	Lng float64 `json:"lng" yaml:"lng" validate:"longitude"`
}

// Totals - агрегированные суммы по каталогу объектов
type Totals struct {
	Cost    int64 `json:"cost"`
	Fact    int64 `json:"fact"`
	PlanEOY int64 `json:"plan_eoy"`
}

// SumTotals суммирует Cost/Fact/PlanEOY по списку объектов.
// Результат всегда выводится из списка заново и нигде не хранится.
func SumTotals(objects []*ConstructionObject) Totals {
	var t Totals
	for _, o := range objects {
		if o == nil {
			continue
		}
		t.Cost += o.Cost
		t.Fact += o.Fact
		t.PlanEOY += o.PlanEOY
	}
	return t
}
