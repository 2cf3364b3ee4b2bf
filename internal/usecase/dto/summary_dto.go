package dto

import "github.com/construction-map/internal/domain"

// Summary - плавающая сводка поверх карты
type Summary struct {
	Title       string        `json:"title"`
	Count       int           `json:"count"`
	Totals      domain.Totals `json:"totals"`
	CostText    string        `json:"cost_text"`
	FactText    string        `json:"fact_text"`
	PlanEOYText string        `json:"plan_eoy_text"`
}
