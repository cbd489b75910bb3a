package models

import (
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// Request модели

// PeriodRequest границы периода. Даты в формате "DD/MM".
type PeriodRequest struct {
	Start types.YearPeriod `json:"start"`
	End   types.YearPeriod `json:"end"`
}

// Response модели

// PeriodResponse ответ с данными периода
type PeriodResponse struct {
	ID        int64            `json:"id"`
	SeasonID  int64            `json:"seasonId"`
	Name      string           `json:"name"` // "{start} - {end}", не хранится
	Start     types.YearPeriod `json:"start"`
	End       types.YearPeriod `json:"end"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// PeriodListResponse ответ со списком периодов
type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// Методы конвертации

// FromDomainPeriod конвертирует domain модель в DTO
func FromDomainPeriod(p *domain.Period) *PeriodResponse {
	if p == nil {
		return nil
	}

	return &PeriodResponse{
		ID:        p.ID,
		SeasonID:  p.SeasonID,
		Name:      p.Name(),
		Start:     p.Start,
		End:       p.End,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromDomainPeriods конвертирует список периодов
func FromDomainPeriods(periods []*domain.Period) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, *FromDomainPeriod(p))
	}
	return out
}
