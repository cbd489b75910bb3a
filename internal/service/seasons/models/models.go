package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	periodModels "github.com/m04kA/SMC-SeasonPricingService/internal/service/periods/models"
)

// Request модели

// CreateSeasonRequest запрос на создание сезона
type CreateSeasonRequest struct {
	Name      string           `json:"name"`
	BasePrice *decimal.Decimal `json:"basePrice,omitempty"` // nil = цена не задана
}

// UpdateSeasonRequest запрос на переименование сезона
type UpdateSeasonRequest struct {
	Name string `json:"name"`
}

// SetBasePriceRequest запрос на установку цены за ночь
type SetBasePriceRequest struct {
	BasePrice decimal.Decimal `json:"basePrice"`
}

// Response модели

// SeasonResponse ответ с данными сезона и его периодами
type SeasonResponse struct {
	ID        int64                         `json:"id"`
	HousingID int64                         `json:"housingId"`
	Name      string                        `json:"name"`
	BasePrice *decimal.Decimal              `json:"basePrice"` // null пока цена не задана
	Periods   []periodModels.PeriodResponse `json:"periods"`
	CreatedAt time.Time                     `json:"createdAt"`
	UpdatedAt time.Time                     `json:"updatedAt"`
}

// SeasonListResponse ответ со списком сезонов
type SeasonListResponse struct {
	Seasons []SeasonResponse `json:"seasons"`
}

// Методы конвертации

// FromDomainSeason конвертирует domain модель в DTO
func FromDomainSeason(s *domain.Season) *SeasonResponse {
	if s == nil {
		return nil
	}

	return &SeasonResponse{
		ID:        s.ID,
		HousingID: s.HousingID,
		Name:      s.Name,
		BasePrice: s.BasePrice,
		Periods:   periodModels.FromDomainPeriods(s.Periods),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSeasonList конвертирует список сезонов
func FromDomainSeasonList(seasons []*domain.Season) *SeasonListResponse {
	out := make([]SeasonResponse, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, *FromDomainSeason(s))
	}
	return &SeasonListResponse{Seasons: out}
}
