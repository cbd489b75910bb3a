package models

import (
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// PriceCategoryRequest запрос на создание или переименование категории
type PriceCategoryRequest struct {
	Name string `json:"name"`
}

// PriceCategoryResponse ответ с данными категории
type PriceCategoryResponse struct {
	ID        int64     `json:"id"`
	HousingID int64     `json:"housingId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PriceCategoryListResponse ответ со списком категорий
type PriceCategoryListResponse struct {
	PriceCategories []PriceCategoryResponse `json:"priceCategories"`
}

// FromDomainPriceCategory конвертирует domain модель в DTO
func FromDomainPriceCategory(c *domain.PriceCategory) *PriceCategoryResponse {
	if c == nil {
		return nil
	}

	return &PriceCategoryResponse{
		ID:        c.ID,
		HousingID: c.HousingID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainPriceCategoryList конвертирует список категорий
func FromDomainPriceCategoryList(categories []*domain.PriceCategory) *PriceCategoryListResponse {
	out := make([]PriceCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *FromDomainPriceCategory(c))
	}
	return &PriceCategoryListResponse{PriceCategories: out}
}
