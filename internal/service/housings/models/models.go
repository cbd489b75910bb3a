package models

import (
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// CreateHousingRequest запрос на создание жилья
type CreateHousingRequest struct {
	Name string `json:"name"`
}

// HousingResponse ответ с данными жилья
type HousingResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HousingListResponse ответ со списком жилья
type HousingListResponse struct {
	Housings []HousingResponse `json:"housings"`
}

// FromDomainHousing конвертирует domain модель в DTO
func FromDomainHousing(h *domain.Housing) *HousingResponse {
	if h == nil {
		return nil
	}

	return &HousingResponse{
		ID:        h.ID,
		Name:      h.Name,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// FromDomainHousingList конвертирует список жилья
func FromDomainHousingList(housings []*domain.Housing) *HousingListResponse {
	out := make([]HousingResponse, 0, len(housings))
	for _, h := range housings {
		out = append(out, *FromDomainHousing(h))
	}
	return &HousingListResponse{Housings: out}
}
