package pricecategories

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// PriceCategoryRepository интерфейс репозитория категорий цен
type PriceCategoryRepository interface {
	Create(ctx context.Context, category *domain.PriceCategory) (*domain.PriceCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.PriceCategory, error)
	GetByHousingID(ctx context.Context, housingID int64) ([]*domain.PriceCategory, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.PriceCategory, error)
	Delete(ctx context.Context, id int64) error
}

// HousingRepository интерфейс репозитория жилья
type HousingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Housing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
