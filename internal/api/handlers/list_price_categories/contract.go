package list_price_categories

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories/models"
)

type PriceCategoryService interface {
	ListByHousing(ctx context.Context, housingID int64) (*models.PriceCategoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
