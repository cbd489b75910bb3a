package create_price_category

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories/models"
)

type PriceCategoryService interface {
	Create(ctx context.Context, housingID int64, req *models.PriceCategoryRequest) (*models.PriceCategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
