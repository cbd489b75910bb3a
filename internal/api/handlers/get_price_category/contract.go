package get_price_category

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories/models"
)

type PriceCategoryService interface {
	GetByID(ctx context.Context, id int64) (*models.PriceCategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
