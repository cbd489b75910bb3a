package set_base_price

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
)

type SeasonService interface {
	SetBasePrice(ctx context.Context, id int64, req *models.SetBasePriceRequest) (*models.SeasonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
