package list_seasons

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
)

type SeasonService interface {
	ListByHousing(ctx context.Context, housingID int64) (*models.SeasonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
