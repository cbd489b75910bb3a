package list_periods

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/periods/models"
)

type PeriodService interface {
	ListByHousing(ctx context.Context, housingID int64) (*models.PeriodListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
