package get_housing

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings/models"
)

type HousingService interface {
	GetByID(ctx context.Context, id int64) (*models.HousingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
