package get_season

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
)

type SeasonService interface {
	GetByID(ctx context.Context, id int64) (*models.SeasonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
