package create_season

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
)

type SeasonService interface {
	Create(ctx context.Context, housingID int64, req *models.CreateSeasonRequest) (*models.SeasonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
