package update_season

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
)

type SeasonService interface {
	UpdateName(ctx context.Context, id int64, req *models.UpdateSeasonRequest) (*models.SeasonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
