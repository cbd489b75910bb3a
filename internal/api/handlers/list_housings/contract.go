package list_housings

import (
	"context"

	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings/models"
)

type HousingService interface {
	List(ctx context.Context) (*models.HousingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
