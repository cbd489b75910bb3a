package update_period

import (
	"context"

	updatePeriod "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/update_period"
)

type UpdatePeriodUseCase interface {
	Execute(ctx context.Context, req *updatePeriod.Request) (*updatePeriod.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
