package add_period

import (
	"context"

	addPeriod "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/add_period"
)

type AddPeriodUseCase interface {
	Execute(ctx context.Context, req *addPeriod.Request) (*addPeriod.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
