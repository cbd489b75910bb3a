package compute_price

import (
	"context"

	computePrice "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/compute_price"
)

type ComputePriceUseCase interface {
	Execute(ctx context.Context, req *computePrice.Request) (*computePrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
