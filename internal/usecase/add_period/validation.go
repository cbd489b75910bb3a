package add_period

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SeasonID <= 0 {
		return fmt.Errorf("%w: seasonID must be positive", ErrInvalidInput)
	}

	if err := req.Start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start: %v", ErrInvalidInput, err)
	}

	if err := req.End.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end: %v", ErrInvalidInput, err)
	}

	if err := types.CheckRange(req.Start, req.End); err != nil {
		if errors.Is(err, types.ErrInvalidRange) {
			return fmt.Errorf("%w: %s > %s", ErrInvalidRange, req.Start, req.End)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
