package compute_price

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// validateRequest проверяет запрос до обращения к хранилищу
func validateRequest(req *Request, now time.Time, maxNights int) error {
	if req.HousingID <= 0 {
		return fmt.Errorf("%w: housingID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	start := domain.DateOnly(req.Start)
	end := domain.DateOnly(req.End)

	if end.Before(start) {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange,
			end.Format(domain.DateFormat), start.Format(domain.DateFormat))
	}

	today := domain.DateOnly(now)
	if start.Before(today) {
		return fmt.Errorf("%w: start %s is in the past", ErrInvalidDateRange, start.Format(domain.DateFormat))
	}

	if nights := domain.DaysBetween(start, end); maxNights > 0 && nights > maxNights {
		return fmt.Errorf("%w: stay of %d nights exceeds %d", ErrInvalidDateRange, nights, maxNights)
	}

	return nil
}
