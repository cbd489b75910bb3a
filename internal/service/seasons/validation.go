package seasons

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
)

// maxBasePrice первое значение, не помещающееся в NUMERIC(7,2)
var maxBasePrice = decimal.New(1, domain.MaxBasePriceDigits-domain.BasePriceScale)

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxSeasonNameLength {
		return "", fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxSeasonNameLength)
	}
	return name, nil
}

func validateBasePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	if !price.Equal(price.Round(domain.BasePriceScale)) {
		return fmt.Errorf("%w: base price must have at most %d decimal places", ErrInvalidInput, domain.BasePriceScale)
	}
	if price.GreaterThanOrEqual(maxBasePrice) {
		return fmt.Errorf("%w: base price must be less than %s", ErrInvalidInput, maxBasePrice)
	}
	return nil
}
