package compute_price

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	computePrice "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/compute_price"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	HousingID int64           `json:"housingId"`
	Start     string          `json:"start"`
	End       string          `json:"end"`
	Nights    int             `json:"nights"`
	Total     decimal.Decimal `json:"total"`
	Seasons   []SeasonPrice   `json:"seasons"`
}

// SeasonPrice часть стоимости, приходящаяся на сезон
type SeasonPrice struct {
	SeasonID   int64            `json:"seasonId"`
	SeasonName string           `json:"seasonName"`
	BasePrice  *decimal.Decimal `json:"basePrice"`
	Nights     int              `json:"nights"`
	Dates      []DateRange      `json:"dates"`
	Subtotal   decimal.Decimal  `json:"subtotal"`
}

// DateRange поддиапазон проживания
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// parseStay читает start и end из query в формате YYYY-MM-DD
func parseStay(start, end string) (time.Time, time.Time, error) {
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start and end are required")
	}

	s, err := time.Parse(domain.DateFormat, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}

	e, err := time.Parse(domain.DateFormat, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}

	return s, e, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computePrice.Response) *PriceResponse {
	out := &PriceResponse{
		HousingID: resp.HousingID,
		Start:     resp.Start.Format(domain.DateFormat),
		End:       resp.End.Format(domain.DateFormat),
		Nights:    resp.Nights,
		Total:     resp.Total,
		Seasons:   make([]SeasonPrice, 0, len(resp.Seasons)),
	}

	for _, s := range resp.Seasons {
		dates := make([]DateRange, 0, len(s.Dates))
		for _, d := range s.Dates {
			dates = append(dates, DateRange{
				Start: d.Start.Format(domain.DateFormat),
				End:   d.End.Format(domain.DateFormat),
			})
		}

		out.Seasons = append(out.Seasons, SeasonPrice{
			SeasonID:   s.SeasonID,
			SeasonName: s.SeasonName,
			BasePrice:  s.BasePrice,
			Nights:     s.Nights,
			Dates:      dates,
			Subtotal:   s.Subtotal,
		})
	}

	return out
}
