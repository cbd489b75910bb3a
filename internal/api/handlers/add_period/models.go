package add_period

import (
	"fmt"
	"time"

	addPeriod "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/add_period"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// AddPeriodRequest HTTP request model
type AddPeriodRequest struct {
	Start string `json:"start"` // "15/01"
	End   string `json:"end"`   // "31/03"
}

// PeriodResponse HTTP response model
type PeriodResponse struct {
	ID        int64            `json:"id"`
	SeasonID  int64            `json:"seasonId"`
	HousingID int64            `json:"housingId"`
	Name      string           `json:"name"`
	Start     types.YearPeriod `json:"start"`
	End       types.YearPeriod `json:"end"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddPeriodRequest) ToUseCaseRequest(seasonID int64) (*addPeriod.Request, error) {
	start, err := types.ParseYearPeriod(r.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	end, err := types.ParseYearPeriod(r.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return &addPeriod.Request{
		SeasonID: seasonID,
		Start:    start,
		End:      end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addPeriod.Response) *PeriodResponse {
	return &PeriodResponse{
		ID:        resp.ID,
		SeasonID:  resp.SeasonID,
		HousingID: resp.HousingID,
		Name:      resp.Name,
		Start:     resp.Start,
		End:       resp.End,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
