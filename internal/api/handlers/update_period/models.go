package update_period

import (
	"fmt"
	"time"

	updatePeriod "github.com/m04kA/SMC-SeasonPricingService/internal/usecase/update_period"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

// UpdatePeriodRequest HTTP request model
type UpdatePeriodRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
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

func (r *UpdatePeriodRequest) ToUseCaseRequest(periodID int64) (*updatePeriod.Request, error) {
	start, err := types.ParseYearPeriod(r.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	end, err := types.ParseYearPeriod(r.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return &updatePeriod.Request{
		PeriodID: periodID,
		Start:    start,
		End:      end,
	}, nil
}

func FromUseCaseResponse(resp *updatePeriod.Response) *PeriodResponse {
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
