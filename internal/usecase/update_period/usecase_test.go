package update_period

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/metrics"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

func yp(day, month int) types.YearPeriod {
	return types.YearPeriod{Day: day, Month: month}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	h, err := store.Housings().Create(ctx, &domain.Housing{Name: "Chalet"})
	require.NoError(t, err)
	low, err := store.Seasons().Create(ctx, &domain.Season{HousingID: h.ID, Name: "Low"})
	require.NoError(t, err)
	high, err := store.Seasons().Create(ctx, &domain.Season{HousingID: h.ID, Name: "High"})
	require.NoError(t, err)

	winter, err := store.Periods().Create(ctx, &domain.Period{SeasonID: low.ID, Start: yp(1, 1), End: yp(31, 3)})
	require.NoError(t, err)
	summer, err := store.Periods().Create(ctx, &domain.Period{SeasonID: high.ID, Start: yp(1, 7), End: yp(31, 8)})
	require.NoError(t, err)

	// nil *metrics.Metrics допустим: методы безопасны для nil-получателя
	var m *metrics.Metrics
	uc := NewUseCase(store.Seasons(), store.Periods(), store.Housings(), store, m, logger.NewNop())

	tests := []struct {
		name     string
		req      *Request
		expected error
	}{
		{"shrink over itself", &Request{PeriodID: winter.ID, Start: yp(1, 1), End: yp(15, 3)}, nil},
		{"extend over itself", &Request{PeriodID: winter.ID, Start: yp(1, 1), End: yp(30, 6)}, nil},
		{"touch another period", &Request{PeriodID: winter.ID, Start: yp(1, 1), End: yp(1, 7)}, ErrPeriodOverlap},
		{"move summer onto winter", &Request{PeriodID: summer.ID, Start: yp(15, 6), End: yp(15, 8)}, ErrPeriodOverlap},
		{"end before start", &Request{PeriodID: summer.ID, Start: yp(31, 8), End: yp(1, 7)}, ErrInvalidRange},
		{"unknown period", &Request{PeriodID: 999, Start: yp(1, 10), End: yp(2, 10)}, ErrPeriodNotFound},
		{"missing period id", &Request{Start: yp(1, 10), End: yp(2, 10)}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, tt.req)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Start, resp.Start)
			assert.Equal(t, tt.req.End, resp.End)
			assert.Equal(t, h.ID, resp.HousingID)
		})
	}

	stored, err := store.Periods().GetByID(ctx, winter.ID)
	require.NoError(t, err)
	assert.Equal(t, yp(30, 6), stored.End)

	unchanged, err := store.Periods().GetByID(ctx, summer.ID)
	require.NoError(t, err)
	assert.Equal(t, yp(1, 7), unchanged.Start)
}
