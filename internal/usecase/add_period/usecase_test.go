package add_period

import (
	"context"
	"errors"
	"sync"
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

type rejections struct {
	mu      sync.Mutex
	reasons []string
}

func (r *rejections) RecordPeriodRejection(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reasons = append(r.reasons, reason)
}

type fixture struct {
	uc        *UseCase
	store     *memory.Store
	rec       *rejections
	low       *domain.Season
	high      *domain.Season
	other     *domain.Season
	housingID int64
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	h, err := store.Housings().Create(ctx, &domain.Housing{Name: "Chalet"})
	require.NoError(t, err)
	low, err := store.Seasons().Create(ctx, &domain.Season{HousingID: h.ID, Name: "Low"})
	require.NoError(t, err)
	high, err := store.Seasons().Create(ctx, &domain.Season{HousingID: h.ID, Name: "High"})
	require.NoError(t, err)

	otherHousing, err := store.Housings().Create(ctx, &domain.Housing{Name: "Other"})
	require.NoError(t, err)
	other, err := store.Seasons().Create(ctx, &domain.Season{HousingID: otherHousing.ID, Name: "Other"})
	require.NoError(t, err)

	rec := &rejections{}
	uc := NewUseCase(store.Seasons(), store.Periods(), store.Housings(), store, rec, logger.NewNop())

	return &fixture{uc: uc, store: store, rec: rec, low: low, high: high, other: other, housingID: h.ID}
}

func TestUseCase_Execute(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, &Request{SeasonID: f.low.ID, Start: yp(1, 1), End: yp(31, 3)})
	require.NoError(t, err)
	assert.Equal(t, "01/01 - 31/03", resp.Name)
	assert.Equal(t, f.housingID, resp.HousingID)

	tests := []struct {
		name     string
		req      *Request
		expected error
	}{
		{"touching an existing period in another season", &Request{SeasonID: f.high.ID, Start: yp(31, 3), End: yp(30, 4)}, ErrPeriodOverlap},
		{"inside an existing period of the same season", &Request{SeasonID: f.low.ID, Start: yp(1, 2), End: yp(2, 2)}, ErrPeriodOverlap},
		{"adjacent without shared day", &Request{SeasonID: f.high.ID, Start: yp(1, 4), End: yp(30, 4)}, nil},
		{"same dates in another housing", &Request{SeasonID: f.other.ID, Start: yp(1, 1), End: yp(31, 3)}, nil},
		{"single day period", &Request{SeasonID: f.low.ID, Start: yp(25, 12), End: yp(25, 12)}, nil},
		{"end before start", &Request{SeasonID: f.low.ID, Start: yp(1, 12), End: yp(1, 11)}, ErrInvalidRange},
		{"unknown season", &Request{SeasonID: 999, Start: yp(1, 6), End: yp(2, 6)}, ErrSeasonNotFound},
		{"invalid day", &Request{SeasonID: f.low.ID, Start: yp(31, 4), End: yp(1, 5)}, ErrInvalidInput},
		{"missing season id", &Request{Start: yp(1, 6), End: yp(2, 6)}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(ctx, tt.req)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	assert.Equal(t, []string{metrics.RejectionOverlap, metrics.RejectionOverlap, metrics.RejectionInvalidRange}, f.rec.reasons)
}

func TestUseCase_Execute_RejectedWriteLeavesStoreUnchanged(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &Request{SeasonID: f.low.ID, Start: yp(1, 1), End: yp(31, 3)})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, &Request{SeasonID: f.high.ID, Start: yp(15, 3), End: yp(15, 4)})
	require.ErrorIs(t, err, ErrPeriodOverlap)

	periods, err := f.store.Periods().GetByHousingID(ctx, f.housingID)
	require.NoError(t, err)
	assert.Len(t, periods, 1)
}

func TestUseCase_Execute_ConcurrentOverlappingWrites(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seasonID := f.low.ID
			if i%2 == 1 {
				seasonID = f.high.ID
			}
			_, errs[i] = f.uc.Execute(ctx, &Request{SeasonID: seasonID, Start: yp(1, 6), End: yp(30, 6)})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrPeriodOverlap)
	}
	assert.Equal(t, 1, succeeded)

	periods, err := f.store.Periods().GetByHousingID(ctx, f.housingID)
	require.NoError(t, err)
	assert.Len(t, periods, 1)
}

type failingTx struct{ err error }

func (f failingTx) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return f.err
}

func TestUseCase_Execute_TransactionFailure(t *testing.T) {
	f := setup(t)
	uc := NewUseCase(f.store.Seasons(), f.store.Periods(), f.store.Housings(),
		failingTx{err: errors.New("commit failed")}, f.rec, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{SeasonID: f.low.ID, Start: yp(1, 1), End: yp(2, 1)})
	assert.ErrorIs(t, err, ErrInternal)
}
