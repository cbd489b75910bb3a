package seasons

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/types"
)

func setup(t *testing.T) (*Service, *memory.Store, *domain.Housing) {
	t.Helper()
	store := memory.NewStore()

	h, err := store.Housings().Create(context.Background(), &domain.Housing{Name: "Chalet"})
	require.NoError(t, err)

	svc := NewService(store.Seasons(), store.Periods(), store.Housings(), store, logger.NewNop())
	return svc, store, h
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestService_Create(t *testing.T) {
	svc, _, h := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, h.ID, &models.CreateSeasonRequest{Name: "Low"})
	require.NoError(t, err)
	assert.Equal(t, "Low", created.Name)
	assert.Nil(t, created.BasePrice)
	assert.Empty(t, created.Periods)

	priced, err := svc.Create(ctx, h.ID, &models.CreateSeasonRequest{Name: "High", BasePrice: price("120")})
	require.NoError(t, err)
	require.NotNil(t, priced.BasePrice)
	assert.Equal(t, "120", priced.BasePrice.String())
}

func TestService_Create_Errors(t *testing.T) {
	svc, _, h := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 999, &models.CreateSeasonRequest{Name: "Low"})
	assert.ErrorIs(t, err, ErrHousingNotFound)

	_, err = svc.Create(ctx, h.ID, &models.CreateSeasonRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, h.ID, &models.CreateSeasonRequest{Name: "Low", BasePrice: price("-1")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateBasePrice(t *testing.T) {
	tests := []struct {
		price string
		valid bool
	}{
		{"0", true},
		{"80", true},
		{"80.55", true},
		{"99999.99", true},
		{"100000", false},
		{"80.555", false},
		{"-0.01", false},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			err := validateBasePrice(decimal.RequireFromString(tt.price))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestService_ListByHousing_WithPeriods(t *testing.T) {
	svc, store, h := setup(t)
	ctx := context.Background()

	low, err := svc.Create(ctx, h.ID, &models.CreateSeasonRequest{Name: "Low"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, h.ID, &models.CreateSeasonRequest{Name: "High"})
	require.NoError(t, err)

	_, err = store.Periods().Create(ctx, &domain.Period{
		SeasonID: low.ID,
		Start:    types.YearPeriod{Day: 1, Month: 1},
		End:      types.YearPeriod{Day: 31, Month: 3},
	})
	require.NoError(t, err)

	list, err := svc.ListByHousing(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, list.Seasons, 2)
	assert.Len(t, list.Seasons[0].Periods, 1)
	assert.Equal(t, "01/01 - 31/03", list.Seasons[0].Periods[0].Name)
	assert.Empty(t, list.Seasons[1].Periods)

	_, err = svc.ListByHousing(ctx, 999)
	assert.ErrorIs(t, err, ErrHousingNotFound)
}

func TestService_UpdateNameAndPrice(t *testing.T) {
	svc, _, h := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, h.ID, &models.CreateSeasonRequest{Name: "Low"})
	require.NoError(t, err)

	renamed, err := svc.UpdateName(ctx, created.ID, &models.UpdateSeasonRequest{Name: "Off-peak"})
	require.NoError(t, err)
	assert.Equal(t, "Off-peak", renamed.Name)

	priced, err := svc.SetBasePrice(ctx, created.ID, &models.SetBasePriceRequest{BasePrice: decimal.RequireFromString("75.50")})
	require.NoError(t, err)
	require.NotNil(t, priced.BasePrice)
	assert.True(t, priced.BasePrice.Equal(decimal.RequireFromString("75.5")))

	_, err = svc.UpdateName(ctx, 999, &models.UpdateSeasonRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrSeasonNotFound)

	_, err = svc.SetBasePrice(ctx, 999, &models.SetBasePriceRequest{BasePrice: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrSeasonNotFound)

	_, err = svc.SetBasePrice(ctx, created.ID, &models.SetBasePriceRequest{BasePrice: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	svc, store, h := setup(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, h.ID, &models.CreateSeasonRequest{Name: "Low"})
	require.NoError(t, err)
	_, err = store.Periods().Create(ctx, &domain.Period{
		SeasonID: created.ID,
		Start:    types.YearPeriod{Day: 1, Month: 1},
		End:      types.YearPeriod{Day: 31, Month: 3},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSeasonNotFound)

	periods, err := store.Periods().GetByHousingID(ctx, h.ID)
	require.NoError(t, err)
	assert.Empty(t, periods)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrSeasonNotFound)
}
