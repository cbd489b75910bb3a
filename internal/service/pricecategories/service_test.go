package pricecategories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories/models"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
)

func TestService_Lifecycle(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	svc := NewService(store.PriceCategories(), store.Housings(), logger.NewNop())

	h, err := store.Housings().Create(ctx, &domain.Housing{Name: "Chalet"})
	require.NoError(t, err)

	adult, err := svc.Create(ctx, h.ID, &models.PriceCategoryRequest{Name: "Adult"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, h.ID, &models.PriceCategoryRequest{Name: "Child"})
	require.NoError(t, err)

	list, err := svc.ListByHousing(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, list.PriceCategories, 2)
	assert.Equal(t, "Adult", list.PriceCategories[0].Name)

	renamed, err := svc.UpdateName(ctx, adult.ID, &models.PriceCategoryRequest{Name: "Grown-up"})
	require.NoError(t, err)
	assert.Equal(t, "Grown-up", renamed.Name)

	require.NoError(t, svc.Delete(ctx, adult.ID))
	_, err = svc.GetByID(ctx, adult.ID)
	assert.ErrorIs(t, err, ErrPriceCategoryNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, adult.ID), ErrPriceCategoryNotFound)
}

func TestService_Errors(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	svc := NewService(store.PriceCategories(), store.Housings(), logger.NewNop())

	_, err := svc.Create(ctx, 1, &models.PriceCategoryRequest{Name: "Adult"})
	assert.ErrorIs(t, err, ErrHousingNotFound)

	_, err = svc.ListByHousing(ctx, 1)
	assert.ErrorIs(t, err, ErrHousingNotFound)

	_, err = svc.Create(ctx, 1, &models.PriceCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateName(ctx, 1, &models.PriceCategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrPriceCategoryNotFound)
}
