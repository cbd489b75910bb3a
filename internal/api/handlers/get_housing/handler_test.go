package get_housing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	store := memory.NewStore()
	h, err := store.Housings().Create(context.Background(), &domain.Housing{Name: "Chalet"})
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/housings/{housingId}",
		NewHandler(housings.NewService(store.Housings(), logger.NewNop()), logger.NewNop()).Handle)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"found", strconv.FormatInt(h.ID, 10), http.StatusOK},
		{"missing", strconv.FormatInt(h.ID+1, 10), http.StatusNotFound},
		{"not a number", "chalet", http.StatusBadRequest},
		{"overflow", "99999999999999999999", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/housings/"+tt.id, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
