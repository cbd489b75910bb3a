package set_base_price

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeasonPricingService/internal/domain"
	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
)

func setup(t *testing.T) (*mux.Router, int64) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	h, err := store.Housings().Create(ctx, &domain.Housing{Name: "Chalet"})
	require.NoError(t, err)
	s, err := store.Seasons().Create(ctx, &domain.Season{HousingID: h.ID, Name: "Low"})
	require.NoError(t, err)

	svc := seasons.NewService(store.Seasons(), store.Periods(), store.Housings(), store, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/seasons/{seasonId}/base-price", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)
	return r, s.ID
}

func put(r *mux.Router, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, target, strings.NewReader(body)))
	return w
}

func TestHandler_SetsPrice(t *testing.T) {
	r, seasonID := setup(t)

	for _, body := range []string{`{"basePrice":"120.50"}`, `{"basePrice":120.5}`} {
		w := put(r, "/seasons/"+strconv.FormatInt(seasonID, 10)+"/base-price", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.SeasonResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.BasePrice)
		assert.Equal(t, "120.5", resp.BasePrice.String())
	}
}

func TestHandler_Rejects(t *testing.T) {
	r, seasonID := setup(t)
	target := "/seasons/" + strconv.FormatInt(seasonID, 10) + "/base-price"

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"negative", target, `{"basePrice":"-1"}`, http.StatusBadRequest},
		{"three decimals", target, `{"basePrice":"10.005"}`, http.StatusBadRequest},
		{"too large", target, `{"basePrice":"100000"}`, http.StatusBadRequest},
		{"not a number", target, `{"basePrice":"cheap"}`, http.StatusBadRequest},
		{"bad id", "/seasons/zero/base-price", `{"basePrice":"10"}`, http.StatusBadRequest},
		{"unknown season", "/seasons/999/base-price", `{"basePrice":"10"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, put(r, tt.target, tt.body).Code)
		})
	}
}
