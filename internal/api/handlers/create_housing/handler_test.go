package create_housing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SeasonPricingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings/models"
	"github.com/m04kA/SMC-SeasonPricingService/pkg/logger"
)

func newHandler() *Handler {
	store := memory.NewStore()
	return NewHandler(housings.NewService(store.Housings(), logger.NewNop()), logger.NewNop())
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"created", `{"name":"  Chalet des Alpes "}`, http.StatusCreated},
		{"blank name", `{"name":"   "}`, http.StatusBadRequest},
		{"too long", `{"name":"` + strings.Repeat("a", 257) + `"}`, http.StatusBadRequest},
		{"unknown field", `{"title":"Chalet"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newHandler().Handle(w, httptest.NewRequest(http.MethodPost, "/housings", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandler_ReturnsTrimmedName(t *testing.T) {
	w := httptest.NewRecorder()
	newHandler().Handle(w, httptest.NewRequest(http.MethodPost, "/housings", strings.NewReader(`{"name":" Chalet "}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.HousingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Positive(t, resp.ID)
	assert.Equal(t, "Chalet", resp.Name)
}
