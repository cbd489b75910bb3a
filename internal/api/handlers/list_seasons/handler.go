package list_seasons

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons"
)

const (
	msgInvalidHousingID = "некорректный ID жилья"
	msgHousingNotFound  = "жилье не найдено"
)

type Handler struct {
	service SeasonService
	logger  Logger
}

func NewHandler(service SeasonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/housings/{housingId}/seasons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	housingID, err := strconv.ParseInt(mux.Vars(r)["housingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /housings/{id}/seasons - Invalid housing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHousingID)
		return
	}

	list, err := h.service.ListByHousing(r.Context(), housingID)
	if err != nil {
		switch {
		case errors.Is(err, seasons.ErrHousingNotFound):
			h.logger.Warn("GET /housings/{id}/seasons - Housing not found: housing_id=%d", housingID)
			handlers.RespondNotFound(w, msgHousingNotFound)

		default:
			h.logger.Error("GET /housings/{id}/seasons - Failed to list seasons: housing_id=%d, error=%v", housingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /housings/{id}/seasons - Seasons listed successfully: housing_id=%d, count=%d",
		housingID, len(list.Seasons))
	handlers.RespondJSON(w, http.StatusOK, list)
}
