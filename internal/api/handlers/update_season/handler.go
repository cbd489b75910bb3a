package update_season

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons/models"
)

const (
	msgInvalidSeasonID    = "некорректный ID сезона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "некорректное название сезона"
	msgNotFound           = "сезон не найден"
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

// Handle PUT /api/v1/seasons/{seasonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	seasonID, err := strconv.ParseInt(mux.Vars(r)["seasonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /seasons/{id} - Invalid season ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSeasonID)
		return
	}

	var req models.UpdateSeasonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /seasons/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	season, err := h.service.UpdateName(r.Context(), seasonID, &req)
	if err != nil {
		switch {
		case errors.Is(err, seasons.ErrInvalidInput):
			h.logger.Warn("PUT /seasons/{id} - Invalid input: season_id=%d, error=%v", seasonID, err)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, seasons.ErrSeasonNotFound):
			h.logger.Warn("PUT /seasons/{id} - Season not found: season_id=%d", seasonID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /seasons/{id} - Failed to update season: season_id=%d, error=%v", seasonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /seasons/{id} - Season updated successfully: season_id=%d", seasonID)
	handlers.RespondJSON(w, http.StatusOK, season)
}
