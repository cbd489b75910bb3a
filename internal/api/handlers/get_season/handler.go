package get_season

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/seasons"
)

const (
	msgInvalidSeasonID = "некорректный ID сезона"
	msgNotFound        = "сезон не найден"
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

// Handle GET /api/v1/seasons/{seasonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	seasonID, err := strconv.ParseInt(mux.Vars(r)["seasonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /seasons/{id} - Invalid season ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSeasonID)
		return
	}

	season, err := h.service.GetByID(r.Context(), seasonID)
	if err != nil {
		switch {
		case errors.Is(err, seasons.ErrSeasonNotFound):
			h.logger.Warn("GET /seasons/{id} - Season not found: season_id=%d", seasonID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /seasons/{id} - Failed to get season: season_id=%d, error=%v", seasonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /seasons/{id} - Season retrieved successfully: season_id=%d", seasonID)
	handlers.RespondJSON(w, http.StatusOK, season)
}
