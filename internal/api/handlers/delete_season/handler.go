package delete_season

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

// Handle DELETE /api/v1/seasons/{seasonId}
// Периоды сезона удаляются вместе с ним.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	seasonID, err := strconv.ParseInt(mux.Vars(r)["seasonId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /seasons/{id} - Invalid season ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSeasonID)
		return
	}

	if err := h.service.Delete(r.Context(), seasonID); err != nil {
		switch {
		case errors.Is(err, seasons.ErrSeasonNotFound):
			h.logger.Warn("DELETE /seasons/{id} - Season not found: season_id=%d", seasonID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /seasons/{id} - Failed to delete season: season_id=%d, error=%v", seasonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /seasons/{id} - Season deleted successfully: season_id=%d", seasonID)
	handlers.RespondNoContent(w)
}
