package create_season

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
	msgInvalidHousingID   = "некорректный ID жилья"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSeason      = "некорректное название или цена сезона"
	msgHousingNotFound    = "жилье не найдено"
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

// Handle POST /api/v1/housings/{housingId}/seasons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	housingID, err := strconv.ParseInt(mux.Vars(r)["housingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /housings/{id}/seasons - Invalid housing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHousingID)
		return
	}

	var req models.CreateSeasonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /housings/{id}/seasons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	season, err := h.service.Create(r.Context(), housingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, seasons.ErrInvalidInput):
			h.logger.Warn("POST /housings/{id}/seasons - Invalid input: housing_id=%d, error=%v", housingID, err)
			handlers.RespondBadRequest(w, msgInvalidSeason)

		case errors.Is(err, seasons.ErrHousingNotFound):
			h.logger.Warn("POST /housings/{id}/seasons - Housing not found: housing_id=%d", housingID)
			handlers.RespondNotFound(w, msgHousingNotFound)

		default:
			h.logger.Error("POST /housings/{id}/seasons - Failed to create season: housing_id=%d, error=%v", housingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /housings/{id}/seasons - Season created successfully: season_id=%d, housing_id=%d",
		season.ID, housingID)
	handlers.RespondJSON(w, http.StatusCreated, season)
}
