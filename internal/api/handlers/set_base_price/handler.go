package set_base_price

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
	msgInvalidRequestBody = "некорректное тело запроса, ожидается basePrice в виде десятичного числа"
	msgInvalidPrice       = "цена должна быть неотрицательной, не больше 99999.99 и иметь не более двух знаков после запятой"
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

// Handle PUT /api/v1/seasons/{seasonId}/base-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	seasonID, err := strconv.ParseInt(mux.Vars(r)["seasonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /seasons/{id}/base-price - Invalid season ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSeasonID)
		return
	}

	var req models.SetBasePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /seasons/{id}/base-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	season, err := h.service.SetBasePrice(r.Context(), seasonID, &req)
	if err != nil {
		switch {
		case errors.Is(err, seasons.ErrInvalidInput):
			h.logger.Warn("PUT /seasons/{id}/base-price - Invalid price: season_id=%d, price=%s", seasonID, req.BasePrice)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, seasons.ErrSeasonNotFound):
			h.logger.Warn("PUT /seasons/{id}/base-price - Season not found: season_id=%d", seasonID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /seasons/{id}/base-price - Failed to set base price: season_id=%d, error=%v", seasonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /seasons/{id}/base-price - Base price set successfully: season_id=%d, price=%s",
		seasonID, req.BasePrice)
	handlers.RespondJSON(w, http.StatusOK, season)
}
