package list_periods

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/periods"
)

const (
	msgInvalidHousingID = "некорректный ID жилья"
	msgHousingNotFound  = "жилье не найдено"
)

type Handler struct {
	service PeriodService
	logger  Logger
}

func NewHandler(service PeriodService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/housings/{housingId}/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	housingID, err := strconv.ParseInt(mux.Vars(r)["housingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /housings/{id}/periods - Invalid housing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHousingID)
		return
	}

	list, err := h.service.ListByHousing(r.Context(), housingID)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrHousingNotFound):
			h.logger.Warn("GET /housings/{id}/periods - Housing not found: housing_id=%d", housingID)
			handlers.RespondNotFound(w, msgHousingNotFound)

		default:
			h.logger.Error("GET /housings/{id}/periods - Failed to list periods: housing_id=%d, error=%v", housingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /housings/{id}/periods - Periods listed successfully: housing_id=%d, count=%d",
		housingID, len(list.Periods))
	handlers.RespondJSON(w, http.StatusOK, list)
}
