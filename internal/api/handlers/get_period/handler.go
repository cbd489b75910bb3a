package get_period

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/periods"
)

const (
	msgInvalidPeriodID = "некорректный ID периода"
	msgNotFound        = "период не найден"
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

// Handle GET /api/v1/periods/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID, err := strconv.ParseInt(mux.Vars(r)["periodId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /periods/{id} - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	period, err := h.service.GetByID(r.Context(), periodID)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrPeriodNotFound):
			h.logger.Warn("GET /periods/{id} - Period not found: period_id=%d", periodID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /periods/{id} - Failed to get period: period_id=%d, error=%v", periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /periods/{id} - Period retrieved successfully: period_id=%d", periodID)
	handlers.RespondJSON(w, http.StatusOK, period)
}
