package get_housing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings"
)

const (
	msgInvalidHousingID = "некорректный ID жилья"
	msgNotFound         = "жилье не найдено"
)

type Handler struct {
	service HousingService
	logger  Logger
}

func NewHandler(service HousingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/housings/{housingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	housingID, err := strconv.ParseInt(mux.Vars(r)["housingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /housings/{id} - Invalid housing ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHousingID)
		return
	}

	housing, err := h.service.GetByID(r.Context(), housingID)
	if err != nil {
		switch {
		case errors.Is(err, housings.ErrHousingNotFound):
			h.logger.Warn("GET /housings/{id} - Housing not found: housing_id=%d", housingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /housings/{id} - Failed to get housing: housing_id=%d, error=%v", housingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /housings/{id} - Housing retrieved successfully: housing_id=%d", housingID)
	handlers.RespondJSON(w, http.StatusOK, housing)
}
