package create_housing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/housings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "некорректное название жилья"
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

// Handle POST /api/v1/housings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHousingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /housings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	housing, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, housings.ErrInvalidInput):
			h.logger.Warn("POST /housings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)

		default:
			h.logger.Error("POST /housings - Failed to create housing: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /housings - Housing created successfully: housing_id=%d", housing.ID)
	handlers.RespondJSON(w, http.StatusCreated, housing)
}
