package list_housings

import (
	"net/http"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
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

// Handle GET /api/v1/housings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /housings - Failed to list housings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /housings - Housings listed successfully: count=%d", len(list.Housings))
	handlers.RespondJSON(w, http.StatusOK, list)
}
