package delete_price_category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeasonPricingService/internal/api/handlers"
	"github.com/m04kA/SMC-SeasonPricingService/internal/service/pricecategories"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgNotFound          = "категория не найдена"
)

type Handler struct {
	service PriceCategoryService
	logger  Logger
}

func NewHandler(service PriceCategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/price-categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(mux.Vars(r)["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /price-categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	if err := h.service.Delete(r.Context(), categoryID); err != nil {
		switch {
		case errors.Is(err, pricecategories.ErrPriceCategoryNotFound):
			h.logger.Warn("DELETE /price-categories/{id} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /price-categories/{id} - Failed to delete category: category_id=%d, error=%v", categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /price-categories/{id} - Category deleted successfully: category_id=%d", categoryID)
	handlers.RespondNoContent(w)
}
