package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
)

// ItemLister defines the interface that the item listing service must implement.
type ItemLister interface {
	List(ctx context.Context) ([]models.ItemDB, error)
}

// ItemErrorResponse represents an error response for item routes
// swagger:model ItemErrorResponse
type ItemErrorResponse struct {
	// Error message
	// example: No items found in the collection
	Message string `json:"message"`
}

// NewListItemsHandler returns an HTTP handler that lists all catalog items.
// @Summary List all items
// @Description Returns every catalog item in store order, without pagination.
// @Tags items
// @Produce json
// @Success 200 {array} models.ItemDB "All items"
// @Failure 500 {object} handlers.ItemErrorResponse "Internal server error"
// @Router /secondchance/items [get]
func NewListItemsHandler(svc ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ItemErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		if items == nil {
			items = []models.ItemDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
