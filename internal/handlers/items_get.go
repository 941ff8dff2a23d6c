package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

// ItemGetter defines the interface that the single-item lookup service must implement.
type ItemGetter interface {
	Get(ctx context.Context, id string) (*models.ItemDB, error)
}

// NewGetItemHandler returns an HTTP handler that fetches one item by id.
// @Summary Get an item
// @Description Returns the item with the given numeric id.
// @Tags items
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} models.ItemDB "The item"
// @Failure 400 {object} handlers.ItemErrorResponse "Non-numeric id"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Router /secondchance/items/{id} [get]
func NewGetItemHandler(svc ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidID):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Message: "id must be a number",
				})
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Message: "secondChanceItem not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(item)
	}
}
