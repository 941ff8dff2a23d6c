package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

// ItemUpdater defines the interface that the item update service must implement.
type ItemUpdater interface {
	Update(ctx context.Context, id, category, condition, description string, ageDays int) error
}

// UpdateItemRequest represents the JSON body for an item update
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	// Category
	// example: Home
	Category string `json:"category"`

	// Condition
	// example: Good
	Condition string `json:"condition"`

	// Age in days; age_years is derived from it
	// example: 400
	AgeDays int `json:"age_days"`

	// Description
	// example: A sturdy wooden chair
	Description string `json:"description"`
}

// NewUpdateItemHandler returns an HTTP handler that applies a partial update
// to one item.
// @Summary Update an item
// @Description Rewrites category, condition, age_days, derived age_years, and description of the item, stamping updatedAt.
// @Tags items
// @Accept json
// @Produce plain
// @Param id path string true "Item id"
// @Param updateItemRequest body handlers.UpdateItemRequest true "Fields to update"
// @Success 200 {string} string "Item updated successfully"
// @Failure 304 {string} string "No changes made to the Item"
// @Failure 404 {string} string "Item not found"
// @Router /secondchance/items/{id} [put]
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("invalid request body"))
			return
		}

		err := svc.Update(r.Context(), id, req.Category, req.Condition, req.Description, req.AgeDays)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidID):
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("id is required"))
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("Item not found"))
			case errors.Is(err, services.ErrItemNotModified):
				// Matched but nothing changed value; distinct from success.
				w.WriteHeader(http.StatusNotModified)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Internal server error"))
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Item updated successfully"))
	}
}
