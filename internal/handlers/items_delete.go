package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

// ItemDeleter defines the interface that the item deletion service must implement.
type ItemDeleter interface {
	Delete(ctx context.Context, id string) error
}

// NewDeleteItemHandler returns an HTTP handler that removes one item.
// @Summary Delete an item
// @Description Removes the item with the given id from the catalog.
// @Tags items
// @Produce plain
// @Param id path string true "Item id"
// @Success 200 {string} string "Deletion confirmation"
// @Failure 404 {string} string "Item not found"
// @Router /secondchance/items/{id} [delete]
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidID):
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte("id is required"))
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("Item not found"))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Internal server error"))
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Item with %s has been deleted successfully", id)
	}
}
