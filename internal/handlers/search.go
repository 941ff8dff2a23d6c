package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

// Searcher defines the interface that the search service must implement.
type Searcher interface {
	Search(ctx context.Context, name, category, condition, ageYears string) ([]models.ItemDB, error)
}

// NewSearchHandler returns an HTTP handler for filtered item search.
// @Summary Search items
// @Description Filters items by optional name substring (case-insensitive), exact category and condition, and an inclusive age_years upper bound. Blank parameters impose no constraint.
// @Tags search
// @Produce json
// @Param name query string false "Name substring"
// @Param category query string false "Category"
// @Param condition query string false "Condition"
// @Param age_years query int false "Maximum age in years"
// @Success 200 {array} models.ItemDB "Matching items"
// @Failure 404 {object} handlers.ItemErrorResponse "No items found"
// @Router /secondchance/search [get]
func NewSearchHandler(svc Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		items, err := svc.Search(r.Context(), q.Get("name"), q.Get("category"), q.Get("condition"), q.Get("age_years"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoItemsFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ItemErrorResponse{
					Message: "No items found",
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
		json.NewEncoder(w).Encode(items)
	}
}
