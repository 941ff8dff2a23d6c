package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
)

// ErrNoItemsFound is returned when a search matches nothing.
var ErrNoItemsFound = errors.New("no items found")

// ItemSearcher executes a filter against the item collection.
type ItemSearcher interface {
	Search(ctx context.Context, filter models.ItemFilter) ([]models.ItemDB, error)
}

// SearchService builds conjunctive filters from raw query parameters.
type SearchService struct {
	searcher ItemSearcher
}

// NewSearchService creates a new SearchService instance.
func NewSearchService(searcher ItemSearcher) *SearchService {
	return &SearchService{searcher: searcher}
}

// Search filters items by the given parameters. Blank parameters impose no
// constraint; ageYears is an inclusive upper bound and is ignored when it does
// not parse as an integer.
func (svc *SearchService) Search(ctx context.Context, name, category, condition, ageYears string) ([]models.ItemDB, error) {
	filter := models.ItemFilter{
		Category:  category,
		Condition: condition,
	}

	if strings.TrimSpace(name) != "" {
		filter.Name = name
	}
	if v, err := strconv.Atoi(ageYears); err == nil {
		filter.MaxAgeYears = &v
	}

	items, err := svc.searcher.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to search items", "err", err)
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItemsFound
	}

	return items, nil
}
