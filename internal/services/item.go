package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
)

// Error variables
var (
	ErrEmptyPayload    = errors.New("item data is required")
	ErrInvalidID       = errors.New("id must be a number")
	ErrItemNotFound    = errors.New("item not found")
	ErrNoItems         = errors.New("no items found in the collection")
	ErrItemNotModified = errors.New("no changes made to the item")
)

// ItemReader defines read-only operations for catalog items.
type ItemReader interface {
	FindAll(ctx context.Context) ([]models.ItemDB, error)
	FindByID(ctx context.Context, id string) (*models.ItemDB, error)
	FindLast(ctx context.Context) (*models.ItemDB, error)
}

// ItemWriter defines write operations for catalog items.
type ItemWriter interface {
	Insert(ctx context.Context, item models.ItemDB) error
	Update(ctx context.Context, id string, patch models.ItemPatch) (matched, modified int64, err error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ItemService handles the item catalog lifecycle.
type ItemService struct {
	reader ItemReader
	writer ItemWriter
}

// NewItemService creates a new ItemService instance.
func NewItemService(reader ItemReader, writer ItemWriter) *ItemService {
	return &ItemService{
		reader: reader,
		writer: writer,
	}
}

// List returns every item in the catalog.
func (svc *ItemService) List(ctx context.Context) ([]models.ItemDB, error) {
	return svc.reader.FindAll(ctx)
}

// Create assigns the next sequential id, stamps date_added, and inserts the
// item. The find-max/insert pair is a read-then-write without any locking:
// two concurrent creators may be assigned the same id.
func (svc *ItemService) Create(ctx context.Context, item models.ItemDB) (models.ItemDB, error) {
	if item == (models.ItemDB{}) {
		return models.ItemDB{}, ErrEmptyPayload
	}

	last, err := svc.reader.FindLast(ctx)
	if err != nil {
		logger.Log.Errorw("failed to find last item", "err", err)
		return models.ItemDB{}, err
	}
	if last == nil {
		logger.Log.Errorw("no items found in the collection")
		return models.ItemDB{}, ErrNoItems
	}

	lastID, err := strconv.Atoi(last.ID)
	if err != nil {
		logger.Log.Errorw("last item has a non-numeric id", "id", last.ID)
		return models.ItemDB{}, err
	}

	item.ID = strconv.Itoa(lastID + 1)
	item.DateAdded = time.Now().Unix()

	if err := svc.writer.Insert(ctx, item); err != nil {
		logger.Log.Errorw("failed to insert item", "err", err)
		return models.ItemDB{}, err
	}

	return item, nil
}

// Get returns the item with the given id.
func (svc *ItemService) Get(ctx context.Context, id string) (*models.ItemDB, error) {
	if _, err := strconv.Atoi(id); err != nil {
		return nil, ErrInvalidID
	}

	item, err := svc.reader.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to find item", "id", id, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	return item, nil
}

// Update applies a partial update to the item with the given id. age_years is
// derived from age_days to one decimal place.
func (svc *ItemService) Update(ctx context.Context, id, category, condition, description string, ageDays int) error {
	if id == "" {
		return ErrInvalidID
	}

	patch := models.ItemPatch{
		Category:    category,
		Condition:   condition,
		AgeDays:     ageDays,
		AgeYears:    AgeYears(ageDays),
		Description: description,
		UpdatedAt:   time.Now().Unix(),
	}

	matched, modified, err := svc.writer.Update(ctx, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update item", "id", id, "err", err)
		return err
	}
	if matched == 0 {
		return ErrItemNotFound
	}
	if modified == 0 {
		return ErrItemNotModified
	}

	return nil
}

// Delete removes the item with the given id.
func (svc *ItemService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete item", "id", id, "err", err)
		return err
	}
	if deleted == 0 {
		return ErrItemNotFound
	}

	return nil
}

// AgeYears converts an age in days to years, rounded to one decimal place.
func AgeYears(ageDays int) float64 {
	return math.Round(float64(ageDays)/365*10) / 10
}
