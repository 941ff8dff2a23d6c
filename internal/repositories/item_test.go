package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/secondchance-backend/internal/models"
)

func TestItemRepositories(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	items := db.Collection("secondChanceItems")

	readRepo := NewItemReadRepository(items)
	writeRepo := NewItemWriteRepository(items)

	t.Run("FindLast on empty collection returns nil", func(t *testing.T) {
		item, err := readRepo.FindLast(ctx)
		assert.NoError(t, err)
		assert.Nil(t, item)
	})

	seed := []models.ItemDB{
		{ID: "9", Name: "Wooden chair", Category: "Home", Condition: "Good", AgeDays: 365, AgeYears: 1.0, DateAdded: 1700000000},
		{ID: "10", Name: "Office Chair", Category: "Office", Condition: "Fair", AgeDays: 730, AgeYears: 2.0, DateAdded: 1700000100},
		{ID: "2", Name: "Teddy bear", Category: "Toys", Condition: "New", AgeDays: 36, AgeYears: 0.1, DateAdded: 1700000200},
	}
	for _, it := range seed {
		assert.NoError(t, writeRepo.Insert(ctx, it))
	}

	t.Run("FindAll returns every item", func(t *testing.T) {
		all, err := readRepo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("FindByID exact match", func(t *testing.T) {
		item, err := readRepo.FindByID(ctx, "2")
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, "Teddy bear", item.Name)

		missing, err := readRepo.FindByID(ctx, "404")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("FindLast orders ids numerically, not lexicographically", func(t *testing.T) {
		// A string sort would put "9" above "10".
		item, err := readRepo.FindLast(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, "10", item.ID)
	})

	t.Run("Search by case-insensitive name substring", func(t *testing.T) {
		found, err := readRepo.Search(ctx, models.ItemFilter{Name: "chair"})
		assert.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("Search by category and condition", func(t *testing.T) {
		found, err := readRepo.Search(ctx, models.ItemFilter{Category: "Toys", Condition: "New"})
		assert.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, "2", found[0].ID)
	})

	t.Run("Search age_years is an inclusive upper bound", func(t *testing.T) {
		maxAge := 1
		found, err := readRepo.Search(ctx, models.ItemFilter{MaxAgeYears: &maxAge})
		assert.NoError(t, err)
		assert.Len(t, found, 2)
		for _, it := range found {
			assert.LessOrEqual(t, it.AgeYears, 1.0)
		}
	})

	t.Run("Search with empty filter matches all", func(t *testing.T) {
		found, err := readRepo.Search(ctx, models.ItemFilter{})
		assert.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("Update reports matched and modified", func(t *testing.T) {
		patch := models.ItemPatch{
			Category:    "Home",
			Condition:   "Fair",
			AgeDays:     400,
			AgeYears:    1.1,
			Description: "well used",
			UpdatedAt:   1700001000,
		}

		matched, modified, err := writeRepo.Update(ctx, "9", patch)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(1), modified)

		// Identical patch matches but changes nothing.
		matched, modified, err = writeRepo.Update(ctx, "9", patch)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(0), modified)

		matched, _, err = writeRepo.Update(ctx, "404", patch)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), matched)
	})

	t.Run("Delete reports removed count", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, "2")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		deleted, err = writeRepo.Delete(ctx, "2")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}
