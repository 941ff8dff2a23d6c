package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
)

type ItemReadRepository struct {
	items *mongo.Collection
}

func NewItemReadRepository(items *mongo.Collection) *ItemReadRepository {
	return &ItemReadRepository{items: items}
}

// FindAll returns every item in store-native order.
func (r *ItemReadRepository) FindAll(ctx context.Context) ([]models.ItemDB, error) {
	cursor, err := r.items.Find(ctx, bson.M{})

	logger.Log.Infow("items.find",
		"filter", bson.M{},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.ItemDB
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns the item with the given id, or nil when none exists.
func (r *ItemReadRepository) FindByID(ctx context.Context, id string) (*models.ItemDB, error) {
	filter := bson.M{"id": id}

	var item models.ItemDB
	err := r.items.FindOne(ctx, filter).Decode(&item)

	logger.Log.Infow("items.findOne",
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// FindLast returns the item with the numerically greatest id, or nil when the
// collection is empty. Ids are stored as decimal strings, so the ordering is
// done on a converted integer, not lexicographically.
func (r *ItemReadRepository) FindLast(ctx context.Context) (*models.ItemDB, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"id_num": bson.M{"$toInt": "$id"}}}},
		{{Key: "$sort", Value: bson.M{"id_num": -1}}},
		{{Key: "$limit", Value: 1}},
	}

	cursor, err := r.items.Aggregate(ctx, pipeline)

	logger.Log.Infow("items.aggregate",
		"pipeline", pipeline,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.ItemDB
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// Search executes a conjunctive filter against the item collection.
func (r *ItemReadRepository) Search(ctx context.Context, filter models.ItemFilter) ([]models.ItemDB, error) {
	query := bson.M{}

	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Condition != "" {
		query["condition"] = filter.Condition
	}
	if filter.MaxAgeYears != nil {
		query["age_years"] = bson.M{"$lte": *filter.MaxAgeYears}
	}

	cursor, err := r.items.Find(ctx, query)

	logger.Log.Infow("items.find",
		"filter", query,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.ItemDB
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type ItemWriteRepository struct {
	items *mongo.Collection
}

func NewItemWriteRepository(items *mongo.Collection) *ItemWriteRepository {
	return &ItemWriteRepository{items: items}
}

// Insert stores a new item document.
func (r *ItemWriteRepository) Insert(ctx context.Context, item models.ItemDB) error {
	_, err := r.items.InsertOne(ctx, item)

	logger.Log.Infow("items.insertOne",
		"id", item.ID,
		"error", err,
	)

	return err
}

// Update applies a partial $set to the item with the given id and reports
// how many documents matched and how many actually changed.
func (r *ItemWriteRepository) Update(ctx context.Context, id string, patch models.ItemPatch) (matched, modified int64, err error) {
	filter := bson.M{"id": id}
	update := bson.M{"$set": patch}

	res, err := r.items.UpdateOne(ctx, filter, update)

	logger.Log.Infow("items.updateOne",
		"filter", filter,
		"update", update,
		"error", err,
	)

	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Delete removes the item with the given id and reports how many documents
// were removed.
func (r *ItemWriteRepository) Delete(ctx context.Context, id string) (int64, error) {
	filter := bson.M{"id": id}

	res, err := r.items.DeleteOne(ctx, filter)

	logger.Log.Infow("items.deleteOne",
		"filter", filter,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
