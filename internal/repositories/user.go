package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/models"
)

type UserReadRepository struct {
	users *mongo.Collection
}

func NewUserReadRepository(users *mongo.Collection) *UserReadRepository {
	return &UserReadRepository{users: users}
}

// GetByEmail returns the user with the given email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	filter := bson.M{"email": email}

	var user models.UserDB
	err := r.users.FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("users.findOne",
		"filter", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	users *mongo.Collection
}

func NewUserWriteRepository(users *mongo.Collection) *UserWriteRepository {
	return &UserWriteRepository{users: users}
}

// Save inserts a new user document and returns the store-generated id as a hex string.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) (string, error) {
	res, err := r.users.InsertOne(ctx, user)

	logger.Log.Infow("users.insertOne",
		"email", user.Email,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// SetFirstName applies a partial update to the user identified by email and
// returns the updated document, or nil when no user matched.
func (r *UserWriteRepository) SetFirstName(ctx context.Context, email, firstName string, updatedAt time.Time) (*models.UserDB, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"firstName": firstName, "updatedAt": updatedAt}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.UserDB
	err := r.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)

	logger.Log.Infow("users.findOneAndUpdate",
		"filter", filter,
		"update", update,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
