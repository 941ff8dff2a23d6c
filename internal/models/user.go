package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDB represents a user document in the users collection
type UserDB struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`     // Store-generated identifier
	Email        string             `json:"email" bson:"email"`          // Unique email, primary lookup key
	PasswordHash string             `json:"-" bson:"password"`           // bcrypt hash, never serialized
	FirstName    string             `json:"firstName" bson:"firstName"`  // Optional display name
	LastName     string             `json:"lastName" bson:"lastName"`    // Optional display name
	CreatedAt    time.Time          `json:"created_at" bson:"createdAt"` // Creation timestamp
	UpdatedAt    time.Time          `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}
