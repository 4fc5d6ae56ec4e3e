package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups listings. Slug is derived from the name: lowercase with
// spaces replaced by hyphens.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
