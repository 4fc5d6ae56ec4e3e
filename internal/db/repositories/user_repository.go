package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"aeromart/internal/models/entities"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByEmailOrUsername matches either credential field so the login
// form can accept both. Returns (nil, nil) when no user matches.
func (r *UserRepository) FindByEmailOrUsername(ctx context.Context, identifier string) (*entities.User, error) {
	filter := bson.M{"$or": []bson.M{
		{"email": identifier},
		{"username": identifier},
	}}

	var user entities.User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("UserRepository.FindByEmailOrUsername: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *entities.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("UserRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}
