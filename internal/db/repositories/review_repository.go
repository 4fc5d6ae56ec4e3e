package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"aeromart/internal/apperrors"
	"aeromart/internal/models/entities"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("ReviewRepository.Count: %w", err)
	}
	return n, nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]entities.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	reviews := []entities.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindAll decode: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*entities.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Review not found")
	}

	var review entities.Review
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Review not found")
	}
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindByID: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review *entities.Review) error {
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("ReviewRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, id string, name, review, location string) (*entities.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Review not found")
	}

	update := bson.M{"$set": bson.M{
		"name":      name,
		"review":    review,
		"location":  location,
		"updatedAt": time.Now().UTC(),
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NewNotFound("Review not found")
	}
	return r.FindByID(ctx, id)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (*entities.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Review not found")
	}

	var deleted entities.Review
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Review not found")
	}
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.Delete: %w", err)
	}
	return &deleted, nil
}

func (r *ReviewRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	return bulkDeleteByIDs(ctx, r.col, ids, "ReviewRepository.BulkDelete")
}
