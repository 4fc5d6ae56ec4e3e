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

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{col: db.Collection("videos")}
}

func (r *VideoRepository) FindAll(ctx context.Context) ([]entities.Video, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("VideoRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	videos := []entities.Video{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("VideoRepository.FindAll decode: %w", err)
	}
	return videos, nil
}

func (r *VideoRepository) Insert(ctx context.Context, video *entities.Video) error {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, video)
	if err != nil {
		return fmt.Errorf("VideoRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		video.ID = oid
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) (*entities.Video, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Video not found")
	}

	var deleted entities.Video
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Video not found")
	}
	if err != nil {
		return nil, fmt.Errorf("VideoRepository.Delete: %w", err)
	}
	return &deleted, nil
}

func (r *VideoRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	return bulkDeleteByIDs(ctx, r.col, ids, "VideoRepository.BulkDelete")
}
