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

const (
	blogCollection         = "blogs"
	blogCategoryCollection = "blogcategories"
	authorCollection       = "authors"
)

// BlogView is a blog post with its author and category joined.
type BlogView struct {
	ID         primitive.ObjectID     `bson:"_id" json:"_id"`
	Title      string                 `bson:"title" json:"title"`
	Category   *entities.BlogCategory `bson:"category,omitempty" json:"category,omitempty"`
	Author     *entities.Author       `bson:"author,omitempty" json:"author,omitempty"`
	Body       string                 `bson:"description" json:"description"`
	CoverImage string                 `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	CreatedAt  time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time              `bson:"updatedAt" json:"updatedAt"`
}

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection(blogCollection)}
}

func blogLookupStages() []bson.D {
	lookup := func(from, field string) []bson.D {
		return []bson.D{
			{{Key: "$lookup", Value: bson.M{
				"from":         from,
				"localField":   field,
				"foreignField": "_id",
				"as":           field,
			}}},
			{{Key: "$unwind", Value: bson.M{
				"path":                       "$" + field,
				"preserveNullAndEmptyArrays": true,
			}}},
		}
	}
	stages := lookup(authorCollection, "author")
	return append(stages, lookup(blogCategoryCollection, "category")...)
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("BlogRepository.Count: %w", err)
	}
	return n, nil
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]BlogView, error) {
	cur, err := r.col.Aggregate(ctx, blogLookupStages())
	if err != nil {
		return nil, fmt.Errorf("BlogRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	blogs := []BlogView{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("BlogRepository.FindAll decode: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*BlogView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Blog not found")
	}

	pipeline := append([]bson.D{{{Key: "$match", Value: bson.M{"_id": oid}}}}, blogLookupStages()...)
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("BlogRepository.FindByID: %w", err)
	}
	defer cur.Close(ctx)

	var blogs []BlogView
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("BlogRepository.FindByID decode: %w", err)
	}
	if len(blogs) == 0 {
		return nil, apperrors.NewNotFound("Blog not found")
	}
	return &blogs[0], nil
}

func (r *BlogRepository) Insert(ctx context.Context, blog *entities.Blog) error {
	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, blog)
	if err != nil {
		return fmt.Errorf("BlogRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		blog.ID = oid
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, id string, set bson.M) (*BlogView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Blog not found")
	}

	set["updatedAt"] = time.Now().UTC()
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("BlogRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NewNotFound("Blog not found")
	}
	return r.FindByID(ctx, id)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) (*entities.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Blog not found")
	}

	var deleted entities.Blog
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Blog not found")
	}
	if err != nil {
		return nil, fmt.Errorf("BlogRepository.Delete: %w", err)
	}
	return &deleted, nil
}

func (r *BlogRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	return bulkDeleteByIDs(ctx, r.col, ids, "BlogRepository.BulkDelete")
}
