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

// BlogCategoryRepository and AuthorRepository back the blog taxonomy
// endpoints. Both are flat name-only collections.

type BlogCategoryRepository struct {
	col *mongo.Collection
}

func NewBlogCategoryRepository(db *mongo.Database) *BlogCategoryRepository {
	return &BlogCategoryRepository{col: db.Collection(blogCategoryCollection)}
}

func (r *BlogCategoryRepository) FindAll(ctx context.Context) ([]entities.BlogCategory, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("BlogCategoryRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	cats := []entities.BlogCategory{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("BlogCategoryRepository.FindAll decode: %w", err)
	}
	return cats, nil
}

func (r *BlogCategoryRepository) Insert(ctx context.Context, cat *entities.BlogCategory) error {
	now := time.Now().UTC()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, cat)
	if err != nil {
		return fmt.Errorf("BlogCategoryRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cat.ID = oid
	}
	return nil
}

func (r *BlogCategoryRepository) Delete(ctx context.Context, id string) (*entities.BlogCategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Blog category not found")
	}

	var deleted entities.BlogCategory
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Blog category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("BlogCategoryRepository.Delete: %w", err)
	}
	return &deleted, nil
}

type AuthorRepository struct {
	col *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{col: db.Collection(authorCollection)}
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]entities.Author, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("AuthorRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	authors := []entities.Author{}
	if err := cur.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("AuthorRepository.FindAll decode: %w", err)
	}
	return authors, nil
}

func (r *AuthorRepository) Insert(ctx context.Context, author *entities.Author) error {
	now := time.Now().UTC()
	author.CreatedAt = now
	author.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, author)
	if err != nil {
		return fmt.Errorf("AuthorRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		author.ID = oid
	}
	return nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id string) (*entities.Author, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Author not found")
	}

	var deleted entities.Author
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Author not found")
	}
	if err != nil {
		return nil, fmt.Errorf("AuthorRepository.Delete: %w", err)
	}
	return &deleted, nil
}
