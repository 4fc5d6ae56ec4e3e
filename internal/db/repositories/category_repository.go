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

// CategoryRepository handles aircraft category persistence and the
// slug→id lookups the query engine needs.
type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(categoryCollection)}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]entities.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("CategoryRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	cats := []entities.Category{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("CategoryRepository.FindAll decode: %w", err)
	}
	return cats, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Category not found")
	}

	var cat entities.Category
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("CategoryRepository.FindByID: %w", err)
	}
	return &cat, nil
}

// FindBySlugs returns the categories whose slug is in slugs; unknown slugs
// are simply absent from the result.
func (r *CategoryRepository) FindBySlugs(ctx context.Context, slugs []string) ([]entities.Category, error) {
	cur, err := r.col.Find(ctx, bson.M{"slug": bson.M{"$in": slugs}})
	if err != nil {
		return nil, fmt.Errorf("CategoryRepository.FindBySlugs: %w", err)
	}
	defer cur.Close(ctx)

	cats := []entities.Category{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("CategoryRepository.FindBySlugs decode: %w", err)
	}
	return cats, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, cat *entities.Category) error {
	now := time.Now().UTC()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, cat)
	if err != nil {
		return fmt.Errorf("CategoryRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cat.ID = oid
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, id, name, slug string) (*entities.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Category not found")
	}

	update := bson.M{"$set": bson.M{
		"name":      name,
		"slug":      slug,
		"updatedAt": time.Now().UTC(),
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("CategoryRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NewNotFound("Category not found")
	}
	return r.FindByID(ctx, id)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) (*entities.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Category not found")
	}

	var deleted entities.Category
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("CategoryRepository.Delete: %w", err)
	}
	return &deleted, nil
}
