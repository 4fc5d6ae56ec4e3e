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

type BrandRepository struct {
	col *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{col: db.Collection("brands")}
}

func (r *BrandRepository) FindAll(ctx context.Context) ([]entities.Brand, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("BrandRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	brands := []entities.Brand{}
	if err := cur.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("BrandRepository.FindAll decode: %w", err)
	}
	return brands, nil
}

func (r *BrandRepository) FindByID(ctx context.Context, id string) (*entities.Brand, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Brand not found")
	}

	var brand entities.Brand
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&brand)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Brand not found")
	}
	if err != nil {
		return nil, fmt.Errorf("BrandRepository.FindByID: %w", err)
	}
	return &brand, nil
}

func (r *BrandRepository) Insert(ctx context.Context, brand *entities.Brand) error {
	now := time.Now().UTC()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, brand)
	if err != nil {
		return fmt.Errorf("BrandRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		brand.ID = oid
	}
	return nil
}

func (r *BrandRepository) Update(ctx context.Context, id string, set bson.M) (*entities.Brand, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Brand not found")
	}

	set["updatedAt"] = time.Now().UTC()
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("BrandRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NewNotFound("Brand not found")
	}
	return r.FindByID(ctx, id)
}

func (r *BrandRepository) Delete(ctx context.Context, id string) (*entities.Brand, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Brand not found")
	}

	var deleted entities.Brand
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Brand not found")
	}
	if err != nil {
		return nil, fmt.Errorf("BrandRepository.Delete: %w", err)
	}
	return &deleted, nil
}

func (r *BrandRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	return bulkDeleteByIDs(ctx, r.col, ids, "BrandRepository.BulkDelete")
}
