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

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection("contacts")}
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]entities.Contact, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ContactRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	contacts := []entities.Contact{}
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("ContactRepository.FindAll decode: %w", err)
	}
	return contacts, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entities.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Contact not found")
	}

	var contact entities.Contact
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Contact not found")
	}
	if err != nil {
		return nil, fmt.Errorf("ContactRepository.FindByID: %w", err)
	}
	return &contact, nil
}

func (r *ContactRepository) Insert(ctx context.Context, contact *entities.Contact) error {
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("ContactRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid
	}
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, id string, set bson.M) (*entities.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Contact not found")
	}

	set["updatedAt"] = time.Now().UTC()
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("ContactRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NewNotFound("Contact not found")
	}
	return r.FindByID(ctx, id)
}

func (r *ContactRepository) Delete(ctx context.Context, id string) (*entities.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Contact not found")
	}

	var deleted entities.Contact
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Contact not found")
	}
	if err != nil {
		return nil, fmt.Errorf("ContactRepository.Delete: %w", err)
	}
	return &deleted, nil
}
