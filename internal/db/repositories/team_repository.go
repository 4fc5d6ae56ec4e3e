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

type TeamRepository struct {
	col *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{col: db.Collection("teams")}
}

func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("TeamRepository.Count: %w", err)
	}
	return n, nil
}

func (r *TeamRepository) FindAll(ctx context.Context) ([]entities.TeamMember, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("TeamRepository.FindAll: %w", err)
	}
	defer cur.Close(ctx)

	members := []entities.TeamMember{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("TeamRepository.FindAll decode: %w", err)
	}
	return members, nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*entities.TeamMember, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Team not found")
	}

	var member entities.TeamMember
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&member)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Team not found")
	}
	if err != nil {
		return nil, fmt.Errorf("TeamRepository.FindByID: %w", err)
	}
	return &member, nil
}

func (r *TeamRepository) Insert(ctx context.Context, member *entities.TeamMember) error {
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, member)
	if err != nil {
		return fmt.Errorf("TeamRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		member.ID = oid
	}
	return nil
}

// Update writes the supplied non-nil fields; picture URLs are only
// replaced when a new upload produced one.
func (r *TeamRepository) Update(ctx context.Context, id string, set bson.M) (*entities.TeamMember, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Team not found")
	}

	set["updatedAt"] = time.Now().UTC()
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("TeamRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NewNotFound("Team not found")
	}
	return r.FindByID(ctx, id)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) (*entities.TeamMember, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Team not found")
	}

	var deleted entities.TeamMember
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound("Team not found")
	}
	if err != nil {
		return nil, fmt.Errorf("TeamRepository.Delete: %w", err)
	}
	return &deleted, nil
}

func (r *TeamRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	return bulkDeleteByIDs(ctx, r.col, ids, "TeamRepository.BulkDelete")
}
