package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aeromart/internal/apperrors"
	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
	"aeromart/internal/models/entities"
)

const (
	aircraftCollection = "aircrafts"
	categoryCollection = "aircraftcategories"
)

// AircraftRepository handles all aircraft listing persistence, including
// the bulk index shifts the reorder engine relies on.
type AircraftRepository struct {
	col *mongo.Collection
}

func NewAircraftRepository(db *mongo.Database) *AircraftRepository {
	return &AircraftRepository{col: db.Collection(aircraftCollection)}
}

// categoryLookupStages joins the referenced category document, keeping
// listings without one.
func categoryLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         categoryCollection,
			"localField":   "category",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// filterQuery translates the query engine's predicate into a Mongo filter.
func filterQuery(f dtos.ListingFilter) bson.M {
	q := bson.M{}

	if f.Status != "" {
		q["status"] = f.Status
	} else if len(f.ExcludeStatuses) > 0 {
		q["status"] = bson.M{"$nin": f.ExcludeStatuses}
	}

	if len(f.CategoryIDs) > 0 {
		q["category"] = bson.M{"$in": f.CategoryIDs}
	}

	if f.TitlePattern != "" {
		q["title"] = bson.M{"$regex": primitive.Regex{Pattern: f.TitlePattern, Options: "i"}}
	}

	addRange := func(field string, min, max *float64) {
		if min == nil && max == nil {
			return
		}
		r := bson.M{}
		if min != nil {
			r["$gte"] = *min
		}
		if max != nil {
			r["$lte"] = *max
		}
		q[field] = r
	}
	addRange("price", f.MinPrice, f.MaxPrice)
	addRange("airframe", f.MinAirframe, f.MaxAirframe)
	addRange("engine", f.MinEngine, f.MaxEngine)
	addRange("propeller", f.MinPropeller, f.MaxPropeller)

	return q
}

func sortSpec(order dtos.SortOrder) bson.D {
	switch order {
	case dtos.SortPriceDescIndexAsc:
		return bson.D{{Key: "price", Value: -1}, {Key: "index", Value: 1}}
	case dtos.SortIndexAscCreatedDesc:
		return bson.D{{Key: "index", Value: 1}, {Key: "createdAt", Value: -1}}
	default:
		return bson.D{{Key: "index", Value: 1}}
	}
}

// Count returns the total number of listings.
func (r *AircraftRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("AircraftRepository.Count: %w", err)
	}
	return n, nil
}

// CountFiltered counts listings matching the filter.
func (r *AircraftRepository) CountFiltered(ctx context.Context, f dtos.ListingFilter) (int64, error) {
	n, err := r.col.CountDocuments(ctx, filterQuery(f))
	if err != nil {
		return 0, fmt.Errorf("AircraftRepository.CountFiltered: %w", err)
	}
	return n, nil
}

// FindPage fetches one sorted page matching the filter with the category
// joined in.
func (r *AircraftRepository) FindPage(ctx context.Context, f dtos.ListingFilter, order dtos.SortOrder, skip, limit int) ([]dtos.AircraftView, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: filterQuery(f)}},
		{{Key: "$sort", Value: sortSpec(order)}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, categoryLookupStages()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("AircraftRepository.FindPage: %w", err)
	}
	defer cur.Close(ctx)

	views := []dtos.AircraftView{}
	if err := cur.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("AircraftRepository.FindPage decode: %w", err)
	}
	return views, nil
}

// Latest returns the first few listings in curation order, newest first
// within equal indexes.
func (r *AircraftRepository) Latest(ctx context.Context, limit int) ([]dtos.AircraftView, error) {
	pipeline := []bson.D{
		{{Key: "$sort", Value: bson.D{{Key: "index", Value: 1}, {Key: "createdAt", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, categoryLookupStages()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("AircraftRepository.Latest: %w", err)
	}
	defer cur.Close(ctx)

	views := []dtos.AircraftView{}
	if err := cur.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("AircraftRepository.Latest decode: %w", err)
	}
	return views, nil
}

// FindByID returns one listing with its category joined, or NotFoundError.
func (r *AircraftRepository) FindByID(ctx context.Context, id string) (*dtos.AircraftView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{"_id": oid}}},
	}
	pipeline = append(pipeline, categoryLookupStages()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("AircraftRepository.FindByID: %w", err)
	}
	defer cur.Close(ctx)

	var views []dtos.AircraftView
	if err := cur.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("AircraftRepository.FindByID decode: %w", err)
	}
	if len(views) == 0 {
		return nil, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}
	return &views[0], nil
}

// Images returns the stored gallery URLs for one listing.
func (r *AircraftRepository) Images(ctx context.Context, id string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}

	var doc struct {
		Images []string `bson:"images"`
	}
	err = r.col.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"images": 1})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("AircraftRepository.Images: %w", err)
	}
	return doc.Images, nil
}

// Insert stores a new listing, stamping timestamps and filling a.ID.
func (r *AircraftRepository) Insert(ctx context.Context, a *entities.Aircraft) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Images == nil {
		a.Images = []string{}
	}

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("AircraftRepository.Insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

// Update applies the patch and returns the updated listing with its
// category joined, or NotFoundError.
func (r *AircraftRepository) Update(ctx context.Context, id string, patch dtos.AircraftPatch) (*dtos.AircraftView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}

	set := patch.SetFields()
	set["updatedAt"] = time.Now().UTC()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("AircraftRepository.Update: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}

	return r.FindByID(ctx, id)
}

// Delete removes one listing and returns the removed document. Remaining
// indexes are left untouched; the gap persists until a later reorder
// crosses it.
func (r *AircraftRepository) Delete(ctx context.Context, id string) (*entities.Aircraft, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}

	var deleted entities.Aircraft
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("AircraftRepository.Delete: %w", err)
	}
	return &deleted, nil
}

// BulkDelete removes every listing whose id is in ids; malformed ids are
// skipped.
func (r *AircraftRepository) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("AircraftRepository.BulkDelete: %w", err)
	}
	return res.DeletedCount, nil
}

// Ranges computes the min/max price, airframe and engine bounds across all
// listings.
func (r *AircraftRepository) Ranges(ctx context.Context) (*dtos.JetRanges, error) {
	pipeline := []bson.D{
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"minPrice":    bson.M{"$min": "$price"},
			"maxPrice":    bson.M{"$max": "$price"},
			"minAirframe": bson.M{"$min": "$airframe"},
			"maxAirframe": bson.M{"$max": "$airframe"},
			"minEngine":   bson.M{"$min": "$engine"},
			"maxEngine":   bson.M{"$max": "$engine"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("AircraftRepository.Ranges: %w", err)
	}
	defer cur.Close(ctx)

	var out []dtos.JetRanges
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("AircraftRepository.Ranges decode: %w", err)
	}
	if len(out) == 0 {
		return nil, apperrors.NewNotFound(constants.MsgNoAircraftsFound)
	}
	return &out[0], nil
}

// IndexOf returns the stored display index for one listing. A missing
// record is NotFoundError; a record without a usable index reports 0.
func (r *AircraftRepository) IndexOf(ctx context.Context, id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}

	var doc struct {
		Index int `bson:"index"`
	}
	err = r.col.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"index": 1})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, apperrors.NewNotFound(constants.MsgAircraftNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("AircraftRepository.IndexOf: %w", err)
	}
	return doc.Index, nil
}

// ShiftIndexesAtOrAbove adds delta to the index of every listing whose
// index >= from, excluding excludeID when given. Returns how many records
// moved.
func (r *AircraftRepository) ShiftIndexesAtOrAbove(ctx context.Context, from, delta int, excludeID string) (int64, error) {
	filter := bson.M{"index": bson.M{"$gte": from}}
	if excludeID != "" {
		oid, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return 0, apperrors.NewNotFound(constants.MsgAircraftNotFound)
		}
		filter["_id"] = bson.M{"$ne": oid}
	}

	res, err := r.col.UpdateMany(ctx, filter, bson.M{"$inc": bson.M{"index": delta}})
	if err != nil {
		return 0, fmt.Errorf("AircraftRepository.ShiftIndexesAtOrAbove: %w", err)
	}
	return res.ModifiedCount, nil
}

// ShiftIndexesBetween adds delta to the index of every listing whose index
// lies in [lo, hi], excluding excludeID. Returns how many records moved.
func (r *AircraftRepository) ShiftIndexesBetween(ctx context.Context, lo, hi, delta int, excludeID string) (int64, error) {
	filter := bson.M{"index": bson.M{"$gte": lo, "$lte": hi}}
	if excludeID != "" {
		oid, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return 0, apperrors.NewNotFound(constants.MsgAircraftNotFound)
		}
		filter["_id"] = bson.M{"$ne": oid}
	}

	res, err := r.col.UpdateMany(ctx, filter, bson.M{"$inc": bson.M{"index": delta}})
	if err != nil {
		return 0, fmt.Errorf("AircraftRepository.ShiftIndexesBetween: %w", err)
	}
	return res.ModifiedCount, nil
}

// CompactIndexes rewrites all listing indexes into a dense 1..N sequence in
// current index order. Maintenance operation only; deletes deliberately do
// not call it.
func (r *AircraftRepository) CompactIndexes(ctx context.Context) error {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "index", Value: 1}}).SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return fmt.Errorf("AircraftRepository.CompactIndexes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return fmt.Errorf("AircraftRepository.CompactIndexes decode: %w", err)
	}

	models := make([]mongo.WriteModel, 0, len(docs))
	for i, doc := range docs {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": doc.ID}).
			SetUpdate(bson.M{"$set": bson.M{"index": i + 1}}))
	}
	if len(models) == 0 {
		return nil
	}
	if _, err := r.col.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("AircraftRepository.CompactIndexes write: %w", err)
	}
	return nil
}
