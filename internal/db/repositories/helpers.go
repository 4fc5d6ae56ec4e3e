package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// bulkDeleteByIDs deletes every document whose hex id is in ids, skipping
// malformed ids. Shared by the bulkDelete endpoints.
func bulkDeleteByIDs(ctx context.Context, col *mongo.Collection, ids []string, opName string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}

	res, err := col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opName, err)
	}
	return res.DeletedCount, nil
}
