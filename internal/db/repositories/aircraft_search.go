package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/models/dtos"
)

// searchProjection is the fixed field subset search exposes; notably
// contactAgent and the full description stay internal.
var searchProjection = bson.M{
	"_score":        1,
	"title":         1,
	"year":          1,
	"price":         1,
	"status":        1,
	"airframe":      1,
	"engine":        1,
	"propeller":     1,
	"overview":      1,
	"featuredImage": 1,
	"images":        1,
	"videoUrl":      1,
	"location":      1,
	"index":         1,
	"category": bson.M{
		"_id":  "$category._id",
		"name": "$category.name",
		"slug": "$category.slug",
	},
	"createdAt": 1,
	"updatedAt": 1,
}

// searchPipeline scores case-insensitive substring matches of the already
// regex-escaped pattern: title 3, overview 2, category name/slug 1.
func searchPipeline(pattern string, skip, limit int) []bson.D {
	regex := primitive.Regex{Pattern: pattern, Options: "i"}
	regexMatch := func(input string) bson.M {
		return bson.M{"$regexMatch": bson.M{"input": input, "regex": pattern, "options": "i"}}
	}

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
		{{Key: "$addFields", Value: bson.M{
			"categoryName": "$category.name",
			"categorySlug": "$category.slug",
		}}},
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"title": bson.M{"$regex": regex}},
			bson.M{"overview": bson.M{"$regex": regex}},
			bson.M{"categoryName": bson.M{"$regex": regex}},
			bson.M{"categorySlug": bson.M{"$regex": regex}},
		}}}},
		{{Key: "$addFields", Value: bson.M{
			"_score": bson.M{"$add": bson.A{
				bson.M{"$cond": bson.A{regexMatch("$title"), 3, 0}},
				bson.M{"$cond": bson.A{regexMatch("$overview"), 2, 0}},
				bson.M{"$cond": bson.A{
					bson.M{"$or": bson.A{
						regexMatch("$categoryName"),
						regexMatch("$categorySlug"),
					}},
					1, 0,
				}},
			}},
		}}},
		{{Key: "$facet", Value: bson.M{
			"data": bson.A{
				bson.M{"$sort": bson.D{{Key: "_score", Value: -1}, {Key: "updatedAt", Value: -1}}},
				bson.M{"$project": searchProjection},
				bson.M{"$skip": skip},
				bson.M{"$limit": limit},
			},
			"total": bson.A{bson.M{"$count": "count"}},
		}}},
		{{Key: "$project", Value: bson.M{
			"data":  1,
			"total": bson.M{"$ifNull": bson.A{bson.M{"$arrayElemAt": bson.A{"$total.count", 0}}, 0}},
		}}},
	}
}

// Search runs the relevance pipeline and returns one page of scored
// results plus the total match count.
func (r *AircraftRepository) Search(ctx context.Context, pattern string, skip, limit int) ([]dtos.SearchResult, int64, error) {
	cur, err := r.col.Aggregate(ctx, searchPipeline(pattern, skip, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("AircraftRepository.Search: %w", err)
	}
	defer cur.Close(ctx)

	var out []struct {
		Data  []dtos.SearchResult `bson:"data"`
		Total int64               `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("AircraftRepository.Search decode: %w", err)
	}
	if len(out) == 0 {
		return []dtos.SearchResult{}, 0, nil
	}
	if out[0].Data == nil {
		out[0].Data = []dtos.SearchResult{}
	}
	return out[0].Data, out[0].Total, nil
}
