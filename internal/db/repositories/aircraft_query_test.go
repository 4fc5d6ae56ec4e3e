package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
)

func stageValue(t *testing.T, pipeline []bson.D, pos int, key string) interface{} {
	t.Helper()
	require.Greater(t, len(pipeline), pos)
	stage := pipeline[pos]
	require.Len(t, stage, 1)
	require.Equal(t, key, stage[0].Key)
	return stage[0].Value
}

func TestSearchPipelineMatchesAllScoredFields(t *testing.T) {
	pipeline := searchPipeline("citation", 0, 12)

	match := stageValue(t, pipeline, 3, "$match").(bson.M)
	or, ok := match["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 4)

	fields := make([]string, 0, 4)
	for _, clause := range or {
		m := clause.(bson.M)
		require.Len(t, m, 1)
		for field, cond := range m {
			fields = append(fields, field)
			regex := cond.(bson.M)["$regex"].(primitive.Regex)
			assert.Equal(t, "citation", regex.Pattern)
			assert.Equal(t, "i", regex.Options)
		}
	}
	assert.ElementsMatch(t, []string{"title", "overview", "categoryName", "categorySlug"}, fields)
}

func TestSearchPipelineScoreWeights(t *testing.T) {
	pipeline := searchPipeline("citation", 0, 12)

	addFields := stageValue(t, pipeline, 4, "$addFields").(bson.M)
	terms, ok := addFields["_score"].(bson.M)["$add"].(bson.A)
	require.True(t, ok)
	require.Len(t, terms, 3)

	condOf := func(i int) bson.A { return terms[i].(bson.M)["$cond"].(bson.A) }

	assert.Equal(t, 3, condOf(0)[1])
	assert.Equal(t, 2, condOf(1)[1])
	assert.Equal(t, 1, condOf(2)[1])
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, condOf(i)[2])
	}

	assert.Equal(t, "$title", condOf(0)[0].(bson.M)["$regexMatch"].(bson.M)["input"])
	assert.Equal(t, "$overview", condOf(1)[0].(bson.M)["$regexMatch"].(bson.M)["input"])

	// one point for matching either category field, never two
	branches, ok := condOf(2)[0].(bson.M)["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, branches, 2)
	inputs := []string{
		branches[0].(bson.M)["$regexMatch"].(bson.M)["input"].(string),
		branches[1].(bson.M)["$regexMatch"].(bson.M)["input"].(string),
	}
	assert.ElementsMatch(t, []string{"$categoryName", "$categorySlug"}, inputs)
}

func TestSearchPipelineSortProjectionAndPaging(t *testing.T) {
	pipeline := searchPipeline("citation", 24, 12)

	facet := stageValue(t, pipeline, 5, "$facet").(bson.M)
	data, ok := facet["data"].(bson.A)
	require.True(t, ok)
	require.Len(t, data, 4)

	sort := data[0].(bson.M)["$sort"].(bson.D)
	require.Len(t, sort, 2)
	assert.Equal(t, bson.E{Key: "_score", Value: -1}, sort[0])
	assert.Equal(t, bson.E{Key: "updatedAt", Value: -1}, sort[1])

	projection := data[1].(bson.M)["$project"].(bson.M)
	assert.NotContains(t, projection, "contactAgent")
	assert.NotContains(t, projection, "description")
	assert.Contains(t, projection, "title")
	assert.Contains(t, projection, "_score")

	assert.Equal(t, 24, data[2].(bson.M)["$skip"])
	assert.Equal(t, 12, data[3].(bson.M)["$limit"])
}

func TestFilterQueryStatusPredicates(t *testing.T) {
	q := filterQuery(dtos.ListingFilter{Status: constants.StatusSold})
	assert.Equal(t, constants.StatusSold, q["status"])

	q = filterQuery(dtos.ListingFilter{ExcludeStatuses: constants.HiddenByDefault})
	assert.Equal(t, bson.M{"$nin": constants.HiddenByDefault}, q["status"])

	// an exact status wins over the exclusion list
	q = filterQuery(dtos.ListingFilter{
		Status:          constants.StatusWanted,
		ExcludeStatuses: constants.HiddenByDefault,
	})
	assert.Equal(t, constants.StatusWanted, q["status"])

	assert.Empty(t, filterQuery(dtos.ListingFilter{}))
}

func TestFilterQueryRangesAndTitle(t *testing.T) {
	min, max := 100.0, 500.0
	q := filterQuery(dtos.ListingFilter{
		MinPrice:     &min,
		MaxPrice:     &max,
		MinAirframe:  &min,
		MinPropeller: &min,
		MaxPropeller: &min,
		TitlePattern: `king air`,
	})

	assert.Equal(t, bson.M{"$gte": 100.0, "$lte": 500.0}, q["price"])
	assert.Equal(t, bson.M{"$gte": 100.0}, q["airframe"])
	assert.Equal(t, bson.M{"$gte": 100.0, "$lte": 100.0}, q["propeller"])
	assert.NotContains(t, q, "engine")

	regex := q["title"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, "king air", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestSortSpecPerOrder(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "index", Value: 1}}, sortSpec(dtos.SortIndexAsc))
	assert.Equal(t,
		bson.D{{Key: "price", Value: -1}, {Key: "index", Value: 1}},
		sortSpec(dtos.SortPriceDescIndexAsc))
	assert.Equal(t,
		bson.D{{Key: "index", Value: 1}, {Key: "createdAt", Value: -1}},
		sortSpec(dtos.SortIndexAscCreatedDesc))
}
