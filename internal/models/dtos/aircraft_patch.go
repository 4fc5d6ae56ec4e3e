package dtos

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/constants"
	"aeromart/internal/models/entities"
)

// AircraftPatch holds the fields an update supplies; nil means "leave
// alone". Images is always written because the keepImages merge decides the
// final gallery on every update.
type AircraftPatch struct {
	Title        *string
	Year         *float64
	Price        *float64
	Status       *constants.ListingStatus
	Category     *primitive.ObjectID
	Location     *string
	Latitude     *string
	Longitude    *string
	Overview     *string
	Description  *entities.Description
	ContactAgent *entities.ContactAgent
	Airframe     *float64
	Engine       *float64
	EngineTwo    *float64
	Propeller    *float64
	PropellerTwo *float64
	VideoURL     *string
	FeaturedImg  *string
	Index        *int
	Images       []string
}

// SetFields flattens the patch into the $set document the repository
// applies.
func (p AircraftPatch) SetFields() bson.M {
	set := bson.M{"images": p.Images}
	if p.Images == nil {
		set["images"] = []string{}
	}

	put := func(key string, v any, present bool) {
		if present {
			set[key] = v
		}
	}
	put("title", deref(p.Title), p.Title != nil)
	put("year", deref(p.Year), p.Year != nil)
	put("price", deref(p.Price), p.Price != nil)
	put("status", deref(p.Status), p.Status != nil)
	put("category", deref(p.Category), p.Category != nil)
	put("location", deref(p.Location), p.Location != nil)
	put("latitude", deref(p.Latitude), p.Latitude != nil)
	put("longitude", deref(p.Longitude), p.Longitude != nil)
	put("overview", deref(p.Overview), p.Overview != nil)
	put("airframe", deref(p.Airframe), p.Airframe != nil)
	put("engine", deref(p.Engine), p.Engine != nil)
	put("engineTwo", deref(p.EngineTwo), p.EngineTwo != nil)
	put("propeller", deref(p.Propeller), p.Propeller != nil)
	put("propellerTwo", deref(p.PropellerTwo), p.PropellerTwo != nil)
	put("videoUrl", deref(p.VideoURL), p.VideoURL != nil)
	put("featuredImage", deref(p.FeaturedImg), p.FeaturedImg != nil)
	put("index", deref(p.Index), p.Index != nil)
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.ContactAgent != nil {
		set["contactAgent"] = *p.ContactAgent
	}
	return set
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
