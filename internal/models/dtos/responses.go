package dtos

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/constants"
	"aeromart/internal/models/entities"
)

// CategorySummary is the joined category shape embedded in listing views.
type CategorySummary struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
	Slug string             `bson:"slug" json:"slug"`
}

// AircraftView is a listing with its category joined in, as returned by the
// list/get endpoints.
type AircraftView struct {
	ID           primitive.ObjectID           `bson:"_id" json:"_id"`
	Title        string                       `bson:"title" json:"title"`
	Year         *float64                     `bson:"year,omitempty" json:"year,omitempty"`
	Price        *float64                     `bson:"price,omitempty" json:"price,omitempty"`
	Status       constants.ListingStatus      `bson:"status,omitempty" json:"status,omitempty"`
	Latitude     string                       `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    string                       `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Category     *CategorySummary             `bson:"category,omitempty" json:"category,omitempty"`
	Airframe     *float64                     `bson:"airframe,omitempty" json:"airframe,omitempty"`
	Engine       *float64                     `bson:"engine,omitempty" json:"engine,omitempty"`
	EngineTwo    *float64                     `bson:"engineTwo,omitempty" json:"engineTwo,omitempty"`
	Propeller    *float64                     `bson:"propeller,omitempty" json:"propeller,omitempty"`
	PropellerTwo *float64                     `bson:"propellerTwo,omitempty" json:"propellerTwo,omitempty"`
	Overview     string                       `bson:"overview,omitempty" json:"overview,omitempty"`
	Description  *entities.Description        `bson:"description,omitempty" json:"description,omitempty"`
	ContactAgent *entities.ContactAgent       `bson:"contactAgent,omitempty" json:"contactAgent,omitempty"`
	Images       []string                     `bson:"images" json:"images"`
	FeaturedImg  string                       `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	VideoURL     string                       `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Location     string                       `bson:"location,omitempty" json:"location,omitempty"`
	Index        int                          `bson:"index" json:"index"`
	CreatedAt    time.Time                    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time                    `bson:"updatedAt" json:"updatedAt"`
}

// SearchResult is the fixed projection search returns; internal fields such
// as contactAgent are deliberately not exposed.
type SearchResult struct {
	ID          primitive.ObjectID      `bson:"_id" json:"_id"`
	Score       int                     `bson:"_score" json:"_score"`
	Title       string                  `bson:"title" json:"title"`
	Year        *float64                `bson:"year,omitempty" json:"year,omitempty"`
	Price       *float64                `bson:"price,omitempty" json:"price,omitempty"`
	Status      constants.ListingStatus `bson:"status,omitempty" json:"status,omitempty"`
	Airframe    *float64                `bson:"airframe,omitempty" json:"airframe,omitempty"`
	Engine      *float64                `bson:"engine,omitempty" json:"engine,omitempty"`
	Propeller   *float64                `bson:"propeller,omitempty" json:"propeller,omitempty"`
	Overview    string                  `bson:"overview,omitempty" json:"overview,omitempty"`
	FeaturedImg string                  `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Images      []string                `bson:"images" json:"images"`
	VideoURL    string                  `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Location    string                  `bson:"location,omitempty" json:"location,omitempty"`
	Index       int                     `bson:"index" json:"index"`
	Category    *CategorySummary        `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// ListResponse is the paginated list envelope. Page is the effective
// (clamped) page; PageRequested echoes what the caller asked for.
type ListResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Data          []AircraftView `json:"data"`
	Total         int            `json:"total"`
	TotalItems    int64          `json:"totalItems"`
	Page          int            `json:"page"`
	PageRequested int            `json:"pageRequested"`
	PageSize      int            `json:"pageSize"`
	PageCount     int            `json:"pageCount"`
	HasPrev       bool           `json:"hasPrev"`
	HasNext       bool           `json:"hasNext"`
}

// FilterResponse is the lighter envelope of the filters endpoint; Total
// counts the returned page only.
type FilterResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []AircraftView `json:"data"`
	Total   int            `json:"total"`
}

// SearchResponse is the relevance search envelope.
type SearchResponse struct {
	Success bool           `json:"success"`
	Data    []SearchResult `json:"data"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	HasMore bool           `json:"hasMore"`
}

// JetRanges carries the min/max bounds the filter UI needs.
type JetRanges struct {
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	MinAirframe float64 `json:"minAirframe"`
	MaxAirframe float64 `json:"maxAirframe"`
	MinEngine   float64 `json:"minEngine"`
	MaxEngine   float64 `json:"maxEngine"`
}

// AnalysisCounts is the dashboard entity-count summary.
type AnalysisCounts struct {
	Aircraft int64 `json:"aircraft"`
	Team     int64 `json:"team"`
	Review   int64 `json:"review"`
	Blog     int64 `json:"blog"`
}
