package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/constants"
)

// ContactAgent is the broker contact attached to a listing.
type ContactAgent struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// DescriptionSection is one block of the versioned structured description.
type DescriptionSection struct {
	HTML  string   `bson:"html,omitempty" json:"html,omitempty"`
	Text  string   `bson:"text,omitempty" json:"text,omitempty"`
	Items []string `bson:"items,omitempty" json:"items,omitempty"`
}

// Description is a versioned map of section key to content.
type Description struct {
	Version  int                           `bson:"version" json:"version"`
	Sections map[string]DescriptionSection `bson:"sections" json:"sections"`
}

// Aircraft is a marketplace listing. Index is the manually curated 1-based
// display rank; across the collection the indexes form a dense 1..N
// sequence (deletes may leave a gap until the next reorder touches it).
type Aircraft struct {
	ID           primitive.ObjectID      `bson:"_id,omitempty" json:"_id"`
	Title        string                  `bson:"title" json:"title"`
	Year         *float64                `bson:"year,omitempty" json:"year,omitempty"`
	Price        *float64                `bson:"price,omitempty" json:"price,omitempty"`
	Status       constants.ListingStatus `bson:"status,omitempty" json:"status,omitempty"`
	Latitude     string                  `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    string                  `bson:"longitude,omitempty" json:"longitude,omitempty"`
	CategoryID   primitive.ObjectID      `bson:"category,omitempty" json:"category,omitempty"`
	Airframe     *float64                `bson:"airframe,omitempty" json:"airframe,omitempty"`
	Engine       *float64                `bson:"engine,omitempty" json:"engine,omitempty"`
	EngineTwo    *float64                `bson:"engineTwo,omitempty" json:"engineTwo,omitempty"`
	Propeller    *float64                `bson:"propeller,omitempty" json:"propeller,omitempty"`
	PropellerTwo *float64                `bson:"propellerTwo,omitempty" json:"propellerTwo,omitempty"`
	Overview     string                  `bson:"overview,omitempty" json:"overview,omitempty"`
	Description  *Description            `bson:"description,omitempty" json:"description,omitempty"`
	ContactAgent *ContactAgent           `bson:"contactAgent,omitempty" json:"contactAgent,omitempty"`
	Images       []string                `bson:"images" json:"images"`
	FeaturedImg  string                  `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	VideoURL     string                  `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Location     string                  `bson:"location,omitempty" json:"location,omitempty"`
	Index        int                     `bson:"index" json:"index"`
	CreatedAt    time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time               `bson:"updatedAt" json:"updatedAt"`
}
