package dtos

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/constants"
)

// ListParams are the parsed query parameters for the listing list endpoints.
// Numeric bounds are nil when absent; Categories holds raw slugs.
type ListParams struct {
	Status      string
	Categories  []string
	MinPrice    *float64
	MaxPrice    *float64
	MinAirframe *float64
	MaxAirframe *float64
	MinEngine   *float64
	MaxEngine   *float64
	Page        int
	PageSize    int
	// AdminView lifts the default sold/acquired exclusion when no status
	// filter is given.
	AdminView bool
}

// FilterParams are the parsed query parameters for the filters endpoint.
// Airframe/Engine/Propeller are exact hour values, not ranges; Search is
// a raw title substring.
type FilterParams struct {
	Category  string
	Status    string
	Airframe  *float64
	Engine    *float64
	Propeller *float64
	MinPrice  *float64
	MaxPrice  *float64
	Search    string
	Page      int
	PageSize  int
}

// ListingFilter is the repository-level predicate the query engine builds.
type ListingFilter struct {
	// Status restricts to exactly one status when set.
	Status constants.ListingStatus
	// ExcludeStatuses drops the listed statuses (public default view).
	ExcludeStatuses []constants.ListingStatus
	// CategoryIDs restricts to listings in any of the resolved categories.
	CategoryIDs []primitive.ObjectID
	// TitlePattern is an already regex-escaped case-insensitive title
	// predicate.
	TitlePattern string

	MinPrice     *float64
	MaxPrice     *float64
	MinAirframe  *float64
	MaxAirframe  *float64
	MinEngine    *float64
	MaxEngine    *float64
	MinPropeller *float64
	MaxPropeller *float64
}

// SortOrder selects how a listing page is ordered.
type SortOrder int

const (
	// SortIndexAsc is curation order: index ascending.
	SortIndexAsc SortOrder = iota
	// SortPriceDescIndexAsc foregrounds price for active-market statuses,
	// tie-broken by index ascending.
	SortPriceDescIndexAsc
	// SortIndexAscCreatedDesc is curation order with newest first on equal
	// indexes, used by the filters endpoint.
	SortIndexAscCreatedDesc
)
