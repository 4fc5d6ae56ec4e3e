package constants

const (
	MsgAircraftsFound   = "Aircrafts found"
	MsgNoAircraftsFound = "No aircrafts found"
	MsgAircraftFound    = "Aircraft found"
	MsgAircraftNotFound = "Aircraft not found"
	MsgAircraftCreated  = "Aircraft created"
	MsgAircraftUpdated  = "Aircraft updated"
	MsgAircraftDeleted  = "Aircraft deleted"
	MsgAircraftsDeleted = "Aircrafts deleted"

	MsgMissingFields   = "Missing required fields"
	MsgInvalidPayload  = "Invalid payload"
	MsgPriceNotNumeric = "Price must be a number"
)

type CachePrefix string

const (
	CachePrefixCategorySlugs CachePrefix = "CATEGORY_SLUGS"
	CachePrefixJetRanges     CachePrefix = "JET_RANGES"
)
