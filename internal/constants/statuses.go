package constants

// ListingStatus is the sale state of an aircraft listing.
type ListingStatus string

const (
	StatusForSale     ListingStatus = "for-sale"
	StatusSold        ListingStatus = "sold"
	StatusWanted      ListingStatus = "wanted"
	StatusComingSoon  ListingStatus = "coming-soon"
	StatusSalePending ListingStatus = "sale-pending"
	StatusOffMarket   ListingStatus = "off-market"
	StatusAcquired    ListingStatus = "acquired"
)

// ListingStatuses is the full status enumeration, used for input validation.
var ListingStatuses = map[ListingStatus]bool{
	StatusForSale:     true,
	StatusSold:        true,
	StatusWanted:      true,
	StatusComingSoon:  true,
	StatusSalePending: true,
	StatusOffMarket:   true,
	StatusAcquired:    true,
}

// PriceSortStatuses are the "active market" statuses. Lists filtered to one
// of these sort by price descending; every other view keeps curation order.
var PriceSortStatuses = map[ListingStatus]bool{
	StatusForSale:     true,
	StatusComingSoon:  true,
	StatusSalePending: true,
	StatusWanted:      true,
}

// HiddenByDefault are the statuses excluded from the public list when no
// explicit status filter is given.
var HiddenByDefault = []ListingStatus{StatusSold, StatusAcquired}

// StatusAll lifts the status restriction entirely (admin view).
const StatusAll = "all"
