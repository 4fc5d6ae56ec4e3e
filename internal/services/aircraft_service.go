package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/apperrors"
	"aeromart/internal/common"
	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
	"aeromart/internal/models/entities"
)

const (
	defaultPageSize        = 16
	defaultFiltersPageSize = 10
	latestLimit            = 10
	jetRangeCacheTTL       = 5 * time.Minute
)

// listingStore is the slice of the aircraft repository the listing
// service consumes.
type listingStore interface {
	CountFiltered(ctx context.Context, f dtos.ListingFilter) (int64, error)
	FindPage(ctx context.Context, f dtos.ListingFilter, order dtos.SortOrder, skip, limit int) ([]dtos.AircraftView, error)
	Latest(ctx context.Context, limit int) ([]dtos.AircraftView, error)
	FindByID(ctx context.Context, id string) (*dtos.AircraftView, error)
	Images(ctx context.Context, id string) ([]string, error)
	Insert(ctx context.Context, a *entities.Aircraft) error
	Update(ctx context.Context, id string, patch dtos.AircraftPatch) (*dtos.AircraftView, error)
	Delete(ctx context.Context, id string) (*entities.Aircraft, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	Ranges(ctx context.Context) (*dtos.JetRanges, error)
}

// slugResolver maps category slugs to ids; the concrete implementation
// is CategoryService with its cache.
type slugResolver interface {
	ResolveSlugs(ctx context.Context, slugs []string) ([]primitive.ObjectID, error)
}

// AircraftService implements listing CRUD, the filtered page query, and
// the create/update form pipeline (coercion, sanitization, description
// parsing, image merge, index assignment).
type AircraftService struct {
	store      listingStore
	categories slugResolver
	reorder    *ReorderService
	cache      common.CacheInterface
}

func NewAircraftService(store listingStore, categories slugResolver, reorder *ReorderService, cache common.CacheInterface) *AircraftService {
	return &AircraftService{store: store, categories: categories, reorder: reorder, cache: cache}
}

// List runs the filtered page query. The requested page is clamped into
// the valid range; the response reports both the effective and the
// requested page.
func (s *AircraftService) List(ctx context.Context, params dtos.ListParams) (*dtos.ListResponse, error) {
	pageSize := params.PageSize
	switch {
	case pageSize == 0:
		pageSize = defaultPageSize
	case pageSize < 0:
		pageSize = 1
	}
	pageRequested := params.Page
	if pageRequested < 1 {
		pageRequested = 1
	}

	filter := dtos.ListingFilter{
		MinPrice:    params.MinPrice,
		MaxPrice:    params.MaxPrice,
		MinAirframe: params.MinAirframe,
		MaxAirframe: params.MaxAirframe,
		MinEngine:   params.MinEngine,
		MaxEngine:   params.MaxEngine,
	}

	status := strings.ToLower(strings.TrimSpace(params.Status))
	switch {
	case status != "" && status != constants.StatusAll:
		filter.Status = constants.ListingStatus(status)
	case status == "" && !params.AdminView:
		// Public default view hides closed listings.
		filter.ExcludeStatuses = constants.HiddenByDefault
	}

	if len(params.Categories) > 0 {
		ids, err := s.categories.ResolveSlugs(ctx, params.Categories)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			// None of the given slugs exist, so nothing can match.
			return emptyListResponse(pageRequested, pageSize), nil
		}
		filter.CategoryIDs = ids
	}

	order := dtos.SortIndexAsc
	if constants.PriceSortStatuses[constants.ListingStatus(status)] {
		order = dtos.SortPriceDescIndexAsc
	}

	totalItems, err := s.store.CountFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	pageCount := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	page := 1
	if pageCount > 0 {
		page = pageRequested
		if page > pageCount {
			page = pageCount
		}
	}
	skip := (page - 1) * pageSize

	data, err := s.store.FindPage(ctx, filter, order, skip, pageSize)
	if err != nil {
		return nil, err
	}

	message := constants.MsgAircraftsFound
	if len(data) == 0 {
		message = constants.MsgNoAircraftsFound
	}
	return &dtos.ListResponse{
		Success:       true,
		Message:       message,
		Data:          data,
		Total:         len(data),
		TotalItems:    totalItems,
		Page:          page,
		PageRequested: pageRequested,
		PageSize:      pageSize,
		PageCount:     pageCount,
		HasPrev:       pageCount > 0 && page > 1,
		HasNext:       pageCount > 0 && page < pageCount,
	}, nil
}

func emptyListResponse(pageRequested, pageSize int) *dtos.ListResponse {
	return &dtos.ListResponse{
		Success:       true,
		Message:       constants.MsgNoAircraftsFound,
		Data:          []dtos.AircraftView{},
		Page:          1,
		PageRequested: pageRequested,
		PageSize:      pageSize,
	}
}

// Filters runs the admin-side filter lookup: exact category/status/
// airframe/engine/propeller values, a price range, and a literal title
// substring, in curation order with newest first on equal indexes. No
// page clamping; Total counts the returned page only.
func (s *AircraftService) Filters(ctx context.Context, params dtos.FilterParams) (*dtos.FilterResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	switch {
	case pageSize == 0:
		pageSize = defaultFiltersPageSize
	case pageSize < 0:
		pageSize = 1
	}

	filter := dtos.ListingFilter{
		MinPrice: params.MinPrice,
		MaxPrice: params.MaxPrice,
		// Exact values expressed as degenerate ranges.
		MinAirframe:  params.Airframe,
		MaxAirframe:  params.Airframe,
		MinEngine:    params.Engine,
		MaxEngine:    params.Engine,
		MinPropeller: params.Propeller,
		MaxPropeller: params.Propeller,
	}

	if status := strings.ToLower(strings.TrimSpace(params.Status)); status != "" {
		filter.Status = constants.ListingStatus(status)
	}
	if params.Category != "" {
		categoryID, err := primitive.ObjectIDFromHex(params.Category)
		if err != nil {
			return nil, apperrors.NewValidation("Invalid category id")
		}
		filter.CategoryIDs = []primitive.ObjectID{categoryID}
	}
	if q := strings.TrimSpace(params.Search); q != "" {
		filter.TitlePattern = regexp.QuoteMeta(q)
	}

	skip := (page - 1) * pageSize
	data, err := s.store.FindPage(ctx, filter, dtos.SortIndexAscCreatedDesc, skip, pageSize)
	if err != nil {
		return nil, err
	}

	message := constants.MsgAircraftsFound
	if len(data) == 0 {
		message = constants.MsgNoAircraftsFound
	}
	return &dtos.FilterResponse{
		Success: true,
		Message: message,
		Data:    data,
		Total:   len(data),
	}, nil
}

// Latest returns the front-page strip: curation order, newest first on
// ties.
func (s *AircraftService) Latest(ctx context.Context) ([]dtos.AircraftView, error) {
	return s.store.Latest(ctx, latestLimit)
}

func (s *AircraftService) Get(ctx context.Context, id string) (*dtos.AircraftView, error) {
	return s.store.FindByID(ctx, id)
}

// Ranges returns the min/max price, airframe, and engine bounds the
// filter sliders need. Cached; invalidated on listing writes.
func (s *AircraftService) Ranges(ctx context.Context) (*dtos.JetRanges, error) {
	key := string(constants.CachePrefixJetRanges)
	cached, err := s.cache.GetOrSet(key, jetRangeCacheTTL, func() (any, error) {
		return s.store.Ranges(ctx)
	})
	if err != nil {
		return nil, err
	}

	switch v := cached.(type) {
	case *dtos.JetRanges:
		return v, nil
	case map[string]any:
		// A redis round-trip hands back a generic map.
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var ranges dtos.JetRanges
		if err := json.Unmarshal(raw, &ranges); err != nil {
			return nil, err
		}
		return &ranges, nil
	default:
		return s.store.Ranges(ctx)
	}
}

// Create validates the multipart form, assigns the display index, and
// inserts the listing. imageURLs and featuredURL come from the already
// uploaded files.
func (s *AircraftService) Create(ctx context.Context, form dtos.AircraftForm, imageURLs []string, featuredURL string) (*dtos.AircraftView, error) {
	if form.Title == "" || form.Price == "" || form.Category == "" || form.Location == "" ||
		form.Latitude == "" || form.Longitude == "" || form.Index == "" || form.ContactAgent == "" {
		return nil, apperrors.NewValidation(constants.MsgMissingFields)
	}

	price, err := parseFloat(form.Price)
	if err != nil {
		return nil, apperrors.NewValidation(constants.MsgPriceNotNumeric)
	}

	categoryID, err := primitive.ObjectIDFromHex(form.Category)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid category id")
	}

	description, err := parseDescription(form.Description)
	if err != nil {
		return nil, err
	}

	var agent entities.ContactAgent
	if err := common.DecodeLoose(form.ContactAgent, "contactAgent", &agent); err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	requestedIndex, err := parseIndex(form.Index)
	if err != nil {
		return nil, err
	}
	index, err := s.reorder.AssignOnCreate(ctx, requestedIndex)
	if err != nil {
		return nil, err
	}

	aircraft := &entities.Aircraft{
		Title:        form.Title,
		Year:         optionalFloat(form.Year),
		Price:        &price,
		Status:       constants.ListingStatus(strings.ToLower(strings.TrimSpace(form.Status))),
		Latitude:     form.Latitude,
		Longitude:    form.Longitude,
		CategoryID:   categoryID,
		Airframe:     optionalFloat(form.Airframe),
		Engine:       optionalFloat(form.Engine),
		EngineTwo:    optionalFloat(form.EngineTwo),
		Propeller:    optionalFloat(form.Propeller),
		PropellerTwo: optionalFloat(form.PropellerTwo),
		Overview:     common.SanitizeRichText(form.Overview),
		Description:  description,
		ContactAgent: &agent,
		Images:       imageURLs,
		FeaturedImg:  featuredURL,
		VideoURL:     form.VideoURL,
		Location:     form.Location,
		Index:        index,
	}
	if aircraft.Images == nil {
		aircraft.Images = []string{}
	}

	if err := s.store.Insert(ctx, aircraft); err != nil {
		return nil, err
	}
	s.invalidateRanges()
	return s.store.FindByID(ctx, aircraft.ID.Hex())
}

// Update applies a partial multipart form. uploadedURLs are the newly
// stored gallery images; featuredURL is non-nil only when a new featured
// file was uploaded. The final gallery is keepImages (or the current
// gallery when keepImages is absent or empty) plus the new uploads,
// de-duplicated.
func (s *AircraftService) Update(ctx context.Context, id string, form dtos.AircraftForm, uploadedURLs []string, featuredURL *string) (*dtos.AircraftView, error) {
	patch := dtos.AircraftPatch{FeaturedImg: featuredURL}

	if form.Has("title") {
		patch.Title = &form.Title
	}
	if form.Has("year") {
		patch.Year = optionalFloat(form.Year)
	}
	if form.Has("price") {
		price, err := parseFloat(form.Price)
		if err != nil {
			return nil, apperrors.NewValidation(constants.MsgPriceNotNumeric)
		}
		patch.Price = &price
	}
	if form.Has("status") {
		status := constants.ListingStatus(strings.ToLower(strings.TrimSpace(form.Status)))
		patch.Status = &status
	}
	if form.Has("category") {
		categoryID, err := primitive.ObjectIDFromHex(form.Category)
		if err != nil {
			return nil, apperrors.NewValidation("Invalid category id")
		}
		patch.Category = &categoryID
	}
	if form.Has("location") {
		patch.Location = &form.Location
	}
	if form.Has("latitude") {
		patch.Latitude = &form.Latitude
	}
	if form.Has("longitude") {
		patch.Longitude = &form.Longitude
	}
	if form.Has("overview") {
		overview := common.SanitizeRichText(form.Overview)
		patch.Overview = &overview
	}
	if form.Has("description") {
		description, err := parseDescription(form.Description)
		if err != nil {
			return nil, err
		}
		patch.Description = description
	}
	if form.Has("contactAgent") && form.ContactAgent != "" {
		var agent entities.ContactAgent
		if err := common.DecodeLoose(form.ContactAgent, "contactAgent", &agent); err != nil {
			return nil, apperrors.NewValidation(err.Error())
		}
		patch.ContactAgent = &agent
	}
	if form.Has("videoUrl") {
		patch.VideoURL = &form.VideoURL
	}
	if form.Has("airframe") {
		patch.Airframe = optionalFloat(form.Airframe)
	}
	if form.Has("engine") {
		patch.Engine = optionalFloat(form.Engine)
	}
	if form.Has("engineTwo") {
		patch.EngineTwo = optionalFloat(form.EngineTwo)
	}
	if form.Has("propeller") {
		patch.Propeller = optionalFloat(form.Propeller)
	}
	if form.Has("propellerTwo") {
		patch.PropellerTwo = optionalFloat(form.PropellerTwo)
	}

	if form.Has("index") && form.Index != "" {
		requested, err := parseIndex(form.Index)
		if err != nil {
			return nil, err
		}
		index, err := s.reorder.AssignOnUpdate(ctx, id, *requested)
		if err != nil {
			return nil, err
		}
		patch.Index = &index
	}

	keep, err := parseKeepImages(form)
	if err != nil {
		return nil, err
	}
	if len(keep) == 0 {
		current, err := s.store.Images(ctx, id)
		if err != nil {
			return nil, err
		}
		keep = current
	}
	patch.Images = mergeImages(keep, uploadedURLs)

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidateRanges()
	return updated, nil
}

func (s *AircraftService) Delete(ctx context.Context, id string) (*entities.Aircraft, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateRanges()
	return deleted, nil
}

func (s *AircraftService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	n, err := s.store.BulkDelete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.invalidateRanges()
	return n, nil
}

func (s *AircraftService) invalidateRanges() {
	s.cache.Delete(string(constants.CachePrefixJetRanges))
}

/* ---------- form coercion ---------- */

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// optionalFloat parses an optional numeric field; empty or malformed
// values are simply dropped.
func optionalFloat(s string) *float64 {
	v, err := parseFloat(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseIndex(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return nil, apperrors.NewValidation("Index must be a positive integer greater than 0")
	}
	return &idx, nil
}

// parseDescription requires strict JSON with a sections object; the
// rich-text editor emits it programmatically, so no loose repair here.
func parseDescription(raw string) (*entities.Description, error) {
	var description entities.Description
	if err := json.Unmarshal([]byte(raw), &description); err != nil {
		return nil, apperrors.NewValidation("Invalid description JSON")
	}
	if description.Sections == nil {
		return nil, apperrors.NewValidation(`Invalid description: "sections" is required`)
	}
	return &description, nil
}

func parseKeepImages(form dtos.AircraftForm) ([]string, error) {
	if !form.Has("keepImages") {
		return nil, nil
	}
	var keep []string
	if err := json.Unmarshal([]byte(form.KeepImages), &keep); err != nil {
		return nil, apperrors.NewValidation("Invalid keepImages (must be JSON array of URLs)")
	}
	return keep, nil
}

// mergeImages concatenates kept and newly uploaded URLs, dropping
// duplicates while preserving first-seen order.
func mergeImages(keep, uploaded []string) []string {
	seen := make(map[string]bool, len(keep)+len(uploaded))
	merged := make([]string, 0, len(keep)+len(uploaded))
	for _, url := range append(append([]string{}, keep...), uploaded...) {
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		merged = append(merged, url)
	}
	return merged
}
