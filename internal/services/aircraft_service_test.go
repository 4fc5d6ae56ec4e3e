package services

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/apperrors"
	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
	"aeromart/internal/models/entities"
)

// fakeListingStore records the filter and sort the service builds and
// serves a fixed number of listings.
type fakeListingStore struct {
	total      int64
	lastFilter dtos.ListingFilter
	lastOrder  dtos.SortOrder
	lastSkip   int
	lastLimit  int
	pageCalled bool
	images     []string
	updated    *dtos.AircraftPatch
}

func (f *fakeListingStore) CountFiltered(ctx context.Context, filter dtos.ListingFilter) (int64, error) {
	f.lastFilter = filter
	return f.total, nil
}

func (f *fakeListingStore) FindPage(ctx context.Context, filter dtos.ListingFilter, order dtos.SortOrder, skip, limit int) ([]dtos.AircraftView, error) {
	f.pageCalled = true
	f.lastFilter = filter
	f.lastOrder = order
	f.lastSkip = skip
	f.lastLimit = limit

	remaining := int(f.total) - skip
	if remaining < 0 {
		remaining = 0
	}
	if remaining > limit {
		remaining = limit
	}
	page := make([]dtos.AircraftView, remaining)
	return page, nil
}

func (f *fakeListingStore) Latest(ctx context.Context, limit int) ([]dtos.AircraftView, error) {
	return []dtos.AircraftView{}, nil
}

func (f *fakeListingStore) FindByID(ctx context.Context, id string) (*dtos.AircraftView, error) {
	return &dtos.AircraftView{Title: "stub"}, nil
}

func (f *fakeListingStore) Images(ctx context.Context, id string) ([]string, error) {
	return f.images, nil
}

func (f *fakeListingStore) Insert(ctx context.Context, a *entities.Aircraft) error {
	a.ID = primitive.NewObjectID()
	return nil
}

func (f *fakeListingStore) Update(ctx context.Context, id string, patch dtos.AircraftPatch) (*dtos.AircraftView, error) {
	f.updated = &patch
	return &dtos.AircraftView{}, nil
}

func (f *fakeListingStore) Delete(ctx context.Context, id string) (*entities.Aircraft, error) {
	return &entities.Aircraft{}, nil
}

func (f *fakeListingStore) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	return int64(len(ids)), nil
}

func (f *fakeListingStore) Ranges(ctx context.Context) (*dtos.JetRanges, error) {
	return &dtos.JetRanges{MinPrice: 1, MaxPrice: 2}, nil
}

type fakeSlugResolver struct {
	ids    []primitive.ObjectID
	called bool
}

func (f *fakeSlugResolver) ResolveSlugs(ctx context.Context, slugs []string) ([]primitive.ObjectID, error) {
	f.called = true
	return f.ids, nil
}

// fakeCache is a no-op cache that always misses.
type fakeCache struct{}

func (fakeCache) Set(key string, value interface{}, duration time.Duration) {}
func (fakeCache) Get(key string) (interface{}, bool)                        { return nil, false }
func (fakeCache) Delete(key string)                                         {}
func (fakeCache) Close() error                                              { return nil }
func (fakeCache) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	return loader()
}

func newTestAircraftService(store *fakeListingStore, resolver *fakeSlugResolver) *AircraftService {
	if resolver == nil {
		resolver = &fakeSlugResolver{}
	}
	reorder := NewReorderService(newFakeIndexStore(), nil)
	return NewAircraftService(store, resolver, reorder, fakeCache{})
}

func TestListDefaultViewHidesClosedListings(t *testing.T) {
	store := &fakeListingStore{total: 3}
	svc := newTestAircraftService(store, nil)

	if _, err := svc.List(context.Background(), dtos.ListParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.lastFilter.ExcludeStatuses) != 2 {
		t.Fatalf("expected 2 excluded statuses, got %v", store.lastFilter.ExcludeStatuses)
	}
	if store.lastFilter.Status != "" {
		t.Errorf("expected no exact status filter, got %q", store.lastFilter.Status)
	}
}

func TestListAllStatusLiftsRestriction(t *testing.T) {
	store := &fakeListingStore{total: 3}
	svc := newTestAircraftService(store, nil)

	if _, err := svc.List(context.Background(), dtos.ListParams{Status: "all"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastFilter.Status != "" || len(store.lastFilter.ExcludeStatuses) != 0 {
		t.Errorf("expected unrestricted filter, got %+v", store.lastFilter)
	}
}

func TestListAdminViewHasNoDefaultExclusion(t *testing.T) {
	store := &fakeListingStore{total: 3}
	svc := newTestAircraftService(store, nil)

	if _, err := svc.List(context.Background(), dtos.ListParams{AdminView: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.lastFilter.ExcludeStatuses) != 0 {
		t.Errorf("admin view must not exclude statuses, got %v", store.lastFilter.ExcludeStatuses)
	}
}

func TestListExplicitStatusFiltersExactly(t *testing.T) {
	store := &fakeListingStore{total: 3}
	svc := newTestAircraftService(store, nil)

	if _, err := svc.List(context.Background(), dtos.ListParams{Status: " Sold "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastFilter.Status != constants.StatusSold {
		t.Errorf("expected status sold, got %q", store.lastFilter.Status)
	}
	if store.lastOrder != dtos.SortIndexAsc {
		t.Errorf("sold listings must keep curation order")
	}
}

func TestListActiveStatusSortsByPrice(t *testing.T) {
	store := &fakeListingStore{total: 3}
	svc := newTestAircraftService(store, nil)

	if _, err := svc.List(context.Background(), dtos.ListParams{Status: "for-sale"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastOrder != dtos.SortPriceDescIndexAsc {
		t.Errorf("for-sale listings must sort by price desc")
	}
}

func TestListClampsRequestedPage(t *testing.T) {
	store := &fakeListingStore{total: 25}
	svc := newTestAircraftService(store, nil)

	resp, err := svc.List(context.Background(), dtos.ListParams{Page: 5, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Page != 3 || resp.PageRequested != 5 {
		t.Errorf("expected page 3 (requested 5), got page %d requested %d", resp.Page, resp.PageRequested)
	}
	if resp.PageCount != 3 || resp.TotalItems != 25 {
		t.Errorf("expected pageCount 3 totalItems 25, got %d and %d", resp.PageCount, resp.TotalItems)
	}
	if store.lastSkip != 20 {
		t.Errorf("expected skip 20, got %d", store.lastSkip)
	}
	if !resp.HasPrev || resp.HasNext {
		t.Errorf("expected hasPrev=true hasNext=false, got %v %v", resp.HasPrev, resp.HasNext)
	}
}

func TestListEmptyCollectionReportsPageOne(t *testing.T) {
	store := &fakeListingStore{total: 0}
	svc := newTestAircraftService(store, nil)

	resp, err := svc.List(context.Background(), dtos.ListParams{Page: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Page != 1 || resp.PageCount != 0 {
		t.Errorf("expected page 1 pageCount 0, got %d and %d", resp.Page, resp.PageCount)
	}
	if resp.HasPrev || resp.HasNext {
		t.Errorf("empty result must report no prev/next")
	}
	if resp.Message != constants.MsgNoAircraftsFound {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestListUnresolvedSlugsShortCircuit(t *testing.T) {
	store := &fakeListingStore{total: 10}
	resolver := &fakeSlugResolver{}
	svc := newTestAircraftService(store, resolver)

	resp, err := svc.List(context.Background(), dtos.ListParams{Categories: []string{"no-such-slug"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resolver.called {
		t.Fatal("expected slug resolution")
	}
	if store.pageCalled {
		t.Error("store must not be queried when no slug resolves")
	}
	if resp.TotalItems != 0 || len(resp.Data) != 0 || resp.Page != 1 {
		t.Errorf("expected empty result, got %+v", resp)
	}
}

func TestListNegativePageSizeClampsToOne(t *testing.T) {
	store := &fakeListingStore{total: 5}
	svc := newTestAircraftService(store, nil)

	resp, err := svc.List(context.Background(), dtos.ListParams{PageSize: -3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PageSize != 1 || store.lastLimit != 1 {
		t.Errorf("expected page size 1, got %d (limit %d)", resp.PageSize, store.lastLimit)
	}
}

func TestFiltersBuildsExactValuePredicates(t *testing.T) {
	store := &fakeListingStore{total: 30}
	svc := newTestAircraftService(store, nil)

	airframe := 1200.0
	resp, err := svc.Filters(context.Background(), dtos.FilterParams{
		Status:   " Sold ",
		Airframe: &airframe,
		Page:     3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := store.lastFilter
	if f.Status != constants.StatusSold {
		t.Errorf("expected status sold, got %q", f.Status)
	}
	if f.MinAirframe == nil || f.MaxAirframe == nil || *f.MinAirframe != 1200 || *f.MaxAirframe != 1200 {
		t.Errorf("exact airframe must become a degenerate range, got %v..%v", f.MinAirframe, f.MaxAirframe)
	}
	if f.MinEngine != nil || f.MinPropeller != nil {
		t.Errorf("absent values must not constrain, got %+v", f)
	}
	if store.lastOrder != dtos.SortIndexAscCreatedDesc {
		t.Errorf("filters must use curation order with newest first, got %v", store.lastOrder)
	}
	if store.lastLimit != 10 || store.lastSkip != 20 {
		t.Errorf("expected default page size 10 skip 20, got limit %d skip %d", store.lastLimit, store.lastSkip)
	}
	if !resp.Success || resp.Total != len(resp.Data) {
		t.Errorf("total must count the returned page, got %+v", resp)
	}
}

func TestFiltersEscapesTitleSearch(t *testing.T) {
	store := &fakeListingStore{total: 1}
	svc := newTestAircraftService(store, nil)

	if _, err := svc.Filters(context.Background(), dtos.FilterParams{Search: "c.x (demo)"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastFilter.TitlePattern != `c\.x \(demo\)` {
		t.Errorf("title search must be literal, got %q", store.lastFilter.TitlePattern)
	}
}

func TestFiltersRejectsMalformedCategoryID(t *testing.T) {
	svc := newTestAircraftService(&fakeListingStore{}, nil)

	_, err := svc.Filters(context.Background(), dtos.FilterParams{Category: "not-an-id"})
	if !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestAircraftService(&fakeListingStore{}, nil)

	form := dtos.AircraftForm{Title: "Citation X"}
	if _, err := svc.Create(context.Background(), form, nil, ""); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsNonNumericPrice(t *testing.T) {
	svc := newTestAircraftService(&fakeListingStore{}, nil)

	form := validCreateForm()
	form.Price = "a lot"
	_, err := svc.Create(context.Background(), form, nil, "")
	if !apperrors.IsValidation(err) || err.Error() != constants.MsgPriceNotNumeric {
		t.Errorf("expected price validation error, got %v", err)
	}
}

func TestCreateRejectsDescriptionWithoutSections(t *testing.T) {
	svc := newTestAircraftService(&fakeListingStore{}, nil)

	form := validCreateForm()
	form.Description = `{"version":1}`
	if _, err := svc.Create(context.Background(), form, nil, ""); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateAcceptsLooseContactAgent(t *testing.T) {
	svc := newTestAircraftService(&fakeListingStore{}, nil)

	form := validCreateForm()
	form.ContactAgent = `{name:'Jane Doe', phone:'555-0100'}`
	if _, err := svc.Create(context.Background(), form, nil, ""); err != nil {
		t.Errorf("loose contactAgent JSON must be accepted, got %v", err)
	}
}

func TestUpdateMergesKeepImagesWithUploads(t *testing.T) {
	store := &fakeListingStore{images: []string{"old1", "old2"}}
	svc := newTestAircraftService(store, nil)

	form := dtos.AircraftForm{
		KeepImages: `["old1","new1"]`,
		Present:    map[string]bool{"keepImages": true},
	}
	if _, err := svc.Update(context.Background(), "66b1", form, []string{"new1", "new2"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.updated.Images
	want := []string{"old1", "new1", "new2"}
	if len(got) != len(want) {
		t.Fatalf("expected images %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("image %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestUpdateKeepsCurrentImagesWhenKeepAbsent(t *testing.T) {
	store := &fakeListingStore{images: []string{"old1"}}
	svc := newTestAircraftService(store, nil)

	form := dtos.AircraftForm{Present: map[string]bool{}}
	if _, err := svc.Update(context.Background(), "66b1", form, []string{"new1"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.updated.Images
	if len(got) != 2 || got[0] != "old1" || got[1] != "new1" {
		t.Errorf("expected [old1 new1], got %v", got)
	}
}

func TestUpdateRejectsMalformedKeepImages(t *testing.T) {
	svc := newTestAircraftService(&fakeListingStore{}, nil)

	form := dtos.AircraftForm{
		KeepImages: `not json`,
		Present:    map[string]bool{"keepImages": true},
	}
	if _, err := svc.Update(context.Background(), "66b1", form, nil, nil); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func validCreateForm() dtos.AircraftForm {
	return dtos.AircraftForm{
		Title:        "Citation X",
		Price:        "4500000",
		Category:     primitive.NewObjectID().Hex(),
		Location:     "Wichita, KS",
		Latitude:     "37.69",
		Longitude:    "-97.34",
		Index:        "1",
		ContactAgent: `{"name":"Jane Doe"}`,
		Description:  `{"version":1,"sections":{"overview":{"html":"<p>ok</p>"}}}`,
		Present:      map[string]bool{},
	}
}
