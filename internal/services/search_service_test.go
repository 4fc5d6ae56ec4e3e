package services

import (
	"context"
	"testing"

	"aeromart/internal/models/dtos"
)

type fakeSearchStore struct {
	results     []dtos.SearchResult
	total       int64
	lastPattern string
	lastSkip    int
	lastLimit   int
	called      bool
}

func (f *fakeSearchStore) Search(ctx context.Context, pattern string, skip, limit int) ([]dtos.SearchResult, int64, error) {
	f.called = true
	f.lastPattern = pattern
	f.lastSkip = skip
	f.lastLimit = limit
	return f.results, f.total, nil
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	store := &fakeSearchStore{}
	svc := NewSearchService(store, nil)

	resp, err := svc.Search(context.Background(), "   ", 1, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.called {
		t.Error("empty query must not hit the store")
	}
	if !resp.Success || resp.Total != 0 || len(resp.Data) != 0 || resp.HasMore {
		t.Errorf("expected empty success response, got %+v", resp)
	}
}

func TestSearchClampsLimit(t *testing.T) {
	store := &fakeSearchStore{}
	svc := NewSearchService(store, nil)

	resp, err := svc.Search(context.Background(), "jet", 1, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Limit != 100 || store.lastLimit != 100 {
		t.Errorf("expected limit clamped to 100, got %d", resp.Limit)
	}

	resp, err = svc.Search(context.Background(), "jet", 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Limit != 12 {
		t.Errorf("expected default limit 12, got %d", resp.Limit)
	}

	resp, err = svc.Search(context.Background(), "jet", 1, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Limit != 1 {
		t.Errorf("expected negative limit clamped to 1, got %d", resp.Limit)
	}
}

func TestSearchEscapesRegexMetacharacters(t *testing.T) {
	store := &fakeSearchStore{}
	svc := NewSearchService(store, nil)

	if _, err := svc.Search(context.Background(), "c.x (demo)", 1, 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastPattern != `c\.x \(demo\)` {
		t.Errorf("expected escaped pattern, got %q", store.lastPattern)
	}
}

func TestSearchReportsHasMore(t *testing.T) {
	store := &fakeSearchStore{
		results: make([]dtos.SearchResult, 12),
		total:   30,
	}
	svc := NewSearchService(store, nil)

	resp, err := svc.Search(context.Background(), "jet", 2, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastSkip != 12 {
		t.Errorf("expected skip 12 for page 2, got %d", store.lastSkip)
	}
	// 12 skipped + 12 returned = 24 < 30.
	if !resp.HasMore {
		t.Error("expected hasMore=true")
	}

	store.results = make([]dtos.SearchResult, 6)
	resp, err = svc.Search(context.Background(), "jet", 3, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.HasMore {
		t.Error("expected hasMore=false on the last page")
	}
}
