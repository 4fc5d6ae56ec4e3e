package services

import (
	"context"
	"regexp"
	"strings"

	"aeromart/internal/metrics"
	"aeromart/internal/models/dtos"
)

const (
	searchDefaultLimit = 12
	searchMaxLimit     = 100
)

type searchStore interface {
	Search(ctx context.Context, pattern string, skip, limit int) ([]dtos.SearchResult, int64, error)
}

// SearchService runs the relevance search: literal case-insensitive
// substring matching across title, overview, and the joined category
// name/slug, scored 3/2/1 respectively.
type SearchService struct {
	store   searchStore
	metrics *metrics.MetricsRegistry
}

func NewSearchService(store searchStore, reg *metrics.MetricsRegistry) *SearchService {
	return &SearchService{store: store, metrics: reg}
}

// Search pages through matches ranked by score, then recency. An empty
// query short-circuits to an empty result without touching the store.
func (s *SearchService) Search(ctx context.Context, q string, page, limit int) (*dtos.SearchResponse, error) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit == 0:
		limit = searchDefaultLimit
	case limit < 0:
		limit = 1
	case limit > searchMaxLimit:
		limit = searchMaxLimit
	}

	resp := &dtos.SearchResponse{
		Success: true,
		Data:    []dtos.SearchResult{},
		Page:    page,
		Limit:   limit,
	}

	q = strings.TrimSpace(q)
	if q == "" {
		return resp, nil
	}

	if s.metrics != nil {
		s.metrics.SearchQueriesTotal.Inc()
	}

	skip := (page - 1) * limit
	data, total, err := s.store.Search(ctx, regexp.QuoteMeta(q), skip, limit)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []dtos.SearchResult{}
	}

	resp.Data = data
	resp.Total = total
	resp.HasMore = int64(skip+len(data)) < total
	return resp, nil
}
