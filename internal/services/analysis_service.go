package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"aeromart/internal/models/dtos"
)

type entityCounter interface {
	Count(ctx context.Context) (int64, error)
}

// AnalysisService aggregates the dashboard entity counts. The four
// collections are counted in parallel.
type AnalysisService struct {
	aircrafts entityCounter
	teams     entityCounter
	reviews   entityCounter
	blogs     entityCounter
}

func NewAnalysisService(aircrafts, teams, reviews, blogs entityCounter) *AnalysisService {
	return &AnalysisService{aircrafts: aircrafts, teams: teams, reviews: reviews, blogs: blogs}
}

func (s *AnalysisService) Counts(ctx context.Context) (*dtos.AnalysisCounts, error) {
	var counts dtos.AnalysisCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Aircraft, err = s.aircrafts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Team, err = s.teams.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Review, err = s.reviews.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Blog, err = s.blogs.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}
