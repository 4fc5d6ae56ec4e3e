package api

import (
	"os"

	"aeromart/internal/common"
	"aeromart/internal/db"
	"aeromart/internal/db/repositories"
	"aeromart/internal/logging"
	"aeromart/internal/metrics"
	"aeromart/internal/services"
)

type Repositories struct {
	Aircraft     *repositories.AircraftRepository
	Category     *repositories.CategoryRepository
	Review       *repositories.ReviewRepository
	Team         *repositories.TeamRepository
	Blog         *repositories.BlogRepository
	BlogCategory *repositories.BlogCategoryRepository
	Author       *repositories.AuthorRepository
	Brand        *repositories.BrandRepository
	Video        *repositories.VideoRepository
	Contact      *repositories.ContactRepository
	User         *repositories.UserRepository
	Media        *repositories.MediaRepository
}

type Services struct {
	Cache    common.CacheInterface
	Reorder  *services.ReorderService
	Aircraft *services.AircraftService
	Search   *services.SearchService
	Category *services.CategoryService
	Auth     *services.AuthService
	Analysis *services.AnalysisService
	Media    *services.MediaService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Aircraft:     repositories.NewAircraftRepository(db.Database),
		Category:     repositories.NewCategoryRepository(db.Database),
		Review:       repositories.NewReviewRepository(db.Database),
		Team:         repositories.NewTeamRepository(db.Database),
		Blog:         repositories.NewBlogRepository(db.Database),
		BlogCategory: repositories.NewBlogCategoryRepository(db.Database),
		Author:       repositories.NewAuthorRepository(db.Database),
		Brand:        repositories.NewBrandRepository(db.Database),
		Video:        repositories.NewVideoRepository(db.Database),
		Contact:      repositories.NewContactRepository(db.Database),
		User:         repositories.NewUserRepository(db.Database),
		Media:        repositories.NewMediaRepository(db.Database),
	}

	// Redis when configured, in-process cache otherwise.
	var cacheSvc common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cacheSvc = common.NewCacheService(600, 1200)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(600, 1200)
	}

	reorderSvc := services.NewReorderService(repos.Aircraft, metricsReg)
	categorySvc := services.NewCategoryService(repos.Category, cacheSvc)

	svcs := &Services{
		Cache:    cacheSvc,
		Reorder:  reorderSvc,
		Aircraft: services.NewAircraftService(repos.Aircraft, categorySvc, reorderSvc, cacheSvc),
		Search:   services.NewSearchService(repos.Aircraft, metricsReg),
		Category: categorySvc,
		Auth:     services.NewAuthService(repos.User),
		Analysis: services.NewAnalysisService(repos.Aircraft, repos.Team, repos.Review, repos.Blog),
		Media:    services.NewMediaService(repos.Media, metricsReg),
	}

	return &Dependencies{Repo: repos, Services: svcs}, nil
}
