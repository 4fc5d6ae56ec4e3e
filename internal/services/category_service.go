package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/apperrors"
	"aeromart/internal/common"
	"aeromart/internal/constants"
	"aeromart/internal/db/repositories"
	"aeromart/internal/models/entities"
)

const categorySlugCacheTTL = 10 * time.Minute

// CategoryService manages aircraft categories and the slug→id lookups
// the listing query engine depends on. Lookups are cached per slug set
// and invalidated on any category write.
type CategoryService struct {
	repo  *repositories.CategoryRepository
	cache common.CacheInterface
}

func NewCategoryService(repo *repositories.CategoryRepository, cache common.CacheInterface) *CategoryService {
	return &CategoryService{repo: repo, cache: cache}
}

// Slugify derives the URL slug from a category name: lowercase with
// spaces replaced by hyphens.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func (s *CategoryService) List(ctx context.Context) ([]entities.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*entities.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation(constants.MsgMissingFields)
	}

	cat := &entities.Category{Name: name, Slug: Slugify(name)}
	if err := s.repo.Insert(ctx, cat); err != nil {
		return nil, err
	}
	s.invalidateSlugCache()
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name string) (*entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation(constants.MsgMissingFields)
	}

	cat, err := s.repo.Update(ctx, id, name, Slugify(name))
	if err != nil {
		return nil, err
	}
	s.invalidateSlugCache()
	return cat, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) (*entities.Category, error) {
	cat, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateSlugCache()
	return cat, nil
}

// ResolveSlugs maps category slugs to object ids. Unknown slugs resolve
// to nothing; callers treat an empty result for a non-empty input as a
// filter that matches no listings. The full slug→id map is cached under
// a single key so writes can invalidate it wholesale.
func (s *CategoryService) ResolveSlugs(ctx context.Context, slugs []string) ([]primitive.ObjectID, error) {
	cleaned := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug = strings.TrimSpace(strings.ToLower(slug)); slug != "" {
			cleaned = append(cleaned, slug)
		}
	}
	if len(cleaned) == 0 {
		return nil, nil
	}

	bySlug, err := s.slugMap(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(cleaned))
	for _, slug := range cleaned {
		if hex, ok := bySlug[slug]; ok {
			if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
				ids = append(ids, oid)
			}
		}
	}
	return ids, nil
}

// slugMap returns slug→hex-id for every category. Hex strings survive
// a redis round-trip where object ids would not.
func (s *CategoryService) slugMap(ctx context.Context) (map[string]string, error) {
	key := string(constants.CachePrefixCategorySlugs)
	cached, err := s.cache.GetOrSet(key, categorySlugCacheTTL, func() (any, error) {
		cats, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		bySlug := make(map[string]string, len(cats))
		for _, cat := range cats {
			bySlug[cat.Slug] = cat.ID.Hex()
		}
		return bySlug, nil
	})
	if err != nil {
		return nil, err
	}

	switch m := cached.(type) {
	case map[string]string:
		return m, nil
	case map[string]any:
		bySlug := make(map[string]string, len(m))
		for slug, v := range m {
			if hex, ok := v.(string); ok {
				bySlug[slug] = hex
			}
		}
		return bySlug, nil
	default:
		return nil, fmt.Errorf("CategoryService.slugMap: unexpected cache payload %T", cached)
	}
}

func (s *CategoryService) invalidateSlugCache() {
	s.cache.Delete(string(constants.CachePrefixCategorySlugs))
}
