package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dao"
	"swim-shop-api/internal/dto"
	catalogmodel "swim-shop-api/internal/model/catalog"
)

type CatalogService struct {
	productDao *dao.ProductDao
	reviewDao  *dao.ReviewDao
	cache      ProductCache
	log        *logrus.Logger
}

func NewCatalogService(db *gorm.DB, cache ProductCache, log *logrus.Logger) *CatalogService {
	return &CatalogService{
		productDao: dao.NewProductDao(db),
		reviewDao:  dao.NewReviewDao(db),
		cache:      cache,
		log:        log,
	}
}

// all serves the full list from cache, falling back to the database on a miss or error.
func (s *CatalogService) all(ctx context.Context) ([]catalogmodel.Product, error) {
	if s.cache != nil {
		list, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warnf("[Catalog] cache read failed: %v", err)
		} else if ok {
			return list, nil
		}
	}
	list, err := s.productDao.List("")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, list); err != nil {
			s.log.Warnf("[Catalog] cache write failed: %v", err)
		}
	}
	return list, nil
}

// List filters by category and, when query is set, ranks by fuzzy match over
// name, category and tags, best first.
func (s *CatalogService) List(ctx context.Context, category, query string) ([]catalogmodel.Product, error) {
	list, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	filtered := make([]catalogmodel.Product, 0, len(list))
	for _, p := range list {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		filtered = append(filtered, p)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })
		return filtered, nil
	}

	type scored struct {
		p    catalogmodel.Product
		dist int
	}
	hits := make([]scored, 0, len(filtered))
	for _, p := range filtered {
		if d, ok := matchDistance(query, p); ok {
			hits = append(hits, scored{p, d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].p.ID < hits[j].p.ID
	})
	out := make([]catalogmodel.Product, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.p)
	}
	return out, nil
}

// matchDistance returns the lowest Levenshtein rank among the product's searchable
// terms. A whole-word substring hit on the name always ranks first.
func matchDistance(query string, p catalogmodel.Product) (int, bool) {
	terms := append([]string{p.Name, p.Category}, p.Tags...)
	best, found := 0, false
	for _, r := range fuzzy.RankFindNormalizedFold(query, terms) {
		if !found || r.Distance < best {
			best, found = r.Distance, true
		}
	}
	if found && strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
		best = -1
	}
	return best, found
}

// Get returns the product with its reviews, newest first.
func (s *CatalogService) Get(id uint64) (*dto.ProductDetailResp, error) {
	p, err := s.productDao.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, constant.NewError(constant.CodeProductNotFound)
	}
	reviews, err := s.reviewDao.ListByProduct(id)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return &dto.ProductDetailResp{Product: *p, Reviews: reviews}, nil
}

// Invalidate drops the cached list after a write touches products.
func (s *CatalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warnf("[Catalog] cache invalidate failed: %v", err)
	}
}
