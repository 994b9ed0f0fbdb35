package pricing

import (
	"context"

	"github.com/aevon-lab/catalog-pricing/internal/cache"
	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/shopspring/decimal"
)

// Cache key query names.
const (
	keyCheapestInCategories       = "cheapestInCategories"
	keyCheapestProducts           = "cheapestProducts"
	keyPriceRange                 = "priceRange"
	keyCheapestByBrandAndCategory = "cheapestByBrandAndCategory"
	keyLowestTotalPriceBrand      = "lowestTotalPriceBrand"
	keyCategoryPricing            = "categoryPricing"
	keyPriceSummary               = "cheapestByCategory"
	keyBrandPrices                = "brandPrices"
)

// Service serves Queries through the cache layer. Errors, including
// not-found, are never cached, and neither are absent or empty results.
type Service struct {
	engine Queries
	cache  *cache.Layer
}

var _ Queries = (*Service)(nil)

func NewService(engine Queries, layer *cache.Layer) *Service {
	return &Service{engine: engine, cache: layer}
}

// nonEmpty reports a list as found only when it has elements.
func nonEmpty[T any](load func(ctx context.Context) ([]T, error)) func(ctx context.Context) ([]T, bool, error) {
	return func(ctx context.Context) ([]T, bool, error) {
		v, err := load(ctx)
		return v, err == nil && len(v) > 0, err
	}
}

func (s *Service) MinPricePerCategory(ctx context.Context, categoryIDs []int64) ([]catalog.CategoryMinPrice, error) {
	v, _, err := cache.Fetch(ctx, s.cache, cache.CategoryPricing, cache.Key(keyCheapestInCategories, categoryIDs),
		nonEmpty(func(ctx context.Context) ([]catalog.CategoryMinPrice, error) {
			return s.engine.MinPricePerCategory(ctx, categoryIDs)
		}))
	return v, err
}

func (s *Service) CheapestProducts(ctx context.Context, categoryID int64, minPrice decimal.Decimal) ([]catalog.Product, error) {
	v, _, err := cache.Fetch(ctx, s.cache, cache.CategoryPricing, cache.Key(keyCheapestProducts, categoryID, minPrice.String()),
		nonEmpty(func(ctx context.Context) ([]catalog.Product, error) {
			return s.engine.CheapestProducts(ctx, categoryID, minPrice)
		}))
	return v, err
}

// MinAndMaxPriceByCategoryName caches only ranges of non-empty categories.
func (s *Service) MinAndMaxPriceByCategoryName(ctx context.Context, name string) (PriceRange, error) {
	v, _, err := cache.Fetch(ctx, s.cache, cache.PriceSummary, cache.Key(keyPriceRange, name),
		func(ctx context.Context) (PriceRange, bool, error) {
			rng, err := s.engine.MinAndMaxPriceByCategoryName(ctx, name)
			if err != nil {
				return PriceRange{}, false, err
			}
			// An empty range is a real answer; report it without caching it.
			return rng, rng.Min.Valid && rng.Max.Valid, nil
		})
	return v, err
}

func (s *Service) CheapestByBrandAndCategory(ctx context.Context) ([]catalog.BrandCategoryPriceInfo, error) {
	v, _, err := cache.Fetch(ctx, s.cache, cache.PriceInfo, cache.Key(keyCheapestByBrandAndCategory),
		nonEmpty(s.engine.CheapestByBrandAndCategory))
	return v, err
}

func (s *Service) LowestTotalPriceBrand(ctx context.Context) (catalog.BrandSummary, bool, error) {
	return cache.Fetch(ctx, s.cache, cache.BrandLowestPrice, cache.Key(keyLowestTotalPriceBrand),
		s.engine.LowestTotalPriceBrand)
}

func (s *Service) CategoryPricing(ctx context.Context) (CategoryPricing, error) {
	v, _, err := cache.Fetch(ctx, s.cache, cache.CategoryPricing, cache.Key(keyCategoryPricing),
		func(ctx context.Context) (CategoryPricing, bool, error) {
			pricing, err := s.engine.CategoryPricing(ctx)
			return pricing, err == nil && len(pricing.Items) > 0, err
		})
	return v, err
}

func (s *Service) PriceSummary(ctx context.Context, categoryName string) (PriceSummary, bool, error) {
	return cache.Fetch(ctx, s.cache, cache.PriceSummary, cache.Key(keyPriceSummary, categoryName),
		func(ctx context.Context) (PriceSummary, bool, error) {
			return s.engine.PriceSummary(ctx, categoryName)
		})
}

func (s *Service) BrandPrices(ctx context.Context, brandID int64) ([]catalog.BrandCategoryPriceInfo, error) {
	v, _, err := cache.Fetch(ctx, s.cache, cache.PriceInfo, cache.Key(keyBrandPrices, brandID),
		nonEmpty(func(ctx context.Context) ([]catalog.BrandCategoryPriceInfo, error) {
			return s.engine.BrandPrices(ctx, brandID)
		}))
	return v, err
}
