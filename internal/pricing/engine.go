package pricing

import (
	"context"
	"fmt"
	"sort"

	"github.com/aevon-lab/catalog-pricing/internal/core/aggregation"
	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const categoryFanOut = 4

// Queries is the read API of the pricing engine.
type Queries interface {
	MinPricePerCategory(ctx context.Context, categoryIDs []int64) ([]catalog.CategoryMinPrice, error)
	CheapestProducts(ctx context.Context, categoryID int64, minPrice decimal.Decimal) ([]catalog.Product, error)
	MinAndMaxPriceByCategoryName(ctx context.Context, name string) (PriceRange, error)
	CheapestByBrandAndCategory(ctx context.Context) ([]catalog.BrandCategoryPriceInfo, error)
	LowestTotalPriceBrand(ctx context.Context) (catalog.BrandSummary, bool, error)
	CategoryPricing(ctx context.Context) (CategoryPricing, error)
	PriceSummary(ctx context.Context, categoryName string) (PriceSummary, bool, error)
	BrandPrices(ctx context.Context, brandID int64) ([]catalog.BrandCategoryPriceInfo, error)
}

// Engine answers pricing queries straight from the store. Reads take no
// locks and see committed data only.
type Engine struct {
	store  storage.CatalogReader
	logger *zap.Logger
}

var _ Queries = (*Engine)(nil)

func NewEngine(store storage.CatalogReader, logger *zap.Logger) *Engine {
	return &Engine{store: store, logger: logger.Named("engine")}
}

func (e *Engine) MinPricePerCategory(ctx context.Context, categoryIDs []int64) ([]catalog.CategoryMinPrice, error) {
	mins, err := e.store.MinPricePerCategory(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("min price per category: %w", err)
	}
	for _, m := range mins {
		if m.MinPrice.IsNegative() {
			return nil, &catalog.InvalidStateError{Entity: "category", ID: m.CategoryID, Reason: "negative minimum price " + m.MinPrice.String()}
		}
	}
	return mins, nil
}

func (e *Engine) CheapestProducts(ctx context.Context, categoryID int64, minPrice decimal.Decimal) ([]catalog.Product, error) {
	products, err := e.store.CheapestProducts(ctx, categoryID, minPrice)
	if err != nil {
		return nil, fmt.Errorf("cheapest products of category %d: %w", categoryID, err)
	}
	return products, nil
}

func (e *Engine) MinAndMaxPriceByCategoryName(ctx context.Context, name string) (PriceRange, error) {
	category, err := e.store.CategoryByName(ctx, name)
	if err != nil {
		return PriceRange{}, err
	}
	lo, hi, err := e.store.MinAndMaxPrice(ctx, category.ID)
	if err != nil {
		return PriceRange{}, fmt.Errorf("price range of %q: %w", name, err)
	}
	return PriceRange{
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Min:          lo,
		Max:          hi,
	}, nil
}

func (e *Engine) CheapestByBrandAndCategory(ctx context.Context) ([]catalog.BrandCategoryPriceInfo, error) {
	infos, err := e.store.CheapestByBrandAndCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("cheapest by brand and category: %w", err)
	}
	return infos, nil
}

func (e *Engine) LowestTotalPriceBrand(ctx context.Context) (catalog.BrandSummary, bool, error) {
	infos, err := e.CheapestByBrandAndCategory(ctx)
	if err != nil {
		return catalog.BrandSummary{}, false, err
	}
	total, err := e.store.CategoryCount(ctx)
	if err != nil {
		return catalog.BrandSummary{}, false, fmt.Errorf("count categories: %w", err)
	}

	summary, found, err := aggregation.LowestTotalPriceBrand(infos, total)
	if err != nil {
		e.logger.Error("brand coverage hit invalid catalog state", zap.Error(err))
		return catalog.BrandSummary{}, false, err
	}
	return summary, found, nil
}

// CategoryPricing picks one cheapest product per category. When several
// products share the minimum, the lowest product id wins.
func (e *Engine) CategoryPricing(ctx context.Context) (CategoryPricing, error) {
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return CategoryPricing{}, fmt.Errorf("list categories: %w", err)
	}
	names := make(map[int64]string, len(categories))
	ids := make([]int64, 0, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
		ids = append(ids, c.ID)
	}

	mins, err := e.MinPricePerCategory(ctx, ids)
	if err != nil {
		return CategoryPricing{}, err
	}

	items := make([]*CategoryPricingItem, len(mins))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(categoryFanOut)
	for i, m := range mins {
		g.Go(func() error {
			products, err := e.store.CheapestProducts(gctx, m.CategoryID, m.MinPrice)
			if err != nil {
				return fmt.Errorf("cheapest products of category %d: %w", m.CategoryID, err)
			}
			// The product may have changed between the two reads; skip the category.
			if len(products) == 0 {
				return nil
			}
			p := products[0]
			items[i] = &CategoryPricingItem{
				CategoryID:   m.CategoryID,
				CategoryName: names[m.CategoryID],
				BrandID:      p.BrandID,
				BrandName:    p.BrandName,
				ProductID:    p.ID,
				Price:        p.Price,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return CategoryPricing{}, err
	}

	out := CategoryPricing{Items: make([]CategoryPricingItem, 0, len(items))}
	prices := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out.Items = append(out.Items, *item)
		prices = append(prices, item.Price)
	}
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].CategoryID < out.Items[j].CategoryID })
	out.TotalPrice = aggregation.SumPrices(prices)
	return out, nil
}

// PriceSummary lists the brands at both ends of a category's price range.
// found is false when the category exists but holds no products.
func (e *Engine) PriceSummary(ctx context.Context, categoryName string) (PriceSummary, bool, error) {
	rng, err := e.MinAndMaxPriceByCategoryName(ctx, categoryName)
	if err != nil {
		return PriceSummary{}, false, err
	}
	if !rng.Min.Valid || !rng.Max.Valid {
		return PriceSummary{}, false, nil
	}

	var lowest, highest []catalog.Product
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lowest, err = e.CheapestProducts(gctx, rng.CategoryID, rng.Min.Decimal)
		return err
	})
	g.Go(func() error {
		var err error
		highest, err = e.CheapestProducts(gctx, rng.CategoryID, rng.Max.Decimal)
		return err
	})
	if err := g.Wait(); err != nil {
		return PriceSummary{}, false, err
	}

	return PriceSummary{
		CategoryName: rng.CategoryName,
		LowestPrice:  brandPrices(lowest),
		HighestPrice: brandPrices(highest),
	}, true, nil
}

func (e *Engine) BrandPrices(ctx context.Context, brandID int64) ([]catalog.BrandCategoryPriceInfo, error) {
	if _, err := e.store.Brand(ctx, brandID); err != nil {
		return nil, err
	}
	infos, err := e.store.CheapestByBrand(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("cheapest products of brand %d: %w", brandID, err)
	}
	return infos, nil
}

func brandPrices(products []catalog.Product) []BrandPrice {
	out := make([]BrandPrice, 0, len(products))
	for _, p := range products {
		out = append(out, BrandPrice{BrandName: p.BrandName, Price: p.Price})
	}
	return out
}
