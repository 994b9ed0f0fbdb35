package pricing

import (
	"context"

	"github.com/aevon-lab/catalog-pricing/internal/cache"
	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"go.uber.org/zap"
)

// productNamespaces are derived from product prices, brands and categories.
var productNamespaces = []cache.Namespace{
	cache.PriceInfo,
	cache.CategoryPricing,
	cache.PriceSummary,
	cache.BrandLowestPrice,
}

// brandNamespaces hold brand names or brand ids.
var brandNamespaces = []cache.Namespace{
	cache.PriceInfo,
	cache.CategoryPricing,
	cache.PriceSummary,
	cache.BrandLowestPrice,
}

// Invalidator evicts cached aggregates after catalog mutations commit.
// Eviction finishes before the call returns.
type Invalidator struct {
	cache  *cache.Layer
	logger *zap.Logger
}

func NewInvalidator(layer *cache.Layer, logger *zap.Logger) *Invalidator {
	return &Invalidator{cache: layer, logger: logger.Named("invalidator")}
}

// OnProductChanged evicts product-derived namespaces, unless the change left
// price, brand and category untouched.
func (i *Invalidator) OnProductChanged(ctx context.Context, change catalog.ProductChange) {
	if !change.Changed() {
		i.logger.Debug("product change affects no aggregate, keeping cache",
			zap.Int64("product_id", change.ProductID))
		return
	}
	i.evict(ctx, productNamespaces)
	i.logger.Debug("evicted after product change", zap.Int64("product_id", change.ProductID))
}

func (i *Invalidator) OnBrandRenamed(ctx context.Context, brandID int64) {
	i.evict(ctx, brandNamespaces)
	i.logger.Debug("evicted after brand rename", zap.Int64("brand_id", brandID))
}

func (i *Invalidator) OnBrandDeleted(ctx context.Context, brandID int64) {
	i.evict(ctx, brandNamespaces)
	i.logger.Debug("evicted after brand delete", zap.Int64("brand_id", brandID))
}

func (i *Invalidator) evict(ctx context.Context, namespaces []cache.Namespace) {
	for _, ns := range namespaces {
		i.cache.Evict(ctx, ns)
	}
}
