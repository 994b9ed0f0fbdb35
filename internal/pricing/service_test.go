package pricing

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aevon-lab/catalog-pricing/internal/cache"
	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingStore counts aggregate reads that reach the store.
type countingStore struct {
	storage.CatalogReader
	brandCoverageReads int32
}

func (c *countingStore) CheapestByBrandAndCategory(ctx context.Context) ([]catalog.BrandCategoryPriceInfo, error) {
	atomic.AddInt32(&c.brandCoverageReads, 1)
	return c.CatalogReader.CheapestByBrandAndCategory(ctx)
}

func newCachedService(t *testing.T, reader storage.CatalogReader) (*Service, *Invalidator, *cache.Layer) {
	t.Helper()
	layer := cache.NewLayer(cache.NewMemoryBackend(1000), cache.Config{
		DefaultTTL: time.Minute,
		OpTimeout:  time.Second,
	}, zap.NewNop(), nil)
	return NewService(NewEngine(reader, zap.NewNop()), layer), NewInvalidator(layer, zap.NewNop()), layer
}

func TestService_CachesLowestTotalPriceBrand(t *testing.T) {
	s := seedABC(t)
	counting := &countingStore{CatalogReader: s.store}
	svc, _, _ := newCachedService(t, counting)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		summary, found, err := svc.LowestTotalPriceBrand(ctx)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "브랜드C", summary.BrandName)
		require.True(t, summary.TotalPrice.Equal(d("45000")))
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&counting.brandCoverageReads))
}

func TestService_AbsentIsNeverCached(t *testing.T) {
	counting := &countingStore{CatalogReader: seedEmpty(t)}
	svc, _, _ := newCachedService(t, counting)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, found, err := svc.LowestTotalPriceBrand(ctx)
		require.NoError(t, err)
		require.False(t, found)
	}
	require.Equal(t, int32(3), atomic.LoadInt32(&counting.brandCoverageReads))
}

func TestService_EmptyListsAreNotCached(t *testing.T) {
	s := seedABC(t)
	ctx := context.Background()
	require.NoError(t, s.store.InTx(ctx, func(tx storage.Tx) error {
		for _, p := range s.products {
			if err := tx.DeleteProduct(ctx, p.ID); err != nil {
				return err
			}
		}
		return nil
	}))
	counting := &countingStore{CatalogReader: s.store}
	svc, _, _ := newCachedService(t, counting)

	for i := 0; i < 3; i++ {
		infos, err := svc.CheapestByBrandAndCategory(ctx)
		require.NoError(t, err)
		require.Empty(t, infos)
	}
	require.Equal(t, int32(3), atomic.LoadInt32(&counting.brandCoverageReads))

	pricing, err := svc.CategoryPricing(ctx)
	require.NoError(t, err)
	require.Empty(t, pricing.Items)

	// A product added without any invalidation is still seen by the next read.
	require.NoError(t, s.store.InTx(ctx, func(tx storage.Tx) error {
		_, err := tx.InsertProduct(ctx, catalog.Product{
			BrandID:    s.brands["브랜드A"].ID,
			CategoryID: s.categories["상의"].ID,
			Price:      d("7000"),
		})
		return err
	}))

	infos, err := svc.CheapestByBrandAndCategory(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	pricing, err = svc.CategoryPricing(ctx)
	require.NoError(t, err)
	require.Len(t, pricing.Items, 1)
	require.True(t, pricing.Items[0].Price.Equal(d("7000")))
}

func TestService_PriceChangeIsVisibleAfterInvalidation(t *testing.T) {
	s := seedABC(t)
	svc, inv, _ := newCachedService(t, s.store)
	ctx := context.Background()
	topID := s.categories["상의"].ID

	mins, err := svc.MinPricePerCategory(ctx, []int64{topID})
	require.NoError(t, err)
	require.True(t, mins[0].MinPrice.Equal(d("5000")))

	before := catalog.StateOf(s.products["브랜드A/상의"])
	s.setPrice(t, "브랜드A/상의", "1000")
	inv.OnProductChanged(ctx, catalog.ProductChange{
		ProductID: s.products["브랜드A/상의"].ID,
		Old:       before,
		New:       catalog.StateOf(s.products["브랜드A/상의"]),
	})

	mins, err = svc.MinPricePerCategory(ctx, []int64{topID})
	require.NoError(t, err)
	require.True(t, mins[0].MinPrice.Equal(d("1000")))

	pricing, err := svc.CategoryPricing(ctx)
	require.NoError(t, err)
	require.Equal(t, "브랜드A", pricing.Items[0].BrandName)
}

func TestService_BrandRenameIsVisibleAfterInvalidation(t *testing.T) {
	s := seedABC(t)
	svc, inv, _ := newCachedService(t, s.store)
	ctx := context.Background()

	summary, _, err := svc.LowestTotalPriceBrand(ctx)
	require.NoError(t, err)
	require.Equal(t, "브랜드C", summary.BrandName)

	brandC := s.brands["브랜드C"]
	require.NoError(t, storage.WithRowLock(ctx, s.store, storage.EntityBrand, brandC.ID, func(tx storage.Tx) error {
		return tx.UpdateBrandName(ctx, brandC.ID, "브랜드씨")
	}))
	inv.OnBrandRenamed(ctx, brandC.ID)

	summary, _, err = svc.LowestTotalPriceBrand(ctx)
	require.NoError(t, err)
	require.Equal(t, "브랜드씨", summary.BrandName)
}

func TestInvalidator_NoOpUpdateKeepsCache(t *testing.T) {
	s := seedABC(t)
	_, inv, layer := newCachedService(t, s.store)
	ctx := context.Background()

	sentinel := map[string]string{"sentinel": "still here"}
	for _, ns := range cache.Namespaces {
		layer.Put(ctx, ns, "sentinel", sentinel)
	}

	state := catalog.StateOf(s.products["브랜드A/상의"])
	rescaled := state
	rescaled.Price = d("10000.00")
	inv.OnProductChanged(ctx, catalog.ProductChange{ProductID: 1, Old: state, New: rescaled})

	for _, ns := range cache.Namespaces {
		var got map[string]string
		require.True(t, layer.Get(ctx, ns, "sentinel", &got), "namespace %s was evicted", ns)
		require.Equal(t, sentinel, got)
	}

	changed := state
	changed.BrandID = s.brands["브랜드B"].ID
	inv.OnProductChanged(ctx, catalog.ProductChange{ProductID: 1, Old: state, New: changed})

	for _, ns := range cache.Namespaces {
		var got map[string]string
		require.False(t, layer.Get(ctx, ns, "sentinel", &got), "namespace %s survived", ns)
	}
}

func TestInvalidator_BrandDeleteEvictsEverything(t *testing.T) {
	s := seedABC(t)
	_, inv, layer := newCachedService(t, s.store)
	ctx := context.Background()

	for _, ns := range cache.Namespaces {
		layer.Put(ctx, ns, "k", "v")
	}
	inv.OnBrandDeleted(ctx, 42)

	for _, ns := range cache.Namespaces {
		var got string
		require.False(t, layer.Get(ctx, ns, "k", &got))
	}
}

func TestService_NotFoundIsNotCached(t *testing.T) {
	s := seedABC(t)
	svc, _, _ := newCachedService(t, s.store)
	ctx := context.Background()

	_, _, err := svc.PriceSummary(ctx, "모자")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.store.AddCategory("모자")
	require.NoError(t, err)
	_, found, err := svc.PriceSummary(ctx, "모자")
	require.NoError(t, err)
	require.False(t, found)
}

func seedEmpty(t *testing.T) storage.CatalogReader {
	t.Helper()
	s := seedABC(t)
	ctx := context.Background()
	require.NoError(t, s.store.InTx(ctx, func(tx storage.Tx) error {
		for _, p := range s.products {
			if err := tx.DeleteProduct(ctx, p.ID); err != nil {
				return err
			}
		}
		return nil
	}))
	return s.store
}
