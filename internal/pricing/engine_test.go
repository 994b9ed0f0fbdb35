package pricing

import (
	"context"
	"testing"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type seeded struct {
	store      *memory.Store
	categories map[string]catalog.Category
	brands     map[string]catalog.Brand
	products   map[string]catalog.Product // "brand/category"
}

// seedABC builds the three-brand catalog where brand C wins at 45000:
// A=10000/20000/30000, B=5000/25000/20000, C=15000/15000/15000.
func seedABC(t *testing.T) seeded {
	t.Helper()
	ctx := context.Background()
	s := seeded{
		store:      memory.New(),
		categories: map[string]catalog.Category{},
		brands:     map[string]catalog.Brand{},
		products:   map[string]catalog.Product{},
	}
	for _, name := range []string{"상의", "하의", "신발"} {
		c, err := s.store.AddCategory(name)
		require.NoError(t, err)
		s.categories[name] = c
	}

	prices := map[string][]string{
		"브랜드A": {"10000", "20000", "30000"},
		"브랜드B": {"5000", "25000", "20000"},
		"브랜드C": {"15000", "15000", "15000"},
	}
	require.NoError(t, s.store.InTx(ctx, func(tx storage.Tx) error {
		for _, brand := range []string{"브랜드A", "브랜드B", "브랜드C"} {
			b, err := tx.InsertBrand(ctx, brand)
			if err != nil {
				return err
			}
			s.brands[brand] = b
			for i, cat := range []string{"상의", "하의", "신발"} {
				p, err := tx.InsertProduct(ctx, catalog.Product{
					BrandID:    b.ID,
					CategoryID: s.categories[cat].ID,
					Price:      d(prices[brand][i]),
				})
				if err != nil {
					return err
				}
				s.products[brand+"/"+cat] = p
			}
		}
		return nil
	}))
	return s
}

func (s seeded) setPrice(t *testing.T, key string, price string) {
	t.Helper()
	ctx := context.Background()
	p := s.products[key]
	p.Price = d(price)
	require.NoError(t, storage.WithRowLock(ctx, s.store, storage.EntityProduct, p.ID, func(tx storage.Tx) error {
		return tx.UpdateProduct(ctx, p)
	}))
	s.products[key] = p
}

func TestEngine_LowestTotalPriceBrand(t *testing.T) {
	s := seedABC(t)
	e := NewEngine(s.store, zap.NewNop())

	summary, found, err := e.LowestTotalPriceBrand(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "브랜드C", summary.BrandName)
	require.True(t, summary.TotalPrice.Equal(d("45000")))
	require.Len(t, summary.Categories, 3)
	require.Equal(t, "상의", summary.Categories[0].CategoryName)
	require.Equal(t, "신발", summary.Categories[1].CategoryName)
	require.Equal(t, "하의", summary.Categories[2].CategoryName)
}

func TestEngine_LowestTotalPriceBrand_EmptyStore(t *testing.T) {
	e := NewEngine(memory.New(), zap.NewNop())

	summary, found, err := e.LowestTotalPriceBrand(context.Background())
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, catalog.BrandSummary{}, summary)
}

func TestEngine_LowestTotalPriceBrand_CategoriesWithoutProducts(t *testing.T) {
	store := memory.New()
	_, err := store.AddCategory("상의")
	require.NoError(t, err)
	e := NewEngine(store, zap.NewNop())

	_, found, err := e.LowestTotalPriceBrand(context.Background())
	require.NoError(t, err)
	require.False(t, found)
}

func TestEngine_MinPricePerCategory(t *testing.T) {
	s := seedABC(t)
	e := NewEngine(s.store, zap.NewNop())
	ids := []int64{s.categories["상의"].ID, s.categories["하의"].ID, s.categories["신발"].ID}

	mins, err := e.MinPricePerCategory(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, mins, 3)
	require.True(t, mins[0].MinPrice.Equal(d("5000")))
	require.True(t, mins[1].MinPrice.Equal(d("15000")))
	require.True(t, mins[2].MinPrice.Equal(d("15000")))

	again, err := e.MinPricePerCategory(context.Background(), ids)
	require.NoError(t, err)
	require.Equal(t, mins, again)
}

func TestEngine_CheapestProducts_Ties(t *testing.T) {
	s := seedABC(t)
	e := NewEngine(s.store, zap.NewNop())
	s.setPrice(t, "브랜드A/하의", "15000")

	products, err := e.CheapestProducts(context.Background(), s.categories["하의"].ID, d("15000"))
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "브랜드A", products[0].BrandName)
	require.Equal(t, "브랜드C", products[1].BrandName)
}

func TestEngine_MinAndMaxPriceByCategoryName(t *testing.T) {
	s := seedABC(t)
	e := NewEngine(s.store, zap.NewNop())
	ctx := context.Background()

	rng, err := e.MinAndMaxPriceByCategoryName(ctx, "신발")
	require.NoError(t, err)
	require.True(t, rng.Min.Decimal.Equal(d("15000")))
	require.True(t, rng.Max.Decimal.Equal(d("30000")))

	_, err = e.MinAndMaxPriceByCategoryName(ctx, "모자")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.store.AddCategory("모자")
	require.NoError(t, err)
	rng, err = e.MinAndMaxPriceByCategoryName(ctx, "모자")
	require.NoError(t, err)
	require.False(t, rng.Min.Valid)
	require.False(t, rng.Max.Valid)
}

func TestEngine_CategoryPricing(t *testing.T) {
	s := seedABC(t)
	e := NewEngine(s.store, zap.NewNop())

	got, err := e.CategoryPricing(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Items, 3)

	require.Equal(t, "상의", got.Items[0].CategoryName)
	require.Equal(t, "브랜드B", got.Items[0].BrandName)
	// 하의 and 신발 are both led by brand C at 15000.
	require.Equal(t, "브랜드C", got.Items[1].BrandName)
	require.Equal(t, "브랜드C", got.Items[2].BrandName)
	require.True(t, got.TotalPrice.Equal(d("35000")))
}

func TestEngine_CategoryPricing_TieTakesLowestProductID(t *testing.T) {
	s := seedABC(t)
	e := NewEngine(s.store, zap.NewNop())
	s.setPrice(t, "브랜드A/상의", "5000")

	got, err := e.CategoryPricing(context.Background())
	require.NoError(t, err)
	require.Equal(t, s.products["브랜드A/상의"].ID, got.Items[0].ProductID)
}

func TestEngine_CategoryPricing_NoCategories(t *testing.T) {
	e := NewEngine(memory.New(), zap.NewNop())

	got, err := e.CategoryPricing(context.Background())
	require.NoError(t, err)
	require.Empty(t, got.Items)
	require.True(t, got.TotalPrice.IsZero())
}

func TestEngine_PriceSummary(t *testing.T) {
	s := seedABC(t)
	e := NewEngine(s.store, zap.NewNop())
	ctx := context.Background()

	got, found, err := e.PriceSummary(ctx, "상의")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "상의", got.CategoryName)
	require.Equal(t, []BrandPrice{{BrandName: "브랜드B", Price: d("5000")}}, got.LowestPrice)
	require.Len(t, got.HighestPrice, 1)
	require.Equal(t, "브랜드C", got.HighestPrice[0].BrandName)

	_, _, err = e.PriceSummary(ctx, "없는카테고리")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.store.AddCategory("모자")
	require.NoError(t, err)
	_, found, err = e.PriceSummary(ctx, "모자")
	require.NoError(t, err)
	require.False(t, found)
}

func TestEngine_BrandPrices(t *testing.T) {
	s := seedABC(t)
	e := NewEngine(s.store, zap.NewNop())
	ctx := context.Background()

	infos, err := e.BrandPrices(ctx, s.brands["브랜드A"].ID)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	for _, info := range infos {
		require.Equal(t, "브랜드A", info.BrandName)
	}

	_, err = e.BrandPrices(ctx, 999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
