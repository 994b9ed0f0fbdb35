package aggregation

import (
	"testing"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLowestTotalPriceBrand_PicksFullCoverageBrand(t *testing.T) {
	infos, err := CheapestByBrandAndCategory(fixtureProducts(), testBrands, testCategories)
	require.NoError(t, err)

	summary, found, err := LowestTotalPriceBrand(infos, len(testCategories))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(3), summary.BrandID)
	require.Equal(t, "브랜드C", summary.BrandName)
	require.True(t, summary.TotalPrice.Equal(d("45000")))

	require.Len(t, summary.Categories, 3)
	names := []string{summary.Categories[0].CategoryName, summary.Categories[1].CategoryName, summary.Categories[2].CategoryName}
	require.Equal(t, []string{"상의", "신발", "하의"}, names)
}

func TestLowestTotalPriceBrand_PartialCoverageIsIneligible(t *testing.T) {
	// Brand 1 is cheap but misses a category; brand 2 covers all.
	infos := []catalog.BrandCategoryPriceInfo{
		{BrandID: 1, BrandName: "cheap", CategoryID: 1, CategoryName: "a", Price: d("1")},
		{BrandID: 1, BrandName: "cheap", CategoryID: 2, CategoryName: "b", Price: d("1")},
		{BrandID: 2, BrandName: "full", CategoryID: 1, CategoryName: "a", Price: d("100")},
		{BrandID: 2, BrandName: "full", CategoryID: 2, CategoryName: "b", Price: d("100")},
		{BrandID: 2, BrandName: "full", CategoryID: 3, CategoryName: "c", Price: d("100")},
	}

	summary, found, err := LowestTotalPriceBrand(infos, 3)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "full", summary.BrandName)
	require.True(t, summary.TotalPrice.Equal(d("300")))
}

func TestLowestTotalPriceBrand_TieBrokenByName(t *testing.T) {
	infos := []catalog.BrandCategoryPriceInfo{
		{BrandID: 1, BrandName: "Zeta", CategoryID: 1, CategoryName: "a", Price: d("30")},
		{BrandID: 2, BrandName: "Alpha", CategoryID: 1, CategoryName: "a", Price: d("30.00")},
		{BrandID: 3, BrandName: "Mid", CategoryID: 1, CategoryName: "a", Price: d("30")},
	}

	for i := 0; i < 20; i++ {
		summary, found, err := LowestTotalPriceBrand(infos, 1)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "Alpha", summary.BrandName)
	}
}

func TestLowestTotalPriceBrand_Absent(t *testing.T) {
	tests := []struct {
		name  string
		infos []catalog.BrandCategoryPriceInfo
		total int
	}{
		{name: "empty store", infos: nil, total: 0},
		{name: "no products", infos: nil, total: 3},
		{name: "no categories", infos: []catalog.BrandCategoryPriceInfo{
			{BrandID: 1, BrandName: "a", CategoryID: 1, CategoryName: "x", Price: d("1")},
		}, total: 0},
		{name: "nobody covers everything", infos: []catalog.BrandCategoryPriceInfo{
			{BrandID: 1, BrandName: "a", CategoryID: 1, CategoryName: "x", Price: d("1")},
			{BrandID: 2, BrandName: "b", CategoryID: 2, CategoryName: "y", Price: d("1")},
		}, total: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			summary, found, err := LowestTotalPriceBrand(tc.infos, tc.total)
			require.NoError(t, err)
			require.False(t, found)
			require.Equal(t, catalog.BrandSummary{}, summary)
		})
	}
}

func TestLowestTotalPriceBrand_NegativePriceIsInvalidState(t *testing.T) {
	infos := []catalog.BrandCategoryPriceInfo{
		{BrandID: 1, BrandName: "a", CategoryID: 1, CategoryName: "x", Price: d("-5")},
	}
	_, _, err := LowestTotalPriceBrand(infos, 1)
	require.Error(t, err)
	require.True(t, catalog.IsInvalidState(err))
}

func TestSumPrices(t *testing.T) {
	require.True(t, SumPrices(nil).Equal(decimal.Zero))
	require.True(t, SumPrices([]decimal.Decimal{d("0.1"), d("0.2")}).Equal(d("0.3")))
}
