package aggregation

import (
	"sort"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/shopspring/decimal"
)

// LowestTotalPriceBrand picks the brand that supplies every category at the
// lowest combined price.
//
// A brand is eligible only when it has an entry for each of totalCategories
// categories. Among eligible brands the smallest total wins; equal totals are
// resolved by the lexicographically smallest brand name, then by brand id.
// found is false when no brand is eligible, including the empty catalog.
func LowestTotalPriceBrand(infos []catalog.BrandCategoryPriceInfo, totalCategories int) (catalog.BrandSummary, bool, error) {
	if totalCategories <= 0 || len(infos) == 0 {
		return catalog.BrandSummary{}, false, nil
	}

	byBrand := make(map[int64][]catalog.BrandCategoryPriceInfo)
	for _, info := range infos {
		if info.Price.IsNegative() {
			return catalog.BrandSummary{}, false, &catalog.InvalidStateError{
				Entity: "brand",
				ID:     info.BrandID,
				Reason: "negative minimum price " + info.Price.String() + " in category " + info.CategoryName,
			}
		}
		byBrand[info.BrandID] = append(byBrand[info.BrandID], info)
	}

	var (
		best  catalog.BrandSummary
		found bool
	)
	sum := Operators[OpSum]
	for brandID, rows := range byBrand {
		if distinctCategories(rows) != totalCategories {
			continue
		}

		total := sum.Initial(rows[0].Price)
		for _, r := range rows[1:] {
			total = sum.Apply(total, r.Price)
		}

		candidate := catalog.BrandSummary{
			BrandID:    brandID,
			BrandName:  rows[0].BrandName,
			TotalPrice: total,
		}
		if !found || beats(candidate, best) {
			best = candidate
			best.Categories = categoryLines(rows)
			found = true
		}
	}
	return best, found, nil
}

func beats(a, b catalog.BrandSummary) bool {
	if c := a.TotalPrice.Cmp(b.TotalPrice); c != 0 {
		return c < 0
	}
	if a.BrandName != b.BrandName {
		return a.BrandName < b.BrandName
	}
	return a.BrandID < b.BrandID
}

func distinctCategories(rows []catalog.BrandCategoryPriceInfo) int {
	seen := make(map[int64]struct{}, len(rows))
	for _, r := range rows {
		seen[r.CategoryID] = struct{}{}
	}
	return len(seen)
}

func categoryLines(rows []catalog.BrandCategoryPriceInfo) []catalog.CategoryPrice {
	lines := make([]catalog.CategoryPrice, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, catalog.CategoryPrice{CategoryName: r.CategoryName, Price: r.Price})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].CategoryName < lines[j].CategoryName })
	return lines
}

// SumPrices adds prices exactly. An empty input sums to zero.
func SumPrices(prices []decimal.Decimal) decimal.Decimal {
	if len(prices) == 0 {
		return decimal.Zero
	}
	sum := Operators[OpSum]
	total := sum.Initial(prices[0])
	for _, p := range prices[1:] {
		total = sum.Apply(total, p)
	}
	return total
}
