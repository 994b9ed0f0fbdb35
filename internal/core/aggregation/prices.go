package aggregation

import (
	"sort"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/shopspring/decimal"
)

// The functions in this file are pure reductions over a product snapshot.
// The in-memory store evaluates them directly; the Postgres store computes
// the same results in SQL and is tested against them.

// MinPricePerCategory returns the minimum product price of each requested
// category, ordered by category id. Categories without products are omitted.
func MinPricePerCategory(products []catalog.Product, categoryIDs []int64) []catalog.CategoryMinPrice {
	wanted := make(map[int64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = struct{}{}
	}

	mins := fold(OpMin, func(yield func(int64, decimal.Decimal)) {
		for _, p := range products {
			if _, ok := wanted[p.CategoryID]; ok {
				yield(p.CategoryID, p.Price)
			}
		}
	})

	out := make([]catalog.CategoryMinPrice, 0, len(mins))
	for id, price := range mins {
		out = append(out, catalog.CategoryMinPrice{CategoryID: id, MinPrice: price})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out
}

// CheapestProducts returns every product of the category priced exactly at
// price, ordered by product id. Prices compare by value, not by scale.
func CheapestProducts(products []catalog.Product, categoryID int64, price decimal.Decimal) []catalog.Product {
	out := make([]catalog.Product, 0)
	for _, p := range products {
		if p.CategoryID == categoryID && p.Price.Equal(price) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MinAndMax returns the price range of a category. Both values are invalid
// (absent) when the category holds no products.
func MinAndMax(products []catalog.Product, categoryID int64) (lo, hi decimal.NullDecimal) {
	each := func(yield func(int64, decimal.Decimal)) {
		for _, p := range products {
			if p.CategoryID == categoryID {
				yield(categoryID, p.Price)
			}
		}
	}
	if v, ok := fold(OpMin, each)[categoryID]; ok {
		lo = decimal.NullDecimal{Decimal: v, Valid: true}
	}
	if v, ok := fold(OpMax, each)[categoryID]; ok {
		hi = decimal.NullDecimal{Decimal: v, Valid: true}
	}
	return lo, hi
}

type brandCategory struct {
	brandID    int64
	categoryID int64
}

// CheapestByBrandAndCategory returns one entry per (brand, category) pair
// that has at least one product, carrying the pair's minimum price. Entries
// are ordered by brand id, then category id.
//
// A product whose brand or category is missing from the lookup maps, or whose
// price is negative, yields an *catalog.InvalidStateError.
func CheapestByBrandAndCategory(
	products []catalog.Product,
	brands map[int64]catalog.Brand,
	categories map[int64]catalog.Category,
) ([]catalog.BrandCategoryPriceInfo, error) {
	for _, p := range products {
		if err := checkProduct(p, brands, categories); err != nil {
			return nil, err
		}
	}

	mins := fold(OpMin, func(yield func(brandCategory, decimal.Decimal)) {
		for _, p := range products {
			yield(brandCategory{brandID: p.BrandID, categoryID: p.CategoryID}, p.Price)
		}
	})

	out := make([]catalog.BrandCategoryPriceInfo, 0, len(mins))
	for key, price := range mins {
		out = append(out, catalog.BrandCategoryPriceInfo{
			BrandID:      key.brandID,
			BrandName:    brands[key.brandID].Name,
			CategoryID:   key.categoryID,
			CategoryName: categories[key.categoryID].Name,
			Price:        price,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BrandID != out[j].BrandID {
			return out[i].BrandID < out[j].BrandID
		}
		return out[i].CategoryID < out[j].CategoryID
	})
	return out, nil
}

func checkProduct(p catalog.Product, brands map[int64]catalog.Brand, categories map[int64]catalog.Category) error {
	if p.Price.IsNegative() {
		return &catalog.InvalidStateError{Entity: "product", ID: p.ID, Reason: "negative price " + p.Price.String()}
	}
	if _, ok := brands[p.BrandID]; !ok {
		return &catalog.InvalidStateError{Entity: "product", ID: p.ID, Reason: "references missing brand"}
	}
	if _, ok := categories[p.CategoryID]; !ok {
		return &catalog.InvalidStateError{Entity: "product", ID: p.ID, Reason: "references missing category"}
	}
	return nil
}
