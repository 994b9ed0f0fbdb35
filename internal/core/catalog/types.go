package catalog

import (
	"github.com/shopspring/decimal"
)

// Brand is a seller label. Names are unique across the catalog.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category groups products. The pricing engine treats the category set as read-only.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a priced item owned by exactly one brand and one category.
// BrandName and CategoryName are denormalized on reads; writes only look at the IDs.
type Product struct {
	ID           int64           `json:"id"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   int64           `json:"category_id"`
	BrandID      int64           `json:"brand_id"`
	CategoryName string          `json:"category_name,omitempty"`
	BrandName    string          `json:"brand_name,omitempty"`
}

// CategoryMinPrice is the lowest product price observed in one category.
type CategoryMinPrice struct {
	CategoryID int64           `json:"category_id"`
	MinPrice   decimal.Decimal `json:"min_price"`
}

// BrandCategoryPriceInfo is the lowest price a brand offers in one category.
type BrandCategoryPriceInfo struct {
	BrandID      int64           `json:"brand_id"`
	BrandName    string          `json:"brand_name"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
}

// CategoryPrice is one line of a brand summary.
type CategoryPrice struct {
	CategoryName string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
}

// BrandSummary describes a brand able to supply every category, with its
// per-category minimums sorted by category name.
type BrandSummary struct {
	BrandID    int64           `json:"brand_id"`
	BrandName  string          `json:"brand"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Categories []CategoryPrice `json:"categories"`
}

// ProductChange captures the before/after state of a product mutation.
// A create has a zero Old; a delete has a zero New.
type ProductChange struct {
	ProductID int64
	Old       ProductState
	New       ProductState
}

// ProductState is the part of a product that aggregates depend on.
type ProductState struct {
	Price      decimal.Decimal
	CategoryID int64
	BrandID    int64
	Exists     bool
}

// StateOf extracts the aggregate-relevant state of p.
func StateOf(p Product) ProductState {
	return ProductState{
		Price:      p.Price,
		CategoryID: p.CategoryID,
		BrandID:    p.BrandID,
		Exists:     true,
	}
}

// Changed reports whether price, brand, category or existence differ between
// the two states. Prices are compared by value, so 100 and 100.00 are equal.
func (c ProductChange) Changed() bool {
	if c.Old.Exists != c.New.Exists {
		return true
	}
	if !c.Old.Exists {
		return false
	}
	return !c.Old.Price.Equal(c.New.Price) ||
		c.Old.CategoryID != c.New.CategoryID ||
		c.Old.BrandID != c.New.BrandID
}
