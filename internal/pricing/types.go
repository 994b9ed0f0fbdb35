package pricing

import (
	"github.com/shopspring/decimal"
)

// CategoryPricingItem is the cheapest product of one category.
type CategoryPricingItem struct {
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category"`
	BrandID      int64           `json:"brand_id"`
	BrandName    string          `json:"brand"`
	ProductID    int64           `json:"product_id"`
	Price        decimal.Decimal `json:"price"`
}

// CategoryPricing lists one cheapest product per category and their total.
type CategoryPricing struct {
	Items      []CategoryPricingItem `json:"items"`
	TotalPrice decimal.Decimal       `json:"total_price"`
}

// PriceRange is the cheapest and most expensive price in a category.
// Min and Max are null when the category has no products.
type PriceRange struct {
	CategoryID   int64               `json:"category_id"`
	CategoryName string              `json:"category"`
	Min          decimal.NullDecimal `json:"min_price"`
	Max          decimal.NullDecimal `json:"max_price"`
}

// BrandPrice is one brand offering a product at a given price.
type BrandPrice struct {
	BrandName string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
}

// PriceSummary lists every brand at the lowest and at the highest price of a
// category.
type PriceSummary struct {
	CategoryName string       `json:"category"`
	LowestPrice  []BrandPrice `json:"lowest_price"`
	HighestPrice []BrandPrice `json:"highest_price"`
}
