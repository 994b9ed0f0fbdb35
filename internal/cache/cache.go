// Package cache is the fail-open result cache in front of the pricing
// aggregates. Values are JSON encoded and grouped into namespaces that are
// evicted as a whole when the catalog changes.
package cache

import (
	"context"
	"errors"
	"time"
)

// Namespace groups cache entries that are invalidated together.
type Namespace string

const (
	PriceInfo        Namespace = "price-info"
	CategoryPricing  Namespace = "category-pricing"
	PriceSummary     Namespace = "price-summary"
	BrandLowestPrice Namespace = "brand-lowest-price"
)

// Namespaces lists every namespace the service uses.
var Namespaces = []Namespace{PriceInfo, CategoryPricing, PriceSummary, BrandLowestPrice}

// ErrUnavailable marks a backend failure. The Layer logs it and degrades to
// a miss or a no-op; it never reaches callers of the Layer.
var ErrUnavailable = errors.New("cache unavailable")

// Backend stores encoded values. Implementations return ErrUnavailable
// (wrapped) for transport failures and timeouts.
type Backend interface {
	Get(ctx context.Context, ns Namespace, key string) ([]byte, bool, error)
	Set(ctx context.Context, ns Namespace, key string, value []byte, ttl time.Duration) error
	EvictNamespace(ctx context.Context, ns Namespace) error
	EvictAll(ctx context.Context) error
	Close() error
}
