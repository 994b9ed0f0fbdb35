package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a brand, category or product does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a brand with the same name already exists.
	ErrDuplicate = errors.New("already exists")

	// ErrInUse is returned when deleting a brand that products still reference.
	ErrInUse = errors.New("still referenced")
)

// Entity names a lockable table.
type Entity string

const (
	EntityProduct  Entity = "product"
	EntityBrand    Entity = "brand"
	EntityCategory Entity = "category"
)

// LockMode selects the row lock taken by Tx.Lock.
type LockMode int

const (
	// LockForUpdate is held on the row being mutated. Two holders of the same
	// row never overlap.
	LockForUpdate LockMode = iota
	// LockShared is held on rows a mutation references but does not change.
	// It blocks LockForUpdate on the same row, not other LockShared holders.
	LockShared
)

// CatalogReader is the read side used by the pricing engine. Reads run at
// read-committed isolation and never take row locks.
type CatalogReader interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	CategoryCount(ctx context.Context) (int, error)
	CategoryByName(ctx context.Context, name string) (catalog.Category, error)
	Brand(ctx context.Context, id int64) (catalog.Brand, error)
	Product(ctx context.Context, id int64) (catalog.Product, error)

	// MinPricePerCategory omits categories that hold no products.
	MinPricePerCategory(ctx context.Context, categoryIDs []int64) ([]catalog.CategoryMinPrice, error)

	// CheapestProducts returns every product of the category priced at price,
	// with brand and category names populated, ordered by product id.
	CheapestProducts(ctx context.Context, categoryID int64, price decimal.Decimal) ([]catalog.Product, error)

	// MinAndMaxPrice returns invalid NullDecimals when the category is empty.
	MinAndMaxPrice(ctx context.Context, categoryID int64) (lo, hi decimal.NullDecimal, err error)

	CheapestByBrandAndCategory(ctx context.Context) ([]catalog.BrandCategoryPriceInfo, error)
	CheapestByBrand(ctx context.Context, brandID int64) ([]catalog.BrandCategoryPriceInfo, error)

	Ping(ctx context.Context) error
}

// Tx is a unit of catalog mutation. Locks taken through it are released when
// the surrounding InTx call returns, whatever the outcome.
type Tx interface {
	// Lock takes a row lock and fails with ErrNotFound when the row is absent.
	Lock(ctx context.Context, entity Entity, id int64, mode LockMode) error

	Brand(ctx context.Context, id int64) (catalog.Brand, error)
	Product(ctx context.Context, id int64) (catalog.Product, error)

	InsertBrand(ctx context.Context, name string) (catalog.Brand, error)
	UpdateBrandName(ctx context.Context, id int64, name string) error
	DeleteBrand(ctx context.Context, id int64) error

	InsertProduct(ctx context.Context, p catalog.Product) (catalog.Product, error)
	UpdateProduct(ctx context.Context, p catalog.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

// Store is a catalog backend.
type Store interface {
	CatalogReader

	// InTx runs fn in a transaction. A nil return commits, an error or panic
	// rolls back.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
}

// WithRowLock runs fn in a transaction holding the update lock on one row.
// The lock is released on every exit path, including panics.
func WithRowLock(ctx context.Context, s Store, entity Entity, id int64, fn func(tx Tx) error) error {
	return s.InTx(ctx, func(tx Tx) error {
		if err := tx.Lock(ctx, entity, id, LockForUpdate); err != nil {
			return fmt.Errorf("lock %s %d: %w", entity, id, err)
		}
		return fn(tx)
	})
}
