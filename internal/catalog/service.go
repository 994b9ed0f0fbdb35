package catalog

import (
	"context"
	"errors"
	"fmt"

	corecatalog "github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// Invalidator is told about every committed mutation that can change a
// cached aggregate.
type Invalidator interface {
	OnProductChanged(ctx context.Context, change corecatalog.ProductChange)
	OnBrandRenamed(ctx context.Context, brandID int64)
	OnBrandDeleted(ctx context.Context, brandID int64)
}

// ProductUpdate is a partial product update. Nil fields are left unchanged.
type ProductUpdate struct {
	Price      *decimal.Decimal
	BrandID    *int64
	CategoryID *int64
}

// Service applies catalog commands. Each command runs in one store
// transaction holding the row locks it needs, then notifies the invalidator
// before returning.
type Service struct {
	store            storage.Store
	invalidator      Invalidator
	logger           *zap.Logger
	maxBodySizeBytes int64
}

func NewService(store storage.Store, invalidator Invalidator, logger *zap.Logger, maxBodySizeKB int) *Service {
	if store == nil {
		panic("catalog: store must not be nil")
	}
	if invalidator == nil {
		panic("catalog: invalidator must not be nil")
	}
	if maxBodySizeKB <= 0 {
		maxBodySizeKB = 64
	}
	return &Service{
		store:            store,
		invalidator:      invalidator,
		logger:           logger.Named("catalog"),
		maxBodySizeBytes: int64(maxBodySizeKB) * 1024,
	}
}

// RegisterRoutes registers the catalog command routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/brands", s.CreateBrandHandler)
	r.PATCH("/v1/brands/:id", s.RenameBrandHandler)
	r.DELETE("/v1/brands/:id", s.DeleteBrandHandler)

	r.POST("/v1/products", s.CreateProductHandler)
	r.PATCH("/v1/products/:id", s.UpdateProductHandler)
	r.DELETE("/v1/products/:id", s.DeleteProductHandler)
}

// CreateBrand registers a new brand. A brand without products affects no
// aggregate, so nothing is evicted.
func (s *Service) CreateBrand(ctx context.Context, name string) (corecatalog.Brand, error) {
	name, err := corecatalog.ValidateBrandName(name)
	if err != nil {
		return corecatalog.Brand{}, err
	}

	var created corecatalog.Brand
	err = s.store.InTx(ctx, func(tx storage.Tx) error {
		var err error
		created, err = tx.InsertBrand(ctx, name)
		return err
	})
	if err != nil {
		return corecatalog.Brand{}, fmt.Errorf("create brand: %w", err)
	}

	s.logger.Info("brand created", zap.Int64("brand_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// RenameBrand changes a brand's name under the brand row lock. Renaming to
// the current name still evicts.
func (s *Service) RenameBrand(ctx context.Context, id int64, name string) (corecatalog.Brand, error) {
	name, err := corecatalog.ValidateBrandName(name)
	if err != nil {
		return corecatalog.Brand{}, err
	}

	err = storage.WithRowLock(ctx, s.store, storage.EntityBrand, id, func(tx storage.Tx) error {
		return tx.UpdateBrandName(ctx, id, name)
	})
	if err != nil {
		return corecatalog.Brand{}, notFoundAs(fmt.Errorf("rename brand %d: %w", id, err), ErrBrandNotFound)
	}

	s.invalidator.OnBrandRenamed(ctx, id)
	s.logger.Info("brand renamed", zap.Int64("brand_id", id), zap.String("name", name))
	return corecatalog.Brand{ID: id, Name: name}, nil
}

// DeleteBrand removes a brand that no product references.
func (s *Service) DeleteBrand(ctx context.Context, id int64) error {
	err := storage.WithRowLock(ctx, s.store, storage.EntityBrand, id, func(tx storage.Tx) error {
		return tx.DeleteBrand(ctx, id)
	})
	if err != nil {
		return notFoundAs(fmt.Errorf("delete brand %d: %w", id, err), ErrBrandNotFound)
	}

	s.invalidator.OnBrandDeleted(ctx, id)
	s.logger.Info("brand deleted", zap.Int64("brand_id", id))
	return nil
}

// CreateProduct inserts a product while holding shared locks on its brand
// and category, so neither can be deleted underneath it.
func (s *Service) CreateProduct(ctx context.Context, price decimal.Decimal, brandID, categoryID int64) (corecatalog.Product, error) {
	if err := corecatalog.ValidatePrice(price); err != nil {
		return corecatalog.Product{}, err
	}

	var created corecatalog.Product
	err := s.store.InTx(ctx, func(tx storage.Tx) error {
		if err := lockReferences(ctx, tx, brandID, categoryID); err != nil {
			return err
		}
		var err error
		created, err = tx.InsertProduct(ctx, corecatalog.Product{
			Price:      price,
			BrandID:    brandID,
			CategoryID: categoryID,
		})
		return err
	})
	if err != nil {
		return corecatalog.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.invalidator.OnProductChanged(ctx, corecatalog.ProductChange{
		ProductID: created.ID,
		New:       corecatalog.StateOf(created),
	})
	s.logger.Info("product created",
		zap.Int64("product_id", created.ID),
		zap.Int64("brand_id", brandID),
		zap.Int64("category_id", categoryID),
		zap.String("price", price.String()))
	return created, nil
}

// UpdateProduct applies a partial update under the product row lock. Newly
// referenced brand or category rows are share-locked.
func (s *Service) UpdateProduct(ctx context.Context, id int64, upd ProductUpdate) (corecatalog.Product, error) {
	if upd.Price != nil {
		if err := corecatalog.ValidatePrice(*upd.Price); err != nil {
			return corecatalog.Product{}, err
		}
	}

	var before, after corecatalog.Product
	err := storage.WithRowLock(ctx, s.store, storage.EntityProduct, id, func(tx storage.Tx) error {
		var err error
		before, err = tx.Product(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrProductNotFound, err)
		}

		after = before
		if upd.Price != nil {
			after.Price = *upd.Price
		}
		if upd.BrandID != nil && *upd.BrandID != before.BrandID {
			after.BrandID, after.BrandName = *upd.BrandID, ""
		}
		if upd.CategoryID != nil && *upd.CategoryID != before.CategoryID {
			after.CategoryID, after.CategoryName = *upd.CategoryID, ""
		}

		newBrand, newCategory := int64(0), int64(0)
		if after.BrandID != before.BrandID {
			newBrand = after.BrandID
		}
		if after.CategoryID != before.CategoryID {
			newCategory = after.CategoryID
		}
		if err := lockReferences(ctx, tx, newBrand, newCategory); err != nil {
			return err
		}
		return tx.UpdateProduct(ctx, after)
	})
	if err != nil {
		return corecatalog.Product{}, notFoundAs(fmt.Errorf("update product %d: %w", id, err), ErrProductNotFound)
	}

	s.invalidator.OnProductChanged(ctx, corecatalog.ProductChange{
		ProductID: id,
		Old:       corecatalog.StateOf(before),
		New:       corecatalog.StateOf(after),
	})
	s.logger.Info("product updated", zap.Int64("product_id", id))
	return after, nil
}

// DeleteProduct removes a product under its row lock.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	var before corecatalog.Product
	err := storage.WithRowLock(ctx, s.store, storage.EntityProduct, id, func(tx storage.Tx) error {
		var err error
		if before, err = tx.Product(ctx, id); err != nil {
			return err
		}
		return tx.DeleteProduct(ctx, id)
	})
	if err != nil {
		return notFoundAs(fmt.Errorf("delete product %d: %w", id, err), ErrProductNotFound)
	}

	s.invalidator.OnProductChanged(ctx, corecatalog.ProductChange{
		ProductID: id,
		Old:       corecatalog.StateOf(before),
	})
	s.logger.Info("product deleted", zap.Int64("product_id", id))
	return nil
}

// lockReferences share-locks the brand and category rows a product points
// at. Zero ids are skipped. Brand is locked before category in every command.
func lockReferences(ctx context.Context, tx storage.Tx, brandID, categoryID int64) error {
	if brandID != 0 {
		if err := tx.Lock(ctx, storage.EntityBrand, brandID, storage.LockShared); err != nil {
			return notFoundAs(err, ErrBrandNotFound)
		}
	}
	if categoryID != 0 {
		if err := tx.Lock(ctx, storage.EntityCategory, categoryID, storage.LockShared); err != nil {
			return notFoundAs(err, ErrCategoryNotFound)
		}
	}
	return nil
}

// notFoundAs tags a storage.ErrNotFound with the entity-specific sentinel,
// unless a more specific one is already attached.
func notFoundAs(err error, sentinel error) error {
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	for _, specific := range []error{ErrBrandNotFound, ErrCategoryNotFound, ErrProductNotFound} {
		if errors.Is(err, specific) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
