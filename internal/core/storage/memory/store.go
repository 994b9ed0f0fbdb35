// Package memory is an in-process catalog store. Mutations are staged in the
// transaction and applied atomically on commit, so readers only ever observe
// committed state.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aevon-lab/catalog-pricing/internal/core/aggregation"
	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/aevon-lab/catalog-pricing/internal/core/rowlock"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"github.com/shopspring/decimal"
)

// Store implements storage.Store in memory.
type Store struct {
	mu         sync.RWMutex
	brands     map[int64]catalog.Brand
	categories map[int64]catalog.Category
	products   map[int64]catalog.Product

	seqMu       sync.Mutex
	nextBrand   int64
	nextProduct int64
	nextCat     int64

	locks *rowlock.Table
}

var _ storage.Store = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		brands:     make(map[int64]catalog.Brand),
		categories: make(map[int64]catalog.Category),
		products:   make(map[int64]catalog.Product),
		locks:      rowlock.New(),
	}
}

// AddCategory registers a category. Categories are static for the engine, so
// this is only used while seeding.
func (s *Store) AddCategory(name string) (catalog.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == name {
			return catalog.Category{}, fmt.Errorf("category %q: %w", name, storage.ErrDuplicate)
		}
	}
	s.seqMu.Lock()
	s.nextCat++
	id := s.nextCat
	s.seqMu.Unlock()

	c := catalog.Category{ID: id, Name: name}
	s.categories[id] = c
	return c, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Categories(context.Context) ([]catalog.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CategoryCount(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.categories), nil
}

func (s *Store) CategoryByName(_ context.Context, name string) (catalog.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return catalog.Category{}, fmt.Errorf("category %q: %w", name, storage.ErrNotFound)
}

func (s *Store) Brand(_ context.Context, id int64) (catalog.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brands[id]
	if !ok {
		return catalog.Brand{}, fmt.Errorf("brand %d: %w", id, storage.ErrNotFound)
	}
	return b, nil
}

func (s *Store) Product(_ context.Context, id int64) (catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}
	return s.denormalize(p), nil
}

func (s *Store) MinPricePerCategory(_ context.Context, categoryIDs []int64) ([]catalog.CategoryMinPrice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return aggregation.MinPricePerCategory(s.snapshot(), categoryIDs), nil
}

func (s *Store) CheapestProducts(_ context.Context, categoryID int64, price decimal.Decimal) ([]catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := aggregation.CheapestProducts(s.snapshot(), categoryID, price)
	for i := range out {
		out[i] = s.denormalize(out[i])
	}
	return out, nil
}

func (s *Store) MinAndMaxPrice(_ context.Context, categoryID int64) (decimal.NullDecimal, decimal.NullDecimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lo, hi := aggregation.MinAndMax(s.snapshot(), categoryID)
	return lo, hi, nil
}

func (s *Store) CheapestByBrandAndCategory(context.Context) ([]catalog.BrandCategoryPriceInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return aggregation.CheapestByBrandAndCategory(s.snapshot(), s.brands, s.categories)
}

func (s *Store) CheapestByBrand(_ context.Context, brandID int64) ([]catalog.BrandCategoryPriceInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owned := make([]catalog.Product, 0)
	for _, p := range s.products {
		if p.BrandID == brandID {
			owned = append(owned, p)
		}
	}
	return aggregation.CheapestByBrandAndCategory(owned, s.brands, s.categories)
}

// snapshot must be called with mu held.
func (s *Store) snapshot() []catalog.Product {
	out := make([]catalog.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out
}

// denormalize must be called with mu held.
func (s *Store) denormalize(p catalog.Product) catalog.Product {
	p.BrandName = s.brands[p.BrandID].Name
	p.CategoryName = s.categories[p.CategoryID].Name
	return p
}

func (s *Store) nextID(counter *int64) int64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	*counter++
	return *counter
}
