package memory

import (
	"context"
	"fmt"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/aevon-lab/catalog-pricing/internal/core/rowlock"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
)

// op validates and applies one staged mutation against committed state.
// It runs with Store.mu held for writing and returns an undo func.
type op func(s *Store) (undo func(), err error)

type tx struct {
	s        *Store
	ops      []op
	releases []func()

	// Pending writes visible to reads through this tx. A nil entry is a delete.
	brands   map[int64]*catalog.Brand
	products map[int64]*catalog.Product
}

var _ storage.Tx = (*tx)(nil)

// InTx stages mutations made by fn and applies them all-or-nothing when fn
// returns nil. Row locks are released after commit or rollback.
func (s *Store) InTx(ctx context.Context, fn func(storage.Tx) error) (err error) {
	t := &tx{
		s:        s,
		brands:   make(map[int64]*catalog.Brand),
		products: make(map[int64]*catalog.Product),
	}
	defer t.releaseLocks()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("memory tx: panic: %v", p)
		}
	}()

	if err := fn(t); err != nil {
		return err
	}
	return t.commit()
}

func (t *tx) commit() error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	undos := make([]func(), 0, len(t.ops))
	for _, o := range t.ops {
		undo, err := o(t.s)
		if err != nil {
			for i := len(undos) - 1; i >= 0; i-- {
				undos[i]()
			}
			return err
		}
		undos = append(undos, undo)
	}
	return nil
}

func (t *tx) releaseLocks() {
	for i := len(t.releases) - 1; i >= 0; i-- {
		t.releases[i]()
	}
}

func (t *tx) Lock(ctx context.Context, entity storage.Entity, id int64, mode storage.LockMode) error {
	m := rowlock.Shared
	if mode == storage.LockForUpdate {
		m = rowlock.Exclusive
	}
	release, err := t.s.locks.Acquire(ctx, rowlock.Key{Entity: string(entity), ID: id}, m)
	if err != nil {
		return err
	}
	t.releases = append(t.releases, release)

	if !t.exists(entity, id) {
		return fmt.Errorf("%s %d: %w", entity, id, storage.ErrNotFound)
	}
	return nil
}

func (t *tx) exists(entity storage.Entity, id int64) bool {
	switch entity {
	case storage.EntityBrand:
		if b, ok := t.brands[id]; ok {
			return b != nil
		}
	case storage.EntityProduct:
		if p, ok := t.products[id]; ok {
			return p != nil
		}
	}

	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	switch entity {
	case storage.EntityBrand:
		_, ok := t.s.brands[id]
		return ok
	case storage.EntityCategory:
		_, ok := t.s.categories[id]
		return ok
	case storage.EntityProduct:
		_, ok := t.s.products[id]
		return ok
	}
	return false
}

func (t *tx) Brand(ctx context.Context, id int64) (catalog.Brand, error) {
	if b, ok := t.brands[id]; ok {
		if b == nil {
			return catalog.Brand{}, fmt.Errorf("brand %d: %w", id, storage.ErrNotFound)
		}
		return *b, nil
	}
	return t.s.Brand(ctx, id)
}

func (t *tx) Product(ctx context.Context, id int64) (catalog.Product, error) {
	if p, ok := t.products[id]; ok {
		if p == nil {
			return catalog.Product{}, fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
		}
		return *p, nil
	}
	return t.s.Product(ctx, id)
}

func (t *tx) InsertBrand(_ context.Context, name string) (catalog.Brand, error) {
	t.s.mu.RLock()
	dup := brandNameTaken(t.s, name, 0)
	t.s.mu.RUnlock()
	if dup {
		return catalog.Brand{}, fmt.Errorf("brand %q: %w", name, storage.ErrDuplicate)
	}

	b := catalog.Brand{ID: t.s.nextID(&t.s.nextBrand), Name: name}
	t.brands[b.ID] = &b
	t.ops = append(t.ops, func(s *Store) (func(), error) {
		if brandNameTaken(s, b.Name, 0) {
			return nil, fmt.Errorf("brand %q: %w", b.Name, storage.ErrDuplicate)
		}
		s.brands[b.ID] = b
		return func() { delete(s.brands, b.ID) }, nil
	})
	return b, nil
}

func (t *tx) UpdateBrandName(ctx context.Context, id int64, name string) error {
	cur, err := t.Brand(ctx, id)
	if err != nil {
		return err
	}
	t.s.mu.RLock()
	dup := brandNameTaken(t.s, name, id)
	t.s.mu.RUnlock()
	if dup {
		return fmt.Errorf("brand %q: %w", name, storage.ErrDuplicate)
	}

	cur.Name = name
	t.brands[id] = &cur
	t.ops = append(t.ops, func(s *Store) (func(), error) {
		prev, ok := s.brands[id]
		if !ok {
			return nil, fmt.Errorf("brand %d: %w", id, storage.ErrNotFound)
		}
		if brandNameTaken(s, name, id) {
			return nil, fmt.Errorf("brand %q: %w", name, storage.ErrDuplicate)
		}
		s.brands[id] = catalog.Brand{ID: id, Name: name}
		return func() { s.brands[id] = prev }, nil
	})
	return nil
}

func (t *tx) DeleteBrand(ctx context.Context, id int64) error {
	if _, err := t.Brand(ctx, id); err != nil {
		return err
	}
	t.brands[id] = nil
	t.ops = append(t.ops, func(s *Store) (func(), error) {
		prev, ok := s.brands[id]
		if !ok {
			return nil, fmt.Errorf("brand %d: %w", id, storage.ErrNotFound)
		}
		for _, p := range s.products {
			if p.BrandID == id {
				return nil, fmt.Errorf("brand %d: %w", id, storage.ErrInUse)
			}
		}
		delete(s.brands, id)
		return func() { s.brands[id] = prev }, nil
	})
	return nil
}

func (t *tx) InsertProduct(_ context.Context, p catalog.Product) (catalog.Product, error) {
	p.ID = t.s.nextID(&t.s.nextProduct)
	p.BrandName, p.CategoryName = "", ""
	staged := p
	t.products[p.ID] = &staged
	t.ops = append(t.ops, func(s *Store) (func(), error) {
		if err := checkRefs(s, p); err != nil {
			return nil, err
		}
		s.products[p.ID] = p
		return func() { delete(s.products, p.ID) }, nil
	})
	return p, nil
}

func (t *tx) UpdateProduct(_ context.Context, p catalog.Product) error {
	p.BrandName, p.CategoryName = "", ""
	staged := p
	t.products[p.ID] = &staged
	t.ops = append(t.ops, func(s *Store) (func(), error) {
		prev, ok := s.products[p.ID]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", p.ID, storage.ErrNotFound)
		}
		if err := checkRefs(s, p); err != nil {
			return nil, err
		}
		s.products[p.ID] = p
		return func() { s.products[p.ID] = prev }, nil
	})
	return nil
}

func (t *tx) DeleteProduct(_ context.Context, id int64) error {
	t.products[id] = nil
	t.ops = append(t.ops, func(s *Store) (func(), error) {
		prev, ok := s.products[id]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
		}
		delete(s.products, id)
		return func() { s.products[id] = prev }, nil
	})
	return nil
}

func brandNameTaken(s *Store, name string, exceptID int64) bool {
	for _, b := range s.brands {
		if b.ID != exceptID && b.Name == name {
			return true
		}
	}
	return false
}

func checkRefs(s *Store, p catalog.Product) error {
	if _, ok := s.brands[p.BrandID]; !ok {
		return fmt.Errorf("brand %d: %w", p.BrandID, storage.ErrNotFound)
	}
	if _, ok := s.categories[p.CategoryID]; !ok {
		return fmt.Errorf("category %d: %w", p.CategoryID, storage.ErrNotFound)
	}
	if p.Price.IsNegative() {
		return &catalog.InvalidStateError{Entity: "product", ID: p.ID, Reason: "negative price " + p.Price.String()}
	}
	return nil
}
