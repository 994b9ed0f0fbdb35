package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"go.uber.org/zap"
)

type tx struct {
	tx *sql.Tx
}

var _ storage.Tx = (*tx)(nil)

// InTx runs fn inside a read-committed transaction. Row locks taken through
// Tx.Lock are released by the commit or rollback.
func (s *Store) InTx(ctx context.Context, fn func(storage.Tx) error) (err error) {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog tx: begin: %w", err)
	}
	defer sqlTx.Rollback() //nolint:errcheck
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("catalog tx: panic, rolling back", zap.Any("panic", p))
			err = fmt.Errorf("catalog tx: panic: %v", p)
		}
	}()

	if err := fn(&tx{tx: sqlTx}); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return translate(err, "catalog tx: commit", storage.ErrNotFound)
	}
	return nil
}

func (t *tx) Lock(ctx context.Context, entity storage.Entity, id int64, mode storage.LockMode) error {
	query, err := lockQuery(entity, mode)
	if err != nil {
		return err
	}
	var got int64
	err = t.tx.QueryRowContext(ctx, query, id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("lock %s %d: %w", entity, id, err)
	}
	return nil
}

func (t *tx) Brand(ctx context.Context, id int64) (catalog.Brand, error) {
	return scanBrand(t.tx.QueryRowContext(ctx, queryBrandByID, id), id)
}

func (t *tx) Product(ctx context.Context, id int64) (catalog.Product, error) {
	var p catalog.Product
	err := t.tx.QueryRowContext(ctx, queryTxProductByID, id).Scan(&p.ID, &p.Price, &p.CategoryID, &p.BrandID)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Product{}, fmt.Errorf("product %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return catalog.Product{}, fmt.Errorf("query product %d: %w", id, err)
	}
	return p, nil
}

func (t *tx) InsertBrand(ctx context.Context, name string) (catalog.Brand, error) {
	b := catalog.Brand{Name: name}
	if err := t.tx.QueryRowContext(ctx, queryInsertBrand, name).Scan(&b.ID); err != nil {
		return catalog.Brand{}, translate(err, fmt.Sprintf("insert brand %q", name), storage.ErrNotFound)
	}
	return b, nil
}

func (t *tx) UpdateBrandName(ctx context.Context, id int64, name string) error {
	res, err := t.tx.ExecContext(ctx, queryUpdateBrandName, id, name)
	if err != nil {
		return translate(err, fmt.Sprintf("rename brand %d", id), storage.ErrNotFound)
	}
	return requireAffected(res, "brand", id)
}

func (t *tx) DeleteBrand(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, queryDeleteBrand, id)
	if err != nil {
		return translate(err, fmt.Sprintf("delete brand %d", id), storage.ErrInUse)
	}
	return requireAffected(res, "brand", id)
}

func (t *tx) InsertProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	err := t.tx.QueryRowContext(ctx, queryInsertProduct, p.Price, p.CategoryID, p.BrandID).Scan(&p.ID)
	if err != nil {
		return catalog.Product{}, translate(err, "insert product", storage.ErrNotFound)
	}
	return p, nil
}

func (t *tx) UpdateProduct(ctx context.Context, p catalog.Product) error {
	res, err := t.tx.ExecContext(ctx, queryUpdateProduct, p.ID, p.Price, p.CategoryID, p.BrandID)
	if err != nil {
		return translate(err, fmt.Sprintf("update product %d", p.ID), storage.ErrNotFound)
	}
	return requireAffected(res, "product", p.ID)
}

func (t *tx) DeleteProduct(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, queryDeleteProduct, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return requireAffected(res, "product", id)
}

func requireAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: rows affected: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, storage.ErrNotFound)
	}
	return nil
}
