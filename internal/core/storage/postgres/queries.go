package postgres

import (
	"fmt"

	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
)

// SQL for catalog reads and aggregate queries.
const (
	queryCategories = `
		SELECT id, name
		FROM categories
		ORDER BY id ASC
	`

	queryCategoryCount = `SELECT COUNT(*) FROM categories`

	queryCategoryByName = `SELECT id, name FROM categories WHERE name = $1`

	queryBrandByID = `SELECT id, name FROM brands WHERE id = $1`

	queryProductByID = `
		SELECT p.id, p.price, p.category_id, p.brand_id, c.name, b.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = p.brand_id
		WHERE p.id = $1
	`

	// queryMinPricePerCategory uses idx_products_category_price.
	queryMinPricePerCategory = `
		SELECT category_id, MIN(price)
		FROM products
		WHERE category_id = ANY($1)
		GROUP BY category_id
		ORDER BY category_id ASC
	`

	queryCheapestProducts = `
		SELECT p.id, p.price, p.category_id, p.brand_id, c.name, b.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN brands b ON b.id = p.brand_id
		WHERE p.category_id = $1
		  AND p.price = $2
		ORDER BY p.id ASC
	`

	// MIN/MAX over an empty set yields one row of NULLs.
	queryMinMaxPrice = `
		SELECT MIN(price), MAX(price)
		FROM products
		WHERE category_id = $1
	`

	queryCheapestByBrandAndCategory = `
		SELECT b.id, b.name, c.id, c.name, MIN(p.price)
		FROM products p
		JOIN brands b ON b.id = p.brand_id
		JOIN categories c ON c.id = p.category_id
		GROUP BY b.id, b.name, c.id, c.name
		ORDER BY b.id ASC, c.id ASC
	`

	queryCheapestByBrand = `
		SELECT b.id, b.name, c.id, c.name, MIN(p.price)
		FROM products p
		JOIN brands b ON b.id = p.brand_id
		JOIN categories c ON c.id = p.category_id
		WHERE p.brand_id = $1
		GROUP BY b.id, b.name, c.id, c.name
		ORDER BY c.id ASC
	`
)

// SQL for catalog mutations. All run inside a transaction.
const (
	queryTxProductByID = `
		SELECT id, price, category_id, brand_id
		FROM products
		WHERE id = $1
	`

	queryInsertBrand = `INSERT INTO brands (name) VALUES ($1) RETURNING id`

	queryUpdateBrandName = `UPDATE brands SET name = $2 WHERE id = $1`

	queryDeleteBrand = `DELETE FROM brands WHERE id = $1`

	queryInsertProduct = `
		INSERT INTO products (price, category_id, brand_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	queryUpdateProduct = `
		UPDATE products
		SET price = $2, category_id = $3, brand_id = $4
		WHERE id = $1
	`

	queryDeleteProduct = `DELETE FROM products WHERE id = $1`
)

var lockTables = map[storage.Entity]string{
	storage.EntityProduct:  "products",
	storage.EntityBrand:    "brands",
	storage.EntityCategory: "categories",
}

// lockQuery builds the row-lock SELECT for entity. FOR NO KEY UPDATE does not
// conflict with the FOR KEY SHARE locks taken by foreign-key checks, so
// renaming a brand does not block product inserts that reference it.
func lockQuery(entity storage.Entity, mode storage.LockMode) (string, error) {
	table, ok := lockTables[entity]
	if !ok {
		return "", fmt.Errorf("unknown lock entity %q", entity)
	}
	clause := "FOR SHARE"
	if mode == storage.LockForUpdate {
		clause = "FOR NO KEY UPDATE"
	}
	return fmt.Sprintf("SELECT id FROM %s WHERE id = $1 %s", table, clause), nil
}
