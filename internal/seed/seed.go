// Package seed loads catalog fixtures into the in-memory store.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	"github.com/aevon-lab/catalog-pricing/internal/core/storage"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultFixture []byte

// Fixture is the YAML seed document.
type Fixture struct {
	Categories []string       `yaml:"categories"`
	Brands     []BrandFixture `yaml:"brands"`
}

type BrandFixture struct {
	Name     string           `yaml:"name"`
	Products []ProductFixture `yaml:"products"`
}

// ProductFixture keeps Price untyped so integers, decimals and quoted strings
// are all accepted and parsed exactly.
type ProductFixture struct {
	Category string      `yaml:"category"`
	Price    interface{} `yaml:"price"`
}

// CategoryAdder is implemented by stores that accept categories at start-up.
type CategoryAdder interface {
	storage.Store
	AddCategory(name string) (catalog.Category, error)
}

// Parse decodes and checks a fixture. Every product must name a declared
// category and carry a non-negative price.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}

	known := make(map[string]bool, len(f.Categories))
	for _, c := range f.Categories {
		if known[c] {
			return nil, fmt.Errorf("duplicate category %q", c)
		}
		known[c] = true
	}
	brands := make(map[string]bool, len(f.Brands))
	for _, b := range f.Brands {
		name, err := catalog.ValidateBrandName(b.Name)
		if err != nil {
			return nil, err
		}
		if brands[name] {
			return nil, fmt.Errorf("duplicate brand %q", name)
		}
		brands[name] = true
		for _, p := range b.Products {
			if !known[p.Category] {
				return nil, fmt.Errorf("brand %q: unknown category %q", name, p.Category)
			}
			if _, err := catalog.ParsePrice(p.Price); err != nil {
				return nil, fmt.Errorf("brand %q, category %q: %w", name, p.Category, err)
			}
		}
	}
	return &f, nil
}

// Load reads a fixture from path, or the built-in catalog when path is empty.
func Load(path string) (*Fixture, error) {
	if path == "" {
		return Parse(defaultFixture)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed fixture: %w", err)
	}
	return Parse(data)
}

// Apply writes the fixture into store. Brands and products go in one
// transaction.
func Apply(ctx context.Context, store CategoryAdder, f *Fixture) error {
	categoryIDs := make(map[string]int64, len(f.Categories))
	for _, name := range f.Categories {
		c, err := store.AddCategory(name)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		categoryIDs[name] = c.ID
	}

	return store.InTx(ctx, func(tx storage.Tx) error {
		for _, bf := range f.Brands {
			name, _ := catalog.ValidateBrandName(bf.Name)
			b, err := tx.InsertBrand(ctx, name)
			if err != nil {
				return fmt.Errorf("seed brand %q: %w", name, err)
			}
			for _, pf := range bf.Products {
				price, _ := catalog.ParsePrice(pf.Price)
				if _, err := tx.InsertProduct(ctx, catalog.Product{
					Price:      price,
					BrandID:    b.ID,
					CategoryID: categoryIDs[pf.Category],
				}); err != nil {
					return fmt.Errorf("seed product %s/%s: %w", name, pf.Category, err)
				}
			}
		}
		return nil
	})
}
