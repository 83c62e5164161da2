package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nearmart/catalogd/internal/db"
)

// Catalog snapshot keys. The whole product and vendor sets are stored as two
// JSON blobs: the catalog is small, read once at startup, and never queried
// piecemeal.
const (
	productsKey = "catalog:products"
	vendorsKey  = "catalog:vendors"
)

// LoadCatalog reads the catalog snapshot from Redis.
func (s *Store) LoadCatalog(ctx context.Context) (db.Catalog, error) {
	rawProducts, err := s.get(ctx, productsKey)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return db.Catalog{}, db.ErrCatalogNotFound
		}
		return db.Catalog{}, fmt.Errorf("load products: %w", err)
	}

	rawVendors, err := s.get(ctx, vendorsKey)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return db.Catalog{}, db.ErrCatalogNotFound
		}
		return db.Catalog{}, fmt.Errorf("load vendors: %w", err)
	}

	var c db.Catalog
	if err := json.Unmarshal(rawProducts, &c.Products); err != nil {
		return db.Catalog{}, &db.Error{Op: db.OpGet, Err: err}
	}
	if err := json.Unmarshal(rawVendors, &c.Vendors); err != nil {
		return db.Catalog{}, &db.Error{Op: db.OpGet, Err: err}
	}
	return c, nil
}

// SeedCatalog writes a catalog snapshot to Redis, replacing any previous one.
func (s *Store) SeedCatalog(ctx context.Context, c db.Catalog) error {
	rawProducts, err := json.Marshal(c.Products)
	if err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	rawVendors, err := json.Marshal(c.Vendors)
	if err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}

	if err := s.set(ctx, productsKey, rawProducts); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := s.set(ctx, vendorsKey, rawVendors); err != nil {
		return fmt.Errorf("seed vendors: %w", err)
	}
	return nil
}
