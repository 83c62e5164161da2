package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nearmart/catalogd/internal/db"
)

// seedData is the marketplace's sample catalog, embedded so the engine runs
// with zero external dependencies.
//
//go:embed seed.json
var seedData []byte

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds parameters for an in-memory catalog store.
type Config struct {
	// DatasetPath optionally points at a JSON catalog file. Empty means the
	// embedded seed dataset.
	DatasetPath string
}

// Store serves the catalog from an embedded or file-based JSON snapshot.
type Store struct {
	raw []byte
}

// NewStore creates an in-memory catalog store.
func NewStore(cfg Config) (*Store, error) {
	raw := seedData
	if cfg.DatasetPath != "" {
		data, err := os.ReadFile(filepath.Clean(cfg.DatasetPath))
		if err != nil {
			return nil, fmt.Errorf("read catalog dataset %s: %w", cfg.DatasetPath, err)
		}
		raw = data
	}
	return &Store{raw: raw}, nil
}

// LoadCatalog decodes the catalog snapshot.
func (s *Store) LoadCatalog(_ context.Context) (db.Catalog, error) {
	var c db.Catalog
	if err := json.Unmarshal(s.raw, &c); err != nil {
		return db.Catalog{}, &db.Error{Op: db.OpRead, Err: err}
	}
	return c, nil
}

// SeedCatalog replaces the in-memory snapshot. Mainly used by tests.
func (s *Store) SeedCatalog(_ context.Context, c db.Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	s.raw = data
	return nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op for the in-memory store.
func (s *Store) Close() {}

// WaitForReady returns immediately; the snapshot is always available.
func (s *Store) WaitForReady(_ context.Context, _ time.Duration) error { return nil }
