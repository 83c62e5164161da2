package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nearmart/catalogd/internal/db"
)

func TestLoadCatalog_EmbeddedSeed(t *testing.T) {
	s, err := NewStore(Config{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	c, err := s.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Products) != 16 {
		t.Errorf("products: got %d, want 16", len(c.Products))
	}
	if len(c.Vendors) != 7 {
		t.Errorf("vendors: got %d, want 7", len(c.Vendors))
	}

	total := 0
	for _, v := range c.Vendors {
		total += len(v.Listings)
	}
	if total != 25 {
		t.Errorf("listings: got %d, want 25", total)
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{"products":[{"id":"p1","name":"Milk","brand":"B","category":"Dairy","tags":["fresh"]}],"vendors":[]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	s, err := NewStore(Config{DatasetPath: path})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	c, err := s.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Products) != 1 || c.Products[0].ID != "p1" {
		t.Errorf("unexpected catalog: %+v", c)
	}
}

func TestNewStore_MissingFile(t *testing.T) {
	if _, err := NewStore(Config{DatasetPath: "/nonexistent/catalog.json"}); err == nil {
		t.Fatal("expected error for missing dataset file")
	}
}

func TestSeedCatalog_RoundTrip(t *testing.T) {
	s, err := NewStore(Config{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	want := db.Catalog{
		Products: []db.ProductRecord{{ID: "p1", Name: "Milk", Brand: "B", Category: "Dairy"}},
	}
	if err := s.SeedCatalog(context.Background(), want); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}

	got, err := s.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(got.Products) != 1 || got.Products[0].ID != "p1" {
		t.Errorf("unexpected catalog after seed: %+v", got)
	}
}

func TestPingAndReady(t *testing.T) {
	s, err := NewStore(Config{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if err := s.WaitForReady(context.Background(), 0); err != nil {
		t.Errorf("WaitForReady: %v", err)
	}
}
