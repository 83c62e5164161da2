package db

import (
	"context"
	"time"
)

// Store is a catalog data source. The catalog is loaded once at startup and
// treated as read-only afterwards; Store implementations only need to hand
// over the raw records.
type Store interface {
	Pinger
	LoadCatalog(ctx context.Context) (Catalog, error)
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks data source connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Seeder is implemented by stores that can be populated from another
// catalog snapshot (used to seed Redis from the embedded dataset).
type Seeder interface {
	SeedCatalog(ctx context.Context, c Catalog) error
}

// Catalog is the raw catalog snapshot as stored.
type Catalog struct {
	Products []ProductRecord `json:"products"`
	Vendors  []VendorRecord  `json:"vendors"`
}

// ProductRecord is the stored form of a product.
type ProductRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

// ListingRecord is the stored form of a vendor's product listing.
type ListingRecord struct {
	ProductID  string  `json:"productId"`
	Price      float64 `json:"price"`
	Stock      string  `json:"stock"`
	StockCount int     `json:"stockCount"`
}

// VendorRecord is the stored form of a vendor.
type VendorRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"reviewCount"`
	OpeningHours string          `json:"openingHours"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"imageUrl"`
	ContactEmail string          `json:"contactEmail"`
	ContactPhone string          `json:"contactPhone"`
	IsVerified   bool            `json:"isVerified"`
	Featured     bool            `json:"featured"`
	Listings     []ListingRecord `json:"products"`
}
