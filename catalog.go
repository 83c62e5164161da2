// Package catalogd provides an in-process client for the hyperlocal
// marketplace catalog query engine: free-text and filtered product search
// joined with vendor listings, ranked by distance from an origin point.
package catalogd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nearmart/catalogd/internal/db"
	dbMemory "github.com/nearmart/catalogd/internal/db/memory"
	dbRedis "github.com/nearmart/catalogd/internal/db/redis"
	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/catalog/vendor"
	"github.com/nearmart/catalogd/internal/domain/geo"
	"github.com/nearmart/catalogd/internal/domain/search/query"
	catalogrepo "github.com/nearmart/catalogd/internal/repository/catalog"
	cataloguc "github.com/nearmart/catalogd/internal/usecase/catalog"
	searchuc "github.com/nearmart/catalogd/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the catalogd SDK entry point. The catalog is loaded once at
// construction and is immutable afterwards, so a Client is safe for
// concurrent use.
type Client struct {
	store      db.Store
	searchSvc  *searchuc.Service
	catalogSvc *cataloguc.Service
}

// New creates a Client, connects to the configured store, and loads the
// catalog. With no options it serves the embedded sample dataset from
// memory.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:           "memory",
		readinessTimeout: defaultReadinessTimeout,
		logger:           zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("catalogd: store not ready: %w", err)
	}

	repo, err := catalogrepo.Load(ctx, store, cfg.logger)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("catalogd: %w", err)
	}

	return &Client{
		store:      store,
		searchSvc:  searchuc.New(repo),
		catalogSvc: cataloguc.New(repo),
	}, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		s, err := dbMemory.NewStore(dbMemory.Config{DatasetPath: cfg.datasetPath})
		if err != nil {
			return nil, fmt.Errorf("catalogd: create memory store: %w", err)
		}
		return s, nil
	case "redis", "valkey":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Username: cfg.username,
			Password: cfg.password,
			DB:       cfg.database,
		})
		if err != nil {
			return nil, fmt.Errorf("catalogd: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("catalogd: unknown driver %q", cfg.driver)
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// SearchParams narrow a catalog search. Zero values mean "no filter";
// a nil Origin ranks by distance from the default city-center point.
type SearchParams struct {
	Text     string
	Category string
	Brand    string
	Origin   *Coordinates
}

// Product is a catalog product.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Category    string
	Description string
	Image       string
	Tags        []string
}

// Vendor is a catalog vendor.
type Vendor struct {
	ID           string
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	Rating       float64
	ReviewCount  int
	OpeningHours string
	Description  string
	Image        string
	ContactEmail string
	ContactPhone string
	IsVerified   bool
	Featured     bool
}

// SearchResult is one (product, vendor listing) tuple.
type SearchResult struct {
	Product    Product
	Vendor     Vendor
	DistanceKm float64
	Price      float64
	Stock      string
	StockCount int
}

// VendorOffer is a vendor offering one specific product.
type VendorOffer struct {
	Vendor     Vendor
	DistanceKm float64
	Price      float64
	Stock      string
	StockCount int
}

// Search runs a catalog search and returns result tuples sorted ascending
// by distance from the origin.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]SearchResult, error) {
	var category, brand *string
	if params.Category != "" {
		category = &params.Category
	}
	if params.Brand != "" {
		brand = &params.Brand
	}

	var origin *geo.Point
	if params.Origin != nil {
		origin = &geo.Point{Lat: params.Origin.Lat, Lon: params.Origin.Lng}
	}

	q, err := query.New(params.Text, category, brand, origin)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := c.searchSvc.Search(ctx, q)
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{
			Product:    productFromDomain(r.Product()),
			Vendor:     vendorFromDomain(r.Vendor()),
			DistanceKm: r.DistanceKm(),
			Price:      r.Price(),
			Stock:      string(r.Stock()),
			StockCount: r.StockCount(),
		}
	}
	return out, nil
}

// VendorsForProduct returns every vendor listing the product, sorted
// ascending by distance from the origin. Unknown product ids yield an
// empty slice.
func (c *Client) VendorsForProduct(ctx context.Context, productID string, origin *Coordinates) ([]VendorOffer, error) {
	var o *geo.Point
	if origin != nil {
		o = &geo.Point{Lat: origin.Lat, Lon: origin.Lng}
	}

	offers, err := c.catalogSvc.VendorsForProduct(ctx, productID, o)
	if err != nil {
		return nil, fmt.Errorf("vendors for product: %w", err)
	}

	out := make([]VendorOffer, len(offers))
	for i, of := range offers {
		out[i] = VendorOffer{
			Vendor:     vendorFromDomain(of.Vendor()),
			DistanceKm: of.DistanceKm(),
			Price:      of.Price(),
			Stock:      string(of.Stock()),
			StockCount: of.StockCount(),
		}
	}
	return out, nil
}

// Product returns the product with the given id.
// Errors from unknown ids satisfy errors.Is against ErrProductNotFound.
func (c *Client) Product(ctx context.Context, id string) (Product, error) {
	p, err := c.catalogSvc.GetProduct(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("product: %w", err)
	}
	return productFromDomain(p), nil
}

// Vendor returns the vendor with the given id.
// Errors from unknown ids satisfy errors.Is against ErrVendorNotFound.
func (c *Client) Vendor(ctx context.Context, id string) (Vendor, error) {
	v, err := c.catalogSvc.GetVendor(ctx, id)
	if err != nil {
		return Vendor{}, fmt.Errorf("vendor: %w", err)
	}
	return vendorFromDomain(v), nil
}

// Categories returns the distinct product categories, sorted.
func (c *Client) Categories(ctx context.Context) []string {
	return c.catalogSvc.Categories(ctx)
}

// Brands returns the distinct product brands, sorted.
func (c *Client) Brands(ctx context.Context) []string {
	return c.catalogSvc.Brands(ctx)
}

// FeaturedVendors returns the vendors flagged as featured.
func (c *Client) FeaturedVendors(ctx context.Context) []Vendor {
	featured := c.catalogSvc.FeaturedVendors(ctx)
	out := make([]Vendor, len(featured))
	for i, v := range featured {
		out[i] = vendorFromDomain(v)
	}
	return out
}

func productFromDomain(p product.Product) Product {
	return Product{
		ID:          p.ID(),
		Name:        p.Name(),
		Brand:       p.Brand(),
		Category:    p.Category(),
		Description: p.Description(),
		Image:       p.ImageURL(),
		Tags:        p.Tags(),
	}
}

func vendorFromDomain(v vendor.Vendor) Vendor {
	return Vendor{
		ID:           v.ID(),
		Name:         v.Name(),
		Address:      v.Address(),
		Latitude:     v.Location().Lat,
		Longitude:    v.Location().Lon,
		Rating:       v.Rating(),
		ReviewCount:  v.ReviewCount(),
		OpeningHours: v.OpeningHours(),
		Description:  v.Description(),
		Image:        v.ImageURL(),
		ContactEmail: v.ContactEmail(),
		ContactPhone: v.ContactPhone(),
		IsVerified:   v.IsVerified(),
		Featured:     v.IsFeatured(),
	}
}
