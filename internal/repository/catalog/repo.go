package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nearmart/catalogd/internal/db"
	"github.com/nearmart/catalogd/internal/domain"
	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/catalog/stock"
	"github.com/nearmart/catalogd/internal/domain/catalog/vendor"
	"github.com/nearmart/catalogd/internal/domain/geo"
)

// source is the consumer interface for catalog loading (ISP).
type source interface {
	LoadCatalog(ctx context.Context) (db.Catalog, error)
}

// Repo holds the immutable domain catalog. It is built once at startup and
// read-only afterwards, so lookups need no locking.
type Repo struct {
	products []product.Product
	vendors  []vendor.Vendor
	byProd   map[string]product.Product
	byVend   map[string]vendor.Vendor
}

// Load reads the catalog from the source and builds the domain model.
// A listing referencing an unknown product id is dropped with a warning
// (resolved-or-skip); structurally invalid records fail the load.
func Load(ctx context.Context, src source, logger *zap.Logger) (*Repo, error) {
	c, err := src.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	r := &Repo{
		byProd: make(map[string]product.Product, len(c.Products)),
		byVend: make(map[string]vendor.Vendor, len(c.Vendors)),
	}

	for _, rec := range c.Products {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		p, err := product.New(rec.ID, rec.Name, rec.Brand, rec.Category, rec.Description, rec.ImageURL, rec.Tags)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
		}
		if _, exists := r.byProd[p.ID()]; exists {
			return nil, fmt.Errorf("%w: duplicate product id %q", domain.ErrInvalidCatalog, p.ID())
		}
		r.products = append(r.products, p)
		r.byProd[p.ID()] = p
	}

	dropped := 0
	for _, rec := range c.Vendors {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}

		listings := make([]vendor.Listing, 0, len(rec.Listings))
		for _, lr := range rec.Listings {
			if _, ok := r.byProd[lr.ProductID]; !ok {
				dropped++
				logger.Warn("dropping listing for unknown product",
					zap.String("vendor_id", rec.ID),
					zap.String("product_id", lr.ProductID),
				)
				continue
			}
			l, err := vendor.NewListing(lr.ProductID, lr.Price, stock.Status(lr.Stock), lr.StockCount)
			if err != nil {
				return nil, fmt.Errorf("%w: vendor %s: %w", domain.ErrInvalidCatalog, rec.ID, err)
			}
			listings = append(listings, l)
		}

		v, err := vendor.New(
			rec.ID, rec.Name, rec.Address,
			geo.Point{Lat: rec.Latitude, Lon: rec.Longitude},
			rec.Rating, rec.ReviewCount,
			rec.OpeningHours, rec.Description, rec.ImageURL,
			rec.ContactEmail, rec.ContactPhone,
			rec.IsVerified, rec.Featured,
			listings,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
		}
		if _, exists := r.byVend[v.ID()]; exists {
			return nil, fmt.Errorf("%w: duplicate vendor id %q", domain.ErrInvalidCatalog, v.ID())
		}
		r.vendors = append(r.vendors, v)
		r.byVend[v.ID()] = v
	}

	logger.Info("catalog loaded",
		zap.Int("products", len(r.products)),
		zap.Int("vendors", len(r.vendors)),
		zap.Int("dropped_listings", dropped),
	)

	return r, nil
}

// Products returns all products in catalog order.
func (r *Repo) Products() []product.Product { return r.products }

// Vendors returns all vendors in catalog order.
func (r *Repo) Vendors() []vendor.Vendor { return r.vendors }

// ProductByID returns the product with the given id.
func (r *Repo) ProductByID(id string) (product.Product, bool) {
	p, ok := r.byProd[id]
	return p, ok
}

// VendorByID returns the vendor with the given id.
func (r *Repo) VendorByID(id string) (vendor.Vendor, bool) {
	v, ok := r.byVend[id]
	return v, ok
}

// HealthCheck reports whether the catalog is usable for queries.
func (r *Repo) HealthCheck(_ context.Context) error {
	if len(r.products) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	return nil
}
