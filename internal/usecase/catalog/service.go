package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/nearmart/catalogd/internal/domain"
	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/catalog/vendor"
	"github.com/nearmart/catalogd/internal/domain/geo"
	"github.com/nearmart/catalogd/internal/domain/search/result"
)

// Service serves keyed catalog lookups and per-product vendor listings.
type Service struct {
	catalog CatalogReader
}

// New creates a catalog service.
func New(catalog CatalogReader) *Service {
	return &Service{catalog: catalog}
}

// GetProduct returns the product with the given id.
func (s *Service) GetProduct(_ context.Context, id string) (product.Product, error) {
	p, ok := s.catalog.ProductByID(id)
	if !ok {
		return product.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrProductNotFound)
	}
	return p, nil
}

// GetVendor returns the vendor with the given id.
func (s *Service) GetVendor(_ context.Context, id string) (vendor.Vendor, error) {
	v, ok := s.catalog.VendorByID(id)
	if !ok {
		return vendor.Vendor{}, fmt.Errorf("vendor %q: %w", id, domain.ErrVendorNotFound)
	}
	return v, nil
}

// VendorsForProduct returns one offer per vendor listing the product,
// sorted ascending by distance from the origin. A nil origin falls back
// to the default. An unknown product id yields an empty result, not an
// error.
func (s *Service) VendorsForProduct(_ context.Context, productID string, origin *geo.Point) ([]result.VendorOffer, error) {
	o := geo.DefaultOrigin()
	if origin != nil {
		if !origin.Valid() {
			return nil, fmt.Errorf("origin (%f, %f): %w", origin.Lat, origin.Lon, domain.ErrInvalidCoordinates)
		}
		o = *origin
	}

	var offers []result.VendorOffer
	for _, v := range s.catalog.Vendors() {
		l, ok := v.ListingFor(productID)
		if !ok {
			continue
		}
		dist := geo.DistanceKm(o, v.Location())
		offers = append(offers, result.NewVendorOffer(v, dist, l.Price(), l.Stock(), l.StockCount()))
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].DistanceKm() < offers[j].DistanceKm()
	})

	return offers, nil
}

// Categories returns the distinct product categories, sorted.
func (s *Service) Categories(_ context.Context) []string {
	return distinct(s.catalog.Products(), product.Product.Category)
}

// Brands returns the distinct product brands, sorted. Products without
// a brand are skipped.
func (s *Service) Brands(_ context.Context) []string {
	return distinct(s.catalog.Products(), product.Product.Brand)
}

// FeaturedVendors returns the vendors flagged as featured, in catalog
// order.
func (s *Service) FeaturedVendors(_ context.Context) []vendor.Vendor {
	var featured []vendor.Vendor
	for _, v := range s.catalog.Vendors() {
		if v.IsFeatured() {
			featured = append(featured, v)
		}
	}
	return featured
}

func distinct(products []product.Product, field func(product.Product) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range products {
		val := field(p)
		if val == "" {
			continue
		}
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		values = append(values, val)
	}
	sort.Strings(values)
	return values
}
