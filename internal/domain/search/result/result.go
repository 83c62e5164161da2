package result

import (
	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/catalog/stock"
	"github.com/nearmart/catalogd/internal/domain/catalog/vendor"
)

// Result is one (product, vendor listing) tuple emitted by a catalog search.
// It is constructed fresh per call and has no identity of its own.
type Result struct {
	product    product.Product
	vendor     vendor.Vendor
	distanceKm float64
	price      float64
	stock      stock.Status
	stockCount int
}

// New creates a search result tuple.
func New(
	p product.Product, v vendor.Vendor, distanceKm float64,
	price float64, status stock.Status, stockCount int,
) Result {
	return Result{
		product:    p,
		vendor:     v,
		distanceKm: distanceKm,
		price:      price,
		stock:      status,
		stockCount: stockCount,
	}
}

// Product returns the matched product.
func (r Result) Product() product.Product { return r.product }

// Vendor returns the vendor offering the product.
func (r Result) Vendor() vendor.Vendor { return r.vendor }

// DistanceKm returns the origin-to-vendor distance in kilometers (2 dp).
func (r Result) DistanceKm() float64 { return r.distanceKm }

// Price returns the listing price.
func (r Result) Price() float64 { return r.price }

// Stock returns the listing availability.
func (r Result) Stock() stock.Status { return r.stock }

// StockCount returns the listing units on hand.
func (r Result) StockCount() int { return r.stockCount }

// VendorOffer is a vendor paired with its listing for one specific product,
// as returned by vendors-for-product lookups.
type VendorOffer struct {
	vendor     vendor.Vendor
	distanceKm float64
	price      float64
	stock      stock.Status
	stockCount int
}

// NewVendorOffer creates a vendor offer.
func NewVendorOffer(
	v vendor.Vendor, distanceKm float64,
	price float64, status stock.Status, stockCount int,
) VendorOffer {
	return VendorOffer{
		vendor:     v,
		distanceKm: distanceKm,
		price:      price,
		stock:      status,
		stockCount: stockCount,
	}
}

// Vendor returns the vendor.
func (o VendorOffer) Vendor() vendor.Vendor { return o.vendor }

// DistanceKm returns the origin-to-vendor distance in kilometers (2 dp).
func (o VendorOffer) DistanceKm() float64 { return o.distanceKm }

// Price returns the listing price for the looked-up product.
func (o VendorOffer) Price() float64 { return o.price }

// Stock returns the listing availability for the looked-up product.
func (o VendorOffer) Stock() stock.Status { return o.stock }

// StockCount returns the listing units on hand for the looked-up product.
func (o VendorOffer) StockCount() int { return o.stockCount }
