package catalog

import (
	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/catalog/vendor"
)

// CatalogReader provides read access to the loaded catalog, including
// keyed lookups.
type CatalogReader interface {
	Products() []product.Product
	Vendors() []vendor.Vendor
	ProductByID(id string) (product.Product, bool)
	VendorByID(id string) (vendor.Vendor, bool)
}
