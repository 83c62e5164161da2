package search

import (
	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/catalog/vendor"
)

// CatalogReader provides read access to the loaded catalog.
type CatalogReader interface {
	Products() []product.Product
	Vendors() []vendor.Vendor
}
