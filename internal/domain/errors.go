package domain

import "errors"

var (
	// ErrProductNotFound signals a missing product.
	ErrProductNotFound = errors.New("product not found")
	// ErrVendorNotFound signals a missing vendor.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrInvalidCatalog signals catalog data that cannot be loaded.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrInvalidCoordinates signals a latitude/longitude pair out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
