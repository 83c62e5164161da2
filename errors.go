package catalogd

import "github.com/nearmart/catalogd/internal/domain"

// Sentinel errors returned by Client methods; match with errors.Is.
var (
	ErrProductNotFound    = domain.ErrProductNotFound
	ErrVendorNotFound     = domain.ErrVendorNotFound
	ErrInvalidCatalog     = domain.ErrInvalidCatalog
	ErrInvalidCoordinates = domain.ErrInvalidCoordinates
)
