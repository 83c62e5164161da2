package chi

import (
	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/catalog/vendor"
	"github.com/nearmart/catalogd/internal/domain/search/result"
)

// ErrorCode identifies the error class in API responses.
type ErrorCode string

const (
	CodeBadRequest      ErrorCode = "bad_request"
	CodeProductNotFound ErrorCode = "product_not_found"
	CodeVendorNotFound  ErrorCode = "vendor_not_found"
	CodeInternalError   ErrorCode = "internal_error"
)

// ErrorResponse is the uniform API error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ProductResponse is the wire form of a catalog product.
type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// VendorResponse is the wire form of a catalog vendor. Distance is only
// present on query results, never here.
type VendorResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	OpeningHours string  `json:"openingHours,omitempty"`
	Description  string  `json:"description,omitempty"`
	Image        string  `json:"image,omitempty"`
	ContactEmail string  `json:"contactEmail,omitempty"`
	ContactPhone string  `json:"contactPhone,omitempty"`
	IsVerified   bool    `json:"isVerified"`
	Featured     bool    `json:"featured"`
}

// SearchResultItem is one (product, vendor listing) tuple.
type SearchResultItem struct {
	Product    ProductResponse `json:"product"`
	Vendor     VendorResponse  `json:"vendor"`
	DistanceKm float64         `json:"distanceKm"`
	Price      float64         `json:"price"`
	Stock      string          `json:"stock"`
	StockCount int             `json:"stockCount"`
}

// SearchResponse is the body of GET /api/v1/search.
type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
	Total int                `json:"total"`
}

// VendorOfferItem is one vendor offering the looked-up product.
type VendorOfferItem struct {
	Vendor     VendorResponse `json:"vendor"`
	DistanceKm float64        `json:"distanceKm"`
	Price      float64        `json:"price"`
	Stock      string         `json:"stock"`
	StockCount int            `json:"stockCount"`
}

// VendorOffersResponse is the body of GET /api/v1/products/{id}/vendors.
type VendorOffersResponse struct {
	Items []VendorOfferItem `json:"items"`
	Total int               `json:"total"`
}

// StringListResponse is the body of the categories and brands endpoints.
type StringListResponse struct {
	Items []string `json:"items"`
}

// VendorListResponse is the body of GET /api/v1/vendors/featured.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Total int              `json:"total"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func productToDTO(p product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Brand:       p.Brand(),
		Category:    p.Category(),
		Description: p.Description(),
		Image:       p.ImageURL(),
		Tags:        p.Tags(),
	}
}

func vendorToDTO(v vendor.Vendor) VendorResponse {
	return VendorResponse{
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

func resultToDTO(r result.Result) SearchResultItem {
	return SearchResultItem{
		Product:    productToDTO(r.Product()),
		Vendor:     vendorToDTO(r.Vendor()),
		DistanceKm: r.DistanceKm(),
		Price:      r.Price(),
		Stock:      string(r.Stock()),
		StockCount: r.StockCount(),
	}
}

func offerToDTO(o result.VendorOffer) VendorOfferItem {
	return VendorOfferItem{
		Vendor:     vendorToDTO(o.Vendor()),
		DistanceKm: o.DistanceKm(),
		Price:      o.Price(),
		Stock:      string(o.Stock()),
		StockCount: o.StockCount(),
	}
}
