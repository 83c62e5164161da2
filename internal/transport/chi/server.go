package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nearmart/catalogd/internal/domain"
	"github.com/nearmart/catalogd/internal/domain/geo"
	"github.com/nearmart/catalogd/internal/domain/search/query"
	logpkg "github.com/nearmart/catalogd/internal/logger"
	"github.com/nearmart/catalogd/internal/metrics"
	cataloguc "github.com/nearmart/catalogd/internal/usecase/catalog"
	healthuc "github.com/nearmart/catalogd/internal/usecase/health"
	searchuc "github.com/nearmart/catalogd/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the catalog query API over chi.
type Server struct {
	search        *searchuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	defaultOrigin geo.Point
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. defaultOrigin is the distance
// reference point used when a request carries no lat/lng pair.
func NewServer(
	search *searchuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	defaultOrigin geo.Point,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:        search,
		catalog:       catalog,
		health:        health,
		defaultOrigin: defaultOrigin,
		logger:        logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, CodeProductNotFound),
		sentinelHandler(domain.ErrVendorNotFound, http.StatusNotFound, CodeVendorNotFound),
		sentinelHandler(domain.ErrInvalidCoordinates, http.StatusBadRequest, CodeBadRequest),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/categories", s.Categories)
		r.Get("/brands", s.Brands)
		r.Get("/products/{id}", s.GetProduct)
		r.Get("/products/{id}/vendors", s.VendorsForProduct)
		r.Get("/vendors/featured", s.FeaturedVendors)
		r.Get("/vendors/{id}", s.GetVendor)
	})
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	origin, err := parseOrigin(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	if origin == nil {
		o := s.defaultOrigin
		origin = &o
	}

	text := r.URL.Query().Get("q")
	category := filterParam(r, "category")
	brand := filterParam(r, "brand")

	q, err := query.New(text, category, brand, origin)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	filtered := "no"
	if text != "" || category != nil || brand != nil {
		filtered = "yes"
	}
	metrics.SearchRequestsTotal.WithLabelValues(filtered).Inc()

	results := s.search.Search(r.Context(), q)
	metrics.SearchResultsReturned.Observe(float64(len(results)))

	items := make([]SearchResultItem, len(results))
	for i, res := range results {
		items[i] = resultToDTO(res)
	}

	writeJSON(w, http.StatusOK, SearchResponse{Items: items, Total: len(items)})
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.catalog.GetProduct(r.Context(), id)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("product", "miss").Inc()
		s.handleDomainError(w, r, err)
		return
	}
	metrics.LookupsTotal.WithLabelValues("product", "hit").Inc()

	writeJSON(w, http.StatusOK, productToDTO(p))
}

// VendorsForProduct handles GET /api/v1/products/{id}/vendors.
func (s *Server) VendorsForProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	origin, err := parseOrigin(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	if origin == nil {
		o := s.defaultOrigin
		origin = &o
	}

	offers, err := s.catalog.VendorsForProduct(r.Context(), id, origin)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]VendorOfferItem, len(offers))
	for i, o := range offers {
		items[i] = offerToDTO(o)
	}

	writeJSON(w, http.StatusOK, VendorOffersResponse{Items: items, Total: len(items)})
}

// GetVendor handles GET /api/v1/vendors/{id}.
func (s *Server) GetVendor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	v, err := s.catalog.GetVendor(r.Context(), id)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("vendor", "miss").Inc()
		s.handleDomainError(w, r, err)
		return
	}
	metrics.LookupsTotal.WithLabelValues("vendor", "hit").Inc()

	writeJSON(w, http.StatusOK, vendorToDTO(v))
}

// Categories handles GET /api/v1/categories.
func (s *Server) Categories(w http.ResponseWriter, r *http.Request) {
	items := s.catalog.Categories(r.Context())
	if items == nil {
		items = []string{}
	}
	writeJSON(w, http.StatusOK, StringListResponse{Items: items})
}

// Brands handles GET /api/v1/brands.
func (s *Server) Brands(w http.ResponseWriter, r *http.Request) {
	items := s.catalog.Brands(r.Context())
	if items == nil {
		items = []string{}
	}
	writeJSON(w, http.StatusOK, StringListResponse{Items: items})
}

// FeaturedVendors handles GET /api/v1/vendors/featured.
func (s *Server) FeaturedVendors(w http.ResponseWriter, r *http.Request) {
	featured := s.catalog.FeaturedVendors(r.Context())

	items := make([]VendorResponse, len(featured))
	for i, v := range featured {
		items[i] = vendorToDTO(v)
	}

	writeJSON(w, http.StatusOK, VendorListResponse{Items: items, Total: len(items)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// parseOrigin reads the optional lat/lng pair. Both must be present or both
// absent; range validation happens in the domain.
func parseOrigin(r *http.Request) (*geo.Point, error) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")

	if latStr == "" && lngStr == "" {
		return nil, nil
	}
	if latStr == "" || lngStr == "" {
		return nil, errors.New("lat and lng must be provided together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.New("lat must be a number")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errors.New("lng must be a number")
	}

	return &geo.Point{Lat: lat, Lon: lng}, nil
}

// filterParam reads an optional filter query parameter. Empty and the
// storefront's "All" pseudo-value both mean "no filter".
func filterParam(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" || strings.EqualFold(v, "All") {
		return nil
	}
	return &v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProductNotFound,
		domain.ErrVendorNotFound,
		domain.ErrInvalidCoordinates,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	// Prefer the request-scoped logger so domain errors carry request_id.
	log := logpkg.FromContextOr(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
