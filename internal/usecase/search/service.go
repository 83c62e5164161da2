package search

import (
	"context"
	"sort"

	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/geo"
	"github.com/nearmart/catalogd/internal/domain/search/match"
	"github.com/nearmart/catalogd/internal/domain/search/query"
	"github.com/nearmart/catalogd/internal/domain/search/result"
)

// Service answers catalog searches: products filtered by text/category/brand,
// joined with every vendor listing of a surviving product, ranked by distance
// from the query origin.
type Service struct {
	catalog CatalogReader
}

// New creates a search service.
func New(catalog CatalogReader) *Service {
	return &Service{catalog: catalog}
}

// Search is a total function: unknown filter values yield an empty result,
// never an error. Results are sorted ascending by distance; ties keep
// catalog insertion order (stable sort).
func (s *Service) Search(_ context.Context, q query.Query) []result.Result {
	matched := s.matchProducts(q)
	if len(matched) == 0 {
		return nil
	}

	var results []result.Result
	for _, v := range s.catalog.Vendors() {
		dist := geo.DistanceKm(q.Origin(), v.Location())
		for _, l := range v.Listings() {
			p, ok := matched[l.ProductID()]
			if !ok {
				continue
			}
			results = append(results, result.New(p, v, dist, l.Price(), l.Stock(), l.StockCount()))
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm() < results[j].DistanceKm()
	})

	return results
}

// matchProducts applies the AND of the three predicates. An absent filter
// always passes.
func (s *Service) matchProducts(q query.Query) map[string]product.Product {
	matched := make(map[string]product.Product)
	for _, p := range s.catalog.Products() {
		if !matchesText(p, q.Text()) {
			continue
		}
		if q.Category() != nil && !match.Equals(p.Category(), *q.Category()) {
			continue
		}
		if q.Brand() != nil && !match.Contains(p.Brand(), *q.Brand()) {
			continue
		}
		matched[p.ID()] = p
	}
	return matched
}

// matchesText tests case-insensitive substring containment against the
// product name, description, and each tag; any one hit counts.
func matchesText(p product.Product, text string) bool {
	if text == "" {
		return true
	}
	return match.Contains(p.Name(), text) ||
		match.Contains(p.Description(), text) ||
		match.AnyContains(p.Tags(), text)
}
