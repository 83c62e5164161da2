package search

import (
	"context"
	"reflect"
	"testing"

	"github.com/nearmart/catalogd/internal/domain/catalog/product"
	"github.com/nearmart/catalogd/internal/domain/catalog/stock"
	"github.com/nearmart/catalogd/internal/domain/catalog/vendor"
	"github.com/nearmart/catalogd/internal/domain/geo"
	"github.com/nearmart/catalogd/internal/domain/search/query"
)

// --- Mocks ---

type mockCatalog struct {
	products []product.Product
	vendors  []vendor.Vendor
}

func (m *mockCatalog) Products() []product.Product { return m.products }
func (m *mockCatalog) Vendors() []vendor.Vendor    { return m.vendors }

func mustProduct(t *testing.T, id, name, brand, category, description string, tags ...string) product.Product {
	t.Helper()
	p, err := product.New(id, name, brand, category, description, "", tags)
	if err != nil {
		t.Fatalf("product.New: %v", err)
	}
	return p
}

func mustListing(t *testing.T, productID string, price float64, status stock.Status, count int) vendor.Listing {
	t.Helper()
	l, err := vendor.NewListing(productID, price, status, count)
	if err != nil {
		t.Fatalf("vendor.NewListing: %v", err)
	}
	return l
}

func mustVendor(t *testing.T, id, name string, loc geo.Point, listings ...vendor.Listing) vendor.Vendor {
	t.Helper()
	v, err := vendor.New(id, name, "", loc, 4.5, 10, "", "", "", "", "", true, false, listings)
	if err != nil {
		t.Fatalf("vendor.New: %v", err)
	}
	return v
}

// testCatalog builds the two-vendor fixture used across search tests:
// P1 (tags: organic) listed by V1 (Koramangala) at 3.99/Available and by
// V2 (city center) at 4.29/Low; P2 (Bakery, brand "Farm Fresh") by V1 only.
func testCatalog(t *testing.T) *mockCatalog {
	t.Helper()
	p1 := mustProduct(t, "P1", "Fresh Milk", "Happy Cow Dairies", "Dairy",
		"Fresh milk from grass-fed cows", "organic")
	p2 := mustProduct(t, "P2", "Sourdough Bread", "Farm Fresh", "Bakery",
		"Baked daily with natural fermentation", "artisan")
	p3 := mustProduct(t, "P3", "Almonds", "Nutty Delights", "Pantry",
		"Raw unsalted almonds", "protein")

	v1 := mustVendor(t, "V1", "Koramangala Market", geo.Point{Lat: 12.9352, Lon: 77.6245},
		mustListing(t, "P1", 3.99, stock.Available, 45),
		mustListing(t, "P2", 5.25, stock.Available, 25),
	)
	v2 := mustVendor(t, "V2", "City Center Store", geo.Point{Lat: 12.9716, Lon: 77.5946},
		mustListing(t, "P1", 4.29, stock.Low, 8),
	)

	return &mockCatalog{products: []product.Product{p1, p2, p3}, vendors: []vendor.Vendor{v1, v2}}
}

func mustQuery(t *testing.T, text string, category, brand *string) query.Query {
	t.Helper()
	q, err := query.New(text, category, brand, nil)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return q
}

func strPtr(s string) *string { return &s }

// --- Tests ---

func TestSearch_TagMatch_OneTuplePerListing(t *testing.T) {
	svc := New(testCatalog(t))

	results := svc.Search(context.Background(), mustQuery(t, "organic", nil, nil))
	if len(results) != 2 {
		t.Fatalf("expected 2 tuples (one per vendor listing of P1), got %d", len(results))
	}

	// V2 sits at the default origin, so it comes first.
	first, second := results[0], results[1]
	if first.Vendor().ID() != "V2" || second.Vendor().ID() != "V1" {
		t.Errorf("order: got %s, %s; want V2, V1", first.Vendor().ID(), second.Vendor().ID())
	}
	if first.DistanceKm() != 0 {
		t.Errorf("distance to origin-located vendor: got %v, want 0.00", first.DistanceKm())
	}
	if first.Product().ID() != "P1" || second.Product().ID() != "P1" {
		t.Error("both tuples must carry P1")
	}
	if first.Price() != 4.29 || first.Stock() != stock.Low || first.StockCount() != 8 {
		t.Errorf("V2 listing fields: got %v/%v/%d", first.Price(), first.Stock(), first.StockCount())
	}
	if second.Price() != 3.99 || second.Stock() != stock.Available || second.StockCount() != 45 {
		t.Errorf("V1 listing fields: got %v/%v/%d", second.Price(), second.Stock(), second.StockCount())
	}
}

func TestSearch_NoFilters_FullCrossJoin(t *testing.T) {
	cat := testCatalog(t)
	svc := New(cat)

	results := svc.Search(context.Background(), mustQuery(t, "", nil, nil))

	total := 0
	for _, v := range cat.vendors {
		total += len(v.Listings())
	}
	if len(results) != total {
		t.Fatalf("expected one tuple per listing (%d), got %d", total, len(results))
	}
}

func TestSearch_SortedAscendingByDistance(t *testing.T) {
	svc := New(testCatalog(t))

	results := svc.Search(context.Background(), mustQuery(t, "", nil, nil))
	for i := 1; i < len(results); i++ {
		if results[i].DistanceKm() < results[i-1].DistanceKm() {
			t.Errorf("results not sorted: [%d]=%f < [%d]=%f",
				i, results[i].DistanceKm(), i-1, results[i-1].DistanceKm())
		}
	}
}

func TestSearch_TextMatchesNameDescriptionTags(t *testing.T) {
	svc := New(testCatalog(t))

	tests := []struct {
		text string
		want string
	}{
		{"MILK", "P1"},         // name, case-insensitive
		{"fermentation", "P2"}, // description
		{"protein", "P3"},      // tag (P3 has no listings, so zero results)
	}

	for _, tt := range tests {
		results := svc.Search(context.Background(), mustQuery(t, tt.text, nil, nil))
		for _, r := range results {
			if r.Product().ID() != tt.want {
				t.Errorf("query %q matched %s, want only %s", tt.text, r.Product().ID(), tt.want)
			}
		}
	}
}

func TestSearch_UnlistedProductAbsent(t *testing.T) {
	svc := New(testCatalog(t))

	// P3 matches but no vendor lists it: silently absent, not an error.
	results := svc.Search(context.Background(), mustQuery(t, "almonds", nil, nil))
	if len(results) != 0 {
		t.Fatalf("expected 0 tuples for unlisted product, got %d", len(results))
	}
}

func TestSearch_NoMatch_Empty(t *testing.T) {
	svc := New(testCatalog(t))

	if results := svc.Search(context.Background(), mustQuery(t, "nonexistentitem", nil, nil)); len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestSearch_CategoryExactCaseInsensitive(t *testing.T) {
	svc := New(testCatalog(t))

	results := svc.Search(context.Background(), mustQuery(t, "", strPtr("dairy"), nil))
	if len(results) != 2 {
		t.Fatalf("category dairy: expected 2 tuples, got %d", len(results))
	}
	for _, r := range results {
		if r.Product().Category() != "Dairy" {
			t.Errorf("category filter leaked product %s", r.Product().ID())
		}
	}

	// Exact match, not substring.
	if results := svc.Search(context.Background(), mustQuery(t, "", strPtr("Dair"), nil)); len(results) != 0 {
		t.Errorf("category prefix must not match, got %d tuples", len(results))
	}
}

func TestSearch_BrandSubstringCaseInsensitive(t *testing.T) {
	svc := New(testCatalog(t))

	// "farm" is a substring of the "Farm Fresh" brand.
	results := svc.Search(context.Background(), mustQuery(t, "", nil, strPtr("farm")))
	if len(results) != 1 {
		t.Fatalf("brand farm: expected 1 tuple, got %d", len(results))
	}
	if results[0].Product().ID() != "P2" {
		t.Errorf("brand filter matched %s, want P2", results[0].Product().ID())
	}
}

func TestSearch_FiltersAreANDed(t *testing.T) {
	svc := New(testCatalog(t))

	// Text matches P1, category excludes it.
	if results := svc.Search(context.Background(), mustQuery(t, "organic", strPtr("Bakery"), nil)); len(results) != 0 {
		t.Fatalf("expected 0 tuples when predicates conflict, got %d", len(results))
	}
}

func TestSearch_UnknownFilterValues_EmptyNotError(t *testing.T) {
	svc := New(testCatalog(t))

	if results := svc.Search(context.Background(), mustQuery(t, "", strPtr("Frozen"), nil)); len(results) != 0 {
		t.Errorf("unknown category: expected empty, got %d", len(results))
	}
	if results := svc.Search(context.Background(), mustQuery(t, "", nil, strPtr("NoSuchBrand"))); len(results) != 0 {
		t.Errorf("unknown brand: expected empty, got %d", len(results))
	}
}

func TestSearch_ExplicitOrigin_ReordersResults(t *testing.T) {
	svc := New(testCatalog(t))

	origin := geo.Point{Lat: 12.9352, Lon: 77.6245} // V1's location
	q, err := query.New("organic", nil, nil, &origin)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}

	results := svc.Search(context.Background(), q)
	if len(results) != 2 {
		t.Fatalf("expected 2 tuples, got %d", len(results))
	}
	if results[0].Vendor().ID() != "V1" {
		t.Errorf("nearest vendor to explicit origin: got %s, want V1", results[0].Vendor().ID())
	}
	if results[0].DistanceKm() != 0 {
		t.Errorf("distance: got %v, want 0.00", results[0].DistanceKm())
	}
}

func TestSearch_Idempotent(t *testing.T) {
	svc := New(testCatalog(t))
	q := mustQuery(t, "", nil, nil)

	first := svc.Search(context.Background(), q)
	second := svc.Search(context.Background(), q)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical searches over an unchanged catalog must be deep-equal")
	}
}

func TestSearch_EmptyCatalog(t *testing.T) {
	svc := New(&mockCatalog{})

	if results := svc.Search(context.Background(), mustQuery(t, "", nil, nil)); len(results) != 0 {
		t.Fatalf("empty catalog: expected empty result, got %d", len(results))
	}
}
