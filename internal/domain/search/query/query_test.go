package query

import (
	"strings"
	"testing"

	"github.com/nearmart/catalogd/internal/domain/geo"
)

func strPtr(s string) *string { return &s }

func TestNew_Defaults(t *testing.T) {
	q, err := New("", nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text() != "" || q.Category() != nil || q.Brand() != nil {
		t.Errorf("expected unfiltered query, got %+v", q)
	}
	if q.Origin() != geo.DefaultOrigin() {
		t.Errorf("origin: got %+v, want default", q.Origin())
	}
}

func TestNew_ExplicitOrigin(t *testing.T) {
	origin := geo.Point{Lat: 12.9352, Lon: 77.6245}
	q, err := New("milk", strPtr("Dairy"), strPtr("Farm"), &origin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Origin() != origin {
		t.Errorf("origin: got %+v, want %+v", q.Origin(), origin)
	}
	if q.Category() == nil || *q.Category() != "Dairy" {
		t.Errorf("category filter lost: %v", q.Category())
	}
	if q.Brand() == nil || *q.Brand() != "Farm" {
		t.Errorf("brand filter lost: %v", q.Brand())
	}
}

func TestNew_InvalidOrigin(t *testing.T) {
	origin := geo.Point{Lat: 91, Lon: 0}
	if _, err := New("milk", nil, nil, &origin); err == nil {
		t.Fatal("expected error for out-of-range origin")
	}
}

func TestNew_TextTooLong(t *testing.T) {
	if _, err := New(strings.Repeat("a", MaxTextLength+1), nil, nil, nil); err == nil {
		t.Fatal("expected error for oversized query text")
	}
}

func TestNew_CopiesFilters(t *testing.T) {
	cat := "Dairy"
	q, err := New("", &cat, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cat = "Bakery"
	if *q.Category() != "Dairy" {
		t.Error("query must not alias the caller's filter pointer")
	}
}
