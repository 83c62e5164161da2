package query

import (
	"fmt"

	"github.com/nearmart/catalogd/internal/domain/geo"
)

// MaxTextLength is the maximum allowed free-text query length.
const MaxTextLength = 256

// Query is a validated catalog search query. Category and brand are optional
// filters: nil means "no filter" rather than a magic sentinel string, so a
// category literally named "All" stays expressible.
type Query struct {
	text     string
	category *string
	brand    *string
	origin   geo.Point
}

// New validates and normalizes search parameters. A nil origin falls back to
// the fixed city-center reference point.
func New(text string, category, brand *string, origin *geo.Point) (Query, error) {
	if len(text) > MaxTextLength {
		return Query{}, fmt.Errorf("query text too long (max %d chars)", MaxTextLength)
	}

	o := geo.DefaultOrigin()
	if origin != nil {
		if !origin.Valid() {
			return Query{}, fmt.Errorf("invalid origin coordinates (%v, %v)", origin.Lat, origin.Lon)
		}
		o = *origin
	}

	return Query{
		text:     text,
		category: copyFilter(category),
		brand:    copyFilter(brand),
		origin:   o,
	}, nil
}

// Text returns the free-text query; empty means "match all".
func (q Query) Text() string { return q.text }

// Category returns the category filter, nil when unfiltered.
func (q Query) Category() *string { return q.category }

// Brand returns the brand filter, nil when unfiltered.
func (q Query) Brand() *string { return q.brand }

// Origin returns the distance reference point.
func (q Query) Origin() geo.Point { return q.origin }

func copyFilter(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
