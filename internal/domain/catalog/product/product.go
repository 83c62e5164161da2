package product

import "fmt"

// Product is an immutable catalog product. Vendors reference it by id from
// their listings; the engine never mutates it after load.
type Product struct {
	id          string
	name        string
	brand       string
	category    string
	description string
	imageURL    string
	tags        []string
}

// New validates and creates a product.
func New(id, name, brand, category, description, imageURL string, tags []string) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product id is required")
	}
	if name == "" {
		return Product{}, fmt.Errorf("product %s: name is required", id)
	}
	if category == "" {
		return Product{}, fmt.Errorf("product %s: category is required", id)
	}

	t := make([]string, len(tags))
	copy(t, tags)

	return Product{
		id:          id,
		name:        name,
		brand:       brand,
		category:    category,
		description: description,
		imageURL:    imageURL,
		tags:        t,
	}, nil
}

// ID returns the unique product identifier.
func (p Product) ID() string { return p.id }

// Name returns the display name.
func (p Product) Name() string { return p.name }

// Brand returns the brand name.
func (p Product) Brand() string { return p.brand }

// Category returns the category name.
func (p Product) Category() string { return p.category }

// Description returns the long description.
func (p Product) Description() string { return p.description }

// ImageURL returns the product image location.
func (p Product) ImageURL() string { return p.imageURL }

// Tags returns the text-matching tags.
func (p Product) Tags() []string { return p.tags }
