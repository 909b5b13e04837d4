package product

import (
	"strings"
)

// Catalog is the in-memory, bounded product catalog. It is populated once at
// startup and read-only afterwards; lookups scan linearly because the catalog
// stays small and static.
type Catalog struct {
	products []Product
	capacity int
}

// NewCatalog creates an empty catalog that holds at most capacity products.
func NewCatalog(capacity int) *Catalog {
	return &Catalog{
		products: make([]Product, 0, capacity),
		capacity: capacity,
	}
}

// Add appends a product to the catalog. Adding beyond the capacity bound
// fails with ErrCatalogFull and leaves the catalog unchanged.
func (c *Catalog) Add(p Product) error {
	if len(c.products) >= c.capacity {
		return ErrCatalogFull
	}
	c.products = append(c.products, p)
	return nil
}

// FindByID returns the product whose ID matches case-insensitively, or a
// NotFoundError carrying the requested ID.
func (c *Catalog) FindByID(id string) (*Product, error) {
	for i := range c.products {
		if strings.EqualFold(c.products[i].ID, id) {
			return &c.products[i], nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// List returns the full catalog in seed order for display.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len reports the number of seeded products.
func (c *Catalog) Len() int {
	return len(c.products)
}
