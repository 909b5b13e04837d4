package product

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrCatalogFull is returned when seeding or adding beyond the catalog capacity.
var ErrCatalogFull = errors.New("product catalog is full")

// NotFoundError indicates a requested product does not exist in the catalog.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with ID %q not found", e.ID)
}

// Product represents a catalog item available for purchase.
// Products are immutable once seeded.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}
