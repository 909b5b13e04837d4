package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/shop-kiosk/internal/domain/cart"
)

// Order is an immutable snapshot of a checked-out cart. IDs are sequential
// integers starting at 1, assigned by the Ledger and never reused.
type Order struct {
	ID        int
	Items     []cart.Line
	Total     decimal.Decimal
	Payment   string
	CreatedAt time.Time
}

// AuditLog receives one human-readable line per created order. Implementations
// are best-effort side channels, never a source of truth.
type AuditLog interface {
	Append(line string) error
}
