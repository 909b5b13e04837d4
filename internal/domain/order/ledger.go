package order

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/xenking/shop-kiosk/internal/domain/cart"
	"github.com/xenking/shop-kiosk/internal/domain/payment"
)

// Sentinel errors for order creation.
var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrLedgerFull = errors.New("maximum number of orders reached")
)

// Ledger is the append-only, process-lifetime collection of orders. Orders
// are never edited or removed after creation.
type Ledger struct {
	orders    []Order
	maxOrders int
	audit     AuditLog
	lg        *zap.Logger
}

// NewLedger creates a ledger bounded to maxOrders, writing one audit line per
// created order.
func NewLedger(maxOrders int, audit AuditLog, lg *zap.Logger) *Ledger {
	return &Ledger{
		maxOrders: maxOrders,
		audit:     audit,
		lg:        lg,
	}
}

// CreateOrder snapshots the cart into a new order, assigns the next
// sequential ID, and appends the audit line. The audit write is best-effort:
// failure is logged as a warning and never aborts the checkout. The cart is
// left untouched; clearing it is the caller's decision.
func (l *Ledger) CreateOrder(c *cart.Cart, method payment.Method) (Order, error) {
	if c.Len() == 0 {
		return Order{}, ErrEmptyCart
	}
	if len(l.orders) >= l.maxOrders {
		return Order{}, ErrLedgerFull
	}

	o := Order{
		ID:        len(l.orders) + 1,
		Items:     c.Lines(),
		Total:     c.Total(),
		Payment:   method.String(),
		CreatedAt: time.Now(),
	}

	line := fmt.Sprintf("order %d checked out and paid using %s", o.ID, o.Payment)
	if err := l.audit.Append(line); err != nil {
		l.lg.Warn("audit log unavailable", zap.Int("order_id", o.ID), zap.Error(err))
	}

	l.orders = append(l.orders, o)
	return o, nil
}

// ListOrders returns all orders in creation order.
func (l *Ledger) ListOrders() []Order {
	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len reports the number of created orders.
func (l *Ledger) Len() int {
	return len(l.orders)
}
