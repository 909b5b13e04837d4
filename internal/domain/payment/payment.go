// Package payment models the closed set of supported payment methods.
package payment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Method is one of the three supported payment behaviors.
type Method int

// The full method set, in menu order.
const (
	Cash Method = iota + 1
	Card
	EWallet
)

// Methods returns all selectable methods in menu order.
func Methods() []Method {
	return []Method{Cash, Card, EWallet}
}

// InvalidSelectionError indicates a payment choice outside the method set.
type InvalidSelectionError struct {
	Choice int
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid payment method selected: %d", e.Choice)
}

// FromChoice maps a 1-based menu choice to a Method.
func FromChoice(n int) (Method, error) {
	switch n {
	case 1:
		return Cash, nil
	case 2:
		return Card, nil
	case 3:
		return EWallet, nil
	default:
		return 0, &InvalidSelectionError{Choice: n}
	}
}

// String returns the stable display name.
func (m Method) String() string {
	switch m {
	case Cash:
		return "Cash"
	case Card:
		return "Credit/Debit Card"
	case EWallet:
		return "E-Wallet"
	default:
		return "Unknown"
	}
}

// Confirmation records a completed payment step. Payment here is purely
// observational: the order is already committed when Pay runs, and there is
// no settlement that could fail.
type Confirmation struct {
	Reference uuid.UUID
	Method    Method
	Amount    decimal.Decimal
}

// Pay produces the confirmation for amount. It never fails.
func (m Method) Pay(amount decimal.Decimal) Confirmation {
	return Confirmation{
		Reference: uuid.New(),
		Method:    m,
		Amount:    amount,
	}
}

// Message renders the user-facing confirmation line. Amounts always carry
// two decimal places.
func (c Confirmation) Message() string {
	return fmt.Sprintf("Paid $%s using %s (ref %s)", c.Amount.StringFixed(2), c.Method, c.Reference)
}
