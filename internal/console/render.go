package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/shop-kiosk/internal/domain/cart"
	"github.com/xenking/shop-kiosk/internal/domain/order"
	"github.com/xenking/shop-kiosk/internal/domain/product"
)

func renderProducts(w io.Writer, products []product.Product) {
	fmt.Fprintln(w, "\nAvailable Products")
	fmt.Fprintf(w, "%-15s%-20s%10s\n", "Product ID", "Name", "Price ($)")
	for _, p := range products {
		fmt.Fprintf(w, "%-15s%-20s%10s\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
	fmt.Fprintln(w)
}

func renderCart(w io.Writer, lines []cart.Line, total decimal.Decimal) {
	fmt.Fprintln(w, "\nShopping Cart")
	fmt.Fprintf(w, "%-15s%-20s%10s%10s%12s\n", "Product ID", "Name", "Price ($)", "Quantity", "Total ($)")
	for _, l := range lines {
		fmt.Fprintf(w, "%-15s%-20s%10s%10d%12s\n",
			l.Product.ID, l.Product.Name, l.Product.Price.StringFixed(2),
			l.Quantity, l.Subtotal().StringFixed(2))
	}
	fmt.Fprintln(w, strings.Repeat("-", 67))
	fmt.Fprintf(w, "%55s%12s\n", "Total Amount: $", total.StringFixed(2))
	fmt.Fprintln(w)
}

func renderOrder(w io.Writer, o order.Order) {
	fmt.Fprintf(w, "\nOrder ID: %d\n", o.ID)
	fmt.Fprintf(w, "Total Amount: $%s\n", o.Total.StringFixed(2))
	fmt.Fprintf(w, "Payment Method: %s\n", o.Payment)
	fmt.Fprintln(w, "Order Details:")
	fmt.Fprintf(w, "%-15s%-20s%10s%10s\n", "Product ID", "Name", "Price ($)", "Quantity")
	for _, l := range o.Items {
		fmt.Fprintf(w, "%-15s%-20s%10s%10d\n",
			l.Product.ID, l.Product.Name, l.Product.Price.StringFixed(2), l.Quantity)
	}
}
