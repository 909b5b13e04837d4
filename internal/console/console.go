// Package console drives the interactive menu loop over line-oriented stdio.
// It plays the presentation role: every domain mutation goes through the
// catalog, cart, and ledger it is constructed with.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/xenking/shop-kiosk/internal/domain/cart"
	"github.com/xenking/shop-kiosk/internal/domain/order"
	"github.com/xenking/shop-kiosk/internal/domain/payment"
	"github.com/xenking/shop-kiosk/internal/domain/product"
)

// Controller owns the menu state machine. It reads one line per prompt and
// writes all user-facing text to out; operational events go to the logger.
type Controller struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *product.Catalog
	cart    *cart.Cart
	ledger  *order.Ledger
	lg      *zap.Logger
}

// New constructs a Controller over the given streams and domain instances.
func New(
	in io.Reader,
	out io.Writer,
	catalog *product.Catalog,
	basket *cart.Cart,
	ledger *order.Ledger,
	lg *zap.Logger,
) *Controller {
	return &Controller{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: catalog,
		cart:    basket,
		ledger:  ledger,
		lg:      lg,
	}
}

// Run loops on the main menu until the user exits or input is exhausted.
// It returns nil on a normal exit and an error only for conditions the
// session cannot continue from, such as ledger exhaustion.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, "\nShopping System Menu\n"+
			"1. View Products\n"+
			"2. View Shopping Cart\n"+
			"3. View Orders\n"+
			"4. Exit\n"+
			"Enter your choice: ")

		line, err := c.readLine()
		if err != nil {
			return c.finish(err)
		}

		choice, perr := ParseChoice(line)
		if perr != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case 1:
			err = c.viewProducts()
		case 2:
			err = c.viewCart()
		case 3:
			c.viewOrders()
		case 4:
			fmt.Fprintln(c.out, "Thank you for using our Shopping System!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

// finish maps end-of-input to a normal exit; everything else is fatal.
func (c *Controller) finish(err error) error {
	if errors.Is(err, io.EOF) {
		c.lg.Info("input closed, exiting")
		return nil
	}
	return err
}

// viewProducts shows the catalog and runs the add-to-cart loop until the
// user declines to add another product.
func (c *Controller) viewProducts() error {
	renderProducts(c.out, c.catalog.List())

	for {
		p, err := c.promptProduct()
		if err != nil {
			return err
		}

		qty, err := c.promptQuantity()
		if err != nil {
			return err
		}

		if err := c.cart.Add(*p, qty); err != nil {
			fmt.Fprintf(c.out, "Error: %s\n", err)
		} else {
			fmt.Fprintln(c.out, "Product added successfully!")
		}

		fmt.Fprint(c.out, "Do you want to add another product to the shopping cart? (Y/N): ")
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if !IsYes(line) {
			return nil
		}
	}
}

// promptProduct re-prompts until the input names a catalog product.
func (c *Controller) promptProduct() (*product.Product, error) {
	for {
		fmt.Fprint(c.out, "Enter the ID of the product you want to add to the shopping cart: ")
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}

		id, ok := ProductID(line)
		if !ok {
			fmt.Fprintln(c.out, "Invalid product ID. Please enter a single product letter.")
			continue
		}

		p, err := c.catalog.FindByID(id)
		if err != nil {
			var nf *product.NotFoundError
			if errors.As(err, &nf) {
				fmt.Fprintf(c.out, "Product with ID '%s' not found.\n", id)
				continue
			}
			return nil, err
		}
		return p, nil
	}
}

// promptQuantity re-prompts until the input is a positive integer.
func (c *Controller) promptQuantity() (int, error) {
	for {
		fmt.Fprint(c.out, "Enter quantity: ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		qty, perr := ParseQuantity(line)
		if perr != nil {
			fmt.Fprintln(c.out, "Quantity must be a positive number.")
			continue
		}
		return qty, nil
	}
}

// viewCart shows the cart and offers checkout when it is non-empty.
func (c *Controller) viewCart() error {
	if c.cart.Len() == 0 {
		fmt.Fprintln(c.out, "Your shopping cart is currently empty.")
		return nil
	}

	renderCart(c.out, c.cart.Lines(), c.cart.Total())

	fmt.Fprint(c.out, "Do you want to check out all the products? (Y/N): ")
	line, err := c.readLine()
	if err != nil {
		return err
	}
	if !IsYes(line) {
		return nil
	}
	return c.checkout()
}

// checkout converts the cart plus a chosen payment method into an order.
// An invalid payment selection aborts the attempt back to the main menu
// instead of re-prompting, leaving the cart untouched. The order is created
// and audit-logged before the payment confirmation is rendered.
func (c *Controller) checkout() error {
	fmt.Fprintln(c.out, "\nItems for Checkout")
	renderCart(c.out, c.cart.Lines(), c.cart.Total())

	fmt.Fprintln(c.out, "Select payment method:")
	for i, m := range payment.Methods() {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, m)
	}
	fmt.Fprint(c.out, "Enter your choice: ")

	line, err := c.readLine()
	if err != nil {
		return err
	}

	choice, perr := ParseChoice(line)
	if perr != nil {
		choice = 0
	}
	method, merr := payment.FromChoice(choice)
	if merr != nil {
		fmt.Fprintf(c.out, "Error: %s\n", merr)
		return nil
	}

	o, err := c.ledger.CreateOrder(c.cart, method)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %s\n", err)
		if errors.Is(err, order.ErrLedgerFull) {
			return errors.Wrap(err, "checkout")
		}
		return nil
	}

	conf := method.Pay(o.Total)
	fmt.Fprintln(c.out, conf.Message())
	fmt.Fprintln(c.out, "You have successfully checked out the products!")
	fmt.Fprintf(c.out, "Your order ID is: %d\n", o.ID)

	c.cart.Clear()
	c.lg.Info("order placed",
		zap.Int("order_id", o.ID),
		zap.String("payment", o.Payment),
		zap.String("total", o.Total.StringFixed(2)),
	)
	return nil
}

// viewOrders lists every order created during this session.
func (c *Controller) viewOrders() {
	orders := c.ledger.ListOrders()
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "No orders have been placed yet.")
		return
	}
	for _, o := range orders {
		renderOrder(c.out, o)
	}
}

// readLine reads one line of input. io.EOF means the input stream is done.
func (c *Controller) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
