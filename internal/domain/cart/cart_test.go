package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shop-kiosk/internal/domain/product"
)

func newTestProduct(id, name, price string) product.Product {
	return product.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestCart_AddAndTotal(t *testing.T) {
	c := New(100)
	require.NoError(t, c.Add(newTestProduct("A", "Lipstick", "159.00"), 2))

	require.Equal(t, 1, c.Len())
	assert.True(t, decimal.RequireFromString("318.00").Equal(c.Total()))
}

func TestCart_MergeSameProduct(t *testing.T) {
	c := New(100)
	p := newTestProduct("A", "Lipstick", "159.00")

	require.NoError(t, c.Add(p, 2))
	require.NoError(t, c.Add(p, 3))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCart_MergeIsCaseInsensitive(t *testing.T) {
	c := New(100)
	require.NoError(t, c.Add(newTestProduct("A", "Lipstick", "159.00"), 1))
	require.NoError(t, c.Add(newTestProduct("a", "Lipstick", "159.00"), 1))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCart_InvalidQuantity(t *testing.T) {
	c := New(100)
	p := newTestProduct("A", "Lipstick", "159.00")

	require.ErrorIs(t, c.Add(p, 0), ErrInvalidQuantity)
	require.ErrorIs(t, c.Add(p, -3), ErrInvalidQuantity)
	assert.Equal(t, 0, c.Len())
}

func TestCart_LineBound(t *testing.T) {
	c := New(2)
	require.NoError(t, c.Add(newTestProduct("A", "Lipstick", "159.00"), 1))
	require.NoError(t, c.Add(newTestProduct("B", "Blush", "299.00"), 1))

	err := c.Add(newTestProduct("C", "Mascara", "149.00"), 1)
	require.ErrorIs(t, err, ErrCartFull)
	assert.Equal(t, 2, c.Len())

	// Merging into an existing line still works at the bound.
	require.NoError(t, c.Add(newTestProduct("a", "Lipstick", "159.00"), 4))
	assert.Equal(t, 5, c.Lines()[0].Quantity)
}

func TestCart_Clear(t *testing.T) {
	c := New(100)
	require.NoError(t, c.Add(newTestProduct("A", "Lipstick", "159.00"), 2))
	require.NoError(t, c.Add(newTestProduct("B", "Blush", "299.00"), 1))

	c.Clear()

	assert.Empty(t, c.Lines())
	assert.True(t, decimal.Zero.Equal(c.Total()))
}

func TestCart_TotalAcrossLines(t *testing.T) {
	c := New(100)
	require.NoError(t, c.Add(newTestProduct("A", "Lipstick", "159.00"), 2))
	require.NoError(t, c.Add(newTestProduct("I", "Eyeliner", "69.00"), 3))

	assert.True(t, decimal.RequireFromString("525.00").Equal(c.Total()))
}

func TestCart_LinesIsACopy(t *testing.T) {
	c := New(100)
	require.NoError(t, c.Add(newTestProduct("A", "Lipstick", "159.00"), 2))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 2, c.Lines()[0].Quantity)
}
