package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twistedcolors/storefront/internal/catalog"
)

func product(id int, price int64) catalog.Product {
	return catalog.Product{ID: id, Title: "piece", Price: decimal.NewFromInt(price)}
}

func requireTotal(t *testing.T, c Cart, want int64) {
	t.Helper()
	require.True(t, decimal.NewFromInt(want).Equal(c.Total()), "total = %s, want %d", c.Total(), want)
}

func TestAddTwiceMergesIntoOneLine(t *testing.T) {
	t.Parallel()

	p := product(1, 299)
	c := New().Add(p).Add(p)

	require.Equal(t, 1, c.Len())
	require.Equal(t, 2, c.Quantity(1))
}

func TestEmptyCartTotalIsZero(t *testing.T) {
	t.Parallel()

	c := New()
	require.True(t, c.IsEmpty())
	require.True(t, c.Total().IsZero())
	require.Zero(t, c.ItemCount())

	var zero Cart
	require.True(t, zero.Total().IsZero())
}

func TestTotalSumsPriceTimesQuantity(t *testing.T) {
	t.Parallel()

	c := New().
		Add(product(1, 299)).
		Add(product(2, 399)).
		Add(product(2, 399)).
		Add(catalog.Product{ID: 3, Price: decimal.RequireFromString("19.99")})

	want := decimal.NewFromInt(299).
		Add(decimal.NewFromInt(399 * 2)).
		Add(decimal.RequireFromString("19.99"))
	require.True(t, want.Equal(c.Total()))
	require.Equal(t, 4, c.ItemCount())
	require.Equal(t, 3, c.Len())
}

func TestChangeQuantityToZeroRemovesLine(t *testing.T) {
	t.Parallel()

	c := New().Add(product(1, 299)).ChangeQuantity(1, -1)

	require.True(t, c.IsEmpty())
	_, ok := c.Line(1)
	require.False(t, ok)
}

func TestChangeQuantityNeverGoesNegative(t *testing.T) {
	t.Parallel()

	c := New().Add(product(1, 10)).ChangeQuantity(1, -50)
	require.True(t, c.IsEmpty())

	c = New().Add(product(1, 10)).ChangeQuantity(1, 4)
	require.Equal(t, 5, c.Quantity(1))
	c = c.ChangeQuantity(1, -2)
	require.Equal(t, 3, c.Quantity(1))
}

func TestChangeQuantityUnknownIsNoop(t *testing.T) {
	t.Parallel()

	c := New().Add(product(1, 10))
	next := c.ChangeQuantity(99, 1)
	require.Equal(t, c.Lines(), next.Lines())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	c := New().Add(product(3, 499))
	next := c.Remove(2).Remove(2)

	require.Equal(t, c.Lines(), next.Lines())
	requireTotal(t, next, 499)
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := New().Add(product(1, 100)).Add(product(2, 200))

	_ = base.Add(product(1, 100))
	_ = base.Add(product(3, 300))
	_ = base.ChangeQuantity(2, 5)
	_ = base.Remove(1)
	_ = base.Clear()

	require.Equal(t, 2, base.Len())
	require.Equal(t, 1, base.Quantity(1))
	require.Equal(t, 1, base.Quantity(2))
	requireTotal(t, base, 300)
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	c := New().Add(product(3, 1)).Add(product(1, 1)).Add(product(2, 1)).Add(product(3, 1))

	var ids []int
	for _, l := range c.Lines() {
		ids = append(ids, l.Product.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestLineSubtotal(t *testing.T) {
	t.Parallel()

	l := Line{Product: product(1, 299), Quantity: 3}
	require.True(t, decimal.NewFromInt(897).Equal(l.Subtotal()))
}

func TestScenarioAddAddDecrement(t *testing.T) {
	t.Parallel()

	p := product(1, 299)

	c := New().Add(p)
	requireTotal(t, c, 299)
	require.Equal(t, 1, c.Len())

	c = c.Add(p)
	require.Equal(t, 2, c.Quantity(1))
	requireTotal(t, c, 598)

	c = c.ChangeQuantity(1, -2)
	require.True(t, c.IsEmpty())
	requireTotal(t, c, 0)
}

func TestScenarioAddTwoRemoveOne(t *testing.T) {
	t.Parallel()

	c := New().Add(product(2, 399)).Add(product(3, 499)).Remove(2)

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 3, lines[0].Product.ID)
	requireTotal(t, c, 499)
}

func TestClear(t *testing.T) {
	t.Parallel()

	c := New().Add(product(1, 1)).Add(product(2, 2)).Clear()
	require.True(t, c.IsEmpty())
}
