package pos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipos/minipos-golang/internal/models"
)

func setupOrders(t *testing.T, products ...models.Product) (*CartService, *OrderService, *mockCatalog, *mockOrders) {
	t.Helper()
	catalog := newMockCatalog(products...)
	carts := newMockCarts()
	orders := newMockOrders(carts)
	return NewCartService(catalog, carts), NewOrderService(catalog, carts, orders), catalog, orders
}

func TestCheckoutEmptyCart(t *testing.T) {
	_, orderSvc, _, orders := setupOrders(t)
	ctx := context.Background()

	_, err := orderSvc.Checkout(ctx, testUser)
	assert.ErrorIs(t, err, ErrEmptyCart)

	history, err := orderSvc.History(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, history, "failed checkout must not append to history")
	assert.Empty(t, orders.history[testUser])
}

func TestCheckoutAtomicOnCorruptCart(t *testing.T) {
	cartSvc, orderSvc, catalog, _ := setupOrders(t,
		models.Product{ID: "p1", Name: "Wireless Mouse", Price: 2200},
	)
	ctx := context.Background()
	require.NoError(t, cartSvc.AddItem(ctx, testUser, "p1"))

	// The product disappears between cart-add and checkout.
	catalog.remove("p1")

	_, err := orderSvc.Checkout(ctx, testUser)
	assert.ErrorIs(t, err, ErrCorruptCart)

	lines, err := cartSvc.Lines(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, lines, 1, "cart must be untouched after a failed checkout")
	assert.Equal(t, "p1", lines[0].ProductID)

	history, err := orderSvc.History(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCheckoutRoundTrip(t *testing.T) {
	cartSvc, orderSvc, _, _ := setupOrders(t,
		models.Product{ID: "p1", Name: "Wireless Mouse", Price: 2200},
	)
	ctx := context.Background()

	at := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)
	orderSvc.now = func() time.Time { return at }

	require.NoError(t, cartSvc.AddItem(ctx, testUser, "p1"))
	require.NoError(t, cartSvc.AddItem(ctx, testUser, "p1"))

	before, err := cartSvc.ComputeTotals(ctx, testUser)
	require.NoError(t, err)

	order, err := orderSvc.Checkout(ctx, testUser)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, testUser, order.UserID)
	assert.Equal(t, at, order.CreatedAt)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, "Wireless Mouse", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, int64(2200), item.UnitPrice)
	assert.Equal(t, int64(4400), item.LineSubtotal)

	assert.Equal(t, int64(4400), order.Subtotal)
	assert.Equal(t, int64(440), order.Tax)
	assert.Equal(t, int64(4840), order.GrandTotal)

	// The committed totals match what ComputeTotals said just before.
	assert.Equal(t, before.Subtotal, order.Subtotal)
	assert.Equal(t, before.Tax, order.Tax)
	assert.Equal(t, before.GrandTotal, order.GrandTotal)

	empty, err := cartSvc.IsEmpty(ctx, testUser)
	require.NoError(t, err)
	assert.True(t, empty, "checkout must clear the cart")

	history, err := orderSvc.History(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestCheckoutSnapshotsCatalogPrices(t *testing.T) {
	cartSvc, orderSvc, catalog, _ := setupOrders(t,
		models.Product{ID: "p1", Name: "Wireless Mouse", Price: 2200},
	)
	ctx := context.Background()
	require.NoError(t, cartSvc.AddItem(ctx, testUser, "p1"))

	order, err := orderSvc.Checkout(ctx, testUser)
	require.NoError(t, err)

	// A later price edit must not change the committed order.
	require.NoError(t, catalog.AddProduct(ctx, models.Product{ID: "p1", Name: "Wireless Mouse", Price: 9999}))

	history, err := orderSvc.History(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(2200), history[0].Items[0].UnitPrice)
	assert.Equal(t, order.GrandTotal, history[0].GrandTotal)
}

func TestHistoryIsChronological(t *testing.T) {
	cartSvc, orderSvc, _, _ := setupOrders(t,
		models.Product{ID: "p1", Name: "Wireless Mouse", Price: 2200},
		models.Product{ID: "p2", Name: "Mechanical Keyboard", Price: 9800},
	)
	ctx := context.Background()

	require.NoError(t, cartSvc.AddItem(ctx, testUser, "p1"))
	first, err := orderSvc.Checkout(ctx, testUser)
	require.NoError(t, err)

	require.NoError(t, cartSvc.AddItem(ctx, testUser, "p2"))
	second, err := orderSvc.Checkout(ctx, testUser)
	require.NoError(t, err)

	history, err := orderSvc.History(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, second.ID, history[1].ID)
}

func TestRemoveLastLineThenCheckout(t *testing.T) {
	cartSvc, orderSvc, _, _ := setupOrders(t,
		models.Product{ID: "p1", Name: "Wireless Mouse", Price: 2200},
	)
	ctx := context.Background()

	require.NoError(t, cartSvc.AddItem(ctx, testUser, "p1"))
	require.NoError(t, cartSvc.RemoveLine(ctx, testUser, 0))

	_, err := orderSvc.Checkout(ctx, testUser)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderLookup(t *testing.T) {
	cartSvc, orderSvc, _, _ := setupOrders(t,
		models.Product{ID: "p1", Name: "Wireless Mouse", Price: 2200},
	)
	ctx := context.Background()
	require.NoError(t, cartSvc.AddItem(ctx, testUser, "p1"))

	order, err := orderSvc.Checkout(ctx, testUser)
	require.NoError(t, err)

	found, err := orderSvc.Order(ctx, testUser, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.GrandTotal, found.GrandTotal)

	_, err = orderSvc.Order(ctx, testUser, uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Orders are owned by exactly one user.
	_, err = orderSvc.Order(ctx, "someone-else@example.com", order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
