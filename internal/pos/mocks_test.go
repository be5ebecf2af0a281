package pos

import (
	"context"

	"github.com/google/uuid"

	"github.com/minipos/minipos-golang/internal/models"
)

var _ Catalog = &mockCatalog{}

type mockCatalog struct {
	products map[string]models.Product
}

func newMockCatalog(products ...models.Product) *mockCatalog {
	c := &mockCatalog{products: make(map[string]models.Product)}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *mockCatalog) GetProduct(_ context.Context, id string) (models.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return models.Product{}, ErrUnknownProduct
	}
	return p, nil
}

func (c *mockCatalog) ListProducts(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	return out, nil
}

func (c *mockCatalog) AddProduct(_ context.Context, p models.Product) error {
	c.products[p.ID] = p
	return nil
}

func (c *mockCatalog) remove(id string) {
	delete(c.products, id)
}

var _ CartRepository = &mockCarts{}

type mockCarts struct {
	store map[string][]models.CartLine
}

func newMockCarts() *mockCarts {
	return &mockCarts{store: make(map[string][]models.CartLine)}
}

func (m *mockCarts) Lines(_ context.Context, userID string) ([]models.CartLine, error) {
	lines := m.store[userID]
	clone := make([]models.CartLine, len(lines))
	copy(clone, lines)
	return clone, nil
}

func (m *mockCarts) Save(_ context.Context, userID string, lines []models.CartLine) error {
	clone := make([]models.CartLine, len(lines))
	copy(clone, lines)
	m.store[userID] = clone
	return nil
}

func (m *mockCarts) Clear(_ context.Context, userID string) error {
	delete(m.store, userID)
	return nil
}

var _ OrderRepository = &mockOrders{}

type mockOrders struct {
	history map[string][]models.Order
	carts   *mockCarts
}

func newMockOrders(carts *mockCarts) *mockOrders {
	return &mockOrders{history: make(map[string][]models.Order), carts: carts}
}

func (m *mockOrders) Commit(ctx context.Context, userID string, order models.Order) error {
	m.history[userID] = append(m.history[userID], order)
	return m.carts.Clear(ctx, userID)
}

func (m *mockOrders) Orders(_ context.Context, userID string) ([]models.Order, error) {
	orders := m.history[userID]
	clone := make([]models.Order, len(orders))
	copy(clone, orders)
	return clone, nil
}

func (m *mockOrders) Order(_ context.Context, userID string, id uuid.UUID) (models.Order, error) {
	for _, o := range m.history[userID] {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}
