package pos

import (
	"context"

	"github.com/google/uuid"

	"github.com/minipos/minipos-golang/internal/models"
)

// Catalog supplies product lookups. GetProduct returns ErrUnknownProduct
// for ids that do not resolve.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	AddProduct(ctx context.Context, p models.Product) error
}

// CartRepository persists the ordered cart lines of a user. Lines returns
// an empty slice for users with no cart. Save replaces the whole line
// sequence; the engine always writes the full cart back after a mutation.
type CartRepository interface {
	Lines(ctx context.Context, userID string) ([]models.CartLine, error)
	Save(ctx context.Context, userID string, lines []models.CartLine) error
	Clear(ctx context.Context, userID string) error
}

// OrderRepository owns the append-only order history. Commit appends the
// order to the user's history AND clears the user's cart as one atomic
// step, so no caller can ever observe one without the other. Orders
// returns the history in insertion (chronological) order.
type OrderRepository interface {
	Commit(ctx context.Context, userID string, order models.Order) error
	Orders(ctx context.Context, userID string) ([]models.Order, error)
	Order(ctx context.Context, userID string, id uuid.UUID) (models.Order, error)
}
