package pos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/minipos/minipos-golang/internal/models"
)

// OrderService turns carts into committed orders and reads order history.
type OrderService struct {
	catalog Catalog
	carts   CartRepository
	orders  OrderRepository
	now     func() time.Time
}

func NewOrderService(catalog Catalog, carts CartRepository, orders OrderRepository) *OrderService {
	return &OrderService{
		catalog: catalog,
		carts:   carts,
		orders:  orders,
		now:     time.Now,
	}
}

// Checkout commits the user's cart as an immutable order:
// the cart lines are snapshotted against the catalog into denormalized
// order lines, totals are computed over that snapshot with the same tax
// policy as ComputeTotals, the order is stamped and appended to the user's
// history, and the cart is cleared. Appending and clearing happen in one
// repository commit, so the transition is all-or-nothing: a resolution
// failure aborts with ErrCorruptCart before anything is written.
func (s *OrderService) Checkout(ctx context.Context, userID string) (models.Order, error) {
	lines, err := s.carts.Lines(ctx, userID)
	if err != nil {
		return models.Order{}, err
	}
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	items := make([]models.OrderLine, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		p, err := s.catalog.GetProduct(ctx, line.ProductID)
		if errors.Is(err, ErrUnknownProduct) {
			return models.Order{}, ErrCorruptCart
		}
		if err != nil {
			return models.Order{}, err
		}

		item := models.OrderLine{
			Name:         p.Name,
			Quantity:     line.Quantity,
			UnitPrice:    p.Price,
			LineSubtotal: p.Price * int64(line.Quantity),
		}
		subtotal += item.LineSubtotal
		items = append(items, item)
	}

	totals := totalsFor(subtotal)
	order := models.Order{
		ID:         uuid.New(),
		UserID:     userID,
		CreatedAt:  s.now().UTC(),
		Items:      items,
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		GrandTotal: totals.GrandTotal,
	}

	if err := s.orders.Commit(ctx, userID, order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// History returns the user's orders oldest-first. Display order (the UI
// shows newest first) is the caller's concern.
func (s *OrderService) History(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.Orders(ctx, userID)
}

// Order fetches a single committed order owned by the user.
func (s *OrderService) Order(ctx context.Context, userID string, id uuid.UUID) (models.Order, error) {
	return s.orders.Order(ctx, userID, id)
}
