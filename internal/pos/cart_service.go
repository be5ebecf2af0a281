package pos

import (
	"context"

	"github.com/minipos/minipos-golang/internal/models"
)

// taxRatePercent is the sales tax applied to every cart subtotal.
const taxRatePercent = 10

// taxOn returns 10% of a whole-unit subtotal, rounded half away from zero.
// Subtotals are never negative here, so this is plain half-up rounding
// done in integer arithmetic.
func taxOn(subtotal int64) int64 {
	return (subtotal*taxRatePercent + 50) / 100
}

// totalsFor derives the full Totals from a subtotal. Rounding is applied
// exactly once, to the tax; the grand total is a plain sum.
func totalsFor(subtotal int64) models.Totals {
	tax := taxOn(subtotal)
	return models.Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal + tax,
	}
}

// CartService owns per-user cart mutations and totals. All state lives in
// the repositories; the service itself is stateless and every read goes
// back to the store.
type CartService struct {
	catalog Catalog
	carts   CartRepository
}

func NewCartService(catalog Catalog, carts CartRepository) *CartService {
	return &CartService{catalog: catalog, carts: carts}
}

// AddItem puts one unit of the product into the user's cart. If a line for
// that product already exists its quantity is incremented; a cart never
// holds two lines for the same product. The product id must resolve in the
// catalog or the cart is left untouched.
func (s *CartService) AddItem(ctx context.Context, userID, productID string) error {
	if _, err := s.catalog.GetProduct(ctx, productID); err != nil {
		return err
	}

	lines, err := s.carts.Lines(ctx, userID)
	if err != nil {
		return err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{ProductID: productID, Quantity: 1})
	}

	return s.carts.Save(ctx, userID, lines)
}

// SetQuantity replaces the quantity of the line at index. Quantities below
// one are coerced to one rather than rejected, matching how the cart UI
// treats bad input.
func (s *CartService) SetQuantity(ctx context.Context, userID string, index, quantity int) error {
	lines, err := s.carts.Lines(ctx, userID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return ErrIndexOutOfRange
	}
	if quantity < 1 {
		quantity = 1
	}
	lines[index].Quantity = quantity
	return s.carts.Save(ctx, userID, lines)
}

// RemoveLine deletes the line at index; subsequent lines shift down.
func (s *CartService) RemoveLine(ctx context.Context, userID string, index int) error {
	lines, err := s.carts.Lines(ctx, userID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return ErrIndexOutOfRange
	}
	lines = append(lines[:index], lines[index+1:]...)
	return s.carts.Save(ctx, userID, lines)
}

// Lines returns the user's cart in its stored order.
func (s *CartService) Lines(ctx context.Context, userID string) ([]models.CartLine, error) {
	return s.carts.Lines(ctx, userID)
}

func (s *CartService) IsEmpty(ctx context.Context, userID string) (bool, error) {
	lines, err := s.carts.Lines(ctx, userID)
	if err != nil {
		return false, err
	}
	return len(lines) == 0, nil
}

// Clear drops every line of the user's cart. Checkout uses this through
// OrderRepository.Commit instead, so history and cart move together.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}

// ComputeTotals prices the current cart against the catalog. It mutates
// nothing and recomputes from the store on every call; totals are never
// cached. A line whose product no longer resolves surfaces as
// ErrUnknownProduct.
func (s *CartService) ComputeTotals(ctx context.Context, userID string) (models.Totals, error) {
	lines, err := s.carts.Lines(ctx, userID)
	if err != nil {
		return models.Totals{}, err
	}

	var subtotal int64
	for _, line := range lines {
		p, err := s.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			return models.Totals{}, err
		}
		subtotal += p.Price * int64(line.Quantity)
	}
	return totalsFor(subtotal), nil
}
