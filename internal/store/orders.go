package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/minipos/minipos-golang/internal/models"
	"github.com/minipos/minipos-golang/internal/pos"
)

var _ pos.OrderRepository = (*Store)(nil)

// Commit writes the order, its snapshot lines, and the cart clear as one
// transaction. The engine has already resolved and priced everything; this
// layer only makes the transition durable and indivisible.
func (s *Store) Commit(ctx context.Context, userID string, order models.Order) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return errors.Wrap(err, "begin checkout")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, created_at, subtotal, tax, grand_total)
		VALUES (?, ?, ?, ?, ?, ?)`,
		order.ID.String(), userID, order.CreatedAt, order.Subtotal, order.Tax, order.GrandTotal)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}

	for i, item := range order.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, name, quantity, unit_price, line_subtotal)
			VALUES (?, ?, ?, ?, ?, ?)`,
			order.ID.String(), i, item.Name, item.Quantity, item.UnitPrice, item.LineSubtotal)
		if err != nil {
			return errors.Wrap(err, "insert order item")
		}
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM cart_items WHERE user_id = ?", userID); err != nil {
		return errors.Wrap(err, "clear cart")
	}

	return errors.Wrap(tx.Commit(), "commit checkout")
}

// orderRow mirrors the orders table; uuid round-trips as char(36).
type orderRow struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	CreatedAt  time.Time `db:"created_at"`
	Subtotal   int64     `db:"subtotal"`
	Tax        int64     `db:"tax"`
	GrandTotal int64     `db:"grand_total"`
}

func (r orderRow) toModel() (models.Order, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.Order{}, errors.Wrap(err, "parse order id")
	}
	return models.Order{
		ID:         id,
		UserID:     r.UserID,
		CreatedAt:  r.CreatedAt,
		Subtotal:   r.Subtotal,
		Tax:        r.Tax,
		GrandTotal: r.GrandTotal,
	}, nil
}

func (s *Store) Orders(ctx context.Context, userID string) ([]models.Order, error) {
	rows := []orderRow{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, created_at, subtotal, tax, grand_total
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at, id`,
		userID)
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}

	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.toModel()
		if err != nil {
			return nil, err
		}
		order.Items, err = s.orderItems(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *Store) Order(ctx context.Context, userID string, id uuid.UUID) (models.Order, error) {
	var row orderRow
	err := s.db.GetContext(ctx, &row, `
		SELECT id, user_id, created_at, subtotal, tax, grand_total
		FROM orders
		WHERE id = ? AND user_id = ?`,
		id.String(), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, pos.ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, errors.Wrap(err, "query order")
	}

	order, err := row.toModel()
	if err != nil {
		return models.Order{}, err
	}
	order.Items, err = s.orderItems(ctx, row.ID)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *Store) orderItems(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	items := []models.OrderLine{}
	err := s.db.SelectContext(ctx, &items, `
		SELECT name, quantity, unit_price, line_subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY position`,
		orderID)
	if err != nil {
		return nil, errors.Wrap(err, "query order items")
	}
	return items, nil
}
