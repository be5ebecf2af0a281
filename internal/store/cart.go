package store

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/minipos/minipos-golang/internal/models"
	"github.com/minipos/minipos-golang/internal/pos"
)

var _ pos.CartRepository = (*Store)(nil)

func (s *Store) Lines(ctx context.Context, userID string) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	err := s.db.SelectContext(ctx, &lines,
		"SELECT product_id, quantity FROM cart_items WHERE user_id = ? ORDER BY position",
		userID)
	if err != nil {
		return nil, errors.Wrap(err, "query cart lines")
	}
	return lines, nil
}

// Save replaces the user's cart with the given line sequence. The rewrite
// runs in one transaction so a concurrent read never sees a half-saved
// cart.
func (s *Store) Save(ctx context.Context, userID string, lines []models.CartLine) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin cart save")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM cart_items WHERE user_id = ?", userID); err != nil {
		return errors.Wrap(err, "clear old cart lines")
	}

	now := time.Now()
	for i, line := range lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cart_items (user_id, position, product_id, quantity, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			userID, i, line.ProductID, line.Quantity, now)
		if err != nil {
			return errors.Wrap(err, "insert cart line")
		}
	}

	return errors.Wrap(tx.Commit(), "commit cart save")
}

func (s *Store) Clear(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM cart_items WHERE user_id = ?", userID)
	return errors.Wrap(err, "clear cart")
}
