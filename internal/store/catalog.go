package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/minipos/minipos-golang/internal/models"
	"github.com/minipos/minipos-golang/internal/pos"
)

var _ pos.Catalog = (*Store)(nil)

func (s *Store) GetProduct(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := s.db.GetContext(ctx, &p,
		"SELECT id, name, price FROM products WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, pos.ErrUnknownProduct
	}
	if err != nil {
		return models.Product{}, errors.Wrap(err, "query product")
	}
	if err := p.Validate(); err != nil {
		// Malformed persisted rows must not leak into price arithmetic.
		return models.Product{}, err
	}
	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.SelectContext(ctx, &products,
		"SELECT id, name, price FROM products ORDER BY created_at, id")
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	return products, nil
}

func (s *Store) AddProduct(ctx context.Context, p models.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO products (id, name, price, created_at) VALUES (?, ?, ?, ?)",
		p.ID, p.Name, p.Price, time.Now())
	return errors.Wrap(err, "insert product")
}
