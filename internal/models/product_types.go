package models

import "errors"

// ErrInvalidProduct is returned when a product record fails validation,
// either at the API boundary or when loading persisted data.
var ErrInvalidProduct = errors.New("invalid product record")

// Product is a catalog entry. Price is a whole-unit PKR amount; the
// currency has no fractional subunit, so there is nothing to lose by
// keeping it integral.
type Product struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Price int64  `json:"price" db:"price"`
}

// Validate rejects malformed records instead of letting zero or negative
// prices leak into cart arithmetic.
func (p Product) Validate() error {
	if p.ID == "" || p.Name == "" || p.Price < 1 {
		return ErrInvalidProduct
	}
	return nil
}

// DefaultProducts is the catalog a fresh install starts with.
func DefaultProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Wireless Mouse", Price: 2200},
		{ID: "p2", Name: "Mechanical Keyboard", Price: 9800},
		{ID: "p3", Name: "USB-C Charger 45W", Price: 3500},
		{ID: "p4", Name: "Noise-Cancel Headphones", Price: 14999},
		{ID: "p5", Name: "1080p Webcam", Price: 6500},
		{ID: "p6", Name: "32GB Flash Drive", Price: 1200},
	}
}
