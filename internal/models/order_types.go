package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is a denormalized snapshot of a cart line taken at checkout.
// Name and UnitPrice are copied from the catalog so later catalog edits
// never alter a historical order.
type OrderLine struct {
	Name         string `json:"name" db:"name"`
	Quantity     int    `json:"quantity" db:"quantity"`
	UnitPrice    int64  `json:"unitPrice" db:"unit_price"`
	LineSubtotal int64  `json:"lineSubtotal" db:"line_subtotal"`
}

// Order is an immutable, committed purchase. Once appended to a user's
// history it is never mutated or deleted.
type Order struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	UserID     string      `json:"userId" db:"user_id"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	Items      []OrderLine `json:"items"`
	Subtotal   int64       `json:"subtotal" db:"subtotal"`
	Tax        int64       `json:"tax" db:"tax"`
	GrandTotal int64       `json:"grandTotal" db:"grand_total"`
}
