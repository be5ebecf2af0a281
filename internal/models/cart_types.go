package models

// CartLine is one (product, quantity) entry in a user's cart. A cart holds
// at most one line per product id; adding the same product again merges
// into the existing line.
type CartLine struct {
	ProductID string `json:"productId" db:"product_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

// Totals is the priced view of a cart. GrandTotal is Subtotal plus Tax and
// is never rounded on its own; rounding happens exactly once, on the tax.
type Totals struct {
	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	GrandTotal int64 `json:"grandTotal"`
}
