package pos

import "errors"

var (
	// ErrUnknownProduct means a product id did not resolve in the catalog.
	// A cart line carrying such an id is corrupt and must be dropped or
	// repaired by the caller.
	ErrUnknownProduct = errors.New("product not found in catalog")

	// ErrIndexOutOfRange means the caller addressed a cart line position
	// that does not exist (typically a stale index from the UI).
	ErrIndexOutOfRange = errors.New("cart line index out of range")

	// ErrEmptyCart means checkout was attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCorruptCart means checkout-time resolution failed: at least one
	// cart line referenced a product missing from the catalog. Neither the
	// cart nor the history is touched when this is returned.
	ErrCorruptCart = errors.New("cart references a product missing from the catalog")

	// ErrOrderNotFound means no order with the given id exists in the
	// user's history.
	ErrOrderNotFound = errors.New("order not found")
)
