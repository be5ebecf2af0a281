package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minipos/minipos-golang/internal/pos"
)

//
// --- Cart Handlers ---
//

// CartLineResponse is a priced cart line for the frontend.
type CartLineResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

// GetCart is the handler for GET /v1/cart. It returns the cart lines
// resolved against the catalog plus freshly computed totals.
func (h *Handlers) GetCart(c *gin.Context) {
	userID := currentUserID(c)
	ctx := c.Request.Context()

	lines, err := h.Carts.Lines(ctx, userID)
	if err != nil {
		h.Log.WithError(err).Error("read cart failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	items := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		p, err := h.Catalog.GetProduct(ctx, line.ProductID)
		if errors.Is(err, pos.ErrUnknownProduct) {
			c.JSON(http.StatusConflict, gin.H{"error": "Your cart references a product that no longer exists"})
			return
		}
		if err != nil {
			h.Log.WithError(err).Error("resolve cart line failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
			return
		}
		items = append(items, CartLineResponse{
			ProductID: line.ProductID,
			Name:      p.Name,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
			LineTotal: p.Price * int64(line.Quantity),
		})
	}

	totals, err := h.Carts.ComputeTotals(ctx, userID)
	if err != nil {
		h.Log.WithError(err).Error("compute totals failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"subtotal":   totals.Subtotal,
		"tax":        totals.Tax,
		"grandTotal": totals.GrandTotal,
	})
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddToCart is the handler for POST /v1/cart/items. Adding the same
// product again increments the existing line.
func (h *Handlers) AddToCart(c *gin.Context) {
	userID := currentUserID(c)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := h.Carts.AddItem(c.Request.Context(), userID, input.ProductID)
	if errors.Is(err, pos.ErrUnknownProduct) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("add to cart failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart"})
}

// UpdateCartItemInput defines the JSON for updating a line's quantity.
// Values below 1 are clamped to 1, not rejected.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items/:index.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	userID := currentUserID(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line index"})
		return
	}

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.Carts.SetQuantity(c.Request.Context(), userID, index, input.Quantity)
	if errors.Is(err, pos.ErrIndexOutOfRange) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("update cart item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item quantity updated"})
}

// DeleteCartItem is the handler for DELETE /v1/cart/items/:index.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	userID := currentUserID(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line index"})
		return
	}

	err = h.Carts.RemoveLine(c.Request.Context(), userID, index)
	if errors.Is(err, pos.ErrIndexOutOfRange) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("remove cart item failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
}
