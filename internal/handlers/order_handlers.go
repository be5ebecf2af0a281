package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minipos/minipos-golang/internal/pos"
)

//
// --- Order Handlers ---
//

// Checkout is the handler for POST /v1/checkout. The engine commits the
// cart as an immutable order and clears it in one transition.
func (h *Handlers) Checkout(c *gin.Context) {
	userID := currentUserID(c)

	order, err := h.Orders.Checkout(c.Request.Context(), userID)
	if errors.Is(err, pos.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}
	if errors.Is(err, pos.ErrCorruptCart) {
		c.JSON(http.StatusConflict, gin.H{"error": "Your cart references a product that no longer exists"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("checkout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Purchase successful",
		"order":   order,
	})
}

// GetMyOrders is the handler for GET /v1/orders. History is stored
// oldest-first; the response is newest-first for display.
func (h *Handlers) GetMyOrders(c *gin.Context) {
	userID := currentUserID(c)

	orders, err := h.Orders.History(c.Request.Context(), userID)
	if err != nil {
		h.Log.WithError(err).Error("fetch orders failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
