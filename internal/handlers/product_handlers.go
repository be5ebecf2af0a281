package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minipos/minipos-golang/internal/models"
)

//
// --- Catalog Handlers ---
//

// GetProducts is the handler for GET /v1/products.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.Log.WithError(err).Error("list products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProductInput defines the JSON for adding a catalog product.
type CreateProductInput struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"required,gte=1"`
}

// CreateProduct is the handler for POST /v1/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid product name and price"})
		return
	}

	product := models.Product{
		ID:    "p-" + uuid.NewString(),
		Name:  input.Name,
		Price: input.Price,
	}

	if err := h.Catalog.AddProduct(c.Request.Context(), product); err != nil {
		if errors.Is(err, models.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid product name and price"})
			return
		}
		h.Log.WithError(err).Error("create product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": product,
	})
}
