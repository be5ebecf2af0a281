package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minipos/minipos-golang/internal/handlers"
	"github.com/minipos/minipos-golang/internal/middleware"
)

// CORSMiddleware allows the local frontend to talk to the API during
// development.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)

		// --- Public Catalog Routes ---
		v1.GET("/products", h.GetProducts)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.Auth(h.Tokens))
		{
			auth.POST("/products", h.CreateProduct)

			auth.GET("/cart", h.GetCart)
			auth.POST("/cart/items", h.AddToCart)
			auth.PUT("/cart/items/:index", h.UpdateCartItem)
			auth.DELETE("/cart/items/:index", h.DeleteCartItem)

			auth.POST("/checkout", h.Checkout)

			auth.GET("/orders", h.GetMyOrders)
			auth.GET("/orders/:id/receipt", h.GetReceipt)
		}
	}

	return router
}
