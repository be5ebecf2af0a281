package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minipos/minipos-golang/internal/auth"
	"github.com/minipos/minipos-golang/internal/models"
	"github.com/minipos/minipos-golang/internal/pos"
)

// UserStore is the account collaborator: both the MySQL store and the
// in-memory store satisfy it.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Users   UserStore
	Catalog pos.Catalog
	Carts   *pos.CartService
	Orders  *pos.OrderService
	Tokens  *auth.TokenManager
	Log     *logrus.Logger
}

// currentUserID reads the identity the auth middleware stored.
func currentUserID(c *gin.Context) string {
	raw, _ := c.Get("userID")
	userID, _ := raw.(string)
	return userID
}
