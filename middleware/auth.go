package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/models"
	"stakegulf-cms/services"
)

const (
	ContextUser     = "user"
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"

	bearerPrefix = "Bearer "
)

// AuthMiddleware resolves the bearer token to a live, active user and stores
// it on the context.
func AuthMiddleware(auth services.AuthService, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			h.SendUnauthorizedError(c, "Access denied. No token provided.", h.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			h.SendUnauthorizedError(c, "Access denied. No token provided.", h.EmptyJsonMap())
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			h.SendError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUsername, user.Username)
		c.Set(ContextRole, user.Role)

		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
