package middleware

import (
	"github.com/gin-gonic/gin"

	"stakegulf-cms/helper"
	"stakegulf-cms/models"
)

// Allowed reports whether role passes a gate that declares the given roles.
//
// The bar is the lowest rank among the declared roles, so declaring a weak
// role admits every stronger one: ("admin", "writer") also lets an editor in.
// Existing route declarations depend on this, so it is kept as is. An exact
// match on a declared role is always allowed.
func Allowed(role models.Role, allowed ...models.Role) bool {
	if len(allowed) == 0 {
		return false
	}

	required := allowed[0].Rank()
	for _, r := range allowed[1:] {
		if r.Rank() < required {
			required = r.Rank()
		}
	}
	if role.Rank() >= required {
		return true
	}

	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// RequireRole must run after AuthMiddleware.
func RequireRole(h *helper.HTTPHelper, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			h.SendUnauthorizedError(c, "Authentication required.", h.EmptyJsonMap())
			c.Abort()
			return
		}

		if !Allowed(user.Role, roles...) {
			h.SendForbiddenError(c, "Insufficient permissions.", h.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Next()
	}
}
