package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/response"
)

// AdminOnly must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserID) == "" {
			response.FromError(c, domain.ErrUnauthorized)
			c.Abort()
			return
		}
		if !c.GetBool(ContextIsAdmin) {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Admin privileges required")
			return
		}
		c.Next()
	}
}
