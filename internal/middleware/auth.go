package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hbnb/internal/pkg/jwt"
	"hbnb/internal/pkg/response"
	"hbnb/internal/policy"
)

const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

// JWTAuth verifies the bearer token and stores the caller's claims on the context.
func JWTAuth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Missing Authorization header")
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// PrincipalFrom returns the caller set by JWTAuth. The zero Principal means anonymous.
func PrincipalFrom(c *gin.Context) policy.Principal {
	return policy.Principal{
		UserID:  c.GetString(ContextUserID),
		IsAdmin: c.GetBool(ContextIsAdmin),
	}
}
