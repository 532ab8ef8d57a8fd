// Package request decodes and validates JSON request bodies for gin handlers.
package request

import (
	"github.com/gin-gonic/gin"

	"hbnb/internal/pkg/response"
	"hbnb/internal/pkg/validator"
)

// BindJSON decodes the body into dst and runs its validate tags. On failure the
// 400 envelope is already written and false is returned.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.InvalidBody(c, validator.FieldErrors(err))
		return false
	}
	if fields := validator.Validate(dst); len(fields) > 0 {
		response.InvalidBody(c, fields)
		return false
	}
	return true
}
