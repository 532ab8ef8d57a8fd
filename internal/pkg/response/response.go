package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Abort writes an error envelope and stops the middleware chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

// InvalidBody reports a request body that failed to decode or validate.
func InvalidBody(c *gin.Context, fields map[string]string) {
	if len(fields) == 0 {
		Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", gin.H{"field_errors": fields})
}
