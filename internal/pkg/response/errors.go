package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hbnb/internal/domain"
)

// FromError writes the envelope matching the kind of a service error.
func FromError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	var re *domain.ReferenceError

	switch {
	case errors.As(err, &ve):
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Error(), gin.H{
			"field":  ve.Field,
			"reason": ve.Reason,
		})
	case errors.As(err, &re):
		Error(c, http.StatusBadRequest, "INVALID_REFERENCE", re.Error())
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrConflict):
		Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
	case errors.Is(err, domain.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	default:
		_ = c.Error(err)
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
