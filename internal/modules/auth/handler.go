package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/middleware"
	"hbnb/internal/pkg/request"
	"hbnb/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.POST("/auth/login", h.Login)
	}
	if protected != nil {
		protected.GET("/auth/protected", h.Protected)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !request.BindJSON(c, &req) {
		return
	}

	tokens, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tokens)
}

// Protected echoes the verified token claims.
func (h *Handler) Protected(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	response.Success(c, http.StatusOK, ProtectedResponse{
		Message: "Hello, user " + p.UserID,
		UserID:  p.UserID,
		IsAdmin: p.IsAdmin,
	})
}
