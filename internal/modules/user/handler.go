package user

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
		public.GET("/users", h.List)
		public.GET("/users/:id", h.Get)
	}

	if protected != nil {
		protected.POST("/users", middleware.AdminOnly(), h.Create)
		protected.PUT("/users/:id", h.Update)
		protected.DELETE("/users/:id", h.Delete)
	}
}

// Create registers a new user. Admin only.
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !request.BindJSON(c, &req) {
		return
	}

	u, err := h.svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToUserResponse(u))
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToUserResponses(users))
}

func (h *Handler) Get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToUserResponse(u))
}

// Update applies a partial update. Admins may edit anyone, users only themselves.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if !request.BindJSON(c, &req) {
		return
	}

	u, err := h.svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToUserResponse(u))
}

// Delete removes the user with their places and reviews.
func (h *Handler) Delete(c *gin.Context) {
	stats, err := h.svc.Delete(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, DeleteUserResponse{
		Message:        "User deleted successfully",
		PlacesDeleted:  stats.Places,
		ReviewsDeleted: stats.Reviews,
	})
}
