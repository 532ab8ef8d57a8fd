package review

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
		public.GET("/reviews", h.List)
		public.GET("/reviews/:id", h.Get)
		public.GET("/places/:id/reviews", h.ListByPlace)
	}

	if protected != nil {
		protected.POST("/reviews", h.Create)
		protected.PUT("/reviews/:id", h.Update)
		protected.DELETE("/reviews/:id", h.Delete)
	}
}

// Create writes a review authored by the caller. Owners cannot review their own
// place and a user reviews a place at most once.
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if !request.BindJSON(c, &req) {
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToReviewResponse(rv))
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToReviewResponses(items))
}

func (h *Handler) Get(c *gin.Context) {
	rv, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToReviewResponse(rv))
}

func (h *Handler) ListByPlace(c *gin.Context) {
	items, err := h.svc.ListByPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToReviewResponses(items))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if !request.BindJSON(c, &req) {
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToReviewResponse(rv))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
