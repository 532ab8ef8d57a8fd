package amenity

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
		public.GET("/amenities", h.List)
		public.GET("/amenities/:id", h.Get)
	}

	if protected != nil {
		admin := protected.Group("/amenities")
		admin.Use(middleware.AdminOnly())
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAmenityRequest
	if !request.BindJSON(c, &req) {
		return
	}

	a, err := h.svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToAmenityResponse(a))
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToAmenityResponses(items))
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToAmenityResponse(a))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAmenityRequest
	if !request.BindJSON(c, &req) {
		return
	}

	a, err := h.svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToAmenityResponse(a))
}
