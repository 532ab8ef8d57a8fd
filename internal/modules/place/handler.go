package place

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
		public.GET("/places", h.List)
		public.GET("/places/:id", h.Get)
	}

	if protected != nil {
		protected.POST("/places", h.Create)
		protected.PUT("/places/:id", h.Update)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePlaceRequest
	if !request.BindJSON(c, &req) {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ToPlaceResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	places, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToPlaceResponses(places))
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToPlaceResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePlaceRequest
	if !request.BindJSON(c, &req) {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ToPlaceResponse(p))
}
