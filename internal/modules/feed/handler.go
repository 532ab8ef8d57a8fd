package feed

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/response"
)

type PlaceLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}

type Handler struct {
	hub    *Hub
	places PlaceLookup
}

func NewHandler(hub *Hub, places PlaceLookup) *Handler {
	return &Handler{hub: hub, places: places}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ws/places/:id/reviews", h.Subscribe)
}

// Subscribe upgrades to a websocket streaming review events of one place.
func (h *Handler) Subscribe(c *gin.Context) {
	placeID := c.Param("id")
	if _, err := h.places.GetByID(c.Request.Context(), placeID); err != nil {
		response.FromError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("place_id", placeID).Msg("feed: upgrade failed")
		return
	}

	h.hub.Serve(conn, placeID)
}
