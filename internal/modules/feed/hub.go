// Package feed pushes review events to websocket subscribers of a place.
package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
	sendBuffer = 64
)

const (
	EventReviewCreated = "review.created"
	EventReviewUpdated = "review.updated"
	EventReviewDeleted = "review.deleted"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Event struct {
	Type    string `json:"type"`
	PlaceID string `json:"place_id"`
	Review  any    `json:"review,omitempty"`
}

type subscriber struct {
	placeID string
	conn    *websocket.Conn
	send    chan []byte
}

// Hub is a registry of subscribers keyed by place id. The feed is read-only,
// inbound frames other than control frames are discarded.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*subscriber]struct{}),
	}
}

func (h *Hub) register(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[s.placeID]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.subscribers[s.placeID] = set
	}
	set[s] = struct{}{}
}

func (h *Hub) unregister(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[s.placeID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	close(s.send)
	if len(set) == 0 {
		delete(h.subscribers, s.placeID)
	}
}

// Publish delivers ev to every subscriber of placeID. Slow subscribers whose
// buffer is full miss the event.
func (h *Hub) Publish(placeID string, ev Event) {
	ev.PlaceID = placeID
	data, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Str("place_id", placeID).Msg("feed: marshal event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subscribers[placeID] {
		select {
		case s.send <- data:
		default:
			log.Warn().Str("place_id", placeID).Msg("feed: subscriber too slow, event dropped")
		}
	}
}

func (h *Hub) SubscriberCount(placeID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[placeID])
}

// Serve registers conn as a subscriber of placeID and blocks until it disconnects.
func (h *Hub) Serve(conn *websocket.Conn, placeID string) {
	s := &subscriber{
		placeID: placeID,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
	}
	h.register(s)

	go h.writePump(s)
	h.readPump(s)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for placeID, set := range h.subscribers {
		for s := range set {
			close(s.send)
		}
		delete(h.subscribers, placeID)
	}
}

func (h *Hub) readPump(s *subscriber) {
	defer func() {
		h.unregister(s)
		_ = s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(s *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
