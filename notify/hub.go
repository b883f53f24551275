// Package notify pushes new-submission events (inquiries, contact messages,
// newsletter signups) to connected admin dashboards over websockets.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/SumanKr7/CosmoXclub/models"
)

// Event kinds.
const (
	KindPlanInquiry    = "plan_inquiry"
	KindContactMessage = "contact_message"
	KindSubscription   = "subscription"
)

// Event is the message written to every connected dashboard.
type Event struct {
	Kind    string      `json:"kind"`
	ID      string      `json:"id"`
	Payload interface{} `json:"payload,omitempty"`
	At      string      `json:"at"`
}

// Hub tracks connected websocket clients.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler upgrades the request and parks the connection until it drops.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// Broadcast sends the event to every connected client. Dead connections are
// dropped on their next read, not here.
func (h *Hub) Broadcast(kind, id string, payload interface{}) {
	data, err := json.Marshal(Event{
		Kind:    kind,
		ID:      id,
		Payload: payload,
		At:      models.Now(),
	})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		_ = client.WriteMessage(websocket.TextMessage, data)
	}
}
