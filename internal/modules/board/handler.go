package board

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cookie auth already ran; cross-origin upgrades carry no cookies
		// under SameSite=Strict.
		return true
	},
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterRoutes mounts the socket endpoint on an authenticated group; the
// auth middleware has already placed user_id in the context.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/ws", h.HandleWebSocket)
}

func (h *Handler) HandleWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed user_id=%s: %v", userID, err)
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	// The socket is push-only; the read loop exists to notice the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
