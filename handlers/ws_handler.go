package handlers

import (
	"net/http"

	"github.com/clockwisehq/workforce-go/events"
	"github.com/clockwisehq/workforce-go/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	Hub *events.Hub
}

func NewWSHandler(hub *events.Hub) *WSHandler {
	return &WSHandler{Hub: hub}
}

// Events upgrades to a websocket and pushes approval events to connected
// dashboards. The read loop exists only to detect the client going away.
// @Summary Approval event stream
// @Tags events
// @Success 101 "Switching protocols"
// @Router /ws/approvals [get]
func (h *WSHandler) Events(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Err("websocket upgrade failed: "+err.Error()))
		return
	}

	h.Hub.Register(conn)
	go func() {
		defer func() {
			h.Hub.Unregister(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
