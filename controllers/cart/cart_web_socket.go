package cartControllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/junaidrashid-git/kula-api/auth"
	"github.com/junaidrashid-git/kula-api/ordercart"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /user/cart/ws
//
// Streams the caller's cart as JSON text frames, one per change, until the
// client goes away.
func CartWebSocketHandler(orders *ordercart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := auth.FromContext(c.Request.Context())
		if s.UserID == "" || s.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": ordercart.ErrNotSignedIn.Error()})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		sub, err := orders.ObserveCart(ctx, s.UserID)
		if err != nil {
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "Could not load your cart"))
			return
		}
		defer sub.Close()

		// The read loop only notices the client closing.
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for cart := range sub.C {
			if err := conn.WriteJSON(cart); err != nil {
				log.Printf("🔌 Cart stream for %s ended: %v", s.UserID, err)
				return
			}
		}
		if err := sub.Err(); err != nil {
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "Could not load your cart"))
		}
	}
}
