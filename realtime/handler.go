package realtime

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/auth"
)

// HandleWebSocket upgrades the live-channel handshake. The client
// identifies itself with a userId query parameter; the connection is then
// registered under that user in the presence registry.
func (h *Hub) HandleWebSocket(allowedOrigin string) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == allowedOrigin
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.URL.Query().Get("userId"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("userId query parameter must be a valid user id", err))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error response.
			log.Printf("websocket upgrade failed: %v", err)
			return
		}

		client := newClient(h, conn, userID)
		h.register(client)
		go client.writePump()
		go client.readPump()
	}
}
