package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/hoangdieu/wedding-invitation/internal/types"
)

var (
	introClients   = make(map[string]map[*websocket.Conn]bool)
	introClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastGuestRefresh tells every dashboard watching an intro to
// reload its guest list, typically after an RSVP confirmation.
func BroadcastGuestRefresh(introID string) {
	introClientsMu.RLock()
	clients, exists := introClients[introID]
	if !exists || len(clients) == 0 {
		introClientsMu.RUnlock()
		return
	}

	// Copy so the lock is not held while writing to sockets.
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	introClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			logrus.WithError(err).Warn("Failed to set write deadline for broadcast")
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":     "guest_refresh",
			"message":  "Guest list updated",
			"intro_id": introID,
		})

		if err != nil {
			logrus.WithError(err).Warn("Failed to broadcast guest refresh")
			introClientsMu.Lock()
			if clients, exists := introClients[introID]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(introClients, introID)
				}
			}
			introClientsMu.Unlock()
			conn.Close()
		}
	}
}

// WebSocket subscribes the caller to live guest updates for an intro.
func WebSocket(c *gin.Context) {
	introID := c.Param("intro_id")

	if introID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Intro ID is required"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("WebSocket upgrade failed")
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logrus.WithError(err).Error("Failed to set initial read deadline")
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logrus.WithError(err).Warn("Failed to set read deadline in pong handler")
		}
		return nil
	})

	introClientsMu.Lock()
	if introClients[introID] == nil {
		introClients[introID] = make(map[*websocket.Conn]bool)
	}
	introClients[introID][conn] = true
	introClientsMu.Unlock()

	defer func() {
		introClientsMu.Lock()

		if clients, exists := introClients[introID]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(introClients, introID)
			}
		}

		introClientsMu.Unlock()
		conn.Close()

		logrus.WithField("intro_id", introID).Debug("WebSocket connection closed")
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		logrus.WithError(err).Warn("Failed to set write deadline for welcome message")
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":     "connected",
		"message":  "WebSocket connection established",
		"intro_id": introID,
	})

	if err != nil {
		logrus.WithError(err).Warn("Failed to send welcome message")
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).WithField("intro_id", introID).Warn("WebSocket error")
			}
			break
		}
	}
}
