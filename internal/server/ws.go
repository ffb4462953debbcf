// internal/server/ws.go
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	// The dashboard is served from file:// or another port in the
	// field; origin checks would only break it.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleLive upgrades to a WebSocket and pushes the data payload once
// per poll period until the client goes away.
func (s *Server) handleLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Reader goroutine surfaces the client disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.cfg.PollPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			snap := s.store.Snapshot()

			var msg any
			if snap.Reading == nil {
				msg = PendingPayload{Status: statusPending}
			} else {
				msg = renderData(snap, now, s.cfg.PollPeriod, s.cfg.StaleAfterFactor)
			}

			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}
}
