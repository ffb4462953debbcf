// internal/server/handlers.go
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleData serves the full current reading, or a pending status if
// no read has succeeded yet.
func (s *Server) handleData(c *gin.Context) {
	snap := s.store.Snapshot()
	if snap.Reading == nil {
		c.JSON(http.StatusOK, PendingPayload{Status: statusPending})
		return
	}
	c.JSON(http.StatusOK, renderData(snap, time.Now(), s.cfg.PollPeriod, s.cfg.StaleAfterFactor))
}

// handleHealth serves the lightweight online/offline view used by the
// dashboard's status indicator.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, renderHealth(s.store.Snapshot()))
}

// handleShutdown requests process shutdown. The response is written
// before the cancel so the caller sees an answer.
func (s *Server) handleShutdown(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "shutting_down"})
	s.log.Info("shutdown requested over http", zap.String("remote", c.ClientIP()))
	s.requestShutdown()
}
