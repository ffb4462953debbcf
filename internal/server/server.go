// internal/server/server.go
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dewdash/internal/cache"
)

const drainTimeout = 3 * time.Second

// Config is the serving surface configuration.
type Config struct {
	Listen           string
	PollPeriod       time.Duration
	StaleAfterFactor int
	EnableShutdown   bool
}

// Server answers read-only queries over the acquisition cache. It
// never touches the gateway and never mutates the cache.
type Server struct {
	cfg   Config
	store *cache.Store
	log   *zap.Logger

	// requestShutdown is invoked by GET /shutdown. Wired to the root
	// context cancel in main.
	requestShutdown func()

	engine *gin.Engine
}

// New builds the server and its routes. Request logging is off; the
// dashboard polls at 10 Hz and would drown the console.
func New(cfg Config, store *cache.Store, requestShutdown func(), log *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard

	s := &Server{
		cfg:             cfg,
		store:           store,
		log:             log,
		requestShutdown: requestShutdown,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/api/data", s.handleData)
	engine.GET("/api/health", s.handleHealth)
	engine.GET("/api/live", s.handleLive)
	if cfg.EnableShutdown {
		engine.GET("/shutdown", s.handleShutdown)
	}

	s.engine = engine
	return s
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s.engine,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		return srv.Shutdown(drainCtx)
	}
}
