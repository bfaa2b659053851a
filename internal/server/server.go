// Package server exposes tracked positions over HTTP. Each session owns one
// position; requests against the same session are serialized by the session.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lgbarn/fentrack-go/internal/session"
)

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Handler serves the session API.
type Handler struct {
	store *session.Store
	log   zerolog.Logger
}

// NewRouter creates the gin engine with every route registered.
func NewRouter(log zerolog.Logger, store *session.Store) *gin.Engine {
	h := &Handler{store: store, log: log}

	r := gin.New()
	r.Use(gin.Recovery(), AccessLog(log))

	r.GET("/healthz", h.health)

	sessions := r.Group("/sessions")
	sessions.POST("", h.createSession)
	sessions.GET("/:id", h.getSession)
	sessions.PUT("/:id", h.loadSession)
	sessions.DELETE("/:id", h.deleteSession)
	sessions.POST("/:id/moves", h.applyMove)
	sessions.GET("/:id/moves", h.listMoves)
	sessions.GET("/:id/check", h.checkMove)
	sessions.POST("/:id/undo", h.undoMove)

	return r
}

// AccessLog logs one line per request.
func AccessLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Run serves the API on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, log zerolog.Logger, store *session.Store) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(log, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != http.ErrServerClosed {
		return err
	}
	return nil
}
