// Package web serves a read-only HTTP view of a project's tasks.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erichgess/tisk/internal/tasks"
	"github.com/erichgess/tisk/internal/view"
)

// Loader reads the current task list. Every tasks.Store is a Loader.
type Loader interface {
	Load(ctx context.Context) (*tasks.List, error)
}

// Server is the tisk web server
type Server struct {
	store   Loader
	display view.Options
	router  *gin.Engine
}

// NewServer creates a new web server. display supplies the default table
// width and wrapping settings of the text views.
func NewServer(store Loader, display view.Options) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	s := &Server{
		store:   store,
		display: display,
		router:  router,
	}

	// Text routes
	router.GET("/tasks", s.handleTasksText)
	router.GET("/tasks/:id/notes", s.handleNotesText)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/tasks", s.handleAPITasks)
		api.GET("/tasks/:id", s.handleAPITask)
	}

	return s
}

// Handler returns the router for use with an http.Server or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving tasks", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
