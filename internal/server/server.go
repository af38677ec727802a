// Package server exposes notes, the link graph, search and resurfacing over
// a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	indexsvc "github.com/Paintersrp/focusnest/internal/services/index"
	"github.com/Paintersrp/focusnest/internal/services/notes"
)

// Limits holds the defaults applied when a request omits a count or limit.
type Limits struct {
	Central       int
	Suggest       int
	Search        int
	Daily         int
	Context       int
	Orphans       int
	ListNotes     int
	ExcludeRecent bool
}

// DefaultLimits mirrors the query defaults of the public API.
func DefaultLimits() Limits {
	return Limits{
		Central:       10,
		Suggest:       5,
		Search:        20,
		Daily:         5,
		Context:       3,
		Orphans:       3,
		ListNotes:     100,
		ExcludeRecent: true,
	}
}

// Server is the FocusNest API server.
type Server struct {
	notes  *notes.Service
	index  *indexsvc.Service
	limits Limits
	router *gin.Engine
}

// New creates a server. mode selects the gin mode and may be empty.
func New(n *notes.Service, idx *indexsvc.Service, limits Limits, mode string) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), corsMiddleware())

	s := &Server{
		notes:  n,
		index:  idx,
		limits: limits,
		router: router,
	}

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/notes", s.handleListNotes)
		api.POST("/notes", s.handleCreateNote)
		api.POST("/notes/relink", s.handleRelink)
		api.GET("/notes/:id", s.handleGetNote)
		api.PUT("/notes/:id", s.handleUpdateNote)
		api.DELETE("/notes/:id", s.handleDeleteNote)
		api.GET("/notes/:id/render", s.handleRenderNote)
		api.GET("/notes/:id/tags", s.handleListTags)
		api.POST("/notes/:id/tags", s.handleAddTag)
	}

	g := api.Group("/graph")
	{
		g.GET("", s.handleGraphData)
		g.GET("/data", s.handleGraphData)
		g.GET("/connections/:id", s.handleConnections)
		g.GET("/orphans", s.handleOrphans)
		g.GET("/central", s.handleCentral)
		g.GET("/suggest/:id", s.handleSuggest)
	}

	sr := api.Group("/search")
	{
		sr.GET("", s.handleSearch)
		sr.GET("/resurface/daily", s.handleDaily)
		sr.GET("/resurface/random", s.handleRandom)
		sr.GET("/resurface/context/:id", s.handleContext)
		sr.GET("/resurface/orphans", s.handleOrphanNotes)
	}

	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("focusnest api listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Printf("shutting down focusnest api")
	return srv.Shutdown(shutdownCtx)
}

// corsMiddleware accepts any origin, method and header and allows
// credentials. Origins are echoed back rather than sent as "*".
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
