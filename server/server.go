package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/devpulse/pkg/cache"
	"github.com/umputun/devpulse/pkg/config"
	"github.com/umputun/devpulse/pkg/domain"
	"github.com/umputun/devpulse/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed.go -pkg mocks -skip-ensure -fmt goimports . Feed
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	feed      Feed
	db        Database
	scheduler Scheduler
	cache     Cache
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Feed assembles merged feed pages and trending aggregations
type Feed interface {
	Assemble(ctx context.Context, page, pageSize int, typeFilter string) (*feed.Page, error)
	Trending(ctx context.Context, window time.Duration, limit int) ([]domain.TagCount, error)
}

// Database interface for server operations on stored records
type Database interface {
	ListSourceItems(ctx context.Context, source domain.Source, limit int) ([]domain.ExternalItem, error)
	CreateProject(ctx context.Context, project *domain.Project) error
	CreatePost(ctx context.Context, post *domain.BlogPost) error
}

// Scheduler interface for on-demand sync operations
type Scheduler interface {
	SyncNow(ctx context.Context, src domain.Source) (int, error)
}

// Cache is the read-through cache wrapping feed reads
type Cache interface {
	ReadThrough(ctx context.Context, key string, ttl time.Duration, loader cache.Loader) ([]byte, bool, error)
	Invalidate(prefix string)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetCacheConfig() config.CacheConfig
	GetFeedConfig() config.FeedConfig
}

// New initializes a new server instance
func New(cfg ConfigProvider, feedSvc Feed, db Database, scheduler Scheduler, cacheSvc Cache, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		feed:      feedSvc,
		db:        db,
		scheduler: scheduler,
		cache:     cacheSvc,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("devpulse", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// feed read surface, served through the cache
	s.router.HandleFunc("GET /feed", s.feedHandler)
	s.router.HandleFunc("GET /feed/trending", s.trendingHandler)

	// manual sync triggers, ops-only
	s.router.HandleFunc("POST /sync-hackernews", s.syncHandler(domain.SourceHackerNews))
	s.router.HandleFunc("POST /sync-devto", s.syncHandler(domain.SourceDevTo))

	// debug listings of stored external items by source
	s.router.HandleFunc("GET /hackernews", s.sourceItemsHandler(domain.SourceHackerNews))
	s.router.HandleFunc("GET /devto", s.sourceItemsHandler(domain.SourceDevTo))

	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /projects", s.createProjectHandler)
		r.HandleFunc("POST /posts", s.createPostHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
