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

	"github.com/umputun/lunch/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Server represents HTTP server instance, a thin command boundary over the restaurant store
type Server struct {
	config  ConfigProvider
	store   Store
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store is the restaurant store used by handlers
type Store interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Restaurant, error)
	Add(ctx context.Context, name, category string) (domain.Restaurant, error)
	Delete(ctx context.Context, name string) error
	Roll(ctx context.Context, category string) (domain.Restaurant, error)
	Recent(ctx context.Context) ([]domain.Selection, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		store:   store,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
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
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
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
	s.router.Use(rest.AppInfo("lunch", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, requests are tiny
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /restaurants", s.listRestaurantsHandler)
		r.HandleFunc("POST /restaurants", s.addRestaurantHandler)
		r.HandleFunc("DELETE /restaurants/{name}", s.deleteRestaurantHandler)
		r.HandleFunc("POST /roll/{category}", s.rollHandler)
		r.HandleFunc("GET /history", s.historyHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
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

// renderStoreError maps store errors to status codes. Input and not-found errors are shown as is,
// storage faults are logged and reported as an opaque internal error.
func renderStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		renderError(w, r, domain.ErrDuplicateName, http.StatusConflict)
	case errors.Is(err, domain.ErrNoRestaurants):
		renderError(w, r, domain.ErrNoRestaurants, http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		renderError(w, r, err, http.StatusBadRequest)
	default:
		log.Printf("[ERROR] %s %s failed: %v", r.Method, r.URL.Path, err)
		renderError(w, r, errors.New("something went wrong"), http.StatusInternalServerError)
	}
}
