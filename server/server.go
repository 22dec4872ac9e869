package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/google/uuid"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/swipe"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feed.go -pkg mocks -skip-ensure -fmt goimports . FeedController

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	feed      FeedController
	version   string
	debug     bool
	templates *template.Template
	session   atomic.Value // string, new id after every reset

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedController is the session state owner driven by the server
type FeedController interface {
	Apply(e swipe.Event)
	State() swipe.State
	Videos() []domain.VideoItem
	Len() int
	OnScrollToTop(s swipe.Scroller)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetPlayerConfig() (loop, muted bool)
}

// New initializes a new server instance
func New(cfg ConfigProvider, feed FeedController, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		feed:    feed,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.session.Store(uuid.NewString())
	s.templates = template.Must(template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html"))
	feed.OnScrollToTop(s)

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ScrollToTop starts a new session id, called by the feed on every reset
func (s *Server) ScrollToTop() {
	s.session.Store(uuid.NewString())
}

// Session returns the id of the current feed session
func (s *Server) Session() string {
	return s.session.Load().(string)
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadTimeout:       timeout,
		ReadHeaderTimeout: timeout,
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
	s.router.Use(rest.AppInfo("swipefeed", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, requests carry no payload
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /state", s.stateHandler)
		r.HandleFunc("GET /videos", s.videosHandler)
		r.HandleFunc("POST /swipe/{index}/{direction}", s.swipeHandler)
		r.HandleFunc("POST /reset", s.resetHandler)
	})

	// web UI routes
	s.router.HandleFunc("GET /{$}", s.feedPageHandler)
	s.router.HandleFunc("POST /swipe/{index}/{direction}", s.htmxSwipeHandler)
	s.router.HandleFunc("POST /reset", s.htmxResetHandler)
}

// apply delivers the event and reports whether the client should scroll to the top.
// Only a reset sent by this request asks for it, resets from other clients don't.
func (s *Server) apply(e swipe.Event) (scrollToTop bool) {
	s.feed.Apply(e)
	log.Printf("[DEBUG] applied %s", e)
	_, scrollToTop = e.(swipe.ResetRequested)
	return scrollToTop
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
