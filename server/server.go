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

	"github.com/VanillaDeath/Wilbot/pkg/bot"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/info.go -pkg mocks -skip-ensure -fmt goimports . InfoProvider
//go:generate moq -out mocks/state.go -pkg mocks -skip-ensure -fmt goimports . StateReader

// Server exposes the bot's status over HTTP
type Server struct {
	config  ConfigProvider
	info    InfoProvider
	states  StateReader
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// InfoProvider reports the bot's identity and counters
type InfoProvider interface {
	Info(ctx context.Context) (bot.Info, error)
}

// StateReader reads persisted runtime state
type StateReader interface {
	Get(ctx context.Context, key string) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, info InfoProvider, states StateReader, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		info:    info,
		states:  states,
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
	s.router.Use(rest.AppInfo("wilbot", "VanillaDeath", s.version))
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
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})
}

// statusResponse is the payload of GET /api/v1/status
type statusResponse struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	Time         time.Time `json:"time"`
	Account      string    `json:"account"`
	Follows      int       `json:"follows"`
	Prefixes     int       `json:"prefixes"`
	Transitions  int       `json:"transitions"`
	Starts       int       `json:"starts"`
	LastAutoPost string    `json:"last_auto_post,omitempty"`
}

// statusHandler returns the bot identity and counters
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info, err := s.info.Info(ctx)
	if err != nil {
		log.Printf("[ERROR] status info: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	lastAutoPost, err := s.states.Get(ctx, repository.StateLastAutoPost)
	if err != nil {
		log.Printf("[WARN] last auto-post lookup: %v", err)
	}

	RenderJSON(w, r, http.StatusOK, statusResponse{
		Status:       "ok",
		Version:      s.version,
		Time:         time.Now().UTC(),
		Account:      info.Account.Acct,
		Follows:      info.Follows,
		Prefixes:     info.Engine.Prefixes,
		Transitions:  info.Engine.Transitions,
		Starts:       info.Engine.Starts,
		LastAutoPost: lastAutoPost,
	})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
