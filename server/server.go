package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/feedscope/feedscope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/authenticator.go -pkg mocks -skip-ensure -fmt goimports . Authenticator

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	generator Generator
	auth      Authenticator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUserProfile(ctx context.Context, id, displayName string, onboardingStep int, onboardingCompleted bool) error

	CreateSource(ctx context.Context, source *domain.Source) (int64, error)
	GetSource(ctx context.Context, userID string, id int64) (*domain.Source, error)
	GetSources(ctx context.Context, userID string) ([]domain.SourceWithStats, error)
	UpdateSource(ctx context.Context, userID string, id int64, name, description string) error
	DeleteSource(ctx context.Context, userID string, id int64) error

	CreateFeedback(ctx context.Context, item *domain.FeedbackItem) (int64, error)
	GetFeedback(ctx context.Context, userID string, sourceID int64) ([]domain.FeedbackItem, error)
	DeleteFeedback(ctx context.Context, userID string, id int64) error

	CreateInsight(ctx context.Context, insight *domain.Insight) (int64, error)
	GetInsight(ctx context.Context, userID string, id int64) (*domain.Insight, error)
	GetInsights(ctx context.Context, userID string, sourceID int64) ([]domain.Insight, error)
	DeleteInsight(ctx context.Context, userID string, id int64) error
}

// Generator interface for on-demand insight generation
type Generator interface {
	Generate(ctx context.Context, items []domain.FeedbackItem) (*domain.Insight, error)
}

// Authenticator interface for account and token operations
type Authenticator interface {
	Register(ctx context.Context, email, password, displayName string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Validate(token string) (userID string, err error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, generator Generator, auth Authenticator, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		generator: generator,
		auth:      auth,
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
	s.router.Use(rest.AppInfo("feedscope", "feedscope", s.version))
	s.router.Use(rest.Ping)
	s.router.Use(corsHeaders)

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
		r.HandleFunc("POST /auth/register", s.registerHandler)
		r.HandleFunc("POST /auth/login", s.loginHandler)

		// function-boundary port, takes the feedback batch in the request body
		r.HandleFunc("POST /insights/generate", s.generateHandler)

		// owner-scoped application API
		private := r.Group()
		private.Use(s.authRequired)
		private.HandleFunc("GET /profile", s.getProfileHandler)
		private.HandleFunc("PUT /profile", s.updateProfileHandler)
		private.HandleFunc("POST /sources", s.createSourceHandler)
		private.HandleFunc("GET /sources", s.listSourcesHandler)
		private.HandleFunc("GET /sources/{id}", s.getSourceHandler)
		private.HandleFunc("PUT /sources/{id}", s.updateSourceHandler)
		private.HandleFunc("DELETE /sources/{id}", s.deleteSourceHandler)
		private.HandleFunc("POST /sources/{id}/feedback", s.createFeedbackHandler)
		private.HandleFunc("GET /sources/{id}/feedback", s.listFeedbackHandler)
		private.HandleFunc("DELETE /feedback/{id}", s.deleteFeedbackHandler)
		private.HandleFunc("POST /sources/{id}/insights", s.generateForSourceHandler)
		private.HandleFunc("GET /sources/{id}/insights", s.listInsightsHandler)
		private.HandleFunc("GET /insights/{id}", s.getInsightHandler)
		private.HandleFunc("DELETE /insights/{id}", s.deleteInsightHandler)
	})
}

// corsHeaders adds permissive CORS headers to every response and short-circuits
// OPTIONS preflight requests with an empty 200
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, content-type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ctxKey is a private type for context keys
type ctxKey string

const userIDKey ctxKey = "userID"

// authRequired validates the bearer token and puts the user id into the context
func (s *Server) authRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			renderError(w, r, fmt.Errorf("authorization required"), http.StatusUnauthorized)
			return
		}

		userID, err := s.auth.Validate(token)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid token"), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID extracts the authenticated user id set by authRequired
func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
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
