package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jsonrepair-go/jsonrepair/internal/cache"
	"github.com/jsonrepair-go/jsonrepair/internal/history"
	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

// Server exposes the repair engine over HTTP — callers can embed the engine
// directly; this package is the optional network-facing surface a complete
// deployment needs.
type Server struct {
	Engine      *repair.Repair
	Cache       cache.Cache
	History     history.Store
	Auth        *AuthService
	APIKeyHash  string
	RequireAuth bool
}

// NewServer builds a Server. Cache and History are optional (nil disables
// them); Auth is required only when RequireAuth is true.
func NewServer(engine *repair.Repair, opts ...ServerOption) *Server {
	s := &Server{Engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServerOption configures a Server.
type ServerOption func(*Server)

func WithCache(c cache.Cache) ServerOption        { return func(s *Server) { s.Cache = c } }
func WithHistory(h history.Store) ServerOption    { return func(s *Server) { s.History = h } }
func WithAuth(a *AuthService, keyHash string) ServerOption {
	return func(s *Server) { s.Auth = a; s.APIKeyHash = keyHash; s.RequireAuth = true }
}

// Routes builds the chi router: POST /v1/repair, GET /v1/reports/{id},
// GET /v1/stream for websocket-streamed rule-firing progress.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		if s.RequireAuth {
			r.Use(s.authMiddleware)
		}
		r.Post("/repair", s.handleRepair)
		r.Get("/reports/{id}", s.handleGetReport)
		r.Get("/stream", s.handleStream)
	})

	return r
}

// authMiddleware accepts either a bearer JWT or a static X-API-Key header
// checked against the bcrypt hash in config.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("X-API-Key"); key != "" {
			if s.APIKeyHash != "" && VerifyAPIKey(s.APIKeyHash, key) {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "invalid api key", http.StatusUnauthorized)
			return
		}

		authHeader := r.Header.Get("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" || token == authHeader {
			http.Error(w, "missing credentials", http.StatusUnauthorized)
			return
		}
		if s.Auth == nil {
			http.Error(w, "auth not configured", http.StatusInternalServerError)
			return
		}
		if _, err := s.Auth.ValidateToken(token); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
