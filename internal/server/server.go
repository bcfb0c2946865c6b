package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/profile-forge/internal/bot"
	"github.com/jonathan/profile-forge/internal/config"
	"github.com/jonathan/profile-forge/internal/db"
	"github.com/jonathan/profile-forge/internal/devicon"
	"github.com/jonathan/profile-forge/internal/github"
	"github.com/jonathan/profile-forge/internal/llm"
	"github.com/jonathan/profile-forge/internal/readme"
	"github.com/jonathan/profile-forge/internal/server/middleware"
	"github.com/jonathan/profile-forge/internal/server/ratelimit"
	"github.com/jonathan/profile-forge/internal/stt"
)

const (
	sessionPruneInterval = 10 * time.Minute
	sessionMaxIdle       = time.Hour
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB // nil when persistence is not configured
	llmClient   llm.Client
	resolver    *devicon.Resolver
	assembler   *readme.Assembler
	transcriber stt.Transcriber
	engine      *bot.Engine
	sessions    *bot.Manager
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler

	// githubOpts overrides the GitHub API endpoint, used by tests.
	githubOpts *github.Options

	// dbSessions maps conversation session IDs to their persisted
	// generation session rows.
	dbSessionsMu sync.Mutex
	dbSessions   map[string]uuid.UUID

	pruneStop chan struct{}
}

// Config holds server configuration
type Config struct {
	Port        int
	APIKey      string
	DatabaseURL string
	LLMConfig   *llm.Config
	Resolver    devicon.ResolverOptions
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := llm.NewClient(context.Background(), cfg.LLMConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	resolver, err := devicon.NewResolver(devicon.LoadCatalog(), cfg.Resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	assembler, err := readme.NewAssembler(resolver, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create assembler: %w", err)
	}

	transcriber, err := stt.NewLLMTranscriber(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcriber: %w", err)
	}

	engine, err := bot.NewEngine(client, transcriber, assembler)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogue engine: %w", err)
	}

	s := &Server{
		llmClient:   client,
		resolver:    resolver,
		assembler:   assembler,
		transcriber: transcriber,
		engine:      engine,
		sessions:    bot.NewManager(),
		dbSessions:  make(map[string]uuid.UUID),
	}

	// Persistence and account auth are optional: without a database the
	// bot still runs, it just keeps no history.
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database

		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		s.userService = NewUserService(database, passwordConfig)

		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
		s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM-backed generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Conversation endpoints
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("POST /sessions/{id}/messages", s.handleSessionMessage)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleEndSession)
	mux.HandleFunc("GET /sessions/{id}/bundle", s.handleSessionBundle)
	mux.HandleFunc("POST /sessions/{id}/deploy", s.handleSessionDeploy)
	mux.HandleFunc("POST /sessions/{id}/preview", s.handleSessionPreview)

	// Stateless endpoints
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("POST /transcribe", s.handleTranscribe)
	mux.HandleFunc("POST /resolve", s.handleResolve)
	mux.HandleFunc("GET /skills/search", s.handleSkillSearch)

	mux.HandleFunc("GET /health", s.handleHealth)

	// Persistence-backed endpoints
	if s.db != nil {
		mux.HandleFunc("POST /ratings", s.handleAddRating)
		mux.HandleFunc("GET /ratings/summary", s.handleRatingSummary)
		mux.HandleFunc("GET /skills/popular", s.handlePopularSkills)
	}

	// Account endpoints
	if s.authHandler != nil {
		mux.HandleFunc("POST /auth/register", s.authHandler.Register)
		mux.HandleFunc("POST /auth/login", s.authHandler.Login)
		mux.Handle("PUT /auth/password", s.requireAuth(http.HandlerFunc(s.handleUpdatePassword)))
	}

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	s.pruneStop = make(chan struct{})
	go s.pruneSessions()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	close(s.pruneStop)
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
	if err := s.llmClient.Close(); err != nil {
		log.Printf("Error closing LLM client: %v", err)
	}

	log.Println("Server stopped")
	return nil
}

// pruneSessions drops conversations that have gone idle.
func (s *Server) pruneSessions() {
	ticker := time.NewTicker(sessionPruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if pruned := s.sessions.PruneIdle(sessionMaxIdle); pruned > 0 {
				log.Printf("Pruned %d idle sessions", pruned)
			}
		case <-s.pruneStop:
			return
		}
	}
}

// requireAuth wraps a handler with bearer token validation.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(next)
}

// handleUpdatePassword changes the authenticated user's password.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			s.jsonResponse(w, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For would only
// be safe behind a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
