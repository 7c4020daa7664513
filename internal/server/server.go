// Package server provides the HTTP REST API for the guide engine.
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
	"syscall"
	"time"

	"github.com/plantrx/guide-engine/internal/config"
	"github.com/plantrx/guide-engine/internal/db"
	"github.com/plantrx/guide-engine/internal/guide"
	"github.com/plantrx/guide-engine/internal/server/ratelimit"
	"github.com/plantrx/guide-engine/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB // nil when no database is configured; storage routes return 503
	gen         *guide.Generator
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService // nil when auth is disabled
	apiKeys     *config.APIKeyConfig
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	RequireAuth bool
}

// New creates a new server instance. The database is optional: without it
// guides can still be generated and downloaded, just not stored.
func New(cfg Config) (*Server, error) {
	s := &Server{
		gen: &guide.Generator{},
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	if cfg.RequireAuth {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)

		apiKeys, err := config.NewAPIKeyConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create API key config: %w", err)
		}
		s.apiKeys = apiKeys
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /plans", s.handleListPlans)
	mux.HandleFunc("POST /auth/token", s.handleToken)

	// Guide endpoints
	mux.Handle("POST /guides", s.protect(http.HandlerFunc(s.handleGenerateGuide)))
	mux.HandleFunc("GET /guides", s.handleListGuides)
	mux.HandleFunc("GET /guides/{id}", s.handleGetGuide)
	mux.HandleFunc("GET /guides/{id}/pdf", s.handleDownloadGuide)
	mux.Handle("DELETE /guides/{id}", s.protect(http.HandlerFunc(s.handleDeleteGuide)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation can take a while for long programs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
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

// protect requires a valid Bearer token when auth is enabled. With auth
// disabled the handler runs as-is.
func (s *Server) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.jwtService == nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := bearerToken(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if _, err := s.jwtService.ValidateToken(token); err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db == nil {
		status["storage"] = "disabled"
	} else {
		status["storage"] = "enabled"
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// handleListPlans lists the supported plan types with their guide titles
func (s *Server) handleListPlans(w http.ResponseWriter, _ *http.Request) {
	plans := make([]map[string]string, 0, len(types.AllPlanTypes))
	for _, plan := range types.AllPlanTypes {
		plans = append(plans, map[string]string{
			"plan":  plan.String(),
			"title": plan.Title(),
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"plans": plans, "count": len(plans)})
}

// logWriteError records a failed body write after headers were committed
func logWriteError(err error) {
	log.Printf("Error writing response body: %v", err)
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

// extractClientID extracts the client identifier from the request. This uses
// the IP address from RemoteAddr; X-Forwarded-For is deliberately ignored
// because it is client-controlled unless a trusted proxy strips it.
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

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
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
