// Package server provides the HTTP REST API for the matching engine.
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

	"github.com/google/uuid"

	"github.com/Samtech361/Jobupdates-cs-project/internal/analysis"
	"github.com/Samtech361/Jobupdates-cs-project/internal/gap"
	"github.com/Samtech361/Jobupdates-cs-project/internal/matching"
	"github.com/Samtech361/Jobupdates-cs-project/internal/server/ratelimit"
	"github.com/Samtech361/Jobupdates-cs-project/internal/taxonomy"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	engine      *matching.Engine
	gapAnalyzer *gap.Analyzer
	analyzer    *analysis.Analyzer
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port         int
	TaxonomyPath string // optional custom taxonomy JSON; empty means built-in
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	tax := taxonomy.Default()
	if cfg.TaxonomyPath != "" {
		loaded, err := taxonomy.LoadFile(cfg.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
		tax = loaded
	}

	s := &Server{
		engine:      matching.New(tax),
		gapAnalyzer: gap.New(tax),
		analyzer:    analysis.New(nil),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.FromEnv())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/match", s.handleMatch)
	mux.HandleFunc("POST /api/match/batch", s.handleBatchMatch)
	mux.HandleFunc("POST /api/skills-gap", s.handleSkillsGap)
	mux.HandleFunc("POST /api/resume/analyze", s.handleAnalyzeResume)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the full middleware-wrapped handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
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

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

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

		allowed, decision := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, decision)
			s.rateLimitResponse(w, decision)
			return
		}

		s.setRateLimitHeaders(w, decision)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request ID
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("[%s] %s %s %s", r.Method, r.URL.Path, r.RemoteAddr, requestID)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", r.Method, r.URL.Path, requestID, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
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
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, decision ratelimit.Decision) {
	if decision.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", decision.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", decision.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", decision.Reset.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, decision ratelimit.Decision) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     decision.Limit,
		"remaining": decision.Remaining,
		"reset_at":  decision.Reset.Format(time.RFC3339),
	}

	if decision.RetryAfter > 0 {
		response["retry_after"] = int(decision.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(decision.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		decision.Limit, decision.Remaining, decision.Reset.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
