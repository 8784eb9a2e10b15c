// Package server provides the HTTP REST API for mention sampling and
// opportunity scoring.
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

	"github.com/go-playground/validator/v10"

	"github.com/mhollis/mention-monitor/internal/db"
	"github.com/mhollis/mention-monitor/internal/server/ratelimit"
	"github.com/mhollis/mention-monitor/internal/summarize"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	summarizer  summarize.Client
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
}

// New creates a new server instance. The database and the summarizer are
// both optional: without a database only the stateless endpoints work, and
// without an API key the analyze endpoint reports itself unavailable.
func New(cfg Config) (*Server, error) {
	s := &Server{
		validate:    validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	if cfg.APIKey != "" {
		client, err := summarize.NewGeminiClient(context.Background(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create summarize client: %w", err)
		}
		s.summarizer = client
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analyze runs a remote model call
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Stateless endpoints: the caller supplies the population.
	mux.HandleFunc("POST /sample", s.handleSample)
	mux.HandleFunc("POST /opportunity", s.handleOpportunity)

	// Store-backed endpoints over the collected mentions.
	mux.HandleFunc("GET /keywords/{id}/sample", s.handleKeywordSample)
	mux.HandleFunc("GET /keywords/{id}/opportunity", s.handleKeywordOpportunity)
	mux.HandleFunc("POST /keywords/{id}/analyze", s.handleKeywordAnalyze)

	return mux
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
	if s.summarizer != nil {
		if err := s.summarizer.Close(); err != nil {
			log.Printf("Error closing summarize client: %v", err)
		}
	}
	return nil
}

// withRateLimit throttles clients per the limiter's endpoint configuration.
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

// extractClientID identifies the client by IP address. X-Forwarded-For is
// deliberately ignored until requests pass through a trusted proxy.
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

// rateLimitResponse writes a 429 with retry information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}
	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
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
