package server

import (
	"log"
	"time"

	"wordlecache/internal/db"
	"wordlecache/internal/handlers"
	"wordlecache/internal/metrics"
	"wordlecache/internal/puzzle"
	"wordlecache/internal/ratelimit"
	"wordlecache/internal/upstream"
)

// RegisterRoutes wires the cache service and registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB) {
	loc, err := time.LoadLocation(s.Cfg.PuzzleTimezone)
	if err != nil {
		log.Printf("Warning: unknown puzzle timezone %q, falling back to UTC: %v", s.Cfg.PuzzleTimezone, err)
		loc = time.UTC
	}

	fetcher := upstream.NewClient(s.Cfg.UpstreamBaseURL, s.Cfg.UpstreamTimeout)
	svc := puzzle.NewService(database, fetcher, loc)
	limiter := ratelimit.New(s.Cfg.RateLimitMax, s.Cfg.RateLimitWindow)

	// Initialize handlers
	puzzleHandler := handlers.NewPuzzleHandler(svc)
	healthHandler := handlers.NewHealthHandler()
	pageHandler := handlers.NewPageHandler(svc, s.Cfg)
	apiKeyHandler := handlers.NewAPIKeyHandler()

	// Operational endpoints, exempt from rate limiting
	s.App.Get("/health", healthHandler.Check)
	s.App.Get("/metrics", metrics.Handler())

	// Rate-limited API surface
	s.App.Get("/puzzle/:date", limiter.Middleware(), puzzleHandler.Get)
	s.App.Post("/api/key", limiter.Middleware(), apiKeyHandler.Create)

	// Landing page - must never fail on the answer lookup, so it stays
	// outside the limiter
	s.App.Get("/", pageHandler.Home)
}
