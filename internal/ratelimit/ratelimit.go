// Package ratelimit implements a fixed-window request limiter keyed by
// client identity. Counters live in process memory only: an entry is created
// lazily on a client's first request and reset wholesale when its window
// elapses. Bursts straddling a window boundary are accepted as a known
// approximation of a true sliding window.
package ratelimit

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter tracks per-client request counts over a fixed window. It is
// constructed once at startup and shared by all request handlers; methods
// are safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*entry
}

// New creates a limiter allowing max requests per window for each key.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:     max,
		window:  window,
		entries: make(map[string]*entry),
	}
}

// Allow reports whether a request from key is within its window budget,
// counting the request if so.
func (l *Limiter) Allow(key string) bool {
	return l.allowAt(key, time.Now())
}

func (l *Limiter) allowAt(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}

	if e.count >= l.max {
		return false
	}

	e.count++
	return true
}

// Middleware adapts the limiter to a Fiber handler keyed by client IP.
// Over-limit requests are rejected before any validation, store, or
// upstream work happens.
func (l *Limiter) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !l.Allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too many requests",
			})
		}
		return c.Next()
	}
}
