package metrics

import (
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordlecache_puzzle_lookups_total",
			Help: "Total puzzle lookups by outcome",
		},
		[]string{"outcome"},
	)
	fetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordlecache_upstream_fetches_total",
			Help: "Total upstream fetch attempts by result",
		},
		[]string{"result"},
	)

	initOnce    sync.Once
	initialized bool
)

// Lookup outcomes and fetch results.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"

	ResultOK          = "ok"
	ResultNotFound    = "not_found"
	ResultUnavailable = "unavailable"
)

// Init registers the collectors. Must be called once at startup; recording
// functions are no-ops until then.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(lookups, fetches)
		initialized = true
	})
}

// RecordLookup counts a puzzle lookup outcome.
func RecordLookup(outcome string) {
	if !initialized {
		return
	}
	lookups.WithLabelValues(outcome).Inc()
}

// RecordFetch counts an upstream fetch result.
func RecordFetch(result string) {
	if !initialized {
		return
	}
	fetches.WithLabelValues(result).Inc()
}

// Handler exposes the Prometheus registry as a Fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
