package middleware

import (
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
)

// Collector counts interactions per route. Snapshot feeds the health server's
// /metrics endpoint.
type Collector struct {
	mu     sync.Mutex
	routes map[string]*routeStats
}

type routeStats struct {
	count    int64
	errors   int64
	duration time.Duration
}

// RouteMetrics is the exported view of one route
type RouteMetrics struct {
	Route         string  `json:"route"`
	Count         int64   `json:"count"`
	Errors        int64   `json:"errors"`
	AverageMillis float64 `json:"average_ms"`
}

// Snapshot is a point in time copy of the collector
type Snapshot struct {
	Interactions int64          `json:"interactions"`
	Errors       int64          `json:"errors"`
	Routes       []RouteMetrics `json:"routes"`
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{
		routes: make(map[string]*routeStats),
	}
}

// Record adds one interaction
func (c *Collector) Record(route string, duration time.Duration, failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, ok := c.routes[route]
	if !ok {
		stats = &routeStats{}
		c.routes[route] = stats
	}
	stats.count++
	stats.duration += duration
	if failed {
		stats.errors++
	}
}

// Snapshot copies the counters, routes sorted by name
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{Routes: make([]RouteMetrics, 0, len(c.routes))}
	for route, stats := range c.routes {
		snap.Interactions += stats.count
		snap.Errors += stats.errors
		snap.Routes = append(snap.Routes, RouteMetrics{
			Route:         route,
			Count:         stats.count,
			Errors:        stats.errors,
			AverageMillis: float64(stats.duration.Microseconds()) / float64(stats.count) / 1000,
		})
	}
	sort.Slice(snap.Routes, func(i, j int) bool {
		return snap.Routes[i].Route < snap.Routes[j].Route
	})

	return snap
}

// MetricsMiddleware records every interaction. Errors already turned into
// responses by ErrorMiddleware still count as failures.
func MetricsMiddleware(collector *Collector) core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)

			failed := err != nil
			if result != nil && result.Context != nil {
				if _, ok := result.Context["error"]; ok {
					failed = true
				}
			}
			collector.Record(ctx.Route(), time.Since(start), failed)

			return result, err
		})
	}
}
