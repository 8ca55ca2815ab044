// Package health serves the HTTP endpoints that deployment platforms and
// monitors poll: liveness, readiness and a JSON metrics dump.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/clock"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/middleware"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/repositories/characters"
)

const (
	pingTimeout     = 3 * time.Second
	shutdownTimeout = 5 * time.Second
)

// DiscordStatus reports the gateway connection
type DiscordStatus interface {
	Connected() bool
	GuildCount() int
}

// Pinger checks a backing store
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheStatter exposes character cache counters
type CacheStatter interface {
	Stats() characters.CacheStats
}

// Config wires the server to the running bot
type Config struct {
	Port    int
	Version string

	// StoreKind names the character backend in responses
	StoreKind string

	Discord   DiscordStatus
	Store     Pinger
	Collector *middleware.Collector
	Cache     CacheStatter

	Clock  clock.Clock
	Logger *zap.Logger
}

// Server is the health HTTP server
type Server struct {
	cfg     Config
	started time.Time
	ready   atomic.Bool
	server  *http.Server
	logger  *zap.Logger
}

// NewServer creates a server; it does not listen until Start
func NewServer(cfg Config) *Server {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		started: cfg.Clock.Now(),
		logger:  cfg.Logger.Named("health"),
	}
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routes wrapped in otelhttp instrumentation
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	return otelhttp.NewHandler(mux, "health",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}))
}

// SetReady flips the readiness probe
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
	if ready {
		s.logger.Info("marked ready")
	} else {
		s.logger.Warn("marked not ready")
	}
}

// Ready reports the readiness flag
func (s *Server) Ready() bool {
	return s.ready.Load()
}

// Start listens in the background. Bind errors are returned immediately.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return herr.WrapWithCode(err, herr.CodeUnavailable, "failed to bind health server").
			WithMeta("addr", s.server.Addr)
	}

	s.logger.Info("health server listening", zap.String("addr", listener.Addr().String()))
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("health server stopped", zap.Error(err))
		}
	}()
	return nil
}

// Shutdown stops the server, waiting briefly for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) uptime() float64 {
	return s.cfg.Clock.Now().Sub(s.started).Seconds()
}

func (s *Server) discordConnected() bool {
	return s.cfg.Discord != nil && s.cfg.Discord.Connected()
}

func (s *Server) guildCount() int {
	if s.cfg.Discord == nil {
		return 0
	}
	return s.cfg.Discord.GuildCount()
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "Herald",
		"version": s.cfg.Version,
		"endpoints": map[string]string{
			"GET /health":  "Discord and store health",
			"GET /ready":   "Startup complete",
			"GET /metrics": "Interaction counters",
		},
	})
}

type healthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
	Guilds  int               `json:"guilds"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "healthy",
		Version: s.cfg.Version,
		Checks:  map[string]string{},
	}

	if s.discordConnected() {
		resp.Checks["discord"] = "connected"
		resp.Guilds = s.guildCount()
	} else {
		resp.Checks["discord"] = "not_connected"
		resp.Status = "unhealthy"
	}

	switch {
	case s.cfg.Store == nil:
		resp.Checks["store"] = "not_configured"
		resp.Status = "unhealthy"
	default:
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		err := s.cfg.Store.Ping(ctx)
		cancel()
		if err != nil {
			s.logger.Warn("store ping failed", zap.Error(err))
			resp.Checks["store"] = "unreachable"
			resp.Status = "unhealthy"
		} else {
			resp.Checks["store"] = "connected"
		}
	}
	if s.cfg.StoreKind != "" {
		resp.Checks["store_kind"] = s.cfg.StoreKind
	}

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	switch {
	case !s.Ready():
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ready": false, "reason": "Bot not ready"})
	case !s.discordConnected():
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ready": false, "reason": "Discord not connected"})
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"ready":          true,
			"version":        s.cfg.Version,
			"uptime_seconds": s.uptime(),
		})
	}
}

type metricsResponse struct {
	Version          string                 `json:"version,omitempty"`
	UptimeSeconds    float64                `json:"uptime_seconds"`
	Ready            bool                   `json:"ready"`
	DiscordConnected bool                   `json:"discord_connected"`
	Guilds           int                    `json:"guilds_count"`
	Interactions     *middleware.Snapshot   `json:"interactions,omitempty"`
	Cache            *characters.CacheStats `json:"cache,omitempty"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	resp := metricsResponse{
		Version:          s.cfg.Version,
		UptimeSeconds:    s.uptime(),
		Ready:            s.Ready(),
		DiscordConnected: s.discordConnected(),
		Guilds:           s.guildCount(),
	}
	if s.cfg.Collector != nil {
		snapshot := s.cfg.Collector.Snapshot()
		resp.Interactions = &snapshot
	}
	if s.cfg.Cache != nil {
		stats := s.cfg.Cache.Stats()
		resp.Cache = &stats
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// sessionStatus adapts a discordgo session
type sessionStatus struct {
	session *discordgo.Session
}

// SessionStatus reports a discordgo session's connection and guild count
func SessionStatus(session *discordgo.Session) DiscordStatus {
	return sessionStatus{session: session}
}

func (s sessionStatus) Connected() bool {
	return s.session != nil && s.session.DataReady
}

func (s sessionStatus) GuildCount() int {
	if s.session == nil || s.session.State == nil {
		return 0
	}
	s.session.State.RLock()
	defer s.session.State.RUnlock()
	return len(s.session.State.Guilds)
}
