package v2

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/clock"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/middleware"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/routers"
	"github.com/KirkDiggler/herald-bot/internal/services"
	"github.com/KirkDiggler/herald-bot/internal/uuid"
)

const (
	DefaultRateLimit       = 30
	DefaultRateLimitWindow = time.Minute

	// interactionTimeout bounds the work behind one interaction. Discord
	// tokens live for 15 minutes; no handler should come close.
	interactionTimeout = 30 * time.Second
)

// HandlerConfig wires the v2 handler system
type HandlerConfig struct {
	Provider *services.Provider
	Logger   *zap.Logger

	// Collector receives per-route counters; one is created when nil
	Collector *middleware.Collector

	// RateLimitStore defaults to an in-memory store
	RateLimitStore  middleware.RateLimitStore
	RateLimit       int
	RateLimitWindow time.Duration

	UUIDGenerator  uuid.Generator
	TracerProvider trace.TracerProvider
	Clock          clock.Clock
}

// Handlers is the assembled pipeline and the routers registered on it
type Handlers struct {
	Pipeline  *core.Pipeline
	Collector *middleware.Collector

	Dice      *routers.DiceRouter
	Character *routers.CharacterRouter
	Hunter    *routers.HunterRouter

	logger *zap.Logger
}

// SetupHandlers builds the pipeline. Middleware runs outermost first:
// recovery, request ID, logging, tracing, metrics, error mapping, rate limit.
func SetupHandlers(cfg *HandlerConfig) *Handlers {
	if cfg == nil || cfg.Provider == nil {
		panic("provider is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	collector := cfg.Collector
	if collector == nil {
		collector = middleware.NewCollector()
	}
	store := cfg.RateLimitStore
	if store == nil {
		store = middleware.NewMemoryRateLimitStore(cfg.Clock)
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = DefaultRateLimitWindow
	}

	pipeline := core.NewPipeline(logger)
	pipeline.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestIDMiddleware(cfg.UUIDGenerator),
		middleware.LoggingMiddleware(logger),
		middleware.TracingMiddleware(cfg.TracerProvider),
		middleware.MetricsMiddleware(collector),
		middleware.ErrorMiddleware(logger),
		middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			MaxRequests: limit,
			Window:      window,
			KeyFunc:     middleware.UserKey,
			Store:       store,
			Logger:      logger,
		}),
	)

	return &Handlers{
		Pipeline:  pipeline,
		Collector: collector,
		Dice:      routers.NewDiceRouter(pipeline, cfg.Provider),
		Character: routers.NewCharacterRouter(pipeline, cfg.Provider),
		Hunter:    routers.NewHunterRouter(pipeline, cfg.Provider),
		logger:    logger.Named("discord"),
	}
}

// HandleInteraction is the discordgo event handler for every interaction
func (h *Handlers) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	if err := h.Pipeline.Execute(ctx, s, i); err != nil {
		h.logger.Error("failed to handle interaction",
			zap.String("interaction_id", i.ID),
			zap.Error(err))
	}
}
