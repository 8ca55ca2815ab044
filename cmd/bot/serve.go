package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/clock"
	"github.com/KirkDiggler/herald-bot/internal/config"
	"github.com/KirkDiggler/herald-bot/internal/dice"
	v2 "github.com/KirkDiggler/herald-bot/internal/discord/v2"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/middleware"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/health"
	"github.com/KirkDiggler/herald-bot/internal/observability"
	"github.com/KirkDiggler/herald-bot/internal/services"
	"github.com/KirkDiggler/herald-bot/internal/uuid"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and serve slash commands",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	clk := clock.New()

	store, err := services.OpenStore(ctx, cfg, clk, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()
	logger.Info("character store ready", zap.String("store", string(store.Kind)))

	provider := services.NewProvider(&services.ProviderConfig{
		CharacterRepository: store.Characters,
		Roller:              newRoller(cfg.RollSeed),
		Clock:               clk,
		UUIDGenerator:       uuid.NewGoogleUUIDGenerator(),
		Logger:              logger,
	})

	var rateLimitStore middleware.RateLimitStore = middleware.NewMemoryRateLimitStore(clk)
	if store.Redis != nil {
		rateLimitStore = middleware.NewRedisRateLimitStore(store.Redis)
	}

	handlers := v2.SetupHandlers(&v2.HandlerConfig{
		Provider:       provider,
		Logger:         logger,
		Collector:      middleware.NewCollector(),
		RateLimitStore: rateLimitStore,
		UUIDGenerator:  uuid.NewGoogleUUIDGenerator(),
		TracerProvider: otel.GetTracerProvider(),
		Clock:          clk,
	})

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return herr.Wrap(err, "failed to create Discord session")
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	guildLimit := &v2.GuildLimit{
		Max:        cfg.Discord.MaxGuilds,
		AdminGuild: cfg.Discord.AdminServer,
		Logger:     logger,
	}
	dg.AddHandler(handlers.HandleInteraction)
	dg.AddHandler(guildLimit.HandleReady)
	dg.AddHandler(guildLimit.HandleGuildCreate)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("connected to Discord",
			zap.String("user", r.User.Username),
			zap.Int("guilds", len(r.Guilds)))
	})

	if err := dg.Open(); err != nil {
		return herr.Unavailablef("failed to open Discord connection: %v", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logger.Warn("discord close failed", zap.Error(err))
		}
	}()

	appID := cfg.Discord.AppID
	if appID == "" && dg.State.User != nil {
		appID = dg.State.User.ID
	}
	if err := v2.RegisterCommands(dg, appID, cfg.CommandGuildID(), logger); err != nil {
		return err
	}

	healthServer := health.NewServer(health.Config{
		Port:      cfg.HealthPort,
		Version:   version,
		StoreKind: string(store.Kind),
		Discord:   health.SessionStatus(dg),
		Store:     store,
		Collector: handlers.Collector,
		Cache:     store.Characters,
		Clock:     clk,
		Logger:    logger,
	})
	if err := healthServer.Start(); err != nil {
		return err
	}
	healthServer.SetReady(true)

	logger.Info("herald is running", zap.Int("health_port", cfg.HealthPort))
	<-ctx.Done()
	logger.Info("shutting down")

	healthServer.SetReady(false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("health server shutdown failed", zap.Error(err))
	}

	return nil
}

// newRoller seeds math/rand when seed is set so a whole session replays;
// otherwise dice come from the toolkit's crypto roller
func newRoller(seed int64) dice.Roller {
	if seed != 0 {
		return dice.NewRandomRoller(seed)
	}
	return dice.NewToolkitRoller(nil)
}
