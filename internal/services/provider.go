package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/clock"
	"github.com/KirkDiggler/herald-bot/internal/dice"
	"github.com/KirkDiggler/herald-bot/internal/repositories/characters"
	characterService "github.com/KirkDiggler/herald-bot/internal/services/character"
	rollService "github.com/KirkDiggler/herald-bot/internal/services/roll"
	"github.com/KirkDiggler/herald-bot/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	RollService      rollService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	// Roller defaults to the rpg-toolkit crypto roller
	Roller        dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
	Logger        *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewToolkitRoller(nil)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create character service
	charService := characterService.NewService(&characterService.ServiceConfig{
		Repository:    charRepo,
		UUIDGenerator: cfg.UUIDGenerator,
		Clock:         cfg.Clock,
		Logger:        logger,
	})

	// Create roll service
	rollSvc := rollService.NewService(&rollService.ServiceConfig{
		Engine:           dice.NewEngine(roller),
		CharacterService: charService,
		Logger:           logger,
	})

	return &Provider{
		CharacterService: charService,
		RollService:      rollSvc,
	}
}
