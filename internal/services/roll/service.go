package roll

//go:generate mockgen -destination=mock/mock_service.go -package=mockroll -source=service.go

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/dice"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/services/character"
)

const (
	MinPool       = 1
	MaxPool       = 20
	MaxDifficulty = 6
)

// Service resolves rolls for users, reading and updating their hunters where
// the roll involves one
type Service interface {
	// Roll rolls a plain pool. Difficulty is only the margin target.
	Roll(ctx context.Context, input *Input) (*Output, error)

	// RollCharacter builds the pool from a character's sheet
	RollCharacter(ctx context.Context, input *CharacterInput) (*Output, error)

	// Rouse rolls a rouse check and adds any desperation gained
	Rouse(ctx context.Context, userID, characterName string) (*RouseOutput, error)

	// Simple rolls a bare pool with no character involved
	Simple(ctx context.Context, pool int) (*dice.SimpleResult, error)
}

// Input is a manual /roll
type Input struct {
	UserID     string
	Pool       int
	Desperate  bool
	Difficulty int
	Comment    string
}

// CharacterInput rolls attribute + skill for a character
type CharacterInput struct {
	UserID        string
	CharacterName string
	Attribute     entities.Attribute
	// Skill is optional
	Skill      entities.Skill
	Edge       int
	Difficulty int
	Desperate  bool
}

// Output is a finished roll and what it was rolled for
type Output struct {
	Result *dice.Result
	// Pool is the number of regular dice rolled
	Pool       int
	Difficulty int
	Comment    string
	// Character is nil for rolls that did not touch a character
	Character *entities.Character
}

// Desperation is the number of desperation dice rolled
func (o *Output) Desperation() int {
	return len(o.Result.DesperationDice())
}

// RouseOutput reports a rouse check and its effect on desperation
type RouseOutput struct {
	Result *dice.RouseResult
	Before int
	After  int
	// Character is nil when the user had no character to apply the result to
	Character *entities.Character
}

type service struct {
	engine     *dice.Engine
	characters character.Service
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Engine           *dice.Engine      // Required
	CharacterService character.Service // Required
	Logger           *zap.Logger
}

// NewService creates a new roll service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Engine == nil {
		panic("dice engine is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		engine:     cfg.Engine,
		characters: cfg.CharacterService,
		logger:     logger.Named("roll"),
	}
}

func (s *service) Roll(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}

	vb := herr.NewValidationBuilder()
	herr.ValidateRange("pool", input.Pool, MinPool, MaxPool, vb)
	herr.ValidateRange("difficulty", input.Difficulty, 0, MaxDifficulty, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var char *entities.Character
	if input.Desperate {
		var err error
		char, err = s.desperateCharacter(ctx, input.UserID, "")
		if err != nil {
			return nil, err
		}
	}

	result, err := s.engine.RollPool(input.Pool, 0, input.Desperate, 0, 0)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Result:     result,
		Pool:       input.Pool,
		Difficulty: input.Difficulty,
		Comment:    strings.TrimSpace(input.Comment),
		Character:  char,
	}
	s.logRoll(input.UserID, out)

	return out, nil
}

func (s *service) RollCharacter(ctx context.Context, input *CharacterInput) (*Output, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}

	vb := herr.NewValidationBuilder()
	herr.ValidateRange("edge", input.Edge, 0, entities.MaxEdge, vb)
	herr.ValidateRange("difficulty", input.Difficulty, 0, MaxDifficulty, vb)
	if _, ok := entities.ParseAttribute(string(input.Attribute)); !ok {
		vb.Fieldf("attribute", "unknown attribute %q", input.Attribute)
	}
	if input.Skill != "" {
		if _, ok := entities.ParseSkill(string(input.Skill)); !ok {
			vb.Fieldf("skill", "unknown skill %q", input.Skill)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var (
		char *entities.Character
		err  error
	)
	if input.Desperate {
		char, err = s.desperateCharacter(ctx, input.UserID, input.CharacterName)
	} else {
		char, err = s.characters.Resolve(ctx, input.UserID, input.CharacterName)
	}
	if err != nil {
		return nil, err
	}

	attribute, _ := entities.ParseAttribute(string(input.Attribute))
	skillDots := 0
	if input.Skill != "" {
		skill, _ := entities.ParseSkill(string(input.Skill))
		skillDots = char.Skill(skill)
	}

	result, err := s.engine.RollPool(char.Attribute(attribute), skillDots, input.Desperate, input.Edge, input.Difficulty)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Result:     result,
		Pool:       len(result.Dice()),
		Difficulty: input.Difficulty,
		Character:  char,
	}
	s.logRoll(input.UserID, out)

	return out, nil
}

func (s *service) Rouse(ctx context.Context, userID, characterName string) (*RouseOutput, error) {
	char, err := s.characters.Resolve(ctx, userID, characterName)
	switch {
	case err == nil:
	case herr.IsNotFound(err) && strings.TrimSpace(characterName) == "":
		// no active character; the check is still rolled
		char = nil
	default:
		return nil, err
	}

	result, err := s.engine.RollRouseCheck()
	if err != nil {
		return nil, err
	}

	out := &RouseOutput{Result: result}
	if char == nil {
		return out, nil
	}

	out.Before, out.After, out.Character = char.Desperation, char.Desperation, char
	if result.DesperationGained == 0 {
		return out, nil
	}

	adjusted, err := s.characters.AdjustDesperation(ctx, &character.AdjustInput{
		UserID:        userID,
		CharacterName: char.Name,
		Action:        entities.StatAdd,
		Amount:        &result.DesperationGained,
	})
	if err != nil {
		return nil, herr.Wrap(err, "failed to apply rouse result")
	}

	out.Before, out.After, out.Character = adjusted.Before, adjusted.After, adjusted.Character
	s.logger.Info("rouse check failed",
		zap.String("user_id", userID),
		zap.String("character_id", char.ID),
		zap.Int("die", result.Die),
		zap.Int("desperation", out.After))

	return out, nil
}

func (s *service) Simple(_ context.Context, pool int) (*dice.SimpleResult, error) {
	return s.engine.SimpleRoll(pool)
}

// desperateCharacter loads the character whose desperation feeds the roll
func (s *service) desperateCharacter(ctx context.Context, userID, name string) (*entities.Character, error) {
	char, err := s.characters.Resolve(ctx, userID, name)
	if herr.IsNotFound(err) && strings.TrimSpace(name) == "" {
		return nil, herr.FailedPreconditionf("no active character set; use /character select before using desperate rolls")
	}
	if err != nil {
		return nil, err
	}

	if char.InDespair {
		redemption := char.Redemption
		if redemption == "" {
			redemption = "Not set"
		}
		return nil, herr.InvalidArgumentf("%s is in Despair! Drive is unusable until redeemed. Redemption: %s", char.Name, redemption).
			WithMeta("character_id", char.ID)
	}
	if char.Desperation == 0 {
		return nil, herr.InvalidArgumentf("%s has no Desperation to use", char.Name).
			WithMeta("character_id", char.ID)
	}

	return char, nil
}

func (s *service) logRoll(userID string, out *Output) {
	fields := []zap.Field{
		zap.String("user_id", userID),
		zap.Int("pool", out.Pool),
		zap.Int("desperation", out.Desperation()),
		zap.Int("difficulty", out.Difficulty),
		zap.Int("successes", out.Result.TotalSuccesses()),
		zap.Bool("messy_critical", out.Result.MessyCritical()),
	}
	if out.Character != nil {
		fields = append(fields, zap.String("character_id", out.Character.ID))
	}
	if out.Comment != "" {
		fields = append(fields, zap.String("comment", out.Comment))
	}
	s.logger.Info("dice rolled", fields...)
}
