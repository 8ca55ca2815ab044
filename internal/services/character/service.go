package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/clock"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/repositories/characters"
	"github.com/KirkDiggler/herald-bot/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service manages a user's hunters. Every method that takes a character name
// falls back to the user's active character when the name is empty.
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*entities.Character, error)
	Resolve(ctx context.Context, userID, name string) (*entities.Character, error)
	List(ctx context.Context, userID string) (*ListOutput, error)
	Delete(ctx context.Context, userID, name string) (*entities.Character, error)
	SetActive(ctx context.Context, userID, name string) (*entities.Character, error)

	SetSkill(ctx context.Context, input *SetSkillInput) (*entities.Character, error)
	SetAttribute(ctx context.Context, input *SetAttributeInput) (*AttributeOutput, error)
	AddSpecialty(ctx context.Context, input *AddSpecialtyInput) (*entities.Character, error)

	ApplyDamage(ctx context.Context, input *TrackInput) (*TrackOutput, error)
	Heal(ctx context.Context, input *TrackInput) (*TrackOutput, error)

	AdjustDesperation(ctx context.Context, input *AdjustInput) (*AdjustOutput, error)
	AdjustDanger(ctx context.Context, input *AdjustInput) (*AdjustOutput, error)
	AdjustExperience(ctx context.Context, input *ExperienceInput) (*ExperienceOutput, error)

	SetCreed(ctx context.Context, userID, name string, creed entities.Creed) (*entities.Character, error)
	SetAmbition(ctx context.Context, userID, name, ambition string) (*entities.Character, error)
	SetDesire(ctx context.Context, userID, name, desire string) (*entities.Character, error)
	SetDrive(ctx context.Context, input *SetDriveInput) (*entities.Character, error)

	EnterDespair(ctx context.Context, userID, name string) (*entities.Character, error)
	ExitDespair(ctx context.Context, userID, name string) (*entities.Character, error)
}

// CreateInput contains everything needed to create a hunter
type CreateInput struct {
	UserID     string
	Name       string
	Attributes map[entities.Attribute]int
}

// ListOutput is a user's roster
type ListOutput struct {
	Characters []*entities.Character
	// ActiveID is empty when no character is active
	ActiveID string
}

// SetSkillInput sets one skill rating
type SetSkillInput struct {
	UserID        string
	CharacterName string
	Skill         entities.Skill
	Dots          int
}

// SetAttributeInput sets one attribute rating
type SetAttributeInput struct {
	UserID        string
	CharacterName string
	Attribute     entities.Attribute
	Dots          int
}

// AttributeOutput carries the previous rating and the saved character
type AttributeOutput struct {
	Before    int
	Character *entities.Character
}

// AddSpecialtyInput adds a specialty under a skill
type AddSpecialtyInput struct {
	UserID        string
	CharacterName string
	Skill         entities.Skill
	Specialty     string
}

// TrackInput damages or heals a track. Amount is ignored when healing all.
type TrackInput struct {
	UserID        string
	CharacterName string
	Track         entities.TrackName
	Kind          entities.DamageKind
	Amount        int
}

// TrackOutput carries the track before the change and the saved character
type TrackOutput struct {
	Before    entities.Track
	After     entities.Track
	Character *entities.Character
}

// AdjustInput changes desperation or danger. Amount is required for set, add
// and subtract.
type AdjustInput struct {
	UserID        string
	CharacterName string
	Action        entities.StatAction
	Amount        *int
}

// AdjustOutput reports a counter change
type AdjustOutput struct {
	Before    int
	After     int
	Character *entities.Character
}

// ExperienceInput views or changes experience. Amount is required for every
// action but view. Reason is only logged.
type ExperienceInput struct {
	UserID        string
	CharacterName string
	Action        entities.XPAction
	Amount        *int
	Reason        string
}

// ExperienceOutput reports an experience change
type ExperienceOutput struct {
	Before    entities.Experience
	After     entities.Experience
	Character *entities.Character
}

// SetDriveInput sets the drive and its redemption. An empty redemption uses
// the drive's standard one.
type SetDriveInput struct {
	UserID        string
	CharacterName string
	Drive         string
	Redemption    string
}

type service struct {
	repository Repository
	uuid       uuid.Generator
	clock      clock.Clock
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository // Required
	UUIDGenerator uuid.Generator
	Clock         clock.Clock
	Logger        *zap.Logger
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		uuid:       cfg.UUIDGenerator,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	svc.logger = svc.logger.Named("character")

	return svc
}

// Create validates and stores a new hunter, making it active when the user
// has no active character yet
func (s *service) Create(ctx context.Context, input *CreateInput) (*entities.Character, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	char, err := entities.NewCharacter(s.uuid.New(), input.UserID, input.Name, input.Attributes, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, herr.Wrap(err, "failed to create character").WithMeta("operation", "Create")
	}

	_, err = s.repository.GetActive(ctx, input.UserID)
	switch {
	case herr.IsNotFound(err):
		if err := s.repository.SetActive(ctx, input.UserID, char.ID); err != nil {
			return nil, herr.Wrap(err, "failed to activate new character")
		}
	case err != nil:
		return nil, herr.Wrap(err, "failed to read active character")
	}

	s.logger.Info("character created",
		zap.String("user_id", char.UserID),
		zap.String("character_id", char.ID),
		zap.String("name", char.Name))

	return char, nil
}

// Resolve returns the named character, or the active one for an empty name
func (s *service) Resolve(ctx context.Context, userID, name string) (*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	if strings.TrimSpace(name) != "" {
		return s.repository.GetByName(ctx, userID, name)
	}

	id, err := s.repository.GetActive(ctx, userID)
	if herr.IsNotFound(err) {
		return nil, herr.NotFound("no character specified and no active character set; use /character select").
			WithMeta("user_id", userID)
	}
	if err != nil {
		return nil, err
	}

	return s.repository.Get(ctx, id)
}

// List returns the user's characters and which one is active
func (s *service) List(ctx context.Context, userID string) (*ListOutput, error) {
	chars, err := s.repository.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	activeID, err := s.repository.GetActive(ctx, userID)
	if err != nil && !herr.IsNotFound(err) {
		return nil, err
	}

	return &ListOutput{Characters: chars, ActiveID: activeID}, nil
}

// Delete removes a character
func (s *service) Delete(ctx context.Context, userID, name string) (*entities.Character, error) {
	char, err := s.Resolve(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Delete(ctx, char.ID); err != nil {
		return nil, herr.Wrap(err, "failed to delete character").WithMeta("character_id", char.ID)
	}

	s.logger.Info("character deleted", zap.String("user_id", userID), zap.String("character_id", char.ID))
	return char, nil
}

// SetActive switches the user's active character
func (s *service) SetActive(ctx context.Context, userID, name string) (*entities.Character, error) {
	if strings.TrimSpace(name) == "" {
		return nil, herr.InvalidArgument("character name is required")
	}

	char, err := s.repository.GetByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	if err := s.repository.SetActive(ctx, userID, char.ID); err != nil {
		return nil, err
	}
	return char, nil
}

// SetSkill sets a skill rating on the sheet
func (s *service) SetSkill(ctx context.Context, input *SetSkillInput) (*entities.Character, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}

	return s.mutate(ctx, input.UserID, input.CharacterName, func(c *entities.Character) error {
		return c.SetSkill(input.Skill, input.Dots)
	})
}

// SetAttribute sets an attribute rating; health and willpower follow it
func (s *service) SetAttribute(ctx context.Context, input *SetAttributeInput) (*AttributeOutput, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}

	var before int
	char, err := s.mutate(ctx, input.UserID, input.CharacterName, func(c *entities.Character) error {
		before = c.Attribute(input.Attribute)
		return c.SetAttribute(input.Attribute, input.Dots)
	})
	if err != nil {
		return nil, err
	}

	return &AttributeOutput{Before: before, Character: char}, nil
}

// AddSpecialty records a specialty; duplicates are already_exists
func (s *service) AddSpecialty(ctx context.Context, input *AddSpecialtyInput) (*entities.Character, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}

	return s.mutate(ctx, input.UserID, input.CharacterName, func(c *entities.Character) error {
		return c.AddSpecialty(input.Skill, input.Specialty)
	})
}

// ApplyDamage marks superficial or aggravated damage
func (s *service) ApplyDamage(ctx context.Context, input *TrackInput) (*TrackOutput, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}
	if input.Kind != entities.DamageSuperficial && input.Kind != entities.DamageAggravated {
		return nil, herr.InvalidArgumentf("damage type must be superficial or aggravated, got %q", input.Kind)
	}
	if input.Amount < 1 {
		return nil, herr.InvalidArgument("damage amount must be positive")
	}

	return s.changeTrack(ctx, input, func(t *entities.Track) { t.Damage(input.Kind, input.Amount) })
}

// Heal clears damage. Healing all needs no amount.
func (s *service) Heal(ctx context.Context, input *TrackInput) (*TrackOutput, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}
	if _, ok := entities.ParseDamageKind(string(input.Kind)); !ok {
		return nil, herr.InvalidArgumentf("heal type must be superficial, aggravated or all, got %q", input.Kind)
	}
	if input.Kind != entities.DamageAll && input.Amount < 1 {
		return nil, herr.InvalidArgument("please specify a positive amount to heal")
	}

	return s.changeTrack(ctx, input, func(t *entities.Track) { t.Heal(input.Kind, input.Amount) })
}

func (s *service) changeTrack(ctx context.Context, input *TrackInput, apply func(*entities.Track)) (*TrackOutput, error) {
	if _, ok := entities.ParseTrackName(string(input.Track)); !ok {
		return nil, herr.InvalidArgumentf("track must be health or willpower, got %q", input.Track)
	}

	var before entities.Track
	char, err := s.mutate(ctx, input.UserID, input.CharacterName, func(c *entities.Character) error {
		track := c.Track(input.Track)
		before = *track
		apply(track)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TrackOutput{Before: before, After: *char.Track(input.Track), Character: char}, nil
}

// AdjustDesperation views or changes desperation within 0-10
func (s *service) AdjustDesperation(ctx context.Context, input *AdjustInput) (*AdjustOutput, error) {
	if input != nil && input.Action == entities.StatReset {
		return nil, herr.InvalidArgument("desperation cannot be reset; use set 0")
	}
	return s.adjust(ctx, input, entities.MaxDesperation, func(c *entities.Character) *int { return &c.Desperation })
}

// AdjustDanger views or changes danger within 0-5
func (s *service) AdjustDanger(ctx context.Context, input *AdjustInput) (*AdjustOutput, error) {
	return s.adjust(ctx, input, entities.MaxDanger, func(c *entities.Character) *int { return &c.Danger })
}

func (s *service) adjust(ctx context.Context, input *AdjustInput, ceiling int, field func(*entities.Character) *int) (*AdjustOutput, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}

	action, ok := entities.ParseStatAction(string(input.Action))
	if !ok {
		return nil, herr.InvalidArgumentf("unknown action %q", input.Action)
	}
	if action.Mutates() && input.Amount == nil {
		return nil, herr.InvalidArgumentf("please specify an amount for %s", action).WithMeta("action", string(action))
	}

	if action == entities.StatView {
		char, err := s.Resolve(ctx, input.UserID, input.CharacterName)
		if err != nil {
			return nil, err
		}
		value := *field(char)
		return &AdjustOutput{Before: value, After: value, Character: char}, nil
	}

	amount := 0
	if input.Amount != nil {
		amount = *input.Amount
	}

	var before int
	char, err := s.mutate(ctx, input.UserID, input.CharacterName, func(c *entities.Character) error {
		target := field(c)
		before = *target
		after, err := entities.AdjustStat(before, action, amount, ceiling)
		if err != nil {
			return err
		}
		*target = after
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AdjustOutput{Before: before, After: *field(char), Character: char}, nil
}

// AdjustExperience views, adds, spends or sets experience
func (s *service) AdjustExperience(ctx context.Context, input *ExperienceInput) (*ExperienceOutput, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}

	action, ok := entities.ParseXPAction(string(input.Action))
	if !ok {
		return nil, herr.InvalidArgumentf("unknown action %q", input.Action)
	}

	if action == entities.XPView {
		char, err := s.Resolve(ctx, input.UserID, input.CharacterName)
		if err != nil {
			return nil, err
		}
		return &ExperienceOutput{Before: char.Experience(), After: char.Experience(), Character: char}, nil
	}

	if input.Amount == nil {
		return nil, herr.InvalidArgumentf("please specify an amount for %s", action).WithMeta("action", string(action))
	}

	var before entities.Experience
	char, err := s.mutate(ctx, input.UserID, input.CharacterName, func(c *entities.Character) error {
		before = c.Experience()
		return c.AdjustExperience(action, *input.Amount)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("experience changed",
		zap.String("user_id", input.UserID),
		zap.String("character_id", char.ID),
		zap.String("action", string(action)),
		zap.Int("amount", *input.Amount),
		zap.String("reason", input.Reason))

	return &ExperienceOutput{Before: before, After: char.Experience(), Character: char}, nil
}

// SetCreed sets the hunter's creed
func (s *service) SetCreed(ctx context.Context, userID, name string, creed entities.Creed) (*entities.Character, error) {
	parsed, ok := entities.ParseCreed(string(creed))
	if !ok {
		names := make([]string, 0, len(entities.Creeds))
		for _, c := range entities.Creeds {
			names = append(names, string(c))
		}
		return nil, herr.InvalidArgumentf("creed must be one of: %s", strings.Join(names, ", "))
	}

	return s.mutate(ctx, userID, name, func(c *entities.Character) error {
		c.Creed = parsed
		return nil
	})
}

// SetAmbition sets the long-term goal
func (s *service) SetAmbition(ctx context.Context, userID, name, ambition string) (*entities.Character, error) {
	return s.setText(ctx, userID, name, "ambition", ambition, func(c *entities.Character, v string) { c.Ambition = v })
}

// SetDesire sets the short-term goal
func (s *service) SetDesire(ctx context.Context, userID, name, desire string) (*entities.Character, error) {
	return s.setText(ctx, userID, name, "desire", desire, func(c *entities.Character, v string) { c.Desire = v })
}

// SetDrive sets the drive and its redemption
func (s *service) SetDrive(ctx context.Context, input *SetDriveInput) (*entities.Character, error) {
	if input == nil {
		return nil, herr.InvalidArgument("input is required")
	}

	drive := strings.TrimSpace(input.Drive)
	redemption := strings.TrimSpace(input.Redemption)
	if standard, ok := entities.ParseDrive(drive); ok {
		drive = string(standard)
		if redemption == "" {
			redemption = standard.Redemption()
		}
	}

	vb := herr.NewValidationBuilder()
	if drive == "" {
		vb.RequiredField("drive")
	}
	herr.ValidateLength("drive", drive, 0, entities.MaxTextLength, vb)
	herr.ValidateLength("redemption", redemption, 0, entities.MaxTextLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, input.UserID, input.CharacterName, func(c *entities.Character) error {
		c.Drive = drive
		c.Redemption = redemption
		return nil
	})
}

// EnterDespair marks the drive as broken
func (s *service) EnterDespair(ctx context.Context, userID, name string) (*entities.Character, error) {
	return s.mutate(ctx, userID, name, func(c *entities.Character) error {
		if c.InDespair {
			return herr.FailedPreconditionf("%s is already in Despair", c.Name)
		}
		c.InDespair = true
		return nil
	})
}

// ExitDespair records redemption
func (s *service) ExitDespair(ctx context.Context, userID, name string) (*entities.Character, error) {
	return s.mutate(ctx, userID, name, func(c *entities.Character) error {
		if !c.InDespair {
			return herr.FailedPreconditionf("%s is not in Despair", c.Name)
		}
		c.InDespair = false
		return nil
	})
}

func (s *service) setText(ctx context.Context, userID, name, field, value string, set func(*entities.Character, string)) (*entities.Character, error) {
	value = strings.TrimSpace(value)
	if err := entities.ValidateText(field, value); err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, name, func(c *entities.Character) error {
		set(c, value)
		return nil
	})
}

// mutate resolves a character, applies fn and saves the result stamped with
// the current time. Nothing is written when fn fails.
func (s *service) mutate(ctx context.Context, userID, name string, fn func(*entities.Character) error) (*entities.Character, error) {
	char, err := s.Resolve(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	if err := fn(char); err != nil {
		return nil, err
	}
	char.UpdatedAt = s.clock.Now().UTC()

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, herr.Wrap(err, "failed to save character").WithMeta("character_id", char.ID)
	}

	s.logger.Debug("character updated", zap.String("user_id", userID), zap.String("character_id", char.ID))
	return char, nil
}
