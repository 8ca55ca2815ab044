package roll_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/herald-bot/internal/dice"
	mockdice "github.com/KirkDiggler/herald-bot/internal/dice/mock"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/repositories/characters"
	"github.com/KirkDiggler/herald-bot/internal/services/character"
	mockcharacter "github.com/KirkDiggler/herald-bot/internal/services/character/mock"
	"github.com/KirkDiggler/herald-bot/internal/services/roll"
	"github.com/KirkDiggler/herald-bot/internal/testutils"
	"github.com/KirkDiggler/herald-bot/internal/uuid"
)

type RollServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	roller     *mockdice.ManualMockRoller
	characters character.Service
	svc        roll.Service
}

func TestRollServiceSuite(t *testing.T) {
	suite.Run(t, new(RollServiceTestSuite))
}

func (s *RollServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = mockdice.NewManualMockRoller()
	s.characters = character.NewService(&character.ServiceConfig{
		Repository:    characters.NewInMemoryRepository(),
		UUIDGenerator: uuid.NewSequenceGenerator("char"),
	})
	s.svc = roll.NewService(&roll.ServiceConfig{
		Engine:           dice.NewEngine(s.roller),
		CharacterService: s.characters,
	})
}

func (s *RollServiceTestSuite) createHunter(desperation int) *entities.Character {
	char, err := s.characters.Create(s.ctx, &character.CreateInput{
		UserID:     "user-1",
		Name:       "Mara",
		Attributes: testutils.Attributes(2),
	})
	s.Require().NoError(err)

	if desperation > 0 {
		_, err = s.characters.AdjustDesperation(s.ctx, &character.AdjustInput{
			UserID: "user-1", Action: entities.StatSet, Amount: &desperation,
		})
		s.Require().NoError(err)
	}
	return char
}

func (s *RollServiceTestSuite) TestRollPlainPool() {
	s.roller.SetRolls([]int{10, 10, 6, 2})

	out, err := s.svc.Roll(s.ctx, &roll.Input{UserID: "user-1", Pool: 4, Difficulty: 3, Comment: " sneak "})
	s.Require().NoError(err)

	s.Equal(4, out.Pool)
	s.Equal(0, out.Desperation())
	s.Equal(4, out.Result.TotalSuccesses())
	s.Equal(1, out.Result.Margin(out.Difficulty))
	s.Equal("sneak", out.Comment)
	s.Nil(out.Character)
}

func (s *RollServiceTestSuite) TestRollValidatesRanges() {
	tests := []struct {
		name       string
		pool       int
		difficulty int
		field      string
	}{
		{name: "empty pool", pool: 0, field: "pool"},
		{name: "huge pool", pool: 21, field: "pool"},
		{name: "negative difficulty", pool: 3, difficulty: -1, field: "difficulty"},
		{name: "difficulty too high", pool: 3, difficulty: 7, field: "difficulty"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Roll(s.ctx, &roll.Input{UserID: "user-1", Pool: tt.pool, Difficulty: tt.difficulty})
			s.True(herr.IsValidation(err))
			s.Contains(herr.ValidationFields(err), tt.field)
		})
	}
	s.Empty(s.roller.Calls(), "nothing rolled for invalid input")
}

func (s *RollServiceTestSuite) TestDesperateRollNeedsActiveCharacter() {
	_, err := s.svc.Roll(s.ctx, &roll.Input{UserID: "user-1", Pool: 3, Desperate: true})
	s.True(herr.IsFailedPrecondition(err), "got %v", err)
}

func (s *RollServiceTestSuite) TestDesperateRollNeedsDesperation() {
	s.createHunter(0)

	_, err := s.svc.Roll(s.ctx, &roll.Input{UserID: "user-1", Pool: 3, Desperate: true})
	s.True(herr.IsInvalidArgument(err), "got %v", err)
}

func (s *RollServiceTestSuite) TestDesperateRollRefusedInDespair() {
	s.createHunter(3)
	_, err := s.characters.EnterDespair(s.ctx, "user-1", "")
	s.Require().NoError(err)

	_, err = s.svc.Roll(s.ctx, &roll.Input{UserID: "user-1", Pool: 3, Desperate: true})
	s.True(herr.IsInvalidArgument(err))
	s.Contains(herr.GetMessage(err), "Despair")
}

func (s *RollServiceTestSuite) TestDesperateRollAddsOneDie() {
	s.createHunter(3)
	s.roller.SetRolls([]int{10, 4, 1})

	out, err := s.svc.Roll(s.ctx, &roll.Input{UserID: "user-1", Pool: 2, Desperate: true})
	s.Require().NoError(err)

	s.Equal(1, out.Desperation())
	s.Equal([]int{1}, out.Result.DesperationDice())
	s.True(out.Result.HasOverreach())
	s.Require().NotNil(out.Character)
	s.Equal("Mara", out.Character.Name)
}

func (s *RollServiceTestSuite) TestRollCharacter() {
	s.createHunter(0)
	_, err := s.characters.SetSkill(s.ctx, &character.SetSkillInput{UserID: "user-1", Skill: entities.SkillFirearms, Dots: 3})
	s.Require().NoError(err)

	// dexterity 2 + firearms 3 - difficulty 1 = 4 dice, then one edge die
	s.roller.SetRolls([]int{6, 7, 8, 1, 3})

	out, err := s.svc.RollCharacter(s.ctx, &roll.CharacterInput{
		UserID:     "user-1",
		Attribute:  entities.AttributeDexterity,
		Skill:      "firearms",
		Edge:       1,
		Difficulty: 1,
	})
	s.Require().NoError(err)

	s.Equal(4, out.Pool)
	s.Equal([]int{3}, out.Result.EdgeDice())
	s.Equal(3, out.Result.TotalSuccesses())
	s.Equal([]int{4, 1}, s.roller.Calls())
}

func (s *RollServiceTestSuite) TestRollCharacterValidates() {
	_, err := s.svc.RollCharacter(s.ctx, &roll.CharacterInput{
		UserID:    "user-1",
		Attribute: "luck",
		Skill:     "juggling",
		Edge:      6,
	})
	s.True(herr.IsValidation(err))
	s.Equal([]string{"attribute", "edge", "skill"}, herr.ValidationFields(err))
}

func (s *RollServiceTestSuite) TestRouseGainsDesperation() {
	s.createHunter(9)
	s.roller.SetRolls([]int{7, 9})

	out, err := s.svc.Rouse(s.ctx, "user-1", "")
	s.Require().NoError(err)
	s.False(out.Result.Success)
	s.Equal(9, out.Before)
	s.Equal(10, out.After)

	out, err = s.svc.Rouse(s.ctx, "user-1", "Mara")
	s.Require().NoError(err)
	s.Equal(10, out.After, "desperation is capped")
}

func (s *RollServiceTestSuite) TestRousePassLeavesDesperation() {
	s.createHunter(2)
	s.roller.SetRolls([]int{3})

	out, err := s.svc.Rouse(s.ctx, "user-1", "")
	s.Require().NoError(err)
	s.True(out.Result.Success)
	s.Equal(2, out.After)
}

func (s *RollServiceTestSuite) TestRouseWithoutCharacter() {
	s.roller.SetRolls([]int{8})

	out, err := s.svc.Rouse(s.ctx, "user-1", "")
	s.Require().NoError(err)
	s.Nil(out.Character)
	s.Equal(1, out.Result.DesperationGained)

	_, err = s.svc.Rouse(s.ctx, "user-1", "Nobody")
	s.True(herr.IsNotFound(err))
}

func (s *RollServiceTestSuite) TestSimple() {
	s.roller.SetRolls([]int{10, 10, 3})

	result, err := s.svc.Simple(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal([]int{10, 10, 3}, result.Dice)
	s.Equal(2, result.Successes)
	s.Equal(1, result.Crits)
	s.Equal(3, result.TotalSuccesses)
}

func TestRouseUsesCharacterService(t *testing.T) {
	ctrl := gomock.NewController(t)
	chars := mockcharacter.NewMockService(ctrl)
	svc := roll.NewService(&roll.ServiceConfig{
		Engine:           dice.NewEngine(mockdice.NewManualMockRoller(10)),
		CharacterService: chars,
	})

	hunter := testutils.CreateTestCharacter("char-1", "user-1", "Mara")
	chars.EXPECT().Resolve(gomock.Any(), "user-1", "").Return(hunter, nil)
	chars.EXPECT().AdjustDesperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.AdjustInput) (*character.AdjustOutput, error) {
			assert.Equal(t, entities.StatAdd, input.Action)
			assert.Equal(t, 1, *input.Amount)
			assert.Equal(t, "Mara", input.CharacterName)
			return &character.AdjustOutput{Before: 0, After: 1, Character: hunter}, nil
		})

	out, err := svc.Rouse(context.Background(), "user-1", "")
	assert.NoError(t, err)
	assert.Equal(t, 1, out.After)
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	assert.Panics(t, func() { roll.NewService(nil) })
	assert.Panics(t, func() {
		roll.NewService(&roll.ServiceConfig{Engine: dice.NewEngine(mockdice.NewManualMockRoller())})
	})
}
