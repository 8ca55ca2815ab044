package routers_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/herald-bot/internal/dice"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/routers"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/services/character"
	mockcharacter "github.com/KirkDiggler/herald-bot/internal/services/character/mock"
	"github.com/KirkDiggler/herald-bot/internal/services/roll"
	mockroll "github.com/KirkDiggler/herald-bot/internal/services/roll/mock"
	"github.com/KirkDiggler/herald-bot/internal/testutils"
)

type DiceRouterTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	rolls      *mockroll.MockService
	characters *mockcharacter.MockService
	pipeline   *core.Pipeline
	handler    core.Handler
	hunter     *entities.Character
}

func TestDiceRouterSuite(t *testing.T) {
	suite.Run(t, new(DiceRouterTestSuite))
}

func (s *DiceRouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rolls = mockroll.NewMockService(s.ctrl)
	s.characters = mockcharacter.NewMockService(s.ctrl)
	s.pipeline = newPipeline()
	s.handler = routers.NewDiceRouter(s.pipeline, newProvider(s.characters, s.rolls)).Handler()
	s.hunter = testutils.CreateTestCharacter("char-1", testUser, "Mara")
}

func (s *DiceRouterTestSuite) handle(ti *core.TestInteraction) (*core.HandlerResult, error) {
	ctx := ti.Build()
	s.Require().True(s.handler.CanHandle(ctx), "router should claim %s", ctx.Route())
	return s.handler.Handle(ctx)
}

func (s *DiceRouterTestSuite) TestRollPlainPool() {
	s.rolls.EXPECT().Roll(gomock.Any(), &roll.Input{
		UserID:     testUser,
		Pool:       5,
		Difficulty: 2,
		Comment:    "pick the lock",
	}).Return(&roll.Output{
		Result:     dice.NewResult([]int{6, 7, 2, 1, 3}, nil, nil),
		Pool:       5,
		Difficulty: 2,
		Comment:    "pick the lock",
	}, nil)

	result, err := s.handle(core.NewTestCommand("roll").
		WithOption("pool", 5).
		WithOption("difficulty", 2).
		WithOption("comment", "pick the lock"))
	s.Require().NoError(err)

	embed := result.Response.Embeds[0]
	s.Equal("Dice Roll", embed.Title)
	s.Contains(embed.Description, "-# Pool 5")
	s.Contains(embed.Description, "*pick the lock*")
	s.Contains(embed.Description, "Margin")
	s.Empty(result.Response.Components)
	s.False(result.Response.Ephemeral)
}

func (s *DiceRouterTestSuite) TestRollShowsDesperationInPool() {
	s.rolls.EXPECT().Roll(gomock.Any(), gomock.Any()).Return(&roll.Output{
		Result:    dice.NewResult([]int{6, 7}, nil, []int{4}),
		Pool:      2,
		Character: s.hunter,
	}, nil)

	result, err := s.handle(core.NewTestCommand("roll").WithOption("pool", 2).WithOption("desperate", true))
	s.Require().NoError(err)

	embed := result.Response.Embeds[0]
	s.Equal("Mara", embed.Title)
	s.Contains(embed.Description, "Pool 2 + 1 Desperation")
	s.Empty(result.Response.Components, "no desperation ones means no choice")
}

func (s *DiceRouterTestSuite) TestWinningOverreachOffersBothChoices() {
	s.rolls.EXPECT().Roll(gomock.Any(), gomock.Any()).Return(&roll.Output{
		Result:     dice.NewResult([]int{6, 8, 9}, nil, []int{1}),
		Pool:       3,
		Difficulty: 2,
		Character:  s.hunter,
	}, nil)

	result, err := s.handle(core.NewTestCommand("roll").WithOption("pool", 3).WithOption("desperate", true))
	s.Require().NoError(err)

	s.Equal([]string{
		"roll:overreach:test-user-123:1:Mara",
		"roll:despair:test-user-123:Mara",
	}, customIDs(result.Response.Components))
	s.Contains(result.Response.Embeds[0].Description, "DESPERATION TRIGGERED")
}

func (s *DiceRouterTestSuite) TestLosingOverreachOffersOnlyDespair() {
	s.rolls.EXPECT().Roll(gomock.Any(), gomock.Any()).Return(&roll.Output{
		Result:     dice.NewResult([]int{2, 3}, nil, []int{1}),
		Pool:       2,
		Difficulty: 2,
		Character:  s.hunter,
	}, nil)

	result, err := s.handle(core.NewTestCommand("roll").WithOption("pool", 2).WithOption("desperate", true))
	s.Require().NoError(err)

	s.Equal([]string{"roll:despair:test-user-123:Mara"}, customIDs(result.Response.Components))
}

func (s *DiceRouterTestSuite) TestNameWithSeparatorGetsNoButtons() {
	s.hunter.Name = "Mara: the Quiet"
	s.rolls.EXPECT().Roll(gomock.Any(), gomock.Any()).Return(&roll.Output{
		Result:    dice.NewResult([]int{6}, nil, []int{1}),
		Pool:      1,
		Character: s.hunter,
	}, nil)

	result, err := s.handle(core.NewTestCommand("roll").WithOption("pool", 1).WithOption("desperate", true))
	s.Require().NoError(err)
	s.Empty(result.Response.Components)
}

func (s *DiceRouterTestSuite) TestRollErrorIsReturned() {
	s.rolls.EXPECT().Roll(gomock.Any(), gomock.Any()).
		Return(nil, herr.InvalidArgument("pool must be between 1 and 20"))

	_, err := s.handle(core.NewTestCommand("roll").WithOption("pool", 40))
	s.Require().Error(err)
	s.True(herr.IsInvalidArgument(err))
}

func (s *DiceRouterTestSuite) TestErrorReachesUserThroughPipeline() {
	s.rolls.EXPECT().Roll(gomock.Any(), gomock.Any()).
		Return(nil, herr.FailedPreconditionf("no active character"))

	responder := core.NewMockResponder()
	err := s.pipeline.Dispatch(core.NewTestCommand("roll").WithOption("pool", 2).Build(), responder)
	s.Require().NoError(err)

	s.Require().Len(responder.Responses, 1)
	s.True(responder.Responses[0].Ephemeral)
}

func (s *DiceRouterTestSuite) TestCheckDescribesPool() {
	s.hunter.Attributes[entities.AttributeWits] = 3
	s.Require().NoError(s.hunter.SetSkill(entities.SkillAwareness, 2))

	s.rolls.EXPECT().RollCharacter(gomock.Any(), &roll.CharacterInput{
		UserID:     testUser,
		Attribute:  entities.AttributeWits,
		Skill:      "Awareness",
		Edge:       1,
		Difficulty: 1,
	}).Return(&roll.Output{
		Result:     dice.NewResult([]int{6, 6, 3, 2}, []int{5}, nil),
		Pool:       4,
		Difficulty: 1,
		Character:  s.hunter,
	}, nil)

	result, err := s.handle(core.NewTestCommand("check").
		WithOption("attribute", "Wits").
		WithOption("skill", "Awareness").
		WithOption("edge", 1).
		WithOption("difficulty", 1))
	s.Require().NoError(err)

	description := result.Response.Embeds[0].Description
	s.Contains(description, "Wits 3 + Awareness 2 + Edge 1 - Difficulty 1")
	s.NotContains(description, "Margin", "difficulty already shrank the pool")
}

func (s *DiceRouterTestSuite) TestRouseWithoutCharacter() {
	s.rolls.EXPECT().Rouse(gomock.Any(), testUser, "").Return(&roll.RouseOutput{
		Result: &dice.RouseResult{Die: 8, DesperationGained: 1},
	}, nil)

	result, err := s.handle(core.NewTestCommand("rouse"))
	s.Require().NoError(err)

	embed := result.Response.Embeds[0]
	s.Equal("Rouse Check", embed.Title)
	s.Contains(embed.Description, "FAILED")
	s.NotContains(embed.Description, "Desperation **")
}

func (s *DiceRouterTestSuite) TestRouseWithCharacter() {
	s.rolls.EXPECT().Rouse(gomock.Any(), testUser, "Mara").Return(&roll.RouseOutput{
		Result:    &dice.RouseResult{Die: 9, DesperationGained: 1},
		Before:    3,
		After:     4,
		Character: s.hunter,
	}, nil)

	result, err := s.handle(core.NewTestCommand("rouse").WithOption("character", "Mara"))
	s.Require().NoError(err)

	embed := result.Response.Embeds[0]
	s.Equal("Mara - Rouse Check", embed.Title)
	s.Contains(embed.Description, "**3 → 4**")
}

func (s *DiceRouterTestSuite) TestOverreachButtonAddsDanger() {
	s.hunter.Danger = 3
	rolled := &discordgo.MessageEmbed{Title: "Mara"}
	amount := 2

	s.characters.EXPECT().AdjustDanger(gomock.Any(), &character.AdjustInput{
		UserID:        testUser,
		CharacterName: "Mara",
		Action:        entities.StatAdd,
		Amount:        &amount,
	}).Return(&character.AdjustOutput{Before: 1, After: 3, Character: s.hunter}, nil)

	result, err := s.handle(core.NewTestComponent("roll:overreach:test-user-123:2:Mara").WithMessage(rolled))
	s.Require().NoError(err)

	response := result.Response
	s.True(response.Update)
	s.Require().Len(response.Embeds, 2)
	s.Equal(rolled, response.Embeds[0])
	s.Contains(response.Embeds[1].Title, "Overreaches")

	chosen := buttons(response.Components)
	s.Require().Len(chosen, 1)
	s.True(chosen[0].Disabled)
	s.Contains(chosen[0].Label, "Overreach chosen")
}

func (s *DiceRouterTestSuite) TestDespairButtonEntersDespair() {
	s.hunter.InDespair = true
	s.characters.EXPECT().EnterDespair(gomock.Any(), testUser, "Mara").Return(s.hunter, nil)

	result, err := s.handle(core.NewTestComponent("roll:despair:test-user-123:Mara"))
	s.Require().NoError(err)

	s.True(result.Response.Update)
	s.Require().Len(result.Response.Embeds, 1)
	s.Contains(result.Response.Embeds[0].Title, "Enters Despair")
}

func (s *DiceRouterTestSuite) TestButtonsBelongToTheRoller() {
	for _, id := range []string{
		"roll:overreach:test-user-123:1:Mara",
		"roll:despair:test-user-123:Mara",
	} {
		result, err := s.handle(core.NewTestComponent(id).WithUserID("someone-else"))
		s.Require().NoError(err)
		s.True(result.Response.Ephemeral, id)
		s.Contains(result.Response.Content, "Only the player who rolled", id)
	}
}

func (s *DiceRouterTestSuite) TestMalformedOverreachButton() {
	_, err := s.handle(core.NewTestComponent("roll:overreach:test-user-123:x:Mara"))
	s.Require().Error(err)
	s.True(herr.IsInvalidArgument(err))
}
