package routers_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/routers"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/services/character"
	mockcharacter "github.com/KirkDiggler/herald-bot/internal/services/character/mock"
	mockroll "github.com/KirkDiggler/herald-bot/internal/services/roll/mock"
	"github.com/KirkDiggler/herald-bot/internal/testutils"
)

type HunterRouterTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	characters *mockcharacter.MockService
	handler    core.Handler
	hunter     *entities.Character
}

func TestHunterRouterSuite(t *testing.T) {
	suite.Run(t, new(HunterRouterTestSuite))
}

func (s *HunterRouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.characters = mockcharacter.NewMockService(s.ctrl)
	provider := newProvider(s.characters, mockroll.NewMockService(s.ctrl))
	s.handler = routers.NewHunterRouter(newPipeline(), provider).Handler()
	s.hunter = testutils.CreateTestCharacter("char-1", testUser, "Mara")
}

func (s *HunterRouterTestSuite) handle(ti *core.TestInteraction) (*core.HandlerResult, error) {
	ctx := ti.Build()
	s.Require().True(s.handler.CanHandle(ctx), "router should claim %s", ctx.Route())
	return s.handler.Handle(ctx)
}

func (s *HunterRouterTestSuite) TestDangerDefaultsToView() {
	s.characters.EXPECT().AdjustDanger(gomock.Any(), &character.AdjustInput{
		UserID: testUser,
		Action: entities.StatView,
	}).Return(&character.AdjustOutput{Before: 2, After: 2, Character: s.hunter}, nil)

	result, err := s.handle(core.NewTestCommand("danger"))
	s.Require().NoError(err)
	s.Contains(result.Response.Embeds[0].Title, "Mara")
}

func (s *HunterRouterTestSuite) TestDangerAdd() {
	amount := 2
	s.characters.EXPECT().AdjustDanger(gomock.Any(), &character.AdjustInput{
		UserID:        testUser,
		CharacterName: "Mara",
		Action:        entities.StatAdd,
		Amount:        &amount,
	}).Return(&character.AdjustOutput{Before: 3, After: 5, Character: s.hunter}, nil)

	result, err := s.handle(core.NewTestCommand("danger").
		WithOption("action", "add").
		WithOption("amount", 2).
		WithOption("character", "Mara"))
	s.Require().NoError(err)
	s.Require().Len(result.Response.Embeds, 1)
}

func (s *HunterRouterTestSuite) TestUnknownAction() {
	_, err := s.handle(core.NewTestCommand("desperation").WithOption("action", "double"))
	s.True(herr.IsInvalidArgument(err))
}

func (s *HunterRouterTestSuite) TestDesperationMissingAmount() {
	s.characters.EXPECT().AdjustDesperation(gomock.Any(), &character.AdjustInput{
		UserID: testUser,
		Action: entities.StatSet,
	}).Return(nil, herr.InvalidArgumentf("please specify an amount for set"))

	_, err := s.handle(core.NewTestCommand("desperation").WithOption("action", "set"))
	s.True(herr.IsInvalidArgument(err))
}

func (s *HunterRouterTestSuite) TestOverreachCommandDefaultsToOne() {
	one := 1
	s.characters.EXPECT().AdjustDanger(gomock.Any(), &character.AdjustInput{
		UserID: testUser,
		Action: entities.StatAdd,
		Amount: &one,
	}).Return(&character.AdjustOutput{Before: 0, After: 1, Character: s.hunter}, nil)

	result, err := s.handle(core.NewTestCommand("overreach"))
	s.Require().NoError(err)
	s.Contains(result.Response.Embeds[0].Title, "Overreaches")
}

func (s *HunterRouterTestSuite) TestDamage() {
	before := s.hunter.Health
	after := before
	after.Damage(entities.DamageSuperficial, 2)

	s.characters.EXPECT().ApplyDamage(gomock.Any(), &character.TrackInput{
		UserID: testUser,
		Track:  entities.TrackHealth,
		Kind:   entities.DamageSuperficial,
		Amount: 2,
	}).Return(&character.TrackOutput{Before: before, After: after, Character: s.hunter}, nil)

	result, err := s.handle(core.NewTestCommand("damage").
		WithOption("track", "health").
		WithOption("amount", 2))
	s.Require().NoError(err)
	s.Require().Len(result.Response.Embeds, 1)
}

func (s *HunterRouterTestSuite) TestHealAll() {
	s.characters.EXPECT().Heal(gomock.Any(), &character.TrackInput{
		UserID: testUser,
		Track:  entities.TrackWillpower,
		Kind:   entities.DamageAll,
	}).Return(&character.TrackOutput{Before: s.hunter.Willpower, After: s.hunter.Willpower, Character: s.hunter}, nil)

	_, err := s.handle(core.NewTestCommand("heal").
		WithOption("track", "willpower").
		WithOption("type", "all"))
	s.Require().NoError(err)
}

func (s *HunterRouterTestSuite) TestGoals() {
	s.hunter.Creed = entities.CreedFaithful
	s.hunter.Ambition = "Find my brother"
	s.hunter.Desire = "Coffee"

	s.characters.EXPECT().SetCreed(gomock.Any(), testUser, "", entities.Creed("faithful")).Return(s.hunter, nil)
	s.characters.EXPECT().SetAmbition(gomock.Any(), testUser, "", "Find my brother").Return(s.hunter, nil)
	s.characters.EXPECT().SetDesire(gomock.Any(), testUser, "", "Coffee").Return(s.hunter, nil)

	result, err := s.handle(core.NewTestCommand("creed").WithOption("creed", "faithful"))
	s.Require().NoError(err)
	s.Equal("Faithful", result.Response.Embeds[0].Description)

	result, err = s.handle(core.NewTestCommand("ambition").WithOption("ambition", "Find my brother"))
	s.Require().NoError(err)
	s.Equal("Find my brother", result.Response.Embeds[0].Description)

	result, err = s.handle(core.NewTestCommand("desire").WithOption("desire", "Coffee"))
	s.Require().NoError(err)
	s.Equal("Coffee", result.Response.Embeds[0].Description)
}

func (s *HunterRouterTestSuite) TestDrive() {
	s.hunter.Drive = "Vengeance"
	s.hunter.Redemption = "Spare one who asks"
	s.characters.EXPECT().SetDrive(gomock.Any(), &character.SetDriveInput{
		UserID: testUser,
		Drive:  "Vengeance",
	}).Return(s.hunter, nil)

	result, err := s.handle(core.NewTestCommand("drive").WithOption("drive", "Vengeance"))
	s.Require().NoError(err)
	s.Len(result.Response.Embeds[0].Fields, 2)
}

func (s *HunterRouterTestSuite) TestDespairSubcommands() {
	s.characters.EXPECT().EnterDespair(gomock.Any(), testUser, "").Return(s.hunter, nil)
	s.characters.EXPECT().ExitDespair(gomock.Any(), testUser, "Mara").Return(s.hunter, nil)

	result, err := s.handle(core.NewTestCommand("despair").WithSubcommand("enter"))
	s.Require().NoError(err)
	s.Contains(result.Response.Embeds[0].Title, "Enters Despair")

	result, err = s.handle(core.NewTestCommand("despair").WithSubcommand("exit").WithOption("character", "Mara"))
	s.Require().NoError(err)
	s.Contains(result.Response.Embeds[0].Title, "Redeemed")
}

func (s *HunterRouterTestSuite) TestDespairAlreadyActive() {
	s.characters.EXPECT().EnterDespair(gomock.Any(), testUser, "").
		Return(nil, herr.FailedPreconditionf("Mara is already in despair"))

	_, err := s.handle(core.NewTestCommand("despair").WithSubcommand("enter"))
	s.True(herr.IsFailedPrecondition(err))
}

func (s *HunterRouterTestSuite) TestExperienceDefaultsToView() {
	xp := entities.Experience{Total: 12, Spent: 4}
	s.characters.EXPECT().AdjustExperience(gomock.Any(), &character.ExperienceInput{
		UserID: testUser,
		Action: entities.XPView,
	}).Return(&character.ExperienceOutput{Before: xp, After: xp, Character: s.hunter}, nil)

	result, err := s.handle(core.NewTestCommand("xp"))
	s.Require().NoError(err)
	s.Equal("⭐ Mara's Experience Points", result.Response.Embeds[0].Title)
}

func (s *HunterRouterTestSuite) TestExperienceSpend() {
	amount := 3
	s.characters.EXPECT().AdjustExperience(gomock.Any(), &character.ExperienceInput{
		UserID: testUser,
		Action: entities.XPSpend,
		Amount: &amount,
		Reason: "Firearms 3",
	}).Return(&character.ExperienceOutput{
		Before:    entities.Experience{Total: 10},
		After:     entities.Experience{Total: 10, Spent: 3},
		Character: s.hunter,
	}, nil)

	result, err := s.handle(core.NewTestCommand("xp").
		WithOption("action", "spend").
		WithOption("amount", 3).
		WithOption("reason", "Firearms 3"))
	s.Require().NoError(err)
	embed := result.Response.Embeds[0]
	s.Equal("Spent **3** XP", embed.Description)
	s.Equal("Firearms 3", embed.Fields[0].Value)
}

func (s *HunterRouterTestSuite) TestExperienceOverspendSurfacesError() {
	amount := 20
	s.characters.EXPECT().AdjustExperience(gomock.Any(), gomock.Any()).
		Return(nil, herr.FailedPreconditionf("not enough XP: %d available, %d to spend", 5, amount))

	_, err := s.handle(core.NewTestCommand("xp").WithOption("action", "spend").WithOption("amount", amount))
	s.True(herr.IsFailedPrecondition(err))
}

func (s *HunterRouterTestSuite) TestExperienceUnknownAction() {
	_, err := s.handle(core.NewTestCommand("xp").WithOption("action", "refund"))
	s.True(herr.IsInvalidArgument(err))
}

func (s *HunterRouterTestSuite) TestAttributes() {
	updated := s.hunter.Clone()
	s.Require().NoError(updated.SetAttribute(entities.AttributeResolve, 4))
	s.characters.EXPECT().SetAttribute(gomock.Any(), &character.SetAttributeInput{
		UserID:        testUser,
		CharacterName: "Mara",
		Attribute:     entities.AttributeResolve,
		Dots:          4,
	}).Return(&character.AttributeOutput{Before: 2, Character: updated}, nil)

	result, err := s.handle(core.NewTestCommand("attributes").
		WithOption("attribute", "Resolve").
		WithOption("dots", 4).
		WithOption("character", "Mara"))
	s.Require().NoError(err)
	embed := result.Response.Embeds[0]
	s.Equal("✅ Attribute Updated", embed.Title)
	s.Equal("🧠 Resolve", embed.Fields[0].Name)
}

func (s *HunterRouterTestSuite) TestAttributesUnknown() {
	_, err := s.handle(core.NewTestCommand("attributes").WithOption("attribute", "luck").WithOption("dots", 3))
	s.True(herr.IsInvalidArgument(err))
}
