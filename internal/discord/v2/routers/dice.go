package routers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/services"
	"github.com/KirkDiggler/herald-bot/internal/services/character"
	"github.com/KirkDiggler/herald-bot/internal/services/roll"
)

// DiceRouter handles /roll, /check and /rouse and the Overreach/Despair
// buttons on roll results
type DiceRouter struct {
	router     *core.Router
	rolls      roll.Service
	characters character.Service
	idBuilder  *core.CustomIDBuilder
}

// NewDiceRouter creates a dice router and registers it with the pipeline
func NewDiceRouter(pipeline *core.Pipeline, provider *services.Provider) *DiceRouter {
	router := core.NewRouter("roll", pipeline)

	dr := &DiceRouter{
		router:     router,
		rolls:      provider.RollService,
		characters: provider.CharacterService,
		idBuilder:  router.GetCustomIDBuilder(),
	}

	dr.registerRoutes()
	router.Register()

	return dr
}

// Handler returns the built router, for tests and custom pipelines
func (r *DiceRouter) Handler() core.Handler {
	return r.router.Build()
}

func (r *DiceRouter) registerRoutes() {
	r.router.CommandFunc("roll", r.handleRoll)
	r.router.CommandFunc("check", r.handleCheck)
	r.router.CommandFunc("rouse", r.handleRouse)

	r.router.ComponentFunc("overreach", r.handleOverreach)
	r.router.ComponentFunc("despair", r.handleDespair)
}

func (r *DiceRouter) handleRoll(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	out, err := r.rolls.Roll(ctx.Context, &roll.Input{
		UserID:     ctx.UserID,
		Pool:       ctx.GetIntParam("pool"),
		Desperate:  ctx.GetBoolParam("desperate"),
		Difficulty: ctx.GetIntParam("difficulty"),
		Comment:    ctx.GetStringParam("comment"),
	})
	if err != nil {
		return nil, err
	}

	pool := fmt.Sprintf("Pool %d", out.Pool)
	if out.Desperation() > 0 {
		pool += fmt.Sprintf(" + %d Desperation", out.Desperation())
	}

	return r.rollResult(ctx, out, builders.RollView{
		PoolDescription: pool,
		Comment:         out.Comment,
		Difficulty:      out.Difficulty,
	}), nil
}

// handleCheck rolls attribute + skill from the sheet. Difficulty removes dice
// from the pool here, so no margin is shown.
func (r *DiceRouter) handleCheck(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	input := &roll.CharacterInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Attribute:     entities.Attribute(strings.ToLower(ctx.GetStringParam("attribute"))),
		Skill:         entities.Skill(ctx.GetStringParam("skill")),
		Edge:          ctx.GetIntParam("edge"),
		Difficulty:    ctx.GetIntParam("difficulty"),
		Desperate:     ctx.GetBoolParam("desperate"),
	}

	out, err := r.rolls.RollCharacter(ctx.Context, input)
	if err != nil {
		return nil, err
	}

	return r.rollResult(ctx, out, builders.RollView{
		PoolDescription: checkDescription(out.Character, input),
	}), nil
}

func checkDescription(char *entities.Character, input *roll.CharacterInput) string {
	attribute, _ := entities.ParseAttribute(string(input.Attribute))
	parts := []string{fmt.Sprintf("%s %d", attribute.DisplayName(), char.Attribute(attribute))}

	if skill, ok := entities.ParseSkill(string(input.Skill)); ok {
		parts = append(parts, fmt.Sprintf("%s %d", skill, char.Skill(skill)))
	}
	if input.Edge > 0 {
		parts = append(parts, fmt.Sprintf("Edge %d", input.Edge))
	}
	if input.Desperate {
		parts = append(parts, "Desperation")
	}

	description := strings.Join(parts, " + ")
	if input.Difficulty > 0 {
		description += fmt.Sprintf(" - Difficulty %d", input.Difficulty)
	}
	return description
}

func (r *DiceRouter) rollResult(ctx *core.InteractionContext, out *roll.Output, view builders.RollView) *core.HandlerResult {
	view.Result = out.Result
	if out.Character != nil {
		view.Title = out.Character.Name
		view.Danger = out.Character.Danger
	}

	response := core.NewEmbedResponse(builders.RollEmbed(view))
	if components := r.choiceButtons(ctx.UserID, out, view.Difficulty); len(components) > 0 {
		response.WithComponents(components...)
	}

	return core.Respond(response)
}

// choiceButtons offers Overreach or Despair after a winning roll with
// desperation ones, and only Despair after a losing one. Names that cannot be
// carried in a custom ID get no buttons; the slash commands still work.
func (r *DiceRouter) choiceButtons(userID string, out *roll.Output, difficulty int) []discordgo.MessageComponent {
	if out.Character == nil || !out.Result.HasOverreach() {
		return nil
	}

	name := out.Character.Name
	ones := strconv.Itoa(out.Result.DesperationOnes())
	if _, err := core.NewCustomID(r.idBuilder.Domain(), "overreach").
		WithTarget(userID).WithArgs(ones, name).Encode(); err != nil {
		return nil
	}

	components := builders.NewComponentBuilder(r.idBuilder)
	if out.Result.IsWin(difficulty) {
		components.EmojiButton("Overreach (Danger +"+ones+")", "🎯", discordgo.PrimaryButton, "overreach", userID, ones, name)
	}
	components.EmojiButton("Despair", builders.EmojiDespair, discordgo.DangerButton, "despair", userID, name)

	return components.Build()
}

func (r *DiceRouter) handleRouse(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	out, err := r.rolls.Rouse(ctx.Context, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}

	name := ""
	if out.Character != nil {
		name = out.Character.Name
	}

	return core.Respond(core.NewEmbedResponse(builders.RouseEmbed(name, out.Result, out.Before, out.After))), nil
}

func (r *DiceRouter) handleOverreach(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if !ownsButton(ctx) {
		return core.Respond(core.NewEphemeralResponse(notYourButton)), nil
	}

	id := ctx.GetCustomID()
	ones, err := strconv.Atoi(id.Arg(0))
	if err != nil || ones < 1 {
		return nil, herr.InvalidArgumentf("malformed overreach button %q", id.Arg(0))
	}

	out, err := r.characters.AdjustDanger(ctx.Context, &character.AdjustInput{
		UserID:        ctx.UserID,
		CharacterName: id.Arg(1),
		Action:        entities.StatAdd,
		Amount:        &ones,
	})
	if err != nil {
		return nil, err
	}

	return core.Respond(resolveChoice(ctx, r.idBuilder,
		builders.OverreachEmbed(out.Character.Name, out.Before, out.After),
		"🎯 Overreach chosen")), nil
}

func (r *DiceRouter) handleDespair(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if !ownsButton(ctx) {
		return core.Respond(core.NewEphemeralResponse(notYourButton)), nil
	}

	char, err := r.characters.EnterDespair(ctx.Context, ctx.UserID, ctx.GetCustomID().Arg(0))
	if err != nil {
		return nil, err
	}

	return core.Respond(resolveChoice(ctx, r.idBuilder,
		builders.DespairEmbed(char, true),
		builders.EmojiDespair+" Despair chosen")), nil
}
