package routers

import (
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/services"
	"github.com/KirkDiggler/herald-bot/internal/services/character"
)

// HunterRouter handles the commands that track a hunter between rolls:
// danger, desperation, damage, goals, despair and advancement
type HunterRouter struct {
	router  *core.Router
	service character.Service
}

// NewHunterRouter creates a hunter router and registers it with the pipeline
func NewHunterRouter(pipeline *core.Pipeline, provider *services.Provider) *HunterRouter {
	router := core.NewRouter("hunter", pipeline)

	hr := &HunterRouter{
		router:  router,
		service: provider.CharacterService,
	}

	hr.registerRoutes()
	router.Register()

	return hr
}

// Handler returns the built router, for tests and custom pipelines
func (r *HunterRouter) Handler() core.Handler {
	return r.router.Build()
}

func (r *HunterRouter) registerRoutes() {
	r.router.CommandFunc("danger", r.handleDanger)
	r.router.CommandFunc("desperation", r.handleDesperation)
	r.router.CommandFunc("overreach", r.handleOverreach)

	r.router.CommandFunc("damage", r.handleDamage)
	r.router.CommandFunc("heal", r.handleHeal)

	r.router.CommandFunc("creed", r.handleCreed)
	r.router.CommandFunc("ambition", r.handleAmbition)
	r.router.CommandFunc("desire", r.handleDesire)
	r.router.CommandFunc("drive", r.handleDrive)

	r.router.SubcommandFunc("despair", "enter", r.handleDespairEnter)
	r.router.SubcommandFunc("despair", "exit", r.handleDespairExit)

	r.router.CommandFunc("xp", r.handleExperience)
	r.router.CommandFunc("attributes", r.handleAttributes)
}

func (r *HunterRouter) adjustInput(ctx *core.InteractionContext) (*character.AdjustInput, error) {
	action, err := parseStatAction(ctx)
	if err != nil {
		return nil, err
	}

	return &character.AdjustInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Action:        action,
		Amount:        optionalInt(ctx, "amount"),
	}, nil
}

func (r *HunterRouter) handleDanger(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	input, err := r.adjustInput(ctx)
	if err != nil {
		return nil, err
	}

	out, err := r.service.AdjustDanger(ctx.Context, input)
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.DangerEmbed(out.Character.Name, input.Action, out.Before, out.After))), nil
}

func (r *HunterRouter) handleDesperation(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	input, err := r.adjustInput(ctx)
	if err != nil {
		return nil, err
	}

	out, err := r.service.AdjustDesperation(ctx.Context, input)
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.DesperationEmbed(out.Character.Name, input.Action, out.Before, out.After))), nil
}

// handleOverreach accepts an Overreach by hand, adding danger (one by default)
func (r *HunterRouter) handleOverreach(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	amount := 1
	if value, ok := ctx.GetOptionalIntParam("amount"); ok {
		amount = value
	}

	out, err := r.service.AdjustDanger(ctx.Context, &character.AdjustInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Action:        entities.StatAdd,
		Amount:        &amount,
	})
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.OverreachEmbed(out.Character.Name, out.Before, out.After))), nil
}

func (r *HunterRouter) trackInput(ctx *core.InteractionContext) *character.TrackInput {
	return &character.TrackInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Track:         entities.TrackName(ctx.GetStringParam("track")),
		Kind:          entities.DamageKind(ctx.GetStringParam("type")),
		Amount:        ctx.GetIntParam("amount"),
	}
}

// handleDamage defaults to superficial damage when no type is given
func (r *HunterRouter) handleDamage(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	input := r.trackInput(ctx)
	if input.Kind == "" {
		input.Kind = entities.DamageSuperficial
	}

	out, err := r.service.ApplyDamage(ctx.Context, input)
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.TrackEmbed(out.Character.Name, input.Track, false, out.Before, out.After))), nil
}

func (r *HunterRouter) handleHeal(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	input := r.trackInput(ctx)

	out, err := r.service.Heal(ctx.Context, input)
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.TrackEmbed(out.Character.Name, input.Track, true, out.Before, out.After))), nil
}

func (r *HunterRouter) handleCreed(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.SetCreed(ctx.Context, ctx.UserID, ctx.GetStringParam("character"),
		entities.Creed(ctx.GetStringParam("creed")))
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.GoalEmbed(char.Name, "Creed", builders.EmojiCreed, string(char.Creed)))), nil
}

func (r *HunterRouter) handleAmbition(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.SetAmbition(ctx.Context, ctx.UserID, ctx.GetStringParam("character"), ctx.GetStringParam("ambition"))
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.GoalEmbed(char.Name, "Ambition", builders.EmojiAmbition, char.Ambition))), nil
}

func (r *HunterRouter) handleDesire(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.SetDesire(ctx.Context, ctx.UserID, ctx.GetStringParam("character"), ctx.GetStringParam("desire"))
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.GoalEmbed(char.Name, "Desire", builders.EmojiDesire, char.Desire))), nil
}

func (r *HunterRouter) handleDrive(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.SetDrive(ctx.Context, &character.SetDriveInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Drive:         ctx.GetStringParam("drive"),
		Redemption:    ctx.GetStringParam("redemption"),
	})
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(builders.DriveEmbed(char))), nil
}

func (r *HunterRouter) handleDespairEnter(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.EnterDespair(ctx.Context, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(builders.DespairEmbed(char, true))), nil
}

func (r *HunterRouter) handleDespairExit(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.ExitDespair(ctx.Context, ctx.UserID, ctx.GetStringParam("character"))
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(builders.DespairEmbed(char, false))), nil
}

// handleExperience views, adds, spends or sets XP; view is the default
func (r *HunterRouter) handleExperience(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	raw := ctx.GetStringParam("action")
	action, ok := entities.ParseXPAction(raw)
	if !ok {
		return nil, herr.InvalidArgumentf("unknown action %q; use view, add, spend or set", raw)
	}

	reason := ctx.GetStringParam("reason")
	out, err := r.service.AdjustExperience(ctx.Context, &character.ExperienceInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Action:        action,
		Amount:        optionalInt(ctx, "amount"),
		Reason:        reason,
	})
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.ExperienceEmbed(out.Character.Name, action, reason, out.Before, out.After))), nil
}

func (r *HunterRouter) handleAttributes(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	raw := ctx.GetStringParam("attribute")
	attribute, ok := entities.ParseAttribute(raw)
	if !ok {
		return nil, herr.InvalidArgumentf("unknown attribute %q", raw).WithMeta("attribute", raw)
	}

	out, err := r.service.SetAttribute(ctx.Context, &character.SetAttributeInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Attribute:     attribute,
		Dots:          ctx.GetIntParam("dots"),
	})
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(
		builders.AttributeEmbed(out.Character, attribute, out.Character.Attribute(attribute)))), nil
}
