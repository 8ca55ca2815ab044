package routers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/services"
	"github.com/KirkDiggler/herald-bot/internal/services/character"
)

// CharacterRouter handles the /character command group
type CharacterRouter struct {
	router    *core.Router
	service   character.Service
	idBuilder *core.CustomIDBuilder
}

// NewCharacterRouter creates a new character router and registers it with the pipeline
func NewCharacterRouter(pipeline *core.Pipeline, provider *services.Provider) *CharacterRouter {
	router := core.NewRouter("character", pipeline)

	cr := &CharacterRouter{
		router:    router,
		service:   provider.CharacterService,
		idBuilder: router.GetCustomIDBuilder(),
	}

	cr.registerRoutes()
	router.Register()

	return cr
}

// Handler returns the built router, for tests and custom pipelines
func (r *CharacterRouter) Handler() core.Handler {
	return r.router.Build()
}

func (r *CharacterRouter) registerRoutes() {
	r.router.SubcommandFunc("character", "create", r.handleCreate)
	r.router.SubcommandFunc("character", "list", r.handleList)
	r.router.SubcommandFunc("character", "sheet", r.handleSheet)
	r.router.SubcommandFunc("character", "select", r.handleSelect)
	r.router.SubcommandFunc("character", "delete", r.handleDelete)
	r.router.SubcommandFunc("character", "skill", r.handleSkill)
	r.router.SubcommandFunc("character", "specialty", r.handleSpecialty)

	r.router.ComponentFunc("delete_confirm", r.handleDeleteConfirm)
	r.router.ComponentFunc("delete_cancel", r.handleDeleteCancel)
}

func (r *CharacterRouter) handleCreate(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	attributes := make(map[entities.Attribute]int, len(entities.Attributes))
	for _, attribute := range entities.Attributes {
		attributes[attribute] = ctx.GetIntParam(string(attribute))
	}

	char, err := r.service.Create(ctx.Context, &character.CreateInput{
		UserID:     ctx.UserID,
		Name:       ctx.GetStringParam("name"),
		Attributes: attributes,
	})
	if err != nil {
		return nil, err
	}

	embed := builders.SuccessEmbed("Hunter Created", fmt.Sprintf("**%s** joins the hunt.", char.Name)).Build()
	return core.Respond(core.NewResponse("").WithEmbeds(embed, builders.CharacterSheetEmbed(char))), nil
}

func (r *CharacterRouter) handleList(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	out, err := r.service.List(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(builders.CharacterListEmbed(out.Characters, out.ActiveID)).AsEphemeral()), nil
}

func (r *CharacterRouter) handleSheet(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.Resolve(ctx.Context, ctx.UserID, ctx.GetStringParam("name"))
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(builders.CharacterSheetEmbed(char))), nil
}

func (r *CharacterRouter) handleSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.SetActive(ctx.Context, ctx.UserID, ctx.GetStringParam("name"))
	if err != nil {
		return nil, err
	}

	embed := builders.SuccessEmbed("Active Hunter", fmt.Sprintf("**%s** is now your active hunter.", char.Name)).Build()
	return core.Respond(core.NewEmbedResponse(embed).AsEphemeral()), nil
}

// handleDelete asks for confirmation before anything is removed
func (r *CharacterRouter) handleDelete(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := r.service.Resolve(ctx.Context, ctx.UserID, ctx.GetStringParam("name"))
	if err != nil {
		return nil, err
	}

	if _, err := core.NewCustomID(r.idBuilder.Domain(), "delete_confirm").
		WithTarget(ctx.UserID).WithArgs(char.Name).Encode(); err != nil {
		return nil, herr.InvalidArgumentf("%q cannot be deleted from Discord; rename it first", char.Name)
	}

	embed := builders.WarningEmbed("Delete Hunter?",
		fmt.Sprintf("This permanently deletes **%s** and everything on their sheet.", char.Name)).Build()
	components := builders.NewComponentBuilder(r.idBuilder).
		ConfirmationButtons("Delete", "delete_confirm", "delete_cancel", ctx.UserID, char.Name).
		Build()

	return core.Respond(core.NewEmbedResponse(embed).WithComponents(components...).AsEphemeral()), nil
}

func (r *CharacterRouter) handleDeleteConfirm(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if !ownsButton(ctx) {
		return core.Respond(core.NewEphemeralResponse("❌ This isn't your hunter.")), nil
	}

	char, err := r.service.Delete(ctx.Context, ctx.UserID, ctx.GetCustomID().Arg(0))
	if err != nil {
		return nil, err
	}

	embed := builders.SuccessEmbed("Hunter Deleted", fmt.Sprintf("**%s** has been removed.", char.Name)).Build()
	return core.Respond(core.NewEmbedResponse(embed).WithComponents(clearComponents()...).AsUpdate()), nil
}

func (r *CharacterRouter) handleDeleteCancel(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	embed := builders.InfoEmbed("Deletion Cancelled", "Nothing was deleted.").Build()
	return core.Respond(core.NewEmbedResponse(embed).WithComponents(clearComponents()...).AsUpdate()), nil
}

func (r *CharacterRouter) handleSkill(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	skill, err := parseSkill(ctx.GetStringParam("skill"))
	if err != nil {
		return nil, err
	}

	char, err := r.service.SetSkill(ctx.Context, &character.SetSkillInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Skill:         skill,
		Dots:          ctx.GetIntParam("dots"),
	})
	if err != nil {
		return nil, err
	}

	embed := builders.SuccessEmbed(fmt.Sprintf("%s: %s", char.Name, skill),
		fmt.Sprintf("%s %s", builders.Dots(char.Skill(skill)), pluralDots(char.Skill(skill)))).Build()
	return core.Respond(core.NewEmbedResponse(embed)), nil
}

func (r *CharacterRouter) handleSpecialty(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	skill, err := parseSkill(ctx.GetStringParam("skill"))
	if err != nil {
		return nil, err
	}

	specialty := ctx.GetStringParam("specialty")
	char, err := r.service.AddSpecialty(ctx.Context, &character.AddSpecialtyInput{
		UserID:        ctx.UserID,
		CharacterName: ctx.GetStringParam("character"),
		Skill:         skill,
		Specialty:     specialty,
	})
	if err != nil {
		return nil, err
	}

	embed := builders.SuccessEmbed(fmt.Sprintf("%s: %s Specialty", char.Name, skill),
		fmt.Sprintf("Added **%s**.", specialty)).Build()
	return core.Respond(core.NewEmbedResponse(embed)), nil
}

func parseSkill(raw string) (entities.Skill, error) {
	skill, ok := entities.ParseSkill(raw)
	if !ok {
		return "", herr.InvalidArgumentf("unknown skill %q", raw).WithMeta("skill", raw)
	}
	return skill, nil
}

func pluralDots(n int) string {
	if n == 1 {
		return "(1 dot)"
	}
	return fmt.Sprintf("(%d dots)", n)
}

// clearComponents removes every button from the updated message
func clearComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{}
}
