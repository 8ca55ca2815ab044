package routers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

const notYourButton = "❌ Only the player who rolled can choose."

// optionalInt returns a pointer to the option value, nil when omitted
func optionalInt(ctx *core.InteractionContext, name string) *int {
	value, ok := ctx.GetOptionalIntParam(name)
	if !ok {
		return nil
	}
	return &value
}

func parseStatAction(ctx *core.InteractionContext) (entities.StatAction, error) {
	raw := ctx.GetStringParam("action")
	action, ok := entities.ParseStatAction(raw)
	if !ok {
		return "", herr.InvalidArgumentf("unknown action %q; use view, set, add, subtract or reset", raw)
	}
	return action, nil
}

// ownsButton reports whether the clicking user is the one the button was made for
func ownsButton(ctx *core.InteractionContext) bool {
	id := ctx.GetCustomID()
	return id != nil && id.Target == ctx.UserID
}

// resolveChoice rewrites the message a button was on: its embeds stay, the
// outcome embed is appended and the buttons collapse into one disabled button
// so the choice cannot be made twice
func resolveChoice(ctx *core.InteractionContext, ids *core.CustomIDBuilder, outcome *discordgo.MessageEmbed, label string) *core.Response {
	var embeds []*discordgo.MessageEmbed
	if msg := ctx.Interaction.Message; msg != nil {
		embeds = append(embeds, msg.Embeds...)
	}
	embeds = append(embeds, outcome)

	components := builders.NewComponentBuilder(ids).
		DisabledButton(label, discordgo.SecondaryButton).
		Build()

	return core.NewResponse("").
		WithEmbeds(embeds...).
		WithComponents(components...).
		AsUpdate()
}
