package core

import (
	"github.com/bwmarrin/discordgo"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// Responder provides an abstraction over Discord's interaction response API
type Responder interface {
	// Respond sends the initial response, or edits it if one was already sent
	Respond(response *Response) error

	// Edit updates a previous response
	Edit(response *Response) error

	// HasResponded reports whether an initial response went out
	HasResponded() bool
}

// DiscordResponder implements Responder using Discord's API
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	responded   bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends an immediate response. Update responses replace the message
// a component was attached to.
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		// If we've already responded, edit instead
		return r.Edit(response)
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if response.Update && r.interaction.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: buildResponseData(response),
	})
	if err != nil {
		return herr.WrapWithCode(err, herr.CodeUnavailable, "failed to respond to interaction")
	}

	r.responded = true
	return nil
}

// Edit updates a previous response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return herr.FailedPreconditionf("cannot edit before responding")
	}

	webhook := &discordgo.WebhookEdit{
		Content:         &response.Content,
		Embeds:          &response.Embeds,
		Components:      &response.Components,
		AllowedMentions: response.AllowedMentions,
	}

	if _, err := r.session.InteractionResponseEdit(r.interaction.Interaction, webhook); err != nil {
		return herr.WrapWithCode(err, herr.CodeUnavailable, "failed to edit interaction response")
	}
	return nil
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

// buildResponseData converts our Response to Discord's InteractionResponseData
func buildResponseData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
	}

	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return data
}
