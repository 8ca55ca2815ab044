package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TestInteraction builds real discordgo interactions for handler tests, so
// option parsing runs exactly as it does in production
type TestInteraction struct {
	userID     string
	username   string
	guildID    string
	command    string
	subcommand string
	options    []*discordgo.ApplicationCommandInteractionDataOption
	customID   string
	message    *discordgo.Message
}

// NewTestCommand starts a slash command interaction
func NewTestCommand(name string) *TestInteraction {
	return &TestInteraction{
		userID:   "test-user-123",
		username: "tester",
		guildID:  "test-guild-123",
		command:  name,
	}
}

// NewTestComponent starts a button interaction
func NewTestComponent(customID string) *TestInteraction {
	return &TestInteraction{
		userID:   "test-user-123",
		username: "tester",
		guildID:  "test-guild-123",
		customID: customID,
	}
}

// WithUserID sets the user ID
func (t *TestInteraction) WithUserID(userID string) *TestInteraction {
	t.userID = userID
	return t
}

// WithSubcommand nests the options under a subcommand
func (t *TestInteraction) WithSubcommand(name string) *TestInteraction {
	t.subcommand = name
	return t
}

// WithMessage sets the message a component was clicked on
func (t *TestInteraction) WithMessage(embeds ...*discordgo.MessageEmbed) *TestInteraction {
	t.message = &discordgo.Message{ID: "test-message-123", Embeds: embeds}
	return t
}

// WithOption adds an option. Ints are sent as float64 like the gateway does.
func (t *TestInteraction) WithOption(name string, value any) *TestInteraction {
	opt := &discordgo.ApplicationCommandInteractionDataOption{Name: name, Value: value}
	switch v := value.(type) {
	case string:
		opt.Type = discordgo.ApplicationCommandOptionString
	case bool:
		opt.Type = discordgo.ApplicationCommandOptionBoolean
	case int:
		opt.Type = discordgo.ApplicationCommandOptionInteger
		opt.Value = float64(v)
	case float64:
		opt.Type = discordgo.ApplicationCommandOptionInteger
	}
	t.options = append(t.options, opt)
	return t
}

// Interaction returns the raw discordgo event
func (t *TestInteraction) Interaction() *discordgo.InteractionCreate {
	i := &discordgo.Interaction{
		GuildID: t.guildID,
		Member: &discordgo.Member{
			User: &discordgo.User{ID: t.userID, Username: t.username},
		},
	}

	if t.customID != "" {
		i.Type = discordgo.InteractionMessageComponent
		i.Data = discordgo.MessageComponentInteractionData{CustomID: t.customID}
		i.Message = t.message
		return &discordgo.InteractionCreate{Interaction: i}
	}

	options := t.options
	if t.subcommand != "" {
		options = []*discordgo.ApplicationCommandInteractionDataOption{{
			Name:    t.subcommand,
			Type:    discordgo.ApplicationCommandOptionSubCommand,
			Options: t.options,
		}}
	}

	i.Type = discordgo.InteractionApplicationCommand
	i.Data = discordgo.ApplicationCommandInteractionData{
		Name:    t.command,
		Options: options,
	}
	return &discordgo.InteractionCreate{Interaction: i}
}

// Build creates the InteractionContext
func (t *TestInteraction) Build() *InteractionContext {
	return NewInteractionContext(context.Background(), nil, t.Interaction())
}

// MockResponder is a test implementation of Responder
type MockResponder struct {
	Responses    []*Response
	Edits        []*Response
	RespondError error
	EditError    error
	Responded    bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Respond records the response
func (m *MockResponder) Respond(response *Response) error {
	if m.RespondError != nil {
		return m.RespondError
	}
	m.Responses = append(m.Responses, response)
	m.Responded = true
	return nil
}

// Edit records the edit
func (m *MockResponder) Edit(response *Response) error {
	if m.EditError != nil {
		return m.EditError
	}
	m.Edits = append(m.Edits, response)
	return nil
}

// HasResponded reports whether Respond succeeded
func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

// LastResponse returns the last response sent
func (m *MockResponder) LastResponse() *Response {
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
