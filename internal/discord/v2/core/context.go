package core

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type contextKey string

const responderKey contextKey = "responder"

// InteractionContext wraps a Discord interaction with useful helpers and context
type InteractionContext struct {
	// Core Discord objects
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Extracted common fields for convenience
	UserID    string
	Username  string
	GuildID   string
	ChannelID string

	// Context for cancellation and values
	Context context.Context

	// Parsed interaction data
	subcommand string
	params     map[string]any
	customID   *CustomID
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		params:      make(map[string]any),
	}

	// Extract common fields
	switch {
	case i.Member != nil && i.Member.User != nil:
		ic.UserID = i.Member.User.ID
		ic.Username = displayName(i.Member.Nick, i.Member.User)
	case i.User != nil:
		ic.UserID = i.User.ID
		ic.Username = displayName("", i.User)
	}

	ic.parseParams()

	return ic
}

func displayName(nick string, user *discordgo.User) string {
	if nick != "" {
		return nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// parseParams extracts parameters from different interaction types
func (ic *InteractionContext) parseParams() {
	switch ic.Interaction.Type {
	case discordgo.InteractionApplicationCommand:
		ic.parseOptions(ic.Interaction.ApplicationCommandData().Options)
	case discordgo.InteractionMessageComponent:
		if parsed, err := ParseCustomID(ic.Interaction.MessageComponentData().CustomID); err == nil {
			ic.customID = parsed
		}
	}
}

// parseOptions records option values by name. Subcommands are recognized by
// option type so a subcommand with no options of its own still routes.
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand:
			ic.subcommand = opt.Name
			ic.parseOptions(opt.Options)
		case discordgo.ApplicationCommandOptionSubCommandGroup:
			ic.parseOptions(opt.Options)
		default:
			ic.params[opt.Name] = opt.Value
		}
	}
}

// HasParam reports whether the user supplied the option
func (ic *InteractionContext) HasParam(name string) bool {
	_, ok := ic.params[name]
	return ok
}

// GetParam retrieves a parameter by name
func (ic *InteractionContext) GetParam(name string) any {
	return ic.params[name]
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name].(string); ok {
		return strings.TrimSpace(val)
	}
	return ""
}

// GetIntParam retrieves an int parameter or returns 0
func (ic *InteractionContext) GetIntParam(name string) int {
	v, _ := ic.GetOptionalIntParam(name)
	return v
}

// GetOptionalIntParam retrieves an int parameter and whether it was supplied.
// Discord delivers integers as float64.
func (ic *InteractionContext) GetOptionalIntParam(name string) (int, bool) {
	switch v := ic.params[name].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

// GetBoolParam retrieves a bool parameter or returns false
func (ic *InteractionContext) GetBoolParam(name string) bool {
	if val, ok := ic.params[name].(bool); ok {
		return val
	}
	return false
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// IsComponent checks if this is a message component interaction
func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.subcommand
}

// GetCustomID returns the parsed custom ID of a component interaction, or nil
func (ic *InteractionContext) GetCustomID() *CustomID {
	return ic.customID
}

// Route names the interaction for logs and metrics, e.g. "character/create"
// or "roll:overreach"
func (ic *InteractionContext) Route() string {
	switch {
	case ic.IsCommand():
		if ic.subcommand != "" {
			return ic.GetCommandName() + "/" + ic.subcommand
		}
		return ic.GetCommandName()
	case ic.customID != nil:
		return ic.customID.Domain + ":" + ic.customID.Action
	case ic.IsComponent():
		return "component"
	}
	return "unknown"
}

// Responder returns the responder the pipeline attached, or nil
func (ic *InteractionContext) Responder() Responder {
	r, _ := ic.Context.Value(responderKey).(Responder)
	return r
}

// WithValue adds a value to the context
func (ic *InteractionContext) WithValue(key, val any) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the context
func (ic *InteractionContext) Value(key any) any {
	return ic.Context.Value(key)
}
