package builders

import (
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
)

const maxButtonsPerRow = 5

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows            []discordgo.MessageComponent
	currentRow      []discordgo.MessageComponent
	customIDBuilder *core.CustomIDBuilder
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(customIDBuilder *core.CustomIDBuilder) *ComponentBuilder {
	if customIDBuilder == nil {
		panic("custom ID builder is required")
	}

	return &ComponentBuilder{
		rows:            make([]discordgo.MessageComponent, 0),
		currentRow:      make([]discordgo.MessageComponent, 0, maxButtonsPerRow),
		customIDBuilder: customIDBuilder,
	}
}

// Button adds a button to the current row. The target and args end up in the
// custom ID.
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target, args...),
	})
	return b
}

// EmojiButton adds a button with emoji
func (b *ComponentBuilder) EmojiButton(label, emoji string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target, args...),
		Emoji:    &discordgo.ComponentEmoji{Name: emoji},
	})
	return b
}

// DisabledButton adds a disabled button, used to show a choice already made.
// Custom IDs must be unique within a message, so the position is the target.
func (b *ComponentBuilder) DisabledButton(label string, style discordgo.ButtonStyle) *ComponentBuilder {
	position := strconv.Itoa(len(b.rows)*maxButtonsPerRow + len(b.currentRow))
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: b.customIDBuilder.Button("disabled", position),
		Disabled: true,
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxButtonsPerRow)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

// addComponent adds a component to the current row
func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxButtonsPerRow {
		b.NewRow()
	}

	b.currentRow = append(b.currentRow, component)
}

// DangerButton adds a red button
func (b *ComponentBuilder) DangerButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.DangerButton, action, target, args...)
}

// SecondaryButton adds a grey button
func (b *ComponentBuilder) SecondaryButton(label, action, target string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SecondaryButton, action, target, args...)
}

// ConfirmationButtons adds confirm and cancel buttons for the same target
func (b *ComponentBuilder) ConfirmationButtons(confirmLabel, confirmAction, cancelAction, target string, args ...string) *ComponentBuilder {
	b.DangerButton(confirmLabel, confirmAction, target, args...)
	b.SecondaryButton("Cancel", cancelAction, target, args...)
	return b
}
