package builders

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/herald-bot/internal/entities"
)

// Track and stat emoji
const (
	EmojiHealthFull        = "❤️"
	EmojiHealthSuperficial = "🧡"
	EmojiHealthAggravated  = "💔"
	EmojiHealthEmpty       = "🖤"

	EmojiWillpowerFull        = "🟢"
	EmojiWillpowerSuperficial = "🟡"
	EmojiWillpowerAggravated  = "⭕"
	EmojiWillpowerEmpty       = "⚫"

	EmojiEdge             = "⚡"
	EmojiEdgeEmpty        = "🔹"
	EmojiDesperation      = "😰"
	EmojiDesperationEmpty = "⬜"
	EmojiDanger           = "🔴"
	EmojiDangerEmpty      = "⚫"
	EmojiDotFilled        = "●"
	EmojiDotEmpty         = "○"

	EmojiCreed      = "⚖️"
	EmojiAmbition   = "🎯"
	EmojiDesire     = "💫"
	EmojiDrive      = "🔥"
	EmojiRedemption = "🕊️"
	EmojiDespair    = "💀"
)

const (
	// MaxHealthDisplay is the largest health track: stamina 5 + 3
	MaxHealthDisplay = entities.MaxAttribute + entities.HealthBonus
	// MaxWillpowerDisplay is the largest willpower track: composure 5 + resolve 5
	MaxWillpowerDisplay = 2 * entities.MaxAttribute

	colorDangerHigh = 0xFF4500
	colorDangerMid  = 0xFFD700
	colorDespair    = 0x8B0000
	colorExperience = 0xFFD700
)

// attributeGroups heads the physical, social and mental thirds of entities.Attributes
var attributeGroups = [...]string{"💪 Physical", "🗣️ Social", "🧠 Mental"}

// trackBar shows undamaged, superficial and aggravated boxes, then the boxes a
// higher attribute could add
func trackBar(t entities.Track, maxPossible int, full, superficial, aggravated, empty string) string {
	maxBoxes := clamp(t.Max, 0, maxPossible)
	agg := clamp(t.Aggravated, 0, maxBoxes)
	sup := clamp(t.Superficial, 0, maxBoxes-agg)

	return strings.Repeat(full, maxBoxes-sup-agg) +
		strings.Repeat(superficial, sup) +
		strings.Repeat(aggravated, agg) +
		strings.Repeat(empty, maxPossible-maxBoxes)
}

// HealthBar renders the health track
func HealthBar(t entities.Track) string {
	return trackBar(t, MaxHealthDisplay, EmojiHealthFull, EmojiHealthSuperficial, EmojiHealthAggravated, EmojiHealthEmpty)
}

// WillpowerBar renders the willpower track
func WillpowerBar(t entities.Track) string {
	return trackBar(t, MaxWillpowerDisplay, EmojiWillpowerFull, EmojiWillpowerSuperficial, EmojiWillpowerAggravated, EmojiWillpowerEmpty)
}

// TrackBar renders whichever track is named
func TrackBar(name entities.TrackName, t entities.Track) string {
	if name == entities.TrackWillpower {
		return WillpowerBar(t)
	}
	return HealthBar(t)
}

func ratingBar(value, maxValue int, filled, empty string) string {
	value = clamp(value, 0, maxValue)
	return strings.Repeat(filled, value) + strings.Repeat(empty, maxValue-value)
}

// EdgeBar renders edge out of 5
func EdgeBar(edge int) string {
	return ratingBar(edge, entities.MaxEdge, EmojiEdge, EmojiEdgeEmpty)
}

// DesperationBar renders desperation out of 10
func DesperationBar(desperation int) string {
	return ratingBar(desperation, entities.MaxDesperation, EmojiDesperation, EmojiDesperationEmpty)
}

// DangerBar renders danger out of 5
func DangerBar(danger int) string {
	return ratingBar(danger, entities.MaxDanger, EmojiDanger, EmojiDangerEmpty)
}

// Dots renders skill or attribute dots out of 5
func Dots(value int) string {
	return ratingBar(value, entities.MaxSkill, EmojiDotFilled, EmojiDotEmpty)
}

// DangerColor goes from blue through gold to red as danger rises
func DangerColor(danger int) int {
	switch {
	case danger >= 4:
		return colorDangerHigh
	case danger >= 2:
		return colorDangerMid
	}
	return ColorInfo
}

func changeText(before, after int) string {
	switch change := after - before; {
	case change > 0:
		return fmt.Sprintf("+%d", change)
	case change < 0:
		return fmt.Sprintf("%d", change)
	}
	return "±0"
}

// DangerEmbed shows danger, or the change a mutating action made
func DangerEmbed(name string, action entities.StatAction, before, after int) *discordgo.MessageEmbed {
	if !action.Changes() {
		var effect string
		if after > 0 {
			effect = fmt.Sprintf("**Current Effect:** +%d to all roll difficulties", after)
		}
		return NewEmbed().
			Title(fmt.Sprintf("⚠️ %s's Danger", name)).
			Color(DangerColor(after)).
			Lines(
				fmt.Sprintf("**Current Rating:** %d/%d", after, entities.MaxDanger),
				DangerBar(after),
				"Danger represents supernatural peril in the scene.",
				effect,
			).
			Build()
	}

	embed := NewEmbed().
		Title(fmt.Sprintf("⚠️ %s's Danger Updated", name)).
		Color(DangerColor(after)).
		Description(fmt.Sprintf("**%d → %d** (%s)", before, after, changeText(before, after))).
		Field("New Rating", fmt.Sprintf("**%d/%d**\n%s", after, entities.MaxDanger, DangerBar(after)), false)

	switch {
	case after >= 4 && before < 4:
		embed.Field("⚠️ High Danger!", "Your character is now in extreme supernatural peril!", false)
	case after == 0 && before > 0:
		embed.Field("✅ Safety Restored", "Your character is no longer in supernatural danger.", false)
	}

	return embed.Build()
}

// DesperationEmbed shows desperation, or a change to it
func DesperationEmbed(name string, action entities.StatAction, before, after int) *discordgo.MessageEmbed {
	title := fmt.Sprintf("%s %s's Desperation", EmojiDesperation, name)
	description := fmt.Sprintf("**Current Rating:** %d/%d", after, entities.MaxDesperation)
	if action.Changes() {
		title += " Updated"
		description = fmt.Sprintf("**%d → %d** (%s)", before, after, changeText(before, after))
	}

	color := ColorInfo
	if after >= 7 {
		color = ColorError
	} else if after > 0 {
		color = ColorWarning
	}

	var note string
	if after == 0 {
		note = "No Desperation to draw on. Desperate rolls are unavailable."
	}

	return NewEmbed().
		Title(title).
		Color(color).
		Lines(description, DesperationBar(after), note).
		Build()
}

// TrackEmbed reports damage or healing on a track
func TrackEmbed(name string, track entities.TrackName, healed bool, before, after entities.Track) *discordgo.MessageEmbed {
	verb, color := "takes damage", ColorWarning
	if healed {
		verb, color = "heals", ColorSuccess
	}

	label := "Health"
	if track == entities.TrackWillpower {
		label = "Willpower"
	}

	embed := NewEmbed().
		Title(fmt.Sprintf("%s %s", name, verb)).
		Color(color).
		Field("Before", TrackBar(track, before), false).
		Field("After", TrackBar(track, after), false).
		Field(label, fmt.Sprintf("%d/%d undamaged • %d superficial • %d aggravated",
			after.Undamaged(), after.Max, after.Superficial, after.Aggravated), false)

	if after.Impaired() {
		embed.Field("⚠️ Impaired", fmt.Sprintf("%s track is full. Rolls suffer a penalty until healed.", label), false)
	}

	return embed.Build()
}

// DespairEmbed announces entering or leaving Despair
func DespairEmbed(c *entities.Character, entering bool) *discordgo.MessageEmbed {
	if entering {
		embed := NewEmbed().
			Title(fmt.Sprintf("%s %s Enters Despair", EmojiDespair, c.Name)).
			Description(fmt.Sprintf("**Drive has failed.** %s's motivations ring hollow.", c.Name)).
			Color(colorDespair)

		if c.Drive != "" {
			embed.Field(EmojiDrive+" Broken Drive", c.Drive, false)
		}
		if c.Redemption != "" {
			embed.Field(EmojiRedemption+" Path to Redemption", c.Redemption, false)
		} else {
			embed.Field("⚠️ No Redemption Set", "Use `/drive` with a redemption to set how this hunter can recover", false)
		}

		return embed.
			Field("Effects", "• Cannot use Desperation dice\n• Drive is unusable\n• Must complete Redemption to recover", false).
			Build()
	}

	embed := NewEmbed().
		Title(fmt.Sprintf("%s %s Redeemed", EmojiRedemption, c.Name)).
		Description(fmt.Sprintf("**Drive restored.** %s's purpose burns bright once more.", c.Name)).
		Color(ColorSuccess)

	if c.Redemption != "" {
		embed.Field(EmojiRedemption+" Redemption Completed", c.Redemption, false)
	}
	if c.Drive != "" {
		embed.Field(EmojiDrive+" Restored Drive", c.Drive, false)
	}

	return embed.
		Field("Effects", "• Can use Desperation dice again\n• Drive is active\n• Ready to hunt", false).
		Build()
}

// OverreachEmbed reports accepting an Overreach and the danger it costs
func OverreachEmbed(name string, before, after int) *discordgo.MessageEmbed {
	return NewEmbed().
		Title(fmt.Sprintf("🎯 %s Overreaches", name)).
		Color(DangerColor(after)).
		Description("The success stands, but the hunt grows more dangerous.").
		Field("Danger", fmt.Sprintf("**%d → %d** (%s)\n%s", before, after, changeText(before, after), DangerBar(after)), false).
		Build()
}

// GoalEmbed confirms a creed, ambition or desire
func GoalEmbed(name, label, emoji, value string) *discordgo.MessageEmbed {
	return NewEmbed().
		Title(fmt.Sprintf("%s %s's %s", emoji, name, label)).
		Color(ColorSuccess).
		Description(value).
		Build()
}

// DriveEmbed confirms a drive and its redemption
func DriveEmbed(c *entities.Character) *discordgo.MessageEmbed {
	embed := NewEmbed().
		Title(fmt.Sprintf("%s %s's Drive", EmojiDrive, c.Name)).
		Color(ColorSuccess).
		Field(EmojiDrive+" Drive", c.Drive, false)

	if c.Redemption != "" {
		embed.Field(EmojiRedemption+" Redemption", c.Redemption, false)
	}

	return embed.Footer("Achieve your Redemption to recover from Despair").Build()
}

// ExperienceEmbed shows a hunter's XP, or what an add, spend or set changed
func ExperienceEmbed(name string, action entities.XPAction, reason string, before, after entities.Experience) *discordgo.MessageEmbed {
	status := fmt.Sprintf("**Total Earned:** %d XP\n**Spent:** %d XP\n**Available:** %d XP",
		after.Total, after.Spent, after.Available())

	if action == entities.XPView {
		return NewEmbed().
			Title(fmt.Sprintf("⭐ %s's Experience Points", name)).
			Color(colorExperience).
			Field("📊 Experience Summary", status, false).
			Field("💡 Spending Guide", "Use `/xp spend` to spend experience on new dots.", false).
			Build()
	}

	var description string
	switch action {
	case entities.XPAdd:
		description = fmt.Sprintf("Gained **%d** XP", after.Total-before.Total)
	case entities.XPSpend:
		description = fmt.Sprintf("Spent **%d** XP", after.Spent-before.Spent)
	default:
		description = fmt.Sprintf("Set total to **%d** XP", after.Total)
	}

	embed := NewEmbed().
		Title(fmt.Sprintf("⭐ %s's Experience Updated", name)).
		Color(colorExperience).
		Description(description)

	if reason != "" {
		embed.Field("📝 Reason", reason, false)
	}
	embed.Field("📊 New Experience Status", status, false)

	switch {
	case action == entities.XPAdd && after.Total-before.Total >= 5:
		embed.Field("🎉 Significant Progress!", "That's a substantial experience gain.", false)
	case action == entities.XPSpend:
		embed.Field("💸 XP Spent", "Remember to update the dots you bought.", false)
	}

	return embed.Build()
}

// AttributeEmbed confirms a new attribute rating
func AttributeEmbed(c *entities.Character, attribute entities.Attribute, dots int) *discordgo.MessageEmbed {
	group := attributeGroups[0]
	for i, a := range entities.Attributes {
		if a == attribute {
			group = attributeGroups[i/3]
			break
		}
	}
	icon, category, _ := strings.Cut(group, " ")

	return SuccessEmbed("Attribute Updated",
		fmt.Sprintf("**%s** • %s Attribute", c.Name, category)).
		Field(fmt.Sprintf("%s %s", icon, attribute.DisplayName()),
			fmt.Sprintf("%s (%d/%d)", Dots(dots), dots, entities.MaxAttribute), false).
		Build()
}

// CharacterSheetEmbed renders the full sheet
func CharacterSheetEmbed(c *entities.Character) *discordgo.MessageEmbed {
	embed := NewEmbed().
		Title(c.Name).
		Color(ColorPrimary)

	var summary []string
	if c.Creed != "" {
		summary = append(summary, fmt.Sprintf("%s **Creed:** %s", EmojiCreed, c.Creed))
	}
	if c.Ambition != "" {
		summary = append(summary, fmt.Sprintf("%s **Ambition:** %s", EmojiAmbition, c.Ambition))
	}
	if c.Desire != "" {
		summary = append(summary, fmt.Sprintf("%s **Desire:** %s", EmojiDesire, c.Desire))
	}
	if c.Drive != "" {
		summary = append(summary, fmt.Sprintf("%s **Drive:** %s", EmojiDrive, c.Drive))
	}
	if c.InDespair {
		summary = append(summary, EmojiDespair+" **In Despair**")
	}
	embed.Lines(summary...)

	embed.Field("Health", HealthBar(c.Health), false)
	embed.Field("Willpower", WillpowerBar(c.Willpower), false)

	for i, group := range attributeGroups {
		lines := make([]string, 0, 3)
		for _, attr := range entities.Attributes[i*3 : i*3+3] {
			lines = append(lines, fmt.Sprintf("%s %s", Dots(c.Attribute(attr)), attr.DisplayName()))
		}
		embed.Field(group, strings.Join(lines, "\n"), true)
	}

	for _, category := range entities.SkillCategories {
		var lines []string
		for _, skill := range entities.SkillsByCategory[category] {
			dots := c.Skill(skill)
			specialties := c.Specialties[skill]
			if dots == 0 && len(specialties) == 0 {
				continue
			}
			line := fmt.Sprintf("%s %s", Dots(dots), skill)
			if len(specialties) > 0 {
				line += " (" + strings.Join(specialties, ", ") + ")"
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			lines = append(lines, "-")
		}
		embed.Field(string(category)+" Skills", strings.Join(lines, "\n"), true)
	}

	embed.Field("Edge", EdgeBar(c.Edge), true)
	embed.Field("Desperation", DesperationBar(c.Desperation), true)
	embed.Field("Danger", DangerBar(c.Danger), true)

	return embed.
		Footer(fmt.Sprintf("XP %d/%d available", c.AvailableExperience(), c.ExperienceTotal)).
		Timestamp(c.UpdatedAt).
		Build()
}

// CharacterListEmbed lists a user's hunters, marking the active one
func CharacterListEmbed(characters []*entities.Character, activeID string) *discordgo.MessageEmbed {
	if len(characters) == 0 {
		return InfoEmbed("Your Hunters", "You have no characters yet. Use `/character create` to make one.").Build()
	}

	lines := make([]string, 0, len(characters))
	for _, c := range characters {
		line := fmt.Sprintf("**%s** • Health %d/%d • Willpower %d/%d",
			c.Name, c.Health.Undamaged(), c.Health.Max, c.Willpower.Undamaged(), c.Willpower.Max)
		if c.ID == activeID {
			line = "▶️ " + line + " *(active)*"
		}
		lines = append(lines, line)
	}

	return NewEmbed().
		Title("Your Hunters").
		Color(ColorPrimary).
		Lines(lines...).
		Footer("Use /character select to change your active hunter").
		Build()
}

func clamp(value, low, high int) int {
	return max(low, min(value, high))
}
