package builders_test

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/herald-bot/internal/dice"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/builders"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/entities"
	"github.com/KirkDiggler/herald-bot/internal/testutils"
)

func TestDieEmoji(t *testing.T) {
	tests := []struct {
		face int
		kind builders.DieKind
		want string
	}{
		{face: 1, kind: builders.DieRegular, want: builders.EmojiRegularBotch},
		{face: 2, kind: builders.DieRegular, want: builders.EmojiRegularFailure},
		{face: 5, kind: builders.DieRegular, want: builders.EmojiRegularFailure},
		{face: 6, kind: builders.DieRegular, want: builders.EmojiRegularSuccess},
		{face: 9, kind: builders.DieRegular, want: builders.EmojiRegularSuccess},
		{face: 10, kind: builders.DieRegular, want: builders.EmojiRegularCritical},
		{face: 1, kind: builders.DieDesperation, want: builders.EmojiDesperationBotch},
		{face: 4, kind: builders.DieDesperation, want: builders.EmojiDesperationFailure},
		{face: 7, kind: builders.DieDesperation, want: builders.EmojiDesperationSuccess},
		{face: 10, kind: builders.DieDesperation, want: builders.EmojiDesperationCritical},
		{face: 0, kind: builders.DieRegular, want: "❓"},
		{face: 11, kind: builders.DieDesperation, want: "❓"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, builders.DieEmoji(tt.face, tt.kind), "face %d kind %d", tt.face, tt.kind)
	}
}

func TestSortDice(t *testing.T) {
	input := []int{3, 10, 1, 6, 5, 8}

	assert.Equal(t, []int{10, 8, 6, 5, 3, 1}, builders.SortDice(input))
	assert.Equal(t, []int{3, 10, 1, 6, 5, 8}, input, "input must not be reordered")
	assert.Empty(t, builders.SortDice(nil))
}

func TestDiceDisplay(t *testing.T) {
	result := dice.NewResult([]int{2, 7}, []int{10}, []int{1})

	want := builders.EmojiRegularCritical + builders.EmojiRegularSuccess + builders.EmojiRegularFailure +
		" | " + builders.EmojiDesperationBotch
	assert.Equal(t, want, builders.DiceDisplay(result))

	assert.NotContains(t, builders.DiceDisplay(dice.NewResult([]int{6}, nil, nil)), "|")
}

func TestResultColorAndText(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		crits     int
		messy     bool
		wantColor int
		wantText  string
	}{
		{name: "total failure", total: 0, wantColor: builders.ColorTotalFailure, wantText: "TOTAL FAILURE"},
		{name: "messy", total: 4, crits: 1, messy: true, wantColor: builders.ColorMessyCritical, wantText: "MESSY CRITICAL (4)"},
		{name: "critical", total: 4, crits: 1, wantColor: builders.ColorCritical, wantText: "CRITICAL SUCCESS (4)"},
		{name: "exceptional", total: 6, wantColor: builders.ColorExceptional, wantText: "EXCEPTIONAL SUCCESS (6)"},
		{name: "five is bright but complete", total: 5, wantColor: builders.ColorExceptional, wantText: "COMPLETE SUCCESS (5)"},
		{name: "complete", total: 4, wantColor: builders.ColorComplete, wantText: "COMPLETE SUCCESS (4)"},
		{name: "three", total: 3, wantColor: builders.ColorComplete, wantText: "SUCCESS (3)"},
		{name: "success", total: 2, wantColor: builders.ColorRollSuccess, wantText: "SUCCESS (2)"},
		{name: "marginal", total: 1, wantColor: builders.ColorMarginal, wantText: "MARGINAL SUCCESS (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantColor, builders.ResultColor(tt.total, tt.crits, tt.messy))
			assert.Equal(t, tt.wantText, builders.SuccessText(tt.total, tt.crits, tt.messy))
		})
	}
}

func TestMarginText(t *testing.T) {
	assert.Equal(t, "🟢 **Margin:** +2", builders.MarginText(2))
	assert.Equal(t, "🔴 **Margin:** -1", builders.MarginText(-1))
	assert.Equal(t, "⚪ **Margin:** 0", builders.MarginText(0))
}

func TestOverreachText(t *testing.T) {
	assert.Empty(t, builders.OverreachText(dice.NewResult([]int{6}, nil, []int{5}), 0))

	win := dice.NewResult([]int{6, 7}, nil, []int{1})
	assert.Contains(t, builders.OverreachText(win, 2), "DESPERATION TRIGGERED")
	assert.Contains(t, builders.OverreachText(win, 2), "Danger +1")

	loss := dice.NewResult([]int{2, 3}, nil, []int{1})
	assert.Contains(t, builders.OverreachText(loss, 0), "AUTOMATIC DESPAIR")

	// winning without a difficulty needs at least one success
	assert.Contains(t, builders.OverreachText(dice.NewResult([]int{6}, nil, []int{1}), 0), "DESPERATION TRIGGERED")
}

func TestRollEmbed(t *testing.T) {
	result := dice.NewResult([]int{10, 5}, nil, []int{10})

	embed := builders.RollEmbed(builders.RollView{
		Title:           "Mara",
		PoolDescription: "Wits 3 + Awareness 2",
		Comment:         "spotting the ghoul",
		Result:          result,
		Difficulty:      2,
		Danger:          1,
	})

	assert.Equal(t, "Mara", embed.Title)
	assert.Equal(t, builders.ColorMessyCritical, embed.Color)
	assert.Contains(t, embed.Description, "MESSY CRITICAL (3)")
	assert.Contains(t, embed.Description, "-# Wits 3 + Awareness 2")
	assert.Contains(t, embed.Description, "*spotting the ghoul*")
	assert.Contains(t, embed.Description, "Danger 1")
	assert.Contains(t, embed.Description, "🟢 **Margin:** +1")
	assert.Contains(t, embed.Description, "Messy Critical!")
	assert.NotContains(t, embed.Description, "\n\n\n")

	plain := builders.RollEmbed(builders.RollView{Result: dice.NewResult([]int{3}, nil, nil)})
	assert.Equal(t, "Dice Roll", plain.Title)
	assert.NotContains(t, plain.Description, "Margin")
}

func TestRouseEmbed(t *testing.T) {
	passed := builders.RouseEmbed("Mara", &dice.RouseResult{Die: 3, Success: true}, 2, 2)
	assert.Contains(t, passed.Description, "PASSED")
	assert.Equal(t, builders.ColorSuccess, passed.Color)

	failed := builders.RouseEmbed("Mara", &dice.RouseResult{Die: 8, DesperationGained: 1}, 2, 3)
	assert.Contains(t, failed.Description, "2 → 3")

	capped := builders.RouseEmbed("Mara", &dice.RouseResult{Die: 8, DesperationGained: 1}, 10, 10)
	assert.Contains(t, capped.Description, "maximum")

	anonymous := builders.RouseEmbed("", &dice.RouseResult{Die: 9, DesperationGained: 1}, 0, 0)
	assert.Equal(t, "Rouse Check", anonymous.Title)
	assert.NotContains(t, anonymous.Description, "Desperation")
}

func TestBars(t *testing.T) {
	health := entities.Track{Max: 5, Superficial: 1, Aggravated: 1}
	assert.Equal(t,
		strings.Repeat(builders.EmojiHealthFull, 3)+builders.EmojiHealthSuperficial+builders.EmojiHealthAggravated+
			strings.Repeat(builders.EmojiHealthEmpty, 3),
		builders.HealthBar(health))

	willpower := entities.Track{Max: 4, Aggravated: 4}
	assert.Equal(t,
		strings.Repeat(builders.EmojiWillpowerAggravated, 4)+strings.Repeat(builders.EmojiWillpowerEmpty, 6),
		builders.TrackBar(entities.TrackWillpower, willpower))

	assert.Equal(t, "⚡⚡🔹🔹🔹", builders.EdgeBar(2))
	assert.Equal(t, strings.Repeat("😰", 10), builders.DesperationBar(12))
	assert.Equal(t, strings.Repeat("⚫", 5), builders.DangerBar(-1))
	assert.Equal(t, "●●●○○", builders.Dots(3))
}

func TestDangerEmbed(t *testing.T) {
	view := builders.DangerEmbed("Mara", entities.StatView, 2, 2)
	assert.Contains(t, view.Title, "Mara's Danger")
	assert.Contains(t, view.Description, "2/5")

	raised := builders.DangerEmbed("Mara", entities.StatAdd, 3, 4)
	assert.Contains(t, raised.Description, "**3 → 4** (+1)")
	require.Len(t, raised.Fields, 2)
	assert.Equal(t, "⚠️ High Danger!", raised.Fields[1].Name)

	cleared := builders.DangerEmbed("Mara", entities.StatReset, 3, 0)
	assert.Equal(t, "⚠️ Mara's Danger Updated", cleared.Title)
	assert.Contains(t, cleared.Description, "**3 → 0** (-3)")
	require.Len(t, cleared.Fields, 2)
	assert.Equal(t, "✅ Safety Restored", cleared.Fields[1].Name)
}

func TestExperienceEmbed(t *testing.T) {
	view := builders.ExperienceEmbed("Mara", entities.XPView, "", entities.Experience{Total: 12, Spent: 5}, entities.Experience{Total: 12, Spent: 5})
	assert.Equal(t, "⭐ Mara's Experience Points", view.Title)
	assert.Equal(t, 0xFFD700, view.Color)
	require.Len(t, view.Fields, 2)
	assert.Contains(t, view.Fields[0].Value, "**Available:** 7 XP")

	gained := builders.ExperienceEmbed("Mara", entities.XPAdd, "closed the case", entities.Experience{Total: 2}, entities.Experience{Total: 8})
	assert.Equal(t, "⭐ Mara's Experience Updated", gained.Title)
	assert.Equal(t, "Gained **6** XP", gained.Description)
	require.Len(t, gained.Fields, 3)
	assert.Equal(t, "📝 Reason", gained.Fields[0].Name)
	assert.Equal(t, "🎉 Significant Progress!", gained.Fields[2].Name)

	spent := builders.ExperienceEmbed("Mara", entities.XPSpend, "", entities.Experience{Total: 8}, entities.Experience{Total: 8, Spent: 3})
	assert.Equal(t, "Spent **3** XP", spent.Description)
	require.Len(t, spent.Fields, 2)
	assert.Contains(t, spent.Fields[0].Value, "**Available:** 5 XP")
	assert.Equal(t, "💸 XP Spent", spent.Fields[1].Name)

	set := builders.ExperienceEmbed("Mara", entities.XPSet, "", entities.Experience{Total: 8}, entities.Experience{Total: 20})
	assert.Equal(t, "Set total to **20** XP", set.Description)
	assert.Len(t, set.Fields, 1)
}

func TestAttributeEmbed(t *testing.T) {
	char := testutils.CreateSeasonedHunter("char-1", "user-1", "Mara")

	embed := builders.AttributeEmbed(char, entities.AttributeManipulation, 4)

	assert.Equal(t, "✅ Attribute Updated", embed.Title)
	assert.Equal(t, "**Mara** • Social Attribute", embed.Description)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "🗣️ Manipulation", embed.Fields[0].Name)
	assert.Equal(t, "●●●●○ (4/5)", embed.Fields[0].Value)
}

func TestCharacterSheetEmbed(t *testing.T) {
	char := testutils.CreateSeasonedHunter("char-1", "user-1", "Mara")

	embed := builders.CharacterSheetEmbed(char)

	assert.Equal(t, "Mara", embed.Title)
	fields := map[string]*discordgo.MessageEmbedField{}
	for _, f := range embed.Fields {
		fields[f.Name] = f
	}
	require.Contains(t, fields, "Health")
	require.Contains(t, fields, "💪 Physical")
	require.Contains(t, fields, "Physical Skills")
	assert.Contains(t, fields["💪 Physical"].Value, "Strength")
}

func TestCharacterListEmbed(t *testing.T) {
	mara := testutils.CreateTestCharacter("char-1", "user-1", "Mara")
	eli := testutils.CreateTestCharacter("char-2", "user-1", "Eli")

	embed := builders.CharacterListEmbed([]*entities.Character{mara, eli}, "char-2")
	lines := strings.Split(embed.Description, "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "active")
	assert.Contains(t, lines[1], "**Eli**")
	assert.Contains(t, lines[1], "(active)")

	empty := builders.CharacterListEmbed(nil, "")
	assert.Contains(t, empty.Description, "/character create")
}

func TestDespairEmbed(t *testing.T) {
	char := testutils.CreateTestCharacter("char-1", "user-1", "Mara")
	char.Drive = "Vengeance"

	entering := builders.DespairEmbed(char, true)
	assert.Contains(t, entering.Title, "Enters Despair")
	assert.Equal(t, "⚠️ No Redemption Set", entering.Fields[1].Name)

	char.Redemption = "Hurt your quarry"
	leaving := builders.DespairEmbed(char, false)
	assert.Contains(t, leaving.Title, "Redeemed")
	assert.Equal(t, "Hurt your quarry", leaving.Fields[0].Value)
}

func TestComponentBuilder(t *testing.T) {
	ids := core.NewCustomIDBuilder("roll")
	components := builders.NewComponentBuilder(ids).
		Button("Overreach", discordgo.PrimaryButton, "overreach", "user-1", "char-1", "2").
		DangerButton("Despair", "despair", "user-1", "char-1").
		DisabledButton("Chosen", discordgo.SecondaryButton).
		DisabledButton("Chosen", discordgo.SecondaryButton).
		Button("1", discordgo.SecondaryButton, "a", "t").
		Button("2", discordgo.SecondaryButton, "b", "t").
		Build()

	require.Len(t, components, 2)
	first := components[0].(discordgo.ActionsRow)
	require.Len(t, first.Components, 5)

	overreach := first.Components[0].(discordgo.Button)
	assert.Equal(t, "roll:overreach:user-1:char-1:2", overreach.CustomID)

	disabledA := first.Components[2].(discordgo.Button)
	disabledB := first.Components[3].(discordgo.Button)
	assert.True(t, disabledA.Disabled)
	assert.NotEqual(t, disabledA.CustomID, disabledB.CustomID)

	assert.Panics(t, func() { builders.NewComponentBuilder(nil) })
}
