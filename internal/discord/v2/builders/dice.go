package builders

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/herald-bot/internal/dice"
)

// DieKind selects the emoji set for a die. Edge dice use the regular set.
type DieKind int

const (
	DieRegular DieKind = iota
	DieDesperation
)

// Custom guild emoji for each die outcome
const (
	EmojiRegularBotch    = "<:Dice_reg_over:1413720433462612121>"
	EmojiRegularFailure  = "<:Dice_reg_fail:1413720432527413279>"
	EmojiRegularSuccess  = "<:Dice_reg_succ:1413720435371282463>"
	EmojiRegularCritical = "<:Dice_reg_crit:1413720431130705950>"

	EmojiDesperationBotch    = "<:Dice_des_over:1413720427183865887>"
	EmojiDesperationFailure  = "<:Dice_des_fail:1413720425678241862>"
	EmojiDesperationSuccess  = "<:Dice_des_succ:1413720429763498104>"
	EmojiDesperationCritical = "<:Dice_des_crit:1413720424688390285>"

	emojiUnknown = "❓"
)

// Result colors
const (
	ColorTotalFailure  = 0x000000
	ColorMessyCritical = 0xEA3323
	ColorCritical      = 0x00FF00
	ColorExceptional   = 0x00FF00
	ColorComplete      = 0x228B22
	ColorRollSuccess   = 0x7777FF
	ColorMarginal      = 0xFF8C00
)

// DieEmoji maps a face to its emoji: botch on 1, failure on 2-5, success on
// 6-9 and critical on 10
func DieEmoji(face int, kind DieKind) string {
	regular := [...]string{EmojiRegularBotch, EmojiRegularFailure, EmojiRegularSuccess, EmojiRegularCritical}
	desperation := [...]string{EmojiDesperationBotch, EmojiDesperationFailure, EmojiDesperationSuccess, EmojiDesperationCritical}

	set := regular
	if kind == DieDesperation {
		set = desperation
	}

	switch {
	case face == 1:
		return set[0]
	case face >= 2 && face < dice.SuccessThreshold:
		return set[1]
	case face >= dice.SuccessThreshold && face < dice.CriticalFace:
		return set[2]
	case face == dice.CriticalFace:
		return set[3]
	}
	return emojiUnknown
}

// SortDice orders faces for display: successes first, then failures, each
// high to low. The input is not modified.
func SortDice(faces []int) []int {
	sorted := slices.Clone(faces)
	slices.SortStableFunc(sorted, func(a, b int) int {
		aSuccess, bSuccess := a >= dice.SuccessThreshold, b >= dice.SuccessThreshold
		if aSuccess != bSuccess {
			if aSuccess {
				return -1
			}
			return 1
		}
		return b - a
	})
	return sorted
}

// FormatDice renders faces as a row of emoji
func FormatDice(faces []int, kind DieKind) string {
	var sb strings.Builder
	for _, face := range faces {
		sb.WriteString(DieEmoji(face, kind))
	}
	return sb.String()
}

// DiceDisplay shows the regular and edge dice, then the desperation dice
// after a bar, each group sorted
func DiceDisplay(result *dice.Result) string {
	regular := FormatDice(SortDice(append(result.Dice(), result.EdgeDice()...)), DieRegular)
	desperation := FormatDice(SortDice(result.DesperationDice()), DieDesperation)

	switch {
	case regular != "" && desperation != "":
		return regular + " | " + desperation
	case regular != "":
		return regular
	}
	return desperation
}

// ResultColor picks the embed color for an outcome
func ResultColor(total, crits int, messy bool) int {
	switch {
	case total == 0:
		return ColorTotalFailure
	case messy:
		return ColorMessyCritical
	case crits > 0:
		return ColorCritical
	case total >= 5:
		return ColorExceptional
	case total >= 3:
		return ColorComplete
	case total >= 2:
		return ColorRollSuccess
	}
	return ColorMarginal
}

// SuccessText names the outcome tier
func SuccessText(total, crits int, messy bool) string {
	switch {
	case total <= 0:
		return "TOTAL FAILURE"
	case messy:
		return fmt.Sprintf("MESSY CRITICAL (%d)", total)
	case crits > 0:
		return fmt.Sprintf("CRITICAL SUCCESS (%d)", total)
	case total >= 6:
		return fmt.Sprintf("EXCEPTIONAL SUCCESS (%d)", total)
	case total >= 4:
		return fmt.Sprintf("COMPLETE SUCCESS (%d)", total)
	case total >= 2:
		return fmt.Sprintf("SUCCESS (%d)", total)
	}
	return fmt.Sprintf("MARGINAL SUCCESS (%d)", total)
}

// MarginText shows successes over or under the difficulty
func MarginText(margin int) string {
	switch {
	case margin > 0:
		return fmt.Sprintf("🟢 **Margin:** +%d", margin)
	case margin < 0:
		return fmt.Sprintf("🔴 **Margin:** %d", margin)
	}
	return "⚪ **Margin:** 0"
}

// OverreachText is the warning shown when desperation dice rolled ones.
// On a win the hunter chooses between Overreach and Despair; a loss is an
// automatic Despair.
func OverreachText(result *dice.Result, difficulty int) string {
	if !result.HasOverreach() {
		return ""
	}

	ones := result.DesperationOnes()
	if result.IsWin(difficulty) {
		return fmt.Sprintf("⚠️ **DESPERATION TRIGGERED** - Rolled %d one(s) on Desperation dice!\n\n"+
			"**Choose:**\n"+
			"🎯 Accept success + **Overreach** (Danger +%d)\n"+
			"💀 Reject success + Enter **Despair**", ones, ones)
	}

	return fmt.Sprintf("💀 **AUTOMATIC DESPAIR** - Failed roll + %d one(s) on Desperation dice\n\n"+
		"Drive becomes useless until redeemed.", ones)
}

// RollView is everything a roll embed shows
type RollView struct {
	// Title is the character name, empty for anonymous rolls
	Title           string
	PoolDescription string
	Comment         string
	Result          *dice.Result
	Difficulty      int
	Danger          int
}

// RollEmbed renders a finished roll
func RollEmbed(view RollView) *discordgo.MessageEmbed {
	result := view.Result
	total := result.TotalSuccesses()

	title := view.Title
	if title == "" {
		title = "Dice Roll"
	}

	var pool, comment, danger, margin, crit string
	if view.PoolDescription != "" {
		pool = "-# " + view.PoolDescription
	}
	if view.Comment != "" {
		comment = "*" + view.Comment + "*"
	}
	if view.Danger > 0 {
		danger = fmt.Sprintf("⚠️ **Danger %d** active", view.Danger)
	}
	if view.Difficulty > 0 {
		margin = MarginText(result.Margin(view.Difficulty))
	}
	switch {
	case result.MessyCritical():
		crit = "💀 **Messy Critical!** Desperation dice contributed to success.\n🔍 Pattern warning: Desperation leaves traces"
	case result.Crits() > 0:
		crit = "🔍 Pattern recognized: Exceptional execution"
	}

	return NewEmbed().
		Title(title).
		Color(ResultColor(total, result.Crits(), result.MessyCritical())).
		Lines(
			"# **"+SuccessText(total, result.Crits(), result.MessyCritical())+"**",
			pool,
			comment,
			danger,
			DiceDisplay(result),
			margin,
			crit,
			OverreachText(result, view.Difficulty),
		).
		Build()
}

// RouseEmbed renders a rouse check. name is empty when no character was
// involved.
func RouseEmbed(name string, result *dice.RouseResult, before, after int) *discordgo.MessageEmbed {
	title := "Rouse Check"
	if name != "" {
		title = name + " - Rouse Check"
	}

	embed := NewEmbed().Title(title)
	die := FormatDice([]int{result.Die}, DieRegular)

	if result.Success {
		return embed.Color(ColorSuccess).
			Lines("# **PASSED**", die, "Your resolve holds.").
			Build()
	}

	var change string
	if name != "" {
		change = fmt.Sprintf("😰 Desperation **%d → %d**\n%s", before, after, DesperationBar(after))
		if before == after {
			change += "\nDesperation is already at its maximum."
		}
	}

	return embed.Color(ColorError).
		Lines("# **FAILED**", die, change).
		Build()
}
