package v2

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/services/roll"
)

// CommandRegistrar is the part of *discordgo.Session that registers commands
type CommandRegistrar interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// RegisterCommands creates every slash command. An empty guildID registers
// globally, which can take up to an hour to propagate.
func RegisterCommands(registrar CommandRegistrar, appID, guildID string, logger *zap.Logger) error {
	for _, cmd := range Commands() {
		if _, err := registrar.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return herr.Wrapf(err, "failed to create command %s", cmd.Name).WithMeta("guild_id", guildID)
		}
		logger.Debug("registered command", zap.String("command", cmd.Name), zap.String("guild_id", guildID))
	}

	return nil
}

// Commands returns the slash command definitions
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "roll",
			Description: "Roll a Hunter dice pool",
			Options: []*discordgo.ApplicationCommandOption{
				intOption("pool", "Total dice pool to roll", true, roll.MinPool, roll.MaxPool),
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "desperate",
					Description: "Add a Desperation die (needs an active character)",
				},
				difficultyOption("Target number of successes needed"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "comment",
					Description: "What the roll is for",
					MaxLength:   200,
				},
			},
		},
		{
			Name:        "check",
			Description: "Roll attribute + skill from your character sheet",
			Options: []*discordgo.ApplicationCommandOption{
				attributeOption("Attribute to roll"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "skill",
					Description: "Skill to add, e.g. Firearms or Animal Ken",
				},
				intOption("edge", "Edge dice, which explode on 10s", false, 0, entities.MaxEdge),
				difficultyOption("Dice removed from the pool"),
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "desperate",
					Description: "Add a Desperation die",
				},
				characterOption(),
			},
		},
		{
			Name:        "rouse",
			Description: "Roll a rouse check; failing adds Desperation",
			Options:     []*discordgo.ApplicationCommandOption{characterOption()},
		},
		{
			Name:        "danger",
			Description: "View or change your character's Danger",
			Options: []*discordgo.ApplicationCommandOption{
				actionOption("What to do with Danger"),
				intOption("amount", "Amount to set, add or subtract", false, 0, entities.MaxDanger),
				characterOption(),
			},
		},
		{
			Name:        "desperation",
			Description: "View or change your character's Desperation",
			Options: []*discordgo.ApplicationCommandOption{
				actionOption("What to do with Desperation"),
				intOption("amount", "Amount to set, add or subtract", false, 0, entities.MaxDesperation),
				characterOption(),
			},
		},
		{
			Name:        "overreach",
			Description: "Accept an Overreach and add Danger",
			Options: []*discordgo.ApplicationCommandOption{
				intOption("amount", "Danger to add (default 1)", false, 1, entities.MaxDanger),
				characterOption(),
			},
		},
		{
			Name:        "damage",
			Description: "Apply damage to health or willpower",
			Options: []*discordgo.ApplicationCommandOption{
				trackOption(),
				intOption("amount", "Points of damage", true, 1, 20),
				kindOption("Damage type (default superficial)", false, false),
				characterOption(),
			},
		},
		{
			Name:        "heal",
			Description: "Heal health or willpower damage",
			Options: []*discordgo.ApplicationCommandOption{
				trackOption(),
				kindOption("What to heal", true, true),
				intOption("amount", "Points to heal (not needed for all)", false, 1, 20),
				characterOption(),
			},
		},
		{
			Name:        "creed",
			Description: "Set your hunter's Creed",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "creed",
					Description: "The creed your hunter follows",
					Required:    true,
					Choices:     creedChoices(),
				},
				characterOption(),
			},
		},
		{
			Name:        "ambition",
			Description: "Set your hunter's long-term Ambition",
			Options: []*discordgo.ApplicationCommandOption{
				textOption("ambition", "What your hunter strives for"),
				characterOption(),
			},
		},
		{
			Name:        "desire",
			Description: "Set your hunter's short-term Desire",
			Options: []*discordgo.ApplicationCommandOption{
				textOption("desire", "What your hunter wants right now"),
				characterOption(),
			},
		},
		{
			Name:        "drive",
			Description: "Set your hunter's Drive and Redemption",
			Options: []*discordgo.ApplicationCommandOption{
				textOption("drive", "Curiosity, Vengeance, Oath, Greed, Pride, Envy, Atonement or your own"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "redemption",
					Description: "How your hunter recovers from Despair (standard drives have one)",
					MaxLength:   entities.MaxTextLength,
				},
				characterOption(),
			},
		},
		{
			Name:        "despair",
			Description: "Enter or leave Despair",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("enter", "Your Drive has failed", characterOption()),
				subcommand("exit", "Your Redemption is complete", characterOption()),
			},
		},
		{
			Name:        "xp",
			Description: "View or change your hunter's experience points",
			Options: []*discordgo.ApplicationCommandOption{
				xpActionOption(),
				intOption("amount", "XP to add, spend or set as the total", false, 0, maxXPAmount),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Why the XP changed",
					MaxLength:   entities.MaxTextLength,
				},
				characterOption(),
			},
		},
		{
			Name:        "attributes",
			Description: "Set one of your hunter's attributes",
			Options: []*discordgo.ApplicationCommandOption{
				attributeOption("Attribute to change"),
				intOption("dots", "New rating", true, entities.MinAttribute, entities.MaxAttribute),
				characterOption(),
			},
		},
		characterCommand(),
	}
}

// maxXPAmount caps a single /xp change
const maxXPAmount = 1000

func characterCommand() *discordgo.ApplicationCommand {
	create := make([]*discordgo.ApplicationCommandOption, 0, len(entities.Attributes)+1)
	create = append(create, &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: "Character name",
		Required:    true,
		MinLength:   intPtr(entities.MinNameLength),
		MaxLength:   entities.MaxNameLength,
	})
	for _, attribute := range entities.Attributes {
		create = append(create, intOption(string(attribute), attribute.DisplayName()+" (default 1)", false, 1, entities.MaxAttribute))
	}

	nameOption := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "Character name",
			Required:    required,
		}
	}

	return &discordgo.ApplicationCommand{
		Name:        "character",
		Description: "Manage your hunters",
		Options: []*discordgo.ApplicationCommandOption{
			subcommand("create", "Create a new hunter", create...),
			subcommand("list", "List your hunters"),
			subcommand("sheet", "Show a character sheet", nameOption(false)),
			subcommand("select", "Choose your active hunter", nameOption(true)),
			subcommand("delete", "Delete a hunter", nameOption(true)),
			subcommand("skill", "Set a skill rating",
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "skill",
					Description: "Skill name",
					Required:    true,
				},
				intOption("dots", "Rating", true, 0, entities.MaxSkill),
				characterOption(),
			),
			subcommand("specialty", "Add a skill specialty",
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "skill",
					Description: "Skill name",
					Required:    true,
				},
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "specialty",
					Description: "Specialty name",
					Required:    true,
					MinLength:   intPtr(entities.MinSpecialtyName),
					MaxLength:   entities.MaxSpecialtyName,
				},
				characterOption(),
			),
		},
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func intOption(name, description string, required bool, minValue, maxValue int) *discordgo.ApplicationCommandOption {
	low := float64(minValue)
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
		MinValue:    &low,
		MaxValue:    float64(maxValue),
	}
}

func textOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
		MaxLength:   entities.MaxTextLength,
	}
}

func characterOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "character",
		Description: "Character name (defaults to your active hunter)",
	}
}

var difficultyNames = []string{"Automatic", "Simple", "Standard", "Hard", "Extreme", "Nearly Impossible", "Legendary"}

func difficultyOption(description string) *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(difficultyNames))
	for value, name := range difficultyNames {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("Difficulty %d (%s)", value, name),
			Value: value,
		})
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "difficulty",
		Description: description,
		Choices:     choices,
	}
}

func attributeOption(description string) *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.Attributes))
	for _, attribute := range entities.Attributes {
		choices = append(choices, stringChoice(attribute.DisplayName(), string(attribute)))
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "attribute",
		Description: description,
		Required:    true,
		Choices:     choices,
	}
}

func actionOption(description string) *discordgo.ApplicationCommandOption {
	actions := []entities.StatAction{entities.StatView, entities.StatSet, entities.StatAdd, entities.StatSubtract, entities.StatReset}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(actions))
	for _, action := range actions {
		choices = append(choices, stringChoice(titleWord(string(action)), string(action)))
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "action",
		Description: description,
		Choices:     choices,
	}
}

func xpActionOption() *discordgo.ApplicationCommandOption {
	actions := []entities.XPAction{entities.XPView, entities.XPAdd, entities.XPSpend, entities.XPSet}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(actions))
	for _, action := range actions {
		choices = append(choices, stringChoice(titleWord(string(action)), string(action)))
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "action",
		Description: "What to do with experience (default view)",
		Choices:     choices,
	}
}

func trackOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "track",
		Description: "Health or Willpower",
		Required:    true,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			stringChoice("Health", string(entities.TrackHealth)),
			stringChoice("Willpower", string(entities.TrackWillpower)),
		},
	}
}

func kindOption(description string, required, includeAll bool) *discordgo.ApplicationCommandOption {
	choices := []*discordgo.ApplicationCommandOptionChoice{
		stringChoice("Superficial", string(entities.DamageSuperficial)),
		stringChoice("Aggravated", string(entities.DamageAggravated)),
	}
	if includeAll {
		choices = append(choices, stringChoice("All", string(entities.DamageAll)))
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "type",
		Description: description,
		Required:    required,
		Choices:     choices,
	}
}

func creedChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.Creeds))
	for _, creed := range entities.Creeds {
		choices = append(choices, stringChoice(string(creed), string(creed)))
	}
	return choices
}

func stringChoice(name, value string) *discordgo.ApplicationCommandOptionChoice {
	return &discordgo.ApplicationCommandOptionChoice{Name: name, Value: value}
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func intPtr(v int) *int {
	return &v
}
