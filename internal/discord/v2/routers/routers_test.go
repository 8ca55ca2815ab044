package routers_test

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/services"
	"github.com/KirkDiggler/herald-bot/internal/services/character"
	"github.com/KirkDiggler/herald-bot/internal/services/roll"
)

const testUser = "test-user-123"

func newProvider(characters character.Service, rolls roll.Service) *services.Provider {
	return &services.Provider{CharacterService: characters, RollService: rolls}
}

func newPipeline() *core.Pipeline {
	return core.NewPipeline(zap.NewNop())
}

// buttons flattens the action rows of a response
func buttons(components []discordgo.MessageComponent) []discordgo.Button {
	var result []discordgo.Button
	for _, component := range components {
		row, ok := component.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range row.Components {
			if button, ok := c.(discordgo.Button); ok {
				result = append(result, button)
			}
		}
	}
	return result
}

func customIDs(components []discordgo.MessageComponent) []string {
	var ids []string
	for _, b := range buttons(components) {
		ids = append(ids, b.CustomID)
	}
	return ids
}
