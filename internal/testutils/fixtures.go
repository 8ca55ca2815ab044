package testutils

import (
	"time"

	"github.com/KirkDiggler/herald-bot/internal/entities"
)

// FixtureTime is the creation time stamped on fixture characters
var FixtureTime = time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

// Attributes returns all nine attributes at value
func Attributes(value int) map[entities.Attribute]int {
	attrs := make(map[entities.Attribute]int, len(entities.Attributes))
	for _, a := range entities.Attributes {
		attrs[a] = value
	}
	return attrs
}

// CreateTestCharacter builds a valid hunter with every attribute at 2
func CreateTestCharacter(id, userID, name string) *entities.Character {
	char, err := entities.NewCharacter(id, userID, name, Attributes(2), FixtureTime)
	if err != nil {
		panic(err)
	}
	return char
}

// CreateSeasonedHunter is a character with skills, specialties, damage and
// drive filled in, for exercising every persisted column
func CreateSeasonedHunter(id, userID, name string) *entities.Character {
	char := CreateTestCharacter(id, userID, name)
	char.Attributes[entities.AttributeStamina] = 3
	char.Attributes[entities.AttributeResolve] = 4
	char.RecalculateTracks()

	_ = char.SetSkill(entities.SkillFirearms, 3)
	_ = char.SetSkill(entities.SkillOccult, 2)
	_ = char.AddSpecialty(entities.SkillFirearms, "Shotguns")
	_ = char.AddSpecialty(entities.SkillFirearms, "Quick Draw")

	char.Health.Damage(entities.DamageSuperficial, 2)
	char.Willpower.Damage(entities.DamageAggravated, 1)
	char.Desperation = 4
	char.Danger = 2
	char.Edge = 1
	char.Creed = entities.CreedMartial
	char.Ambition = "Burn the nest under the overpass"
	char.Desire = "A full night's sleep"
	char.Drive = "Vengeance"
	char.Redemption = "Spare one who asks"
	char.ExperienceTotal = 12
	char.ExperienceSpent = 5

	return char
}
