package characters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/herald-bot/internal/entities"
)

// characterColumns is the column order shared by the SQL stores. The
// attribute columns follow entities.Attributes.
var characterColumns = []string{
	"id", "user_id", "name",
	"strength", "dexterity", "stamina",
	"charisma", "manipulation", "composure",
	"intelligence", "wits", "resolve",
	"health_max", "health_superficial", "health_aggravated",
	"willpower_max", "willpower_superficial", "willpower_aggravated",
	"desperation", "danger", "edge",
	"creed", "ambition", "desire", "drive", "redemption",
	"in_despair", "experience_total", "experience_spent",
	"created_at", "updated_at",
}

const (
	colID        = 0
	colUserID    = 1
	colCreatedAt = 29
)

type placeholder func(n int) string

func dollarPlaceholder(n int) string { return "$" + strconv.Itoa(n) }

func questionPlaceholder(int) string { return "?" }

func selectCharacterSQL(where string) string {
	return fmt.Sprintf("SELECT %s FROM characters WHERE %s", strings.Join(characterColumns, ", "), where)
}

func insertCharacterSQL(ph placeholder) string {
	marks := make([]string, len(characterColumns))
	for i := range marks {
		marks[i] = ph(i + 1)
	}
	return fmt.Sprintf("INSERT INTO characters (%s) VALUES (%s)",
		strings.Join(characterColumns, ", "), strings.Join(marks, ", "))
}

// updateCharacterSQL rewrites every column except the identity and
// created_at; its arguments come from updateArgs
func updateCharacterSQL(ph placeholder) string {
	sets := make([]string, 0, len(characterColumns))
	n := 0
	for i, col := range characterColumns {
		if !updatable(i) {
			continue
		}
		n++
		sets = append(sets, fmt.Sprintf("%s = %s", col, ph(n)))
	}
	return fmt.Sprintf("UPDATE characters SET %s WHERE id = %s", strings.Join(sets, ", "), ph(n+1))
}

func updatable(i int) bool {
	return i != colID && i != colUserID && i != colCreatedAt
}

func updateArgs(values []any) []any {
	args := make([]any, 0, len(values))
	for i, v := range values {
		if updatable(i) {
			args = append(args, v)
		}
	}
	return append(args, values[colID])
}

// characterValues returns the row for c; the timestamp and flag columns are
// produced by the store so each driver gets its native type
func characterValues(c *entities.Character, inDespair, createdAt, updatedAt any) []any {
	values := []any{c.ID, c.UserID, c.Name}
	for _, a := range entities.Attributes {
		values = append(values, c.Attribute(a))
	}
	return append(values,
		c.Health.Max, c.Health.Superficial, c.Health.Aggravated,
		c.Willpower.Max, c.Willpower.Superficial, c.Willpower.Aggravated,
		c.Desperation, c.Danger, c.Edge,
		string(c.Creed), c.Ambition, c.Desire, c.Drive, c.Redemption,
		inDespair, c.ExperienceTotal, c.ExperienceSpent,
		createdAt, updatedAt,
	)
}

// characterDest returns scan targets in column order. Attributes land in
// attrs and must be copied with applyAttributes.
func characterDest(c *entities.Character, attrs *[9]int, creed *string, inDespair, createdAt, updatedAt any) []any {
	dest := []any{&c.ID, &c.UserID, &c.Name}
	for i := range attrs {
		dest = append(dest, &attrs[i])
	}
	return append(dest,
		&c.Health.Max, &c.Health.Superficial, &c.Health.Aggravated,
		&c.Willpower.Max, &c.Willpower.Superficial, &c.Willpower.Aggravated,
		&c.Desperation, &c.Danger, &c.Edge,
		creed, &c.Ambition, &c.Desire, &c.Drive, &c.Redemption,
		inDespair, &c.ExperienceTotal, &c.ExperienceSpent,
		createdAt, updatedAt,
	)
}

func applyAttributes(c *entities.Character, attrs [9]int, creed string) {
	c.Attributes = make(map[entities.Attribute]int, len(entities.Attributes))
	for i, a := range entities.Attributes {
		c.Attributes[a] = attrs[i]
	}
	c.Creed = entities.Creed(creed)
	c.Skills = make(map[entities.Skill]int, 27)
	for _, s := range entities.AllSkills() {
		c.Skills[s] = 0
	}
	c.Specialties = make(map[entities.Skill][]string)
}

// sortedSpecialtySkills gives a stable write order for specialties
func sortedSpecialtySkills(c *entities.Character) []entities.Skill {
	skills := make([]entities.Skill, 0, len(c.Specialties))
	for _, s := range entities.AllSkills() {
		if len(c.Specialties[s]) > 0 {
			skills = append(skills, s)
		}
	}
	return skills
}
