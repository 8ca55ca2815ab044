package entities

import (
	"strings"
	"unicode/utf8"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

const (
	MinAttribute     = 1
	MaxAttribute     = 5
	MinSkill         = 0
	MaxSkill         = 5
	MaxEdge          = 5
	MaxDesperation   = 10
	MaxDanger        = 5
	MinNameLength    = 2
	MaxNameLength    = 32
	MaxTextLength    = 200
	MinSpecialtyName = 2
	MaxSpecialtyName = 50

	// HealthBonus is added to stamina for the health track
	HealthBonus = 3
)

// forbiddenNamePrefixes would trigger Discord markdown or mentions
const forbiddenNamePrefixes = "`*_~|>@#"

// Creed is a hunter's calling
type Creed string

const (
	CreedEntrepreneurial Creed = "Entrepreneurial"
	CreedFaithful        Creed = "Faithful"
	CreedInquisitive     Creed = "Inquisitive"
	CreedMartial         Creed = "Martial"
	CreedUnderground     Creed = "Underground"
)

// Creeds lists every creed
var Creeds = []Creed{CreedEntrepreneurial, CreedFaithful, CreedInquisitive, CreedMartial, CreedUnderground}

// ParseCreed matches a creed case-insensitively
func ParseCreed(raw string) (Creed, bool) {
	for _, c := range Creeds {
		if strings.EqualFold(string(c), strings.TrimSpace(raw)) {
			return c, true
		}
	}
	return "", false
}

// ValidateName checks a character name
func ValidateName(name string) error {
	vb := herr.NewValidationBuilder()
	validateName(vb, name)
	return vb.Build()
}

func validateName(vb *herr.ValidationBuilder, name string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		vb.RequiredField("name")
		return
	}

	herr.ValidateLength("name", trimmed, MinNameLength, MaxNameLength, vb)
	if strings.ContainsAny(trimmed[:1], forbiddenNamePrefixes) {
		vb.Field("name", "cannot start with a formatting character")
	}
}

// ValidateAttributes checks that all nine attributes are present and in range
func ValidateAttributes(attrs map[Attribute]int) error {
	vb := herr.NewValidationBuilder()
	for _, a := range Attributes {
		value, ok := attrs[a]
		if !ok {
			vb.RequiredField(string(a))
			continue
		}
		herr.ValidateRange(string(a), value, MinAttribute, MaxAttribute, vb)
	}
	return vb.Build()
}

// ValidateSkillDots checks a skill rating
func ValidateSkillDots(dots int) error {
	vb := herr.NewValidationBuilder()
	herr.ValidateRange("dots", dots, MinSkill, MaxSkill, vb)
	return vb.Build()
}

// ValidateSpecialty checks a specialty name
func ValidateSpecialty(name string) error {
	vb := herr.NewValidationBuilder()
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		vb.RequiredField("specialty")
	} else {
		herr.ValidateLength("specialty", trimmed, MinSpecialtyName, MaxSpecialtyName, vb)
	}
	return vb.Build()
}

// ValidateText checks one of the free text fields
func ValidateText(field, value string) error {
	if utf8.RuneCountInString(value) > MaxTextLength {
		return herr.NewValidationBuilder().
			Fieldf(field, "must be %d characters or less", MaxTextLength).
			Build()
	}
	return nil
}
