package entities

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Attribute is one of the nine Hunter attributes
type Attribute string

const (
	AttributeStrength     Attribute = "strength"
	AttributeDexterity    Attribute = "dexterity"
	AttributeStamina      Attribute = "stamina"
	AttributeCharisma     Attribute = "charisma"
	AttributeManipulation Attribute = "manipulation"
	AttributeComposure    Attribute = "composure"
	AttributeIntelligence Attribute = "intelligence"
	AttributeWits         Attribute = "wits"
	AttributeResolve      Attribute = "resolve"
)

// Attributes lists every attribute in sheet order: physical, social, mental
var Attributes = []Attribute{
	AttributeStrength, AttributeDexterity, AttributeStamina,
	AttributeCharisma, AttributeManipulation, AttributeComposure,
	AttributeIntelligence, AttributeWits, AttributeResolve,
}

var titleCaser = cases.Title(language.English)

// DisplayName returns the attribute as shown on a sheet
func (a Attribute) DisplayName() string {
	return titleCaser.String(string(a))
}

// ParseAttribute matches an attribute name case-insensitively
func ParseAttribute(name string) (Attribute, bool) {
	normalized := Attribute(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Attributes {
		if a == normalized {
			return a, true
		}
	}
	return "", false
}
