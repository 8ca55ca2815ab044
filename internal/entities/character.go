package entities

import (
	"slices"
	"strings"
	"time"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// Character is a hunter owned by a single Discord user
type Character struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`

	Attributes  map[Attribute]int  `json:"attributes"`
	Skills      map[Skill]int      `json:"skills"`
	Specialties map[Skill][]string `json:"specialties,omitempty"`

	Health    Track `json:"health"`
	Willpower Track `json:"willpower"`

	Desperation int `json:"desperation"`
	Danger      int `json:"danger"`
	Edge        int `json:"edge"`

	Creed      Creed  `json:"creed,omitempty"`
	Ambition   string `json:"ambition,omitempty"`
	Desire     string `json:"desire,omitempty"`
	Drive      string `json:"drive,omitempty"`
	Redemption string `json:"redemption,omitempty"`

	InDespair       bool `json:"in_despair"`
	ExperienceTotal int  `json:"experience_total"`
	ExperienceSpent int  `json:"experience_spent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCharacter validates the name and attributes and builds a character with
// derived tracks and every skill at zero
func NewCharacter(id, userID, name string, attributes map[Attribute]int, now time.Time) (*Character, error) {
	vb := herr.NewValidationBuilder()
	validateName(vb, name)
	for _, a := range Attributes {
		value, ok := attributes[a]
		if !ok {
			vb.RequiredField(string(a))
			continue
		}
		herr.ValidateRange(string(a), value, MinAttribute, MaxAttribute, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	char := &Character{
		ID:          id,
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Attributes:  make(map[Attribute]int, len(Attributes)),
		Skills:      make(map[Skill]int, 27),
		Specialties: make(map[Skill][]string),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, a := range Attributes {
		char.Attributes[a] = attributes[a]
	}
	for _, s := range AllSkills() {
		char.Skills[s] = 0
	}
	char.RecalculateTracks()

	return char, nil
}

// RecalculateTracks derives the track sizes from attributes. Existing damage
// is kept but trimmed to fit.
func (c *Character) RecalculateTracks() {
	c.Health.Max = c.Attribute(AttributeStamina) + HealthBonus
	c.Willpower.Max = c.Attribute(AttributeComposure) + c.Attribute(AttributeResolve)

	for _, t := range []*Track{&c.Health, &c.Willpower} {
		t.Aggravated = min(t.Aggravated, t.Max)
		t.Superficial = min(t.Superficial, t.Max-t.Aggravated)
	}
}

// Attribute returns the rating, defaulting to the minimum when unset
func (c *Character) Attribute(a Attribute) int {
	if value, ok := c.Attributes[a]; ok {
		return value
	}
	return MinAttribute
}

// Skill returns the rating for a skill, zero when unset
func (c *Character) Skill(s Skill) int {
	return c.Skills[s]
}

// SetSkill sets a skill rating
func (c *Character) SetSkill(s Skill, dots int) error {
	if err := ValidateSkillDots(dots); err != nil {
		return err
	}
	if c.Skills == nil {
		c.Skills = make(map[Skill]int)
	}
	c.Skills[s] = dots
	return nil
}

// AddSpecialty records a specialty under a skill. Names are unique per skill,
// ignoring case.
func (c *Character) AddSpecialty(s Skill, name string) error {
	if err := ValidateSpecialty(name); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	for _, existing := range c.Specialties[s] {
		if strings.EqualFold(existing, name) {
			return herr.AlreadyExistsf("%s already has the specialty %s", s, existing)
		}
	}

	if c.Specialties == nil {
		c.Specialties = make(map[Skill][]string)
	}
	c.Specialties[s] = append(c.Specialties[s], name)
	return nil
}

// Track returns the named damage track
func (c *Character) Track(name TrackName) *Track {
	if name == TrackWillpower {
		return &c.Willpower
	}
	return &c.Health
}

// AvailableExperience is experience still available to spend
func (c *Character) AvailableExperience() int {
	return c.ExperienceTotal - c.ExperienceSpent
}

// Clone returns a deep copy so stores never share maps with callers
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Attributes = cloneMap(c.Attributes)
	clone.Skills = cloneMap(c.Skills)
	if c.Specialties != nil {
		clone.Specialties = make(map[Skill][]string, len(c.Specialties))
		for k, v := range c.Specialties {
			clone.Specialties[k] = slices.Clone(v)
		}
	}
	return &clone
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
