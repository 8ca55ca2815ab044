package entities

import "strings"

// Skill is one of the 27 Hunter skills
type Skill string

// SkillCategory groups skills on the sheet
type SkillCategory string

const (
	SkillCategoryPhysical SkillCategory = "Physical"
	SkillCategorySocial   SkillCategory = "Social"
	SkillCategoryMental   SkillCategory = "Mental"
)

const (
	SkillAthletics Skill = "Athletics"
	SkillBrawl     Skill = "Brawl"
	SkillCraft     Skill = "Craft"
	SkillDriving   Skill = "Driving"
	SkillFirearms  Skill = "Firearms"
	SkillLarceny   Skill = "Larceny"
	SkillMelee     Skill = "Melee"
	SkillStealth   Skill = "Stealth"
	SkillSurvival  Skill = "Survival"

	SkillAnimalKen    Skill = "Animal Ken"
	SkillEtiquette    Skill = "Etiquette"
	SkillInsight      Skill = "Insight"
	SkillIntimidation Skill = "Intimidation"
	SkillLeadership   Skill = "Leadership"
	SkillPerformance  Skill = "Performance"
	SkillPersuasion   Skill = "Persuasion"
	SkillStreetwise   Skill = "Streetwise"
	SkillSubterfuge   Skill = "Subterfuge"

	SkillAcademics     Skill = "Academics"
	SkillAwareness     Skill = "Awareness"
	SkillFinance       Skill = "Finance"
	SkillInvestigation Skill = "Investigation"
	SkillMedicine      Skill = "Medicine"
	SkillOccult        Skill = "Occult"
	SkillPolitics      Skill = "Politics"
	SkillScience       Skill = "Science"
	SkillTechnology    Skill = "Technology"
)

// SkillCategories lists the categories in sheet order
var SkillCategories = []SkillCategory{SkillCategoryPhysical, SkillCategorySocial, SkillCategoryMental}

// SkillsByCategory maps each category to its skills in sheet order
var SkillsByCategory = map[SkillCategory][]Skill{
	SkillCategoryPhysical: {
		SkillAthletics, SkillBrawl, SkillCraft, SkillDriving, SkillFirearms,
		SkillLarceny, SkillMelee, SkillStealth, SkillSurvival,
	},
	SkillCategorySocial: {
		SkillAnimalKen, SkillEtiquette, SkillInsight, SkillIntimidation, SkillLeadership,
		SkillPerformance, SkillPersuasion, SkillStreetwise, SkillSubterfuge,
	},
	SkillCategoryMental: {
		SkillAcademics, SkillAwareness, SkillFinance, SkillInvestigation, SkillMedicine,
		SkillOccult, SkillPolitics, SkillScience, SkillTechnology,
	},
}

// AllSkills returns every skill in sheet order
func AllSkills() []Skill {
	skills := make([]Skill, 0, 27)
	for _, category := range SkillCategories {
		skills = append(skills, SkillsByCategory[category]...)
	}
	return skills
}

// ParseSkill matches a skill name case-insensitively, so "animal ken" and
// "Animal Ken" are the same skill
func ParseSkill(name string) (Skill, bool) {
	normalized := strings.TrimSpace(name)
	for _, s := range AllSkills() {
		if strings.EqualFold(string(s), normalized) {
			return s, true
		}
	}
	return "", false
}
