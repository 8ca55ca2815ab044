package entities

import herr "github.com/KirkDiggler/herald-bot/internal/errors"

// XPAction is how experience changes
type XPAction string

const (
	XPView  XPAction = "view"
	XPAdd   XPAction = "add"
	XPSpend XPAction = "spend"
	XPSet   XPAction = "set"
)

// ParseXPAction accepts the four actions; an empty string means view
func ParseXPAction(raw string) (XPAction, bool) {
	switch XPAction(raw) {
	case "":
		return XPView, true
	case XPView, XPAdd, XPSpend, XPSet:
		return XPAction(raw), true
	}
	return "", false
}

// Experience is the earned and spent experience on a sheet
type Experience struct {
	Total int
	Spent int
}

// Available is what can still be spent
func (e Experience) Available() int {
	return e.Total - e.Spent
}

// Experience returns the sheet's experience totals
func (c *Character) Experience() Experience {
	return Experience{Total: c.ExperienceTotal, Spent: c.ExperienceSpent}
}

// AdjustExperience applies an experience action. Spending more than is
// available fails, and set never drops the total below what was spent.
func (c *Character) AdjustExperience(action XPAction, amount int) error {
	if amount < 0 {
		return herr.InvalidArgumentf("experience amount cannot be negative, got %d", amount)
	}

	switch action {
	case XPView:
	case XPAdd:
		c.ExperienceTotal += amount
	case XPSpend:
		if available := c.AvailableExperience(); amount > available {
			return herr.FailedPreconditionf("not enough XP: %d available, %d to spend", available, amount).
				WithMeta("available", available).
				WithMeta("amount", amount)
		}
		c.ExperienceSpent += amount
	case XPSet:
		c.ExperienceTotal = max(c.ExperienceSpent, amount)
	default:
		return herr.InvalidArgumentf("unknown experience action %q", action)
	}
	return nil
}

// SetAttribute sets an attribute rating and resizes the tracks it feeds
func (c *Character) SetAttribute(a Attribute, dots int) error {
	if _, ok := ParseAttribute(string(a)); !ok {
		return herr.InvalidArgumentf("unknown attribute %q", a)
	}

	vb := herr.NewValidationBuilder()
	herr.ValidateRange("dots", dots, MinAttribute, MaxAttribute, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Attributes == nil {
		c.Attributes = make(map[Attribute]int, len(Attributes))
	}
	c.Attributes[a] = dots
	c.RecalculateTracks()
	return nil
}
