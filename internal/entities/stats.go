package entities

import herr "github.com/KirkDiggler/herald-bot/internal/errors"

// StatAction is how a counter stat such as desperation or danger changes
type StatAction string

const (
	StatView     StatAction = "view"
	StatSet      StatAction = "set"
	StatAdd      StatAction = "add"
	StatSubtract StatAction = "subtract"
	StatReset    StatAction = "reset"
)

// ParseStatAction accepts the five actions; an empty string means view
func ParseStatAction(raw string) (StatAction, bool) {
	switch StatAction(raw) {
	case "":
		return StatView, true
	case StatView, StatSet, StatAdd, StatSubtract, StatReset:
		return StatAction(raw), true
	}
	return "", false
}

// Mutates reports whether the action needs an amount
func (a StatAction) Mutates() bool {
	return a == StatSet || a == StatAdd || a == StatSubtract
}

// Changes reports whether the action can move the counter, reset included
func (a StatAction) Changes() bool {
	return a != StatView
}

// AdjustStat applies an action to a counter. Set and add clamp to [0, ceiling],
// subtract floors at zero and reset returns zero.
func AdjustStat(current int, action StatAction, amount, ceiling int) (int, error) {
	switch action {
	case StatView:
		return current, nil
	case StatSet:
		return clamp(amount, 0, ceiling), nil
	case StatAdd:
		return clamp(current+amount, 0, ceiling), nil
	case StatSubtract:
		return max(0, current-amount), nil
	case StatReset:
		return 0, nil
	}
	return current, herr.InvalidArgumentf("unknown action %q", action)
}

func clamp(value, low, high int) int {
	return max(low, min(value, high))
}
