package dice

const (
	// SuccessThreshold is the lowest face that counts as a success
	SuccessThreshold = 6

	// CriticalFace pairs up into bonus successes
	CriticalFace = 10

	// BotchFace on a desperation die triggers Overreach or Despair
	BotchFace = 1
)

// Result is an immutable snapshot of one pool roll. Every derived value is
// computed once in NewResult and the accessors hand out copies.
type Result struct {
	dice            []int
	edgeDice        []int
	desperationDice []int

	successes       int
	crits           int
	messyCritical   bool
	desperationOnes int
}

// NewResult classifies the three sub-pools of a roll
func NewResult(dice, edgeDice, desperationDice []int) *Result {
	r := &Result{
		dice:            clone(dice),
		edgeDice:        clone(edgeDice),
		desperationDice: clone(desperationDice),
	}

	r.successes, r.crits = Count(r.AllDice())

	desperationCrit := false
	for _, die := range r.desperationDice {
		if die == CriticalFace {
			desperationCrit = true
		}
		if die == BotchFace {
			r.desperationOnes++
		}
	}

	// Any desperation 10 taints the roll once a pair exists anywhere in the
	// pool, even when that 10 is not part of the pair.
	r.messyCritical = desperationCrit && r.crits > 0

	return r
}

// Count returns the number of successes (faces >= 6) and the number of
// critical pairs among the given faces
func Count(faces []int) (successes, crits int) {
	tens := 0
	for _, face := range faces {
		if face >= SuccessThreshold {
			successes++
		}
		if face == CriticalFace {
			tens++
		}
	}
	return successes, tens / 2
}

// Dice returns the base pool faces
func (r *Result) Dice() []int { return clone(r.dice) }

// EdgeDice returns the edge faces including explosions
func (r *Result) EdgeDice() []int { return clone(r.edgeDice) }

// DesperationDice returns the desperation faces, at most one
func (r *Result) DesperationDice() []int { return clone(r.desperationDice) }

// AllDice returns every face rolled: base, then edge, then desperation
func (r *Result) AllDice() []int {
	all := make([]int, 0, len(r.dice)+len(r.edgeDice)+len(r.desperationDice))
	all = append(all, r.dice...)
	all = append(all, r.edgeDice...)
	return append(all, r.desperationDice...)
}

// Successes counts every face of 6 or more
func (r *Result) Successes() int { return r.successes }

// Crits counts pairs of 10s across the whole roll
func (r *Result) Crits() int { return r.crits }

// TotalSuccesses is successes plus one bonus per critical pair
func (r *Result) TotalSuccesses() int { return r.successes + r.crits }

// MessyCritical reports a critical where a desperation die showed 10
func (r *Result) MessyCritical() bool { return r.messyCritical }

// DesperationOnes counts desperation dice showing 1
func (r *Result) DesperationOnes() int { return r.desperationOnes }

// HasOverreach reports whether the player must choose Overreach or Despair
func (r *Result) HasOverreach() bool { return r.desperationOnes > 0 }

// Margin is total successes minus the number of successes needed
func (r *Result) Margin(target int) int { return r.TotalSuccesses() - target }

// IsWin reports whether the roll met its target. With no target any
// success is a win.
func (r *Result) IsWin(target int) bool {
	if target > 0 {
		return r.TotalSuccesses() >= target
	}
	return r.TotalSuccesses() > 0
}

// SimpleResult is the outcome of a plain d10 pool with no edge or
// desperation dice
type SimpleResult struct {
	Dice           []int
	Successes      int
	Crits          int
	TotalSuccesses int
}

// RouseResult is the outcome of a single-die rouse check
type RouseResult struct {
	Die               int
	Success           bool
	DesperationGained int
}

func clone(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}
