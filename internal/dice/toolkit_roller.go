package dice

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// toolkitRoller adapts the rpg-toolkit roller, which is crypto backed and
// safe for concurrent use, to the d10 Roller.
type toolkitRoller struct {
	roller toolkitdice.Roller
}

// NewToolkitRoller wraps a toolkit roller. A nil roller uses the toolkit default.
func NewToolkitRoller(roller toolkitdice.Roller) Roller {
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	return &toolkitRoller{roller: roller}
}

// Roll implements Roller.Roll
func (r *toolkitRoller) Roll(count int) ([]int, error) {
	if count <= 0 {
		return []int{}, nil
	}

	rolls, err := r.roller.RollN(count, Faces)
	if err != nil {
		return nil, herr.WrapWithCode(err, herr.CodeInternal, "failed to roll dice")
	}

	if len(rolls) != count {
		return nil, herr.Internalf("roller returned %d dice, wanted %d", len(rolls), count)
	}

	for _, roll := range rolls {
		if roll < 1 || roll > Faces {
			return nil, herr.Internalf("roller returned %d for a d%d", roll, Faces)
		}
	}

	return rolls, nil
}
