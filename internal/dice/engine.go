package dice

import (
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

const (
	// EdgeExplosionCap bounds edge explosions at count*EdgeExplosionCap dice.
	// It is an engineering limit, not a game rule; the loop stops once the
	// accumulated dice exceed it.
	EdgeExplosionCap = 10

	// RouseThreshold is the highest face that passes a rouse check
	RouseThreshold = 5
)

// Engine resolves Hunter: The Reckoning rolls against a Roller
type Engine struct {
	roller Roller
}

// NewEngine creates a dice engine
func NewEngine(roller Roller) *Engine {
	if roller == nil {
		panic("roller is required")
	}

	return &Engine{roller: roller}
}

// BasePoolSize is attribute + skill - difficulty, never less than one die
func BasePoolSize(attribute, skill, difficulty int) int {
	return max(1, attribute+skill-difficulty)
}

// RollPool rolls a base pool, optional edge dice and an optional single
// desperation die. Here difficulty shrinks the pool; it is not the number of
// successes needed. Out of range inputs are absorbed by the one-die floor.
func (e *Engine) RollPool(attribute, skill int, desperation bool, edge, difficulty int) (*Result, error) {
	base, err := e.roll(BasePoolSize(attribute, skill, difficulty))
	if err != nil {
		return nil, err
	}

	var edgeDice []int
	if edge > 0 {
		edgeDice, err = e.RollEdgeDice(edge)
		if err != nil {
			return nil, err
		}
	}

	var desperationDice []int
	if desperation {
		desperationDice, err = e.roll(1)
		if err != nil {
			return nil, err
		}
	}

	return NewResult(base, edgeDice, desperationDice), nil
}

// RollEdgeDice rolls count dice and one more for every 10, repeating until no
// 10s come up or the accumulated dice exceed count*EdgeExplosionCap.
func (e *Engine) RollEdgeDice(count int) ([]int, error) {
	result := make([]int, 0, max(count, 0))
	limit := count * EdgeExplosionCap

	for remaining := count; remaining > 0; {
		rolls, err := e.roll(remaining)
		if err != nil {
			return nil, err
		}
		result = append(result, rolls...)

		remaining = 0
		for _, roll := range rolls {
			if roll == CriticalFace {
				remaining++
			}
		}

		if len(result) > limit {
			break
		}
	}

	return result, nil
}

// RollRouseCheck rolls one die; 1-5 passes, 6-10 fails and gains a point of
// desperation.
func (e *Engine) RollRouseCheck() (*RouseResult, error) {
	rolls, err := e.roll(1)
	if err != nil {
		return nil, err
	}

	result := &RouseResult{
		Die:     rolls[0],
		Success: rolls[0] <= RouseThreshold,
	}
	if !result.Success {
		result.DesperationGained = 1
	}

	return result, nil
}

// SimpleRoll rolls a plain pool of at least one die
func (e *Engine) SimpleRoll(poolSize int) (*SimpleResult, error) {
	rolls, err := e.roll(max(1, poolSize))
	if err != nil {
		return nil, err
	}

	successes, crits := Count(rolls)
	return &SimpleResult{
		Dice:           rolls,
		Successes:      successes,
		Crits:          crits,
		TotalSuccesses: successes + crits,
	}, nil
}

func (e *Engine) roll(count int) ([]int, error) {
	rolls, err := e.roller.Roll(count)
	if err != nil {
		return nil, herr.WrapWithCode(err, herr.CodeInternal, "failed to roll dice").
			WithMeta("count", count)
	}

	if len(rolls) != count {
		return nil, herr.Internalf("roller returned %d dice, wanted %d", len(rolls), count)
	}

	return rolls, nil
}
