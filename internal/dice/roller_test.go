package dice_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/herald-bot/internal/dice"
	mockdice "github.com/KirkDiggler/herald-bot/internal/dice/mock"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

func TestRandomRollerRange(t *testing.T) {
	roller := dice.NewRandomRoller(99)

	rolls, err := roller.Roll(500)
	require.NoError(t, err)
	require.Len(t, rolls, 500)

	seen := make(map[int]bool)
	for _, roll := range rolls {
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, dice.Faces)
		seen[roll] = true
	}
	assert.Len(t, seen, dice.Faces, "500 rolls should hit every face")
}

func TestRandomRollerSeeded(t *testing.T) {
	a, err := dice.NewRandomRoller(7).Roll(20)
	require.NoError(t, err)
	b, err := dice.NewRandomRoller(7).Roll(20)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRandomRollerZeroCount(t *testing.T) {
	rolls, err := dice.NewRandomRoller(1).Roll(0)
	require.NoError(t, err)
	assert.Empty(t, rolls)
}

func TestRandomRollerConcurrentUse(t *testing.T) {
	engine := dice.NewEngine(dice.NewRandomRoller(5))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := engine.RollPool(3, 3, true, 2, 0)
			assert.NoError(t, err)
			assert.Len(t, result.Dice(), 6)
		}()
	}
	wg.Wait()
}

// stubToolkitRoller satisfies the rpg-toolkit dice.Roller interface
type stubToolkitRoller struct {
	rolls []int
	err   error
	sizes []int
}

func (s *stubToolkitRoller) Roll(size int) (int, error) {
	s.sizes = append(s.sizes, size)
	if s.err != nil {
		return 0, s.err
	}
	return s.rolls[0], nil
}

func (s *stubToolkitRoller) RollN(count, size int) ([]int, error) {
	s.sizes = append(s.sizes, size)
	if s.err != nil {
		return nil, s.err
	}
	return s.rolls[:count], nil
}

func TestToolkitRoller(t *testing.T) {
	stub := &stubToolkitRoller{rolls: []int{3, 10, 6}}

	rolls, err := dice.NewToolkitRoller(stub).Roll(3)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 10, 6}, rolls)
	assert.Equal(t, []int{dice.Faces}, stub.sizes)
}

func TestToolkitRollerErrors(t *testing.T) {
	t.Run("source failure", func(t *testing.T) {
		_, err := dice.NewToolkitRoller(&stubToolkitRoller{err: errors.New("no entropy")}).Roll(2)
		require.Error(t, err)
		assert.True(t, herr.IsInternal(err))
	})

	t.Run("face out of range", func(t *testing.T) {
		_, err := dice.NewToolkitRoller(&stubToolkitRoller{rolls: []int{11}}).Roll(1)
		require.Error(t, err)
		assert.True(t, herr.IsInternal(err))
	})
}

func TestToolkitRollerDefault(t *testing.T) {
	rolls, err := dice.NewToolkitRoller(nil).Roll(50)
	require.NoError(t, err)

	for _, roll := range rolls {
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, dice.Faces)
	}
}

func TestManualMockRoller(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4, 9})
	roller.SetNextRoll(10)

	rolls, err := roller.Roll(3)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9, 10}, rolls)

	_, err = roller.Roll(1)
	assert.Error(t, err, "queue is exhausted")

	roller.Reset()
	roller.SetNextRoll(0)
	_, err = roller.Roll(1)
	assert.Error(t, err, "zero is not a d10 face")
}
