package dice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/herald-bot/internal/dice"
	mockdice "github.com/KirkDiggler/herald-bot/internal/dice/mock"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

func TestBasePoolSize(t *testing.T) {
	tests := []struct {
		name       string
		attribute  int
		skill      int
		difficulty int
		want       int
	}{
		{name: "attribute plus skill", attribute: 3, skill: 2, want: 5},
		{name: "difficulty shrinks the pool", attribute: 3, skill: 2, difficulty: 2, want: 3},
		{name: "empty ratings still roll one die", attribute: 0, skill: 0, difficulty: 10, want: 1},
		{name: "negative inputs floor to one", attribute: -4, skill: -1, want: 1},
		{name: "exact zero floors to one", attribute: 2, skill: 1, difficulty: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dice.BasePoolSize(tt.attribute, tt.skill, tt.difficulty))
		})
	}
}

func TestRollPool(t *testing.T) {
	tests := []struct {
		name            string
		rolls           []int
		attribute       int
		skill           int
		desperation     bool
		edge            int
		difficulty      int
		wantDice        []int
		wantEdge        []int
		wantDesperation []int
		wantTotal       int
		wantMessy       bool
	}{
		{
			name:      "base pool only",
			rolls:     []int{1, 5, 6, 7, 10},
			attribute: 3,
			skill:     2,
			wantDice:  []int{1, 5, 6, 7, 10},
			wantEdge:  []int{},
			wantTotal: 3,
		},
		{
			name:       "floored pool with heavy difficulty",
			rolls:      []int{8},
			difficulty: 10,
			wantDice:   []int{8},
			wantEdge:   []int{},
			wantTotal:  1,
		},
		{
			name:            "desperation ten with base pair is messy",
			rolls:           []int{5, 10, 10},
			attribute:       1,
			skill:           1,
			desperation:     true,
			wantDice:        []int{5, 10},
			wantEdge:        []int{},
			wantDesperation: []int{10},
			wantTotal:       3,
			wantMessy:       true,
		},
		{
			name:      "edge dice explode into the result",
			rolls:     []int{6, 6, 10, 3, 10, 2},
			attribute: 1,
			skill:     1,
			edge:      2,
			// base: 6 6, edge: 10 3 -> 10 -> 2
			wantDice:  []int{6, 6},
			wantEdge:  []int{10, 3, 10, 2},
			wantTotal: 5,
		},
		{
			name:            "edge and desperation together",
			rolls:           []int{4, 7, 1},
			attribute:       1,
			desperation:     true,
			edge:            1,
			wantDice:        []int{4},
			wantEdge:        []int{7},
			wantDesperation: []int{1},
			wantTotal:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller(tt.rolls...)
			engine := dice.NewEngine(roller)

			result, err := engine.RollPool(tt.attribute, tt.skill, tt.desperation, tt.edge, tt.difficulty)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDice, result.Dice())
			assert.Equal(t, tt.wantEdge, result.EdgeDice())
			if tt.wantDesperation == nil {
				assert.Empty(t, result.DesperationDice())
			} else {
				assert.Equal(t, tt.wantDesperation, result.DesperationDice())
			}
			assert.Equal(t, tt.wantTotal, result.TotalSuccesses())
			assert.Equal(t, tt.wantMessy, result.MessyCritical())
			assert.Zero(t, roller.Remaining(), "every scripted die should be consumed")
		})
	}
}

func TestRollPoolNegativeEdgeRollsNoEdgeDice(t *testing.T) {
	roller := mockdice.NewManualMockRoller(7, 7)
	engine := dice.NewEngine(roller)

	result, err := engine.RollPool(1, 1, false, -3, 0)
	require.NoError(t, err)

	assert.Empty(t, result.EdgeDice())
	assert.Equal(t, []int{2}, roller.Calls())
}

func TestRollEdgeDice(t *testing.T) {
	t.Run("no tens rolls exactly count", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller(1, 2, 3)
		edge, err := dice.NewEngine(roller).RollEdgeDice(3)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, edge)
		assert.Equal(t, []int{3}, roller.Calls())
	})

	t.Run("each ten adds one die", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller(10, 10, 4, 10, 6, 9)
		edge, err := dice.NewEngine(roller).RollEdgeDice(3)
		require.NoError(t, err)
		assert.Equal(t, []int{10, 10, 4, 10, 6, 9}, edge)
		assert.Equal(t, []int{3, 2, 1}, roller.Calls())
	})

	t.Run("zero count rolls nothing", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		edge, err := dice.NewEngine(roller).RollEdgeDice(0)
		require.NoError(t, err)
		assert.Empty(t, edge)
		assert.Empty(t, roller.Calls())
	})
}

// tensRoller always rolls 10, the worst case for explosions
type tensRoller struct{}

func (tensRoller) Roll(count int) ([]int, error) {
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = dice.CriticalFace
	}
	return rolls, nil
}

func TestRollEdgeDiceStopsAtCap(t *testing.T) {
	engine := dice.NewEngine(tensRoller{})

	for count := 1; count <= 5; count++ {
		edge, err := engine.RollEdgeDice(count)
		require.NoError(t, err)

		assert.Greater(t, len(edge), count*dice.EdgeExplosionCap)
		assert.LessOrEqual(t, len(edge), count*dice.EdgeExplosionCap+count)
	}
}

func TestRollRouseCheckEveryFace(t *testing.T) {
	for face := 1; face <= dice.Faces; face++ {
		result, err := dice.NewEngine(mockdice.NewManualMockRoller(face)).RollRouseCheck()
		require.NoError(t, err)

		assert.Equal(t, face, result.Die)
		if face <= 5 {
			assert.True(t, result.Success, "face %d", face)
			assert.Equal(t, 0, result.DesperationGained, "face %d", face)
		} else {
			assert.False(t, result.Success, "face %d", face)
			assert.Equal(t, 1, result.DesperationGained, "face %d", face)
		}
	}
}

func TestSimpleRoll(t *testing.T) {
	tests := []struct {
		name      string
		pool      int
		rolls     []int
		wantSucc  int
		wantCrits int
		wantTotal int
	}{
		{name: "counts successes and pairs", pool: 4, rolls: []int{10, 10, 5, 6}, wantSucc: 3, wantCrits: 1, wantTotal: 4},
		{name: "zero pool rolls one die", pool: 0, rolls: []int{9}, wantSucc: 1, wantTotal: 1},
		{name: "negative pool rolls one die", pool: -2, rolls: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := dice.NewEngine(mockdice.NewManualMockRoller(tt.rolls...)).SimpleRoll(tt.pool)
			require.NoError(t, err)

			assert.Equal(t, tt.rolls, result.Dice)
			assert.Equal(t, tt.wantSucc, result.Successes)
			assert.Equal(t, tt.wantCrits, result.Crits)
			assert.Equal(t, tt.wantTotal, result.TotalSuccesses)
		})
	}
}

func TestRollerFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Roll(3).Return(nil, errors.New("entropy exhausted"))

	_, err := dice.NewEngine(roller).RollPool(2, 1, false, 0, 0)
	require.Error(t, err)
	assert.True(t, herr.IsInternal(err))
	assert.Equal(t, 3, herr.GetMeta(err)["count"])
}

func TestShortRollIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	roller.EXPECT().Roll(1).Return([]int{}, nil)

	_, err := dice.NewEngine(roller).RollRouseCheck()
	require.Error(t, err)
	assert.True(t, herr.IsInternal(err))
}

func TestNewEngineRequiresRoller(t *testing.T) {
	assert.Panics(t, func() { dice.NewEngine(nil) })
}
