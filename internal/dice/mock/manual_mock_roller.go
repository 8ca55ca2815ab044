package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/herald-bot/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined faces
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	calls     []int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: append([]int{}, rolls...),
	}
}

// SetNextRoll queues one more face
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued faces
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append([]int{}, rolls...)
	m.rollIndex = 0
}

// Reset clears all rolls and recorded calls
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.calls = nil
}

// Remaining returns how many queued faces have not been used
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// Calls returns the count requested by each Roll call, in order
func (m *ManualMockRoller) Calls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int{}, m.calls...)
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, count)
	if m.rollIndex+count > len(m.rolls) {
		return nil, fmt.Errorf("no more predetermined rolls available (need %d, have %d)",
			count, len(m.rolls)-m.rollIndex)
	}

	rolls := make([]int, count)
	for i := range rolls {
		roll := m.rolls[m.rollIndex]
		if roll < 1 || roll > dice.Faces {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, dice.Faces)
		}
		rolls[i] = roll
		m.rollIndex++
	}

	return rolls, nil
}
