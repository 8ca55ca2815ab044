package dice

import (
	"math/rand"
	"sync"
	"time"
)

// randomRoller draws from a math/rand source. rand.Rand is not safe for
// concurrent use, so draws are serialized.
type randomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewRandomRoller creates a roller from a seed. A zero seed uses the clock,
// any other seed produces a repeatable sequence.
func NewRandomRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count int) ([]int, error) {
	if count <= 0 {
		return []int{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.random.Intn(Faces) + 1
	}
	return rolls, nil
}
