package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Faces is the size of every die in a Hunter pool
const Faces = 10

// Roller is the random source behind every roll.
// This allows us to inject seeded or scripted sources for testing.
type Roller interface {
	// Roll returns count independent values in [1, Faces]
	Roll(count int) ([]int, error)
}
