package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/herald-bot/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()
	first, second := gen.New(), gen.New()

	assert.NotEqual(t, first, second)
	assert.True(t, uuid.IsValid(first))
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("char")

	assert.Equal(t, "char-1", gen.New())
	assert.Equal(t, "char-2", gen.New())
	assert.False(t, uuid.IsValid("char-3"))
}
