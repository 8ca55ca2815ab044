package characters_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/herald-bot/internal/repositories/characters"
)

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() characters.Repository { return characters.NewInMemoryRepository() },
	})
}
