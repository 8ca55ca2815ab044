//go:build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/herald-bot/internal/repositories/characters"
	"github.com/KirkDiggler/herald-bot/internal/testutils"
)

func TestPostgresRepositorySuite(t *testing.T) {
	pg := testutils.NewPostgresContainer(t)

	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() characters.Repository {
			_, err := pg.Pool.DB().Exec(context.Background(),
				`TRUNCATE characters, character_skills, character_specialties, active_characters`)
			require.NoError(t, err)
			return characters.NewPostgres(pg.Pool.DB())
		},
	})
}
