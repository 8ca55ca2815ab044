package characters_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
	"github.com/KirkDiggler/herald-bot/internal/repositories/characters"
	"github.com/KirkDiggler/herald-bot/internal/testutils"
)

// RepositoryContractSuite holds the behavior every store must share. Each
// store's test file embeds it and supplies a fresh repository per test.
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func() characters.Repository
	repo    characters.Repository
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func (s *RepositoryContractSuite) create(id, userID, name string) *entities.Character {
	char := testutils.CreateTestCharacter(id, userID, name)
	s.Require().NoError(s.repo.Create(s.ctx, char))
	return char
}

func (s *RepositoryContractSuite) TestCreateAndGetRoundTrip() {
	char := testutils.CreateSeasonedHunter("char-1", "user-1", "Mara Voss")
	s.Require().NoError(s.repo.Create(s.ctx, char))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)

	s.Equal(char.Name, got.Name)
	s.Equal(char.Attributes, got.Attributes)
	s.Equal(char.Skills, got.Skills)
	s.Equal(char.Specialties[entities.SkillFirearms], got.Specialties[entities.SkillFirearms])
	s.Equal(char.Health, got.Health)
	s.Equal(char.Willpower, got.Willpower)
	s.Equal(4, got.Desperation)
	s.Equal(2, got.Danger)
	s.Equal(1, got.Edge)
	s.Equal(entities.CreedMartial, got.Creed)
	s.Equal(char.Ambition, got.Ambition)
	s.Equal(char.Redemption, got.Redemption)
	s.Equal(12, got.ExperienceTotal)
	s.Equal(5, got.ExperienceSpent)
	s.True(char.CreatedAt.Equal(got.CreatedAt))
}

func (s *RepositoryContractSuite) TestCreateIsolatesCaller() {
	char := s.create("char-1", "user-1", "Mara")
	char.Desperation = 9

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Zero(got.Desperation)
}

func (s *RepositoryContractSuite) TestCreateDuplicateID() {
	s.create("char-1", "user-1", "Mara")

	err := s.repo.Create(s.ctx, testutils.CreateTestCharacter("char-1", "user-1", "Other"))
	s.True(herr.IsAlreadyExists(err), "got %v", err)
}

func (s *RepositoryContractSuite) TestCreateDuplicateNameIgnoresCase() {
	s.create("char-1", "user-1", "Mara")

	err := s.repo.Create(s.ctx, testutils.CreateTestCharacter("char-2", "user-1", "MARA"))
	s.True(herr.IsAlreadyExists(err), "got %v", err)

	// other users may reuse the name
	s.create("char-3", "user-2", "Mara")
}

func (s *RepositoryContractSuite) TestCreateRejectsIncomplete() {
	s.True(herr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))

	char := testutils.CreateTestCharacter("", "user-1", "Mara")
	s.True(herr.IsInvalidArgument(s.repo.Create(s.ctx, char)))
}

func (s *RepositoryContractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, "nope")
	s.True(herr.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestGetByName() {
	s.create("char-1", "user-1", "Mara Voss")

	got, err := s.repo.GetByName(s.ctx, "user-1", "mara voss")
	s.Require().NoError(err)
	s.Equal("char-1", got.ID)

	_, err = s.repo.GetByName(s.ctx, "user-2", "Mara Voss")
	s.True(herr.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestListByOwnerSortsByName() {
	s.create("c", "user-1", "zed")
	s.create("a", "user-1", "Abel")
	s.create("b", "user-1", "mara")
	s.create("x", "user-2", "Other")

	list, err := s.repo.ListByOwner(s.ctx, "user-1")
	s.Require().NoError(err)

	names := make([]string, 0, len(list))
	for _, c := range list {
		names = append(names, c.Name)
	}
	s.Equal([]string{"Abel", "mara", "zed"}, names)

	empty, err := s.repo.ListByOwner(s.ctx, "user-3")
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *RepositoryContractSuite) TestUpdate() {
	char := s.create("char-1", "user-1", "Mara")

	char.Danger = 3
	char.Name = "Mara Voss"
	s.Require().NoError(char.SetSkill(entities.SkillStealth, 2))
	s.Require().NoError(char.AddSpecialty(entities.SkillStealth, "Urban"))
	s.Require().NoError(s.repo.Update(s.ctx, char))

	got, err := s.repo.GetByName(s.ctx, "user-1", "mara voss")
	s.Require().NoError(err)
	s.Equal(3, got.Danger)
	s.Equal(2, got.Skill(entities.SkillStealth))
	s.Equal([]string{"Urban"}, got.Specialties[entities.SkillStealth])

	_, err = s.repo.GetByName(s.ctx, "user-1", "Mara")
	s.True(herr.IsNotFound(err), "old name should be released")
}

func (s *RepositoryContractSuite) TestUpdateRenameCollision() {
	s.create("char-1", "user-1", "Mara")
	other := s.create("char-2", "user-1", "Jonas")

	other.Name = "mara"
	s.True(herr.IsAlreadyExists(s.repo.Update(s.ctx, other)))
}

func (s *RepositoryContractSuite) TestUpdateMissing() {
	err := s.repo.Update(s.ctx, testutils.CreateTestCharacter("ghost", "user-1", "Ghost"))
	s.True(herr.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestDeleteClearsActive() {
	s.create("char-1", "user-1", "Mara")
	s.Require().NoError(s.repo.SetActive(s.ctx, "user-1", "char-1"))

	s.Require().NoError(s.repo.Delete(s.ctx, "char-1"))

	_, err := s.repo.Get(s.ctx, "char-1")
	s.True(herr.IsNotFound(err))
	_, err = s.repo.GetActive(s.ctx, "user-1")
	s.True(herr.IsNotFound(err))

	// the name is free again
	s.create("char-2", "user-1", "Mara")

	s.True(herr.IsNotFound(s.repo.Delete(s.ctx, "char-1")))
}

func (s *RepositoryContractSuite) TestActiveCharacter() {
	_, err := s.repo.GetActive(s.ctx, "user-1")
	s.True(herr.IsNotFound(err))

	s.create("char-1", "user-1", "Mara")
	s.create("char-2", "user-1", "Jonas")
	s.create("char-3", "user-2", "Other")

	s.Require().NoError(s.repo.SetActive(s.ctx, "user-1", "char-1"))
	s.Require().NoError(s.repo.SetActive(s.ctx, "user-1", "char-2"))

	id, err := s.repo.GetActive(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("char-2", id)

	err = s.repo.SetActive(s.ctx, "user-1", "char-3")
	s.Equal(herr.CodePermissionDenied, herr.GetCode(err))

	s.True(herr.IsNotFound(s.repo.SetActive(s.ctx, "user-1", "missing")))
}

func (s *RepositoryContractSuite) TestManyCharacters() {
	for i := 0; i < 12; i++ {
		s.create(fmt.Sprintf("char-%02d", i), "user-1", fmt.Sprintf("Hunter %02d", i))
	}

	list, err := s.repo.ListByOwner(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(list, 12)
	s.Equal("Hunter 00", list[0].Name)
}
