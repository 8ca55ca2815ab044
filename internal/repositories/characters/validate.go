package characters

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

func validateForWrite(char *entities.Character) error {
	if char == nil {
		return herr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return herr.InvalidArgument("character ID is required")
	}
	if char.UserID == "" {
		return herr.InvalidArgument("character user ID is required")
	}
	if strings.TrimSpace(char.Name) == "" {
		return herr.InvalidArgument("character name is required")
	}
	return nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func notFound(id string) error {
	return herr.NotFoundf("character with ID '%s' not found", id).WithMeta("character_id", id)
}

func nameNotFound(userID, name string) error {
	return herr.NotFoundf("no character named '%s'", name).
		WithMeta("user_id", userID).
		WithMeta("name", name)
}

func nameTaken(name string) error {
	return herr.AlreadyExistsf("you already have a character named '%s'", name).WithMeta("name", name)
}

func noActive(userID string) error {
	return herr.NotFound("no active character").WithMeta("user_id", userID)
}

func notOwner(userID, characterID string) error {
	return herr.PermissionDeniedf("character '%s' belongs to another user", characterID).
		WithMeta("user_id", userID).
		WithMeta("character_id", characterID)
}

func sortByName(chars []*entities.Character) {
	slices.SortFunc(chars, func(a, b *entities.Character) int {
		if c := strings.Compare(nameKey(a.Name), nameKey(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
