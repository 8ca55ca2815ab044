package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/herald-bot/internal/entities"
)

// Repository defines the interface for character persistence. Names are
// unique per user, compared case-insensitively.
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, character *entities.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// GetByName retrieves one of a user's characters by name, ignoring case
	GetByName(ctx context.Context, userID, name string) (*entities.Character, error)

	// ListByOwner returns a user's characters ordered by name
	ListByOwner(ctx context.Context, userID string) ([]*entities.Character, error)

	// Update replaces an existing character
	Update(ctx context.Context, character *entities.Character) error

	// Delete removes a character and clears it as the active character
	Delete(ctx context.Context, id string) error

	// SetActive marks one of the user's characters as active
	SetActive(ctx context.Context, userID, characterID string) error

	// GetActive returns the active character ID or a not_found error
	GetActive(ctx context.Context, userID string) (string, error)
}
