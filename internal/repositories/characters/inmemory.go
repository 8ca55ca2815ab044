package characters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
	active     map[string]string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters: make(map[string]*entities.Character),
		active:     make(map[string]string),
	}
}

// Create stores a copy of the character
func (r *InMemoryRepository) Create(_ context.Context, character *entities.Character) error {
	if err := validateForWrite(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; exists {
		return herr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}
	if r.findByNameLocked(character.UserID, character.Name) != nil {
		return nameTaken(character.Name)
	}

	r.characters[character.ID] = character.Clone()
	return nil
}

// Get retrieves a copy of a character by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, herr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, exists := r.characters[id]
	if !exists {
		return nil, notFound(id)
	}
	return character.Clone(), nil
}

// GetByName looks a character up by owner and name
func (r *InMemoryRepository) GetByName(_ context.Context, userID, name string) (*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if char := r.findByNameLocked(userID, name); char != nil {
		return char.Clone(), nil
	}
	return nil, nameNotFound(userID, name)
}

// ListByOwner returns copies of every character the user owns
func (r *InMemoryRepository) ListByOwner(_ context.Context, userID string) ([]*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Character, 0)
	for _, char := range r.characters {
		if char.UserID == userID {
			result = append(result, char.Clone())
		}
	}
	sortByName(result)
	return result, nil
}

// Update replaces a stored character
func (r *InMemoryRepository) Update(_ context.Context, character *entities.Character) error {
	if err := validateForWrite(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; !exists {
		return notFound(character.ID)
	}
	if other := r.findByNameLocked(character.UserID, character.Name); other != nil && other.ID != character.ID {
		return nameTaken(character.Name)
	}

	r.characters[character.ID] = character.Clone()
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return herr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[id]
	if !exists {
		return notFound(id)
	}

	delete(r.characters, id)
	if r.active[char.UserID] == id {
		delete(r.active, char.UserID)
	}
	return nil
}

// SetActive marks a character as the user's active one
func (r *InMemoryRepository) SetActive(_ context.Context, userID, characterID string) error {
	if userID == "" || characterID == "" {
		return herr.InvalidArgument("user ID and character ID are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[characterID]
	if !exists {
		return notFound(characterID)
	}
	if char.UserID != userID {
		return notOwner(userID, characterID)
	}

	r.active[userID] = characterID
	return nil
}

// GetActive returns the user's active character ID
func (r *InMemoryRepository) GetActive(_ context.Context, userID string) (string, error) {
	if userID == "" {
		return "", herr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.active[userID]
	if !ok {
		return "", noActive(userID)
	}
	return id, nil
}

func (r *InMemoryRepository) findByNameLocked(userID, name string) *entities.Character {
	key := nameKey(name)
	for _, char := range r.characters {
		if char.UserID == userID && nameKey(char.Name) == key {
			return char
		}
	}
	return nil
}
