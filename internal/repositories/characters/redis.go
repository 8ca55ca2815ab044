package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/herald-bot/internal/entities"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

const defaultKeyPrefix = "herald"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// KeyPrefix namespaces every key, default "herald"
	KeyPrefix string
}

// redisRepo stores each character as a JSON blob with per-user indexes:
// a set of IDs, a hash of lowercased name to ID and the active ID
type redisRepo struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepo{client: cfg.Client, prefix: prefix}
}

// NewRedis creates a Redis repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("%s:character:%s", r.prefix, id)
}

func (r *redisRepo) ownerKey(userID string) string {
	return fmt.Sprintf("%s:user:%s:characters", r.prefix, userID)
}

func (r *redisRepo) namesKey(userID string) string {
	return fmt.Sprintf("%s:user:%s:names", r.prefix, userID)
}

func (r *redisRepo) activeKey(userID string) string {
	return fmt.Sprintf("%s:user:%s:active", r.prefix, userID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return herr.Wrap(err, "failed to check character existence")
	}
	if exists > 0 {
		return herr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	claimed, err := r.client.HSetNX(ctx, r.namesKey(char.UserID), nameKey(char.Name), char.ID).Result()
	if err != nil {
		return herr.Wrap(err, "failed to reserve character name")
	}
	if !claimed {
		return nameTaken(char.Name)
	}

	data, err := json.Marshal(char)
	if err != nil {
		return herr.Wrap(err, "failed to marshal character")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(char.ID), data, 0)
		pipe.SAdd(ctx, r.ownerKey(char.UserID), char.ID)
		return nil
	})
	if err != nil {
		// release the name so a retry can succeed
		_ = r.client.HDel(ctx, r.namesKey(char.UserID), nameKey(char.Name)).Err()
		return herr.Wrap(err, "failed to create character")
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, herr.InvalidArgument("character ID is required")
	}

	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, herr.Wrap(err, "failed to get character").WithMeta("character_id", id)
	}

	var char entities.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, herr.Wrap(err, "failed to unmarshal character").WithMeta("character_id", id)
	}
	return &char, nil
}

// GetByName resolves the name through the user's name hash
func (r *redisRepo) GetByName(ctx context.Context, userID, name string) (*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	id, err := r.client.HGet(ctx, r.namesKey(userID), nameKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nameNotFound(userID, name)
	}
	if err != nil {
		return nil, herr.Wrap(err, "failed to look up character name")
	}

	char, err := r.Get(ctx, id)
	if herr.IsNotFound(err) {
		return nil, nameNotFound(userID, name)
	}
	return char, err
}

// ListByOwner loads every character in the user's set concurrently
func (r *redisRepo) ListByOwner(ctx context.Context, userID string) ([]*entities.Character, error) {
	if userID == "" {
		return nil, herr.InvalidArgument("user ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerKey(userID)).Result()
	if err != nil {
		return nil, herr.Wrap(err, "failed to list character IDs").WithMeta("user_id", userID)
	}

	loaded := make([]*entities.Character, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			char, err := r.Get(gctx, id)
			if herr.IsNotFound(err) {
				// index entry outlived its character
				return nil
			}
			if err != nil {
				return err
			}
			loaded[i] = char
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*entities.Character, 0, len(loaded))
	for _, char := range loaded {
		if char != nil {
			result = append(result, char)
		}
	}
	sortByName(result)
	return result, nil
}

// Update replaces an existing character, moving its name index on rename
func (r *redisRepo) Update(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	existing, err := r.Get(ctx, char.ID)
	if err != nil {
		return err
	}

	oldName, newName := nameKey(existing.Name), nameKey(char.Name)
	if oldName != newName {
		claimed, err := r.client.HSetNX(ctx, r.namesKey(char.UserID), newName, char.ID).Result()
		if err != nil {
			return herr.Wrap(err, "failed to reserve character name")
		}
		if !claimed {
			return nameTaken(char.Name)
		}
	}

	data, err := json.Marshal(char)
	if err != nil {
		return herr.Wrap(err, "failed to marshal character")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(char.ID), data, 0)
		if oldName != newName {
			pipe.HDel(ctx, r.namesKey(existing.UserID), oldName)
		}
		return nil
	})
	if err != nil {
		return herr.Wrap(err, "failed to update character").WithMeta("character_id", char.ID)
	}

	return nil
}

// Delete removes a character and its index entries
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	active, err := r.client.Get(ctx, r.activeKey(existing.UserID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return herr.Wrap(err, "failed to read active character")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key(id))
		pipe.SRem(ctx, r.ownerKey(existing.UserID), id)
		pipe.HDel(ctx, r.namesKey(existing.UserID), nameKey(existing.Name))
		if active == id {
			pipe.Del(ctx, r.activeKey(existing.UserID))
		}
		return nil
	})
	if err != nil {
		return herr.Wrap(err, "failed to delete character").WithMeta("character_id", id)
	}

	return nil
}

// SetActive records the user's active character
func (r *redisRepo) SetActive(ctx context.Context, userID, characterID string) error {
	if userID == "" || characterID == "" {
		return herr.InvalidArgument("user ID and character ID are required")
	}

	char, err := r.Get(ctx, characterID)
	if err != nil {
		return err
	}
	if char.UserID != userID {
		return notOwner(userID, characterID)
	}

	if err := r.client.Set(ctx, r.activeKey(userID), characterID, 0).Err(); err != nil {
		return herr.Wrap(err, "failed to set active character")
	}
	return nil
}

// GetActive returns the user's active character ID
func (r *redisRepo) GetActive(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", herr.InvalidArgument("user ID is required")
	}

	id, err := r.client.Get(ctx, r.activeKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", noActive(userID)
	}
	if err != nil {
		return "", herr.Wrap(err, "failed to get active character")
	}
	return id, nil
}
