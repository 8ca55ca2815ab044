package characters

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/herald-bot/internal/clock"
	"github.com/KirkDiggler/herald-bot/internal/entities"
)

const (
	DefaultCacheSize = 100
	DefaultCacheTTL  = 5 * time.Minute
)

// CacheConfig sizes the read-through cache
type CacheConfig struct {
	MaxSize int
	TTL     time.Duration
	Clock   clock.Clock
}

// CacheStats is a point-in-time view of the cache
type CacheStats struct {
	Size   int   `json:"size"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

type cacheEntry struct {
	char     *entities.Character
	storedAt time.Time
}

// CachedRepository fronts another repository with a bounded TTL cache of
// characters by ID. Writes through it invalidate the affected entry.
type CachedRepository struct {
	next    Repository
	maxSize int
	ttl     time.Duration
	clock   clock.Clock

	mu      sync.Mutex
	entries map[string]cacheEntry
	// writes counts invalidations; a read-through fill is dropped when a
	// write landed while the backing read was in flight
	writes uint64
	hits   int64
	misses int64
}

// NewCached wraps next with a cache
func NewCached(next Repository, cfg CacheConfig) *CachedRepository {
	if next == nil {
		panic("cached repository needs a backing repository")
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	return &CachedRepository{
		next:    next,
		maxSize: cfg.MaxSize,
		ttl:     cfg.TTL,
		clock:   cfg.Clock,
		entries: make(map[string]cacheEntry, cfg.MaxSize),
	}
}

// Create stores through to the backing repository
func (r *CachedRepository) Create(ctx context.Context, char *entities.Character) error {
	if err := r.next.Create(ctx, char); err != nil {
		return err
	}
	r.put(char)
	return nil
}

// Get serves from cache while the entry is fresh
func (r *CachedRepository) Get(ctx context.Context, id string) (*entities.Character, error) {
	if char, ok := r.lookup(id); ok {
		return char, nil
	}

	writes := r.writeCount()
	char, err := r.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.fill(char, writes)
	return char, nil
}

// GetByName always asks the backing store and refreshes the cached copy
func (r *CachedRepository) GetByName(ctx context.Context, userID, name string) (*entities.Character, error) {
	writes := r.writeCount()
	char, err := r.next.GetByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	r.fill(char, writes)
	return char, nil
}

// ListByOwner passes through
func (r *CachedRepository) ListByOwner(ctx context.Context, userID string) ([]*entities.Character, error) {
	return r.next.ListByOwner(ctx, userID)
}

// Update writes through and drops the stale entry on both sides of the write
func (r *CachedRepository) Update(ctx context.Context, char *entities.Character) error {
	if char == nil {
		return r.next.Update(ctx, char)
	}

	r.invalidate(char.ID)
	defer r.invalidate(char.ID)
	return r.next.Update(ctx, char)
}

// Delete removes from both layers
func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	r.invalidate(id)
	defer r.invalidate(id)
	return r.next.Delete(ctx, id)
}

// SetActive passes through
func (r *CachedRepository) SetActive(ctx context.Context, userID, characterID string) error {
	return r.next.SetActive(ctx, userID, characterID)
}

// GetActive passes through
func (r *CachedRepository) GetActive(ctx context.Context, userID string) (string, error) {
	return r.next.GetActive(ctx, userID)
}

// Stats reports hit and miss counters
func (r *CachedRepository) Stats() CacheStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return CacheStats{Size: len(r.entries), Hits: r.hits, Misses: r.misses}
}

func (r *CachedRepository) lookup(id string) (*entities.Character, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if ok && r.clock.Now().Sub(entry.storedAt) < r.ttl {
		r.hits++
		return entry.char.Clone(), true
	}
	if ok {
		delete(r.entries, id)
	}
	r.misses++
	return nil, false
}

func (r *CachedRepository) writeCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

// fill caches a character read from the backing store unless a write
// happened since writes was taken
func (r *CachedRepository) fill(char *entities.Character, writes uint64) {
	if char == nil || char.ID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writes != writes {
		return
	}
	r.putLocked(char)
}

func (r *CachedRepository) put(char *entities.Character) {
	if char == nil || char.ID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.putLocked(char)
}

func (r *CachedRepository) putLocked(char *entities.Character) {
	if _, exists := r.entries[char.ID]; !exists && len(r.entries) >= r.maxSize {
		r.evictOldestLocked()
	}
	r.entries[char.ID] = cacheEntry{char: char.Clone(), storedAt: r.clock.Now()}
}

func (r *CachedRepository) invalidate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	delete(r.entries, id)
}

func (r *CachedRepository) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, entry := range r.entries {
		if oldestID == "" || entry.storedAt.Before(oldest) {
			oldestID, oldest = id, entry.storedAt
		}
	}
	delete(r.entries, oldestID)
}
