package provider

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/iamasit07/4-in-a-row-ai/backend/internal/domain"
)

// Suggester is anything that can propose a column for the AI.
type Suggester interface {
	SuggestColumn(ctx context.Context, req domain.MoveRequest) (int, error)
}

// CacheRepository is the shared second-level store, usually redis.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type cachedColumn struct {
	column  int
	expires time.Time
}

// CachedProvider memoises suggestions per difficulty and board. Easy is
// never cached since it is meant to be erratic.
type CachedProvider struct {
	next   Suggester
	local  *lru.Cache[string, cachedColumn]
	ttl    time.Duration
	shared CacheRepository // nil when redis is off

	now func() time.Time
}

func NewCachedProvider(next Suggester, size int, ttl time.Duration, shared CacheRepository) (*CachedProvider, error) {
	if size <= 0 {
		size = 1024
	}
	local, err := lru.New[string, cachedColumn](size)
	if err != nil {
		return nil, err
	}
	return &CachedProvider{
		next:   next,
		local:  local,
		ttl:    ttl,
		shared: shared,
		now:    time.Now,
	}, nil
}

func (c *CachedProvider) SuggestColumn(ctx context.Context, req domain.MoveRequest) (int, error) {
	if req.Difficulty == domain.DifficultyEasy {
		return c.next.SuggestColumn(ctx, req)
	}

	key := cacheKey(req)
	if col, ok := c.lookup(ctx, key); ok {
		return col, nil
	}

	col, err := c.next.SuggestColumn(ctx, req)
	if err != nil {
		return col, err
	}

	// only cache answers that are playable on this board
	if domain.IsValidMove(req.Board, col) {
		c.store(ctx, key, col)
	}
	return col, nil
}

func (c *CachedProvider) lookup(ctx context.Context, key string) (int, bool) {
	if entry, ok := c.local.Get(key); ok {
		if c.ttl <= 0 || c.now().Before(entry.expires) {
			return entry.column, true
		}
		c.local.Remove(key)
	}

	if c.shared == nil {
		return 0, false
	}
	raw, err := c.shared.Get(ctx, key)
	if err != nil || raw == "" {
		return 0, false
	}
	col, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[CACHE] Dropping malformed entry %s: %q", key, raw)
		_ = c.shared.Del(ctx, key)
		return 0, false
	}
	c.local.Add(key, cachedColumn{column: col, expires: c.now().Add(c.ttl)})
	return col, true
}

func (c *CachedProvider) store(ctx context.Context, key string, col int) {
	c.local.Add(key, cachedColumn{column: col, expires: c.now().Add(c.ttl)})

	if c.shared != nil {
		if err := c.shared.Set(ctx, key, col, c.ttl); err != nil {
			log.Printf("[CACHE] Failed to write %s: %v", key, err)
		}
	}
}

// Len reports the number of locally cached suggestions.
func (c *CachedProvider) Len() int {
	return c.local.Len()
}

func cacheKey(req domain.MoveRequest) string {
	sum := sha1.Sum([]byte(req.Board.String()))
	return fmt.Sprintf("suggestion:%s:%d:%s", req.Difficulty, req.AIPiece, hex.EncodeToString(sum[:]))
}
