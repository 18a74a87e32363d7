// file: service/cache.go

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// A read that misses before a ledger commit can refill the cache with the old
// balance after the commit invalidated it. accountCacheTTL bounds how long
// such a view can be served.
const (
	accountCacheTTL     = 30 * time.Second
	allAccountsCacheKey = "accounts:all"
)

// ICacheClient defines the contract for a cache client.
// *redis.Client satisfies it; tests use a mock.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

func accountCacheKey(accountID int) string {
	return fmt.Sprintf("account:%d", accountID)
}

// cacheGet decodes a cached JSON value into dst. Any miss or decode error reports false.
func cacheGet(ctx context.Context, cache ICacheClient, key string, dst any) bool {
	if cache == nil {
		return false
	}
	raw, err := cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}

// cacheSet stores v as JSON. Failures are ignored; the cache is only an accelerator.
func cacheSet(ctx context.Context, cache ICacheClient, key string, v any) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err == nil {
		cache.Set(ctx, key, data, accountCacheTTL)
	}
}

// invalidateAccounts drops the per-account views and the listing.
func invalidateAccounts(ctx context.Context, cache ICacheClient, accountIDs ...int) {
	if cache == nil {
		return
	}
	keys := make([]string, 0, len(accountIDs)+1)
	for _, id := range accountIDs {
		keys = append(keys, accountCacheKey(id))
	}
	keys = append(keys, allAccountsCacheKey)
	cache.Del(ctx, keys...)
}
