package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

// The rendering tier caches computed page payloads under "page:<path>".
const pageKeyPrefix = "page:"

var _ ports.ViewCache = (*ViewCache)(nil)

// ViewCache invalidates cached page payloads stored in Redis.
type ViewCache struct {
	client *goredis.Client
}

// NewViewCache wires a Redis-backed view cache. Caller owns the client.
func NewViewCache(client *goredis.Client) *ViewCache {
	return &ViewCache{client: client}
}

// Invalidate drops the cached payload for the path so the next read
// recomputes it. Deleting a key that is not cached is a no-op.
func (c *ViewCache) Invalidate(ctx context.Context, path string) error {
	if c == nil || c.client == nil {
		return errors.New("redis view cache not configured")
	}
	return c.client.Del(ctx, pageKeyPrefix+path).Err()
}
