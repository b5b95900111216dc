package ports

import "context"

// ViewCache marks cached page data under a path stale so the next read
// recomputes it. Invalidation is advisory: callers do not gate success of a
// mutation on it.
type ViewCache interface {
	Invalidate(ctx context.Context, path string) error
}

// NoopViewCache is a safe default when no cache tier is configured.
var NoopViewCache ViewCache = noopViewCache{}

type noopViewCache struct{}

func (noopViewCache) Invalidate(_ context.Context, _ string) error { return nil }
