package memory

import (
	"context"
	"sync"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

var _ ports.ViewCache = (*ViewCache)(nil)

// ViewCache is a map-backed view cache for development and tests.
type ViewCache struct {
	mu    sync.Mutex
	pages map[string][]byte
}

// NewViewCache constructs an empty in-memory view cache.
func NewViewCache() *ViewCache {
	return &ViewCache{pages: map[string][]byte{}}
}

// Put stores a rendered payload under the path.
func (c *ViewCache) Put(path string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[path] = append([]byte(nil), payload...)
}

// Get returns the cached payload for the path, if any.
func (c *ViewCache) Get(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.pages[path]
	return payload, ok
}

// Invalidate drops the cached payload for the path.
func (c *ViewCache) Invalidate(_ context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pages, path)
	return nil
}
