// Package cache provides caching for scenes and rendered artifacts.
//
// The scene service caches rendered SVG/PNG artifacts keyed by scene
// content hash, so re-rendering an unchanged scene is a byte copy.
// Backends range from in-memory (tests) over files (CLI) to Redis
// (service deployments).
package cache

import (
	"context"
	"sync"
	"time"
)

// Cache stores byte blobs under string keys with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases cache resources.
	Close() error
}

// ============================================================================
// Keyers
// ============================================================================

// ArtifactKeyOpts carries the render parameters that distinguish
// artifacts of the same scene.
type ArtifactKeyOpts struct {
	Format string
	View   string
	Width  int
	Height int
}

// Keyer generates cache keys. Implementations may namespace keys for
// multi-tenant deployments; see ScopedKeyer.
type Keyer interface {
	// SceneKey generates a key for a stored scene document.
	SceneKey(sceneID string) string

	// ArtifactKey generates a key for a rendered artifact of the scene
	// with the given content hash.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SceneKey generates a key for a stored scene document.
func (k *DefaultKeyer) SceneKey(sceneID string) string {
	return "scene:" + sceneID
}

// ArtifactKey generates a key for a rendered artifact. The render
// parameters are hashed into the key so different formats and sizes
// never collide.
func (k *DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

// ============================================================================
// Memory cache
// ============================================================================

// MemoryCache is a process-local cache. Entries expire lazily on Get.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Close does nothing for the memory cache.
func (c *MemoryCache) Close() error {
	return nil
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
