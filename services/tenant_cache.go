package services

import (
	"sync"
	"time"

	"github.com/quentinhas/quentinhas-api/models"
)

// TenantCache is a TTL-bounded slug → tenant cache owned by a single
// resolver. Entries past the TTL are treated as absent and evicted on the
// next read. The cache is safe for concurrent use by request handlers.
type TenantCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]tenantCacheEntry
	now     func() time.Time // overridable in tests
}

type tenantCacheEntry struct {
	tenant    *models.Tenant
	timestamp time.Time
}

// NewTenantCache creates a cache whose entries expire after ttl
func NewTenantCache(ttl time.Duration) *TenantCache {
	return &TenantCache{
		ttl:     ttl,
		entries: make(map[string]tenantCacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached tenant for slug, or nil if absent or expired.
// Expired entries are evicted.
func (c *TenantCache) Get(slug string) *models.Tenant {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[slug]
	if !ok {
		return nil
	}
	if c.now().Sub(entry.timestamp) > c.ttl {
		delete(c.entries, slug)
		return nil
	}
	return entry.tenant
}

// Set stores tenant under slug with the current timestamp
func (c *TenantCache) Set(slug string, tenant *models.Tenant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[slug] = tenantCacheEntry{tenant: tenant, timestamp: c.now()}
}

// Invalidate removes a single slug from the cache
func (c *TenantCache) Invalidate(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, slug)
}

// InvalidateAll clears the entire cache
func (c *TenantCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]tenantCacheEntry)
}

// Len reports the number of entries, including any not yet evicted
func (c *TenantCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
