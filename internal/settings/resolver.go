// Package settings caches tenant settings lookups so per-request tenant
// resolution does not hammer the upstream.
package settings

import (
	"context"
	"sync"
	"time"

	"github.com/salonyai/storefront/internal/domain"
)

// Client is the slice of the Salony API the resolver needs
type Client interface {
	GetWebsiteSettings(ctx context.Context, slug string) (*domain.TenantSettings, error)
}

// Resolver is a TTL cache in front of GET /WebsiteSetting/{slug}. Lookup
// failures are not cached, so an unknown slug is retried on the next request.
type Resolver struct {
	client Client
	ttl    time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	settings  *domain.TenantSettings
	fetchedAt time.Time
}

// NewResolver creates a settings resolver with the given cache TTL
func NewResolver(client Client, ttl time.Duration) *Resolver {
	return &Resolver{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the tenant settings for a slug, from cache when fresh
func (r *Resolver) Get(ctx context.Context, slug string) (*domain.TenantSettings, error) {
	r.mu.Lock()
	entry, ok := r.entries[slug]
	r.mu.Unlock()

	if ok && time.Since(entry.fetchedAt) < r.ttl {
		return entry.settings, nil
	}

	settings, err := r.client.GetWebsiteSettings(ctx, slug)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.entries[slug] = cacheEntry{settings: settings, fetchedAt: time.Now()}
	r.mu.Unlock()

	return settings, nil
}

// Invalidate drops a slug from the cache
func (r *Resolver) Invalidate(slug string) {
	r.mu.Lock()
	delete(r.entries, slug)
	r.mu.Unlock()
}
