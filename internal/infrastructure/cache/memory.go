// Package cache provides an in-memory TTL cache for barcode lookups.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/eatwise/backend/internal/domain"
)

// cacheItem represents a single cached food item with expiration
type cacheItem struct {
	item       *domain.FoodItem
	expiration time.Time
}

// Memory is a thread-safe in-memory cache with TTL support
type Memory struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemory creates a new in-memory cache and starts its cleanup loop
func NewMemory() *Memory {
	c := &Memory{
		data: make(map[string]cacheItem),
	}

	// Remove expired entries every 10 minutes
	go c.cleanupExpired()

	return c
}

// Get retrieves a food item from the cache
func (c *Memory) Get(ctx context.Context, key string) (*domain.FoodItem, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}
	if time.Now().After(entry.expiration) {
		return nil, domain.ErrCacheMiss
	}

	// Hand out a copy so callers cannot mutate the cached value
	item := *entry.item
	return &item, nil
}

// Set stores a food item in the cache with TTL
func (c *Memory) Set(ctx context.Context, key string, item *domain.FoodItem, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	stored := *item
	c.data[key] = cacheItem{
		item:       &stored,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a food item from the cache
func (c *Memory) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *Memory) Exists(ctx context.Context, key string) (bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return false, nil
	}
	if time.Now().After(entry.expiration) {
		return false, nil
	}
	return true, nil
}

// cleanupExpired removes expired entries from the cache periodically
func (c *Memory) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, entry := range c.data {
			if now.After(entry.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}

// Size returns the current number of items in the cache
func (c *Memory) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

// Clear removes all items from the cache
func (c *Memory) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheItem)
}
