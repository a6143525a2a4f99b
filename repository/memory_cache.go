package repository

import (
	"sync"

	"startup-reality-engine/domain"
)

// MemoryCache is the default in-process cache backend. It grows without
// bound for the lifetime of the process; request volume is low enough that
// eviction is not worth the complexity.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]domain.EvaluationResult
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]domain.EvaluationResult),
	}
}

func (c *MemoryCache) Get(key string) (domain.EvaluationResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.data[key]
	return result, ok
}

func (c *MemoryCache) Set(key string, result domain.EvaluationResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = result
	return nil
}
