package textmodel

import "sync"

// Cache keeps loaded models by path so each artifact is read once per process.
type Cache struct {
	mu     sync.RWMutex
	models map[string]*Model
	load   func(string) (*Model, error)
}

// NewCache returns an empty cache that loads models from disk.
func NewCache() *Cache {
	return &Cache{models: map[string]*Model{}, load: Load}
}

// Get returns the model stored at path, loading it on first use.
// Failed loads are not cached.
func (c *Cache) Get(path string) (*Model, error) {
	c.mu.RLock()
	m, ok := c.models[path]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.models[path]; ok {
		return m, nil
	}
	m, err := c.load(path)
	if err != nil {
		return nil, err
	}
	c.models[path] = m
	return m, nil
}

// Invalidate forgets the model at path. Call it after saving a new one.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.models, path)
	c.mu.Unlock()
}
