package cache

import "sync"

// NoPreviousRequest is returned by Get until the first Save
const NoPreviousRequest = "Нет предыдущего запроса."

// LastResult keeps the most recent formatted /inn response.
// It holds a single value which every Save replaces.
type LastResult struct {
	mu    sync.RWMutex
	value string
	set   bool
}

// NewLastResult creates an empty cache
func NewLastResult() *LastResult {
	return &LastResult{}
}

// Save replaces the cached response
func (c *LastResult) Save(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = text
	c.set = true
}

// Get returns the cached response or NoPreviousRequest
func (c *LastResult) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set {
		return NoPreviousRequest
	}
	return c.value
}
