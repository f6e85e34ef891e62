package workflow

import (
	"maps"
	"sync"
	"time"
)

// Context is the mutable domain payload a workflow instance carries across
// states: amounts, foreign keys, flags, free-form notes. It is exclusively
// owned by one Machine; guards read it, transition actions and
// Machine.UpdateContext mutate it, nothing else may.
type Context struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewContext creates a context seeded with the given fields.
func NewContext(seed map[string]any) *Context {
	data := make(map[string]any, len(seed))
	maps.Copy(data, seed)

	return &Context{data: data}
}

// Get retrieves a raw value.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, ok := c.data[key]

	return val, ok
}

// Set stores a value.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = value
}

// Delete removes a key. Deleting an absent key is a no-op.
func (c *Context) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
}

// GetString retrieves a string value.
func (c *Context) GetString(key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}

	str, ok := val.(string)

	return str, ok
}

// GetBool retrieves a boolean value.
func (c *Context) GetBool(key string) (bool, bool) {
	val, ok := c.Get(key)
	if !ok {
		return false, false
	}

	b, ok := val.(bool)

	return b, ok
}

// GetInt retrieves an integer value. Float values with no fractional part
// also satisfy an int read, since event payloads decoded from JSON arrive
// as float64.
func (c *Context) GetInt(key string) (int, bool) {
	val, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	switch n := val.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}

	return 0, false
}

// GetFloat retrieves a numeric value as float64, accepting int, int64, and
// float64 representations. Monetary guard fields go through this.
func (c *Context) GetFloat(key string) (float64, bool) {
	val, ok := c.Get(key)
	if !ok {
		return 0, false
	}

	switch n := val.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}

	return 0, false
}

// GetTime retrieves a time.Time value.
func (c *Context) GetTime(key string) (time.Time, bool) {
	val, ok := c.Get(key)
	if !ok {
		return time.Time{}, false
	}

	t, ok := val.(time.Time)

	return t, ok
}

// Merge copies the given fields into the context, overwriting existing keys.
func (c *Context) Merge(fields map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	maps.Copy(c.data, fields)
}

// Snapshot returns a copy of the current fields. Values are copied
// shallowly; context values are flat domain scalars by convention.
func (c *Context) Snapshot() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := make(map[string]any, len(c.data))
	maps.Copy(snap, c.data)

	return snap
}

// Restore replaces the entire contents with the given snapshot. The machine
// uses this to roll back after a failed transition.
func (c *Context) Restore(snapshot map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]any, len(snapshot))
	maps.Copy(c.data, snapshot)
}
