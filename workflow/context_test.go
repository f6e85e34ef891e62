package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextSeedIsCopied(t *testing.T) {
	t.Parallel()

	seed := map[string]any{"amount": 10.0}
	c := NewContext(seed)

	seed["amount"] = 99.0

	amount, ok := c.GetFloat("amount")
	require.True(t, ok)
	assert.InDelta(t, 10.0, amount, 1e-9)
}

func TestContextTypedGetters(t *testing.T) {
	t.Parallel()

	now := time.Now()

	c := NewContext(map[string]any{
		"name":    "ACME",
		"active":  true,
		"count":   3,
		"ratio":   0.5,
		"whole":   7.0, // float with no fraction, as decoded from JSON
		"created": now,
	})

	name, ok := c.GetString("name")
	require.True(t, ok)
	assert.Equal(t, "ACME", name)

	active, ok := c.GetBool("active")
	require.True(t, ok)
	assert.True(t, active)

	count, ok := c.GetInt("count")
	require.True(t, ok)
	assert.Equal(t, 3, count)

	whole, ok := c.GetInt("whole")
	require.True(t, ok)
	assert.Equal(t, 7, whole)

	_, ok = c.GetInt("ratio")
	assert.False(t, ok, "fractional float is not an int")

	ratio, ok := c.GetFloat("ratio")
	require.True(t, ok)
	assert.InDelta(t, 0.5, ratio, 1e-9)

	count2, ok := c.GetFloat("count")
	require.True(t, ok)
	assert.InDelta(t, 3.0, count2, 1e-9)

	created, ok := c.GetTime("created")
	require.True(t, ok)
	assert.Equal(t, now, created)

	_, ok = c.GetString("missing")
	assert.False(t, ok)
}

func TestContextSnapshotRestore(t *testing.T) {
	t.Parallel()

	c := NewContext(map[string]any{"a": 1, "b": 2})

	snapshot := c.Snapshot()

	c.Set("a", 100)
	c.Delete("b")
	c.Set("c", 3)

	c.Restore(snapshot)

	a, _ := c.Get("a")
	assert.Equal(t, 1, a)

	b, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, b)

	_, ok = c.Get("c")
	assert.False(t, ok)
}

func TestContextSnapshotIsDetached(t *testing.T) {
	t.Parallel()

	c := NewContext(map[string]any{"a": 1})

	snapshot := c.Snapshot()
	c.Set("a", 2)

	assert.Equal(t, 1, snapshot["a"])
}

func TestContextMerge(t *testing.T) {
	t.Parallel()

	c := NewContext(map[string]any{"a": 1, "b": 2})
	c.Merge(map[string]any{"b": 20, "c": 30})

	b, _ := c.Get("b")
	assert.Equal(t, 20, b)

	cv, _ := c.Get("c")
	assert.Equal(t, 30, cv)
}
