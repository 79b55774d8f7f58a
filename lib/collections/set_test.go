package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	{
		// Duplicates collapse
		set := NewSet(1, 2, 2, 3)
		assert.Equal(t, 3, set.Len())
		assert.True(t, set.Contains(2))
	}
	{
		// Add reports whether the item was accepted
		set := NewSet()
		assert.True(t, set.Add("hello"))
		assert.True(t, set.Contains("hello"))

		// Unhashable items are rejected
		assert.False(t, set.Add([]any{1, 2}))
		assert.Equal(t, 1, set.Len())
	}
	{
		// Remove
		set := NewSet("a", "b")
		set.Remove("a")
		assert.False(t, set.Contains("a"))
		assert.Equal(t, 1, set.Len())

		// Removing a missing item is a no-op
		set.Remove("missing")
		assert.Equal(t, 1, set.Len())
	}
	{
		// Items returns a copy
		set := NewSet(1)
		items := set.Items()
		assert.Len(t, items, 1)
		items[0] = 99
		assert.True(t, set.Contains(1))
	}
}

func TestFrozenSet(t *testing.T) {
	frozen := NewFrozenSet("x", "y", "x")
	assert.Equal(t, 2, frozen.Len())
	assert.True(t, frozen.Contains("x"))
	assert.False(t, frozen.Contains("z"))
}
