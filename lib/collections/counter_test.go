package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	{
		// Counting runes in a string
		counter := NewCounterFromString("aabbbc")
		assert.Equal(t, 2, counter.Get("a"))
		assert.Equal(t, 3, counter.Get("b"))
		assert.Equal(t, 1, counter.Get("c"))
		assert.Equal(t, 0, counter.Get("z"))
		assert.Equal(t, 3, counter.Len())
	}
	{
		// Counting arbitrary items
		counter := NewCounterFromItems(1, 1, 2)
		assert.Equal(t, 2, counter.Get(1))
		assert.Equal(t, 1, counter.Get(2))
	}
	{
		// Add increments and rejects unhashable items
		counter := NewCounter()
		assert.True(t, counter.Add("x"))
		assert.True(t, counter.Add("x"))
		assert.Equal(t, 2, counter.Get("x"))
		assert.False(t, counter.Add(map[string]any{}))
	}
}
