package typing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loosetype/datautils/lib/collections"
	"github.com/loosetype/datautils/lib/typing/ext"
)

func TestCouldBeBool(t *testing.T) {
	assert.True(t, CouldBeBool(true))
	assert.True(t, CouldBeBool("yes"))
	assert.True(t, CouldBeBool("0"))
	assert.False(t, CouldBeBool("2"))
	assert.False(t, CouldBeBool(1)) // an int is not a bool
}

func TestCouldBeNumeric(t *testing.T) {
	{
		assert.True(t, CouldBeInt(42))
		assert.True(t, CouldBeInt("42"))
		assert.False(t, CouldBeInt("3.14"))
		assert.False(t, CouldBeInt(3.14))
	}
	{
		// Widening: ints satisfy float, both satisfy complex
		assert.True(t, CouldBeFloat(42))
		assert.True(t, CouldBeFloat("3.14"))
		assert.True(t, CouldBeComplex(3.14))
		assert.True(t, CouldBeComplex("123"))
		assert.False(t, CouldBeComplex("abc"))
	}
	{
		assert.True(t, CouldBeDecimal("1.5"))
		assert.True(t, CouldBeFraction("1/3"))
		assert.False(t, CouldBeFraction("abc"))
	}
}

func TestCouldBeTemporal(t *testing.T) {
	assert.True(t, CouldBeDate("2023-02-14"))
	assert.True(t, CouldBeDate(ext.NewDate(2023, time.February, 14)))
	assert.False(t, CouldBeDate("14th of February"))

	assert.True(t, CouldBeDatetime("2023-02-14T10:30:00Z"))
	assert.False(t, CouldBeDatetime("2023-02-14"))

	assert.True(t, CouldBeTime("10:30:00"))
	assert.True(t, CouldBeDuration("PT1H"))
	assert.True(t, CouldBeDuration(time.Hour))
	assert.True(t, CouldBeTimezone("UTC"))
}

func TestCouldBeContainers(t *testing.T) {
	assert.True(t, CouldBeMap(`{"a": 1}`))
	assert.True(t, CouldBeMap(map[string]any{}))
	assert.False(t, CouldBeMap("[1, 2]"))

	assert.True(t, CouldBeSlice("[1, 2]"))
	assert.True(t, CouldBeSlice([]any{}))

	assert.True(t, CouldBeSet("{1,2}"))
	assert.False(t, CouldBeSet("{a:1}"))

	assert.True(t, CouldBeTuple("(a,b)"))
	assert.False(t, CouldBeTuple("[a,b]"))

	assert.True(t, CouldBeDefaultMap(`{"a": 1}`))
	assert.True(t, CouldBeDefaultMap(collections.NewDefaultMapFromMap(map[string]any{}, nil)))
	assert.False(t, CouldBeDefaultMap("[1, 2]"))

	assert.True(t, CouldBeFrozenMap(`{"a": 1}`))
	assert.True(t, CouldBeFrozenMap(collections.NewFrozenMap(map[string]any{})))
	assert.False(t, CouldBeFrozenMap("not a map"))

	// Any non-empty string is a countable iterable
	assert.True(t, CouldBeCounter("abc"))
	assert.True(t, CouldBeCounter(collections.NewCounter()))
	assert.False(t, CouldBeCounter(""))
	assert.False(t, CouldBeCounter(42))
}

func TestCouldBeIdentifiers(t *testing.T) {
	assert.True(t, CouldBeUUID("3f2504e0-4f89-11d3-9a0c-0305e82c3301"))
	assert.False(t, CouldBeUUID("nope"))

	assert.True(t, CouldBePath("/etc/app"))
	assert.False(t, CouldBePath("word"))
}
