package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJSON(t *testing.T) {
	{
		invalidValues := []string{
			`{"hello": "world"`,
			`{"hello": "world"}}`,
			`{null}`,
			"",
			"foo",
			"  {}",
			"[1,2]",
		}

		for _, invalidValue := range invalidValues {
			assert.False(t, IsJSON(invalidValue), invalidValue)
		}
	}
	{
		validValues := []string{
			"{}",
			`{"hello": "world"}`,
			`{
				"hello": {
					"world": {
						"nested_value": true
					}
				},
				"add_a_list_here": [1, 2, 3, 4],
				"number": 7.5,
				"integerNum": 7
			}`,
		}

		for _, validValue := range validValues {
			assert.True(t, IsJSON(validValue), validValue)
		}
	}
}

func TestIsJSONArray(t *testing.T) {
	assert.True(t, IsJSONArray("[]"))
	assert.True(t, IsJSONArray(`[1, "two", 3.5]`))
	assert.False(t, IsJSONArray("[1, 2"))
	assert.False(t, IsJSONArray("{}"))
	assert.False(t, IsJSONArray("1, 2"))
}

func TestNormalizeNumbers(t *testing.T) {
	var decoded any
	assert.NoError(t, Unmarshal([]byte(`{"int": 5, "float": 5.5, "big": 9223372036854775807, "list": [1, 2.5]}`), &decoded))

	normalized, isOk := NormalizeNumbers(decoded).(map[string]any)
	assert.True(t, isOk)
	assert.Equal(t, int64(5), normalized["int"])
	assert.Equal(t, 5.5, normalized["float"])
	assert.Equal(t, int64(9223372036854775807), normalized["big"])
	assert.Equal(t, []any{int64(1), 2.5}, normalized["list"])
}

func TestMarshalSortsKeys(t *testing.T) {
	encoded, err := Marshal(map[string]any{"b": 1, "a": 2, "c": 3})
	assert.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1,"c":3}`, string(encoded))
}
