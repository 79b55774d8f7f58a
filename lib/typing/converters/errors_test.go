package converters

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionError(t *testing.T) {
	err := NewConversionError("not-a-uuid", "uuid")
	assert.Equal(t, "Failed to convert not-a-uuid to uuid", err.Error())
	assert.Equal(t, "not-a-uuid", err.Value)
	assert.Equal(t, "uuid", err.TypeName)

	assert.True(t, IsConversionError(err))
	assert.True(t, IsConversionError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsConversionError(errors.New("some other error")))
	assert.False(t, IsConversionError(nil))
}

func TestParseError(t *testing.T) {
	err := NewParseError("failed to parse JSON", InvalidJSON)
	assert.Equal(t, "failed to parse JSON", err.Error())
	assert.Equal(t, InvalidJSON, err.Kind())

	assert.True(t, IsParseError(err))
	assert.False(t, IsParseError(errors.New("some other error")))
}
