package converters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loosetype/datautils/lib/typing/ext"
)

func TestPrimitiveConverter_Convert(t *testing.T) {
	{
		converted, err := PrimitiveConverter{}.Convert(3.14)
		assert.NoError(t, err)
		assert.Equal(t, "3.14", converted)
	}
	{
		converted, err := PrimitiveConverter{}.Convert(true)
		assert.NoError(t, err)
		assert.Equal(t, "true", converted)
	}
	{
		_, err := PrimitiveConverter{}.Convert([]any{1})
		assert.ErrorContains(t, err, "failed to cast value as primitive")
	}
}

func TestStringConverter_Convert(t *testing.T) {
	converted, err := StringConverter{}.Convert("hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", converted)

	_, err = StringConverter{}.Convert(42)
	assert.ErrorContains(t, err, "failed to cast value as string")
}

func TestDateConverter_Convert(t *testing.T) {
	{
		converted, err := DateConverter{}.Convert(ext.NewDate(2023, time.February, 14))
		assert.NoError(t, err)
		assert.Equal(t, "2023-02-14", converted)
	}
	{
		// Layout override
		converted, err := DateConverter{Layout: "01/02/2006"}.Convert(ext.NewDate(2023, time.February, 14))
		assert.NoError(t, err)
		assert.Equal(t, "02/14/2023", converted)
	}
	{
		_, err := DateConverter{}.Convert("2023-02-14")
		assert.ErrorContains(t, err, "failed to cast value as date")
	}
}

func TestMapConverter_Convert(t *testing.T) {
	converted, err := MapConverter{Format: FormatJSON}.Convert(map[string]any{"x": 1})
	assert.NoError(t, err)
	assert.Equal(t, `{"x":1}`, converted)

	_, err = MapConverter{Format: FormatJSON}.Convert("not a map")
	assert.ErrorContains(t, err, "failed to cast value as map")
}

func TestFallbackConverter_Convert(t *testing.T) {
	converted, err := FallbackConverter{}.Convert(struct{ Name string }{Name: "x"})
	assert.NoError(t, err)
	assert.Equal(t, "{x}", converted)
}
