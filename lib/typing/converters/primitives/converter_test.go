package primitives

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
)

func TestInt64Converter_Convert(t *testing.T) {
	converter := Int64Converter{}
	{
		// Valid string
		got, err := converter.Convert("123")
		assert.NoError(t, err)
		assert.Equal(t, int64(123), got)
	}
	{
		// Invalid string
		_, err := converter.Convert("not a number")
		assert.Error(t, err)
	}
	{
		// Integer widths
		for _, value := range []any{int8(5), int16(5), int32(5), 5, int64(5), uint8(5), uint16(5), uint32(5), uint(5), uint64(5)} {
			got, err := converter.Convert(value)
			assert.NoError(t, err)
			assert.Equal(t, int64(5), got)
		}
	}
	{
		// uint64 overflow
		_, err := converter.Convert(uint64(math.MaxUint64))
		assert.Error(t, err)
	}
	{
		// Booleans become bits
		got, err := converter.Convert(true)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), got)

		got, err = converter.Convert(false)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), got)
	}
	{
		// Whole floats convert, fractional floats do not
		got, err := converter.Convert(float64(1234))
		assert.NoError(t, err)
		assert.Equal(t, int64(1234), got)

		_, err = converter.Convert(3.14)
		assert.Error(t, err)
	}
	{
		// Decimals
		parsed, _, err := apd.NewFromString("42")
		assert.NoError(t, err)

		got, err := converter.Convert(parsed)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), got)
	}
	{
		// Unsupported type
		_, err := converter.Convert([]any{1})
		assert.Error(t, err)
	}
}

func TestFloat64Converter_Convert(t *testing.T) {
	converter := Float64Converter{}
	{
		got, err := converter.Convert("3.14")
		assert.NoError(t, err)
		assert.Equal(t, 3.14, got)
	}
	{
		got, err := converter.Convert(float32(1.5))
		assert.NoError(t, err)
		assert.Equal(t, 1.5, got)
	}
	{
		got, err := converter.Convert(7)
		assert.NoError(t, err)
		assert.Equal(t, 7.0, got)
	}
	{
		_, err := converter.Convert("abc")
		assert.Error(t, err)
	}
	{
		parsed, _, err := apd.NewFromString("2.5")
		assert.NoError(t, err)

		got, err := converter.Convert(parsed)
		assert.NoError(t, err)
		assert.Equal(t, 2.5, got)
	}
}

func TestBooleanConverter_Convert(t *testing.T) {
	converter := BooleanConverter{}
	{
		got, err := converter.Convert("true")
		assert.NoError(t, err)
		assert.True(t, got)
	}
	{
		got, err := converter.Convert(false)
		assert.NoError(t, err)
		assert.False(t, got)
	}
	{
		// Bits
		got, err := converter.Convert(1)
		assert.NoError(t, err)
		assert.True(t, got)

		got, err = converter.Convert(int64(0))
		assert.NoError(t, err)
		assert.False(t, got)
	}
	{
		_, err := converter.Convert(2)
		assert.Error(t, err)

		_, err = converter.Convert("maybe")
		assert.Error(t, err)
	}
}

func TestComplex128Converter_Convert(t *testing.T) {
	converter := Complex128Converter{}
	{
		got, err := converter.Convert("1+2i")
		assert.NoError(t, err)
		assert.Equal(t, complex(1, 2), got)
	}
	{
		got, err := converter.Convert(3.0)
		assert.NoError(t, err)
		assert.Equal(t, complex(3, 0), got)
	}
	{
		got, err := converter.Convert(complex64(complex(1, 1)))
		assert.NoError(t, err)
		assert.Equal(t, complex(1, 1), got)
	}
	{
		_, err := converter.Convert("abc")
		assert.Error(t, err)
	}
}
