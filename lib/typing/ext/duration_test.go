package ext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	{
		// ISO-8601
		parsed, err := ParseDuration("P1DT2H3M4S")
		assert.NoError(t, err)
		assert.Equal(t, 26*time.Hour+3*time.Minute+4*time.Second, parsed)
	}
	{
		// Go literal
		parsed, err := ParseDuration("1h30m")
		assert.NoError(t, err)
		assert.Equal(t, 90*time.Minute, parsed)
	}
	{
		// Legacy days,hh:mm:ss
		parsed, err := ParseDuration("2,03:04:05")
		assert.NoError(t, err)
		assert.Equal(t, 51*time.Hour+4*time.Minute+5*time.Second, parsed)
	}
	{
		invalidValues := []string{"", "hello", "1,2", "x,01:02:03"}
		for _, invalidValue := range invalidValues {
			_, err := ParseDuration(invalidValue)
			assert.Error(t, err, invalidValue)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	{
		formatted := FormatDuration(26*time.Hour + 3*time.Minute + 4*time.Second)

		// Round trip through the canonical form
		parsed, err := ParseDuration(formatted)
		assert.NoError(t, err)
		assert.Equal(t, 26*time.Hour+3*time.Minute+4*time.Second, parsed)
	}
	{
		formatted := FormatDuration(90 * time.Minute)
		parsed, err := ParseDuration(formatted)
		assert.NoError(t, err)
		assert.Equal(t, 90*time.Minute, parsed)
	}
}
