package ext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	date := NewDate(2023, time.February, 14)
	assert.Equal(t, "2023-02-14", date.String())
	assert.Equal(t, "02/14/2023", date.Format("01/02/2006"))

	// DateFromTime drops the clock
	ts := time.Date(2023, time.February, 14, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, date, DateFromTime(ts))
}

func TestTime(t *testing.T) {
	clock := NewTime(10, 30, 0, 0)
	assert.Equal(t, "10:30:00", clock.String())

	// Fractional seconds render without trailing zeros
	assert.Equal(t, "10:30:00.5", NewTime(10, 30, 0, 500000000).String())

	// TimeFromTime drops the date
	ts := time.Date(2023, time.February, 14, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, clock, TimeFromTime(ts))
}

func TestTimezone(t *testing.T) {
	assert.Equal(t, "UTC", NewTimezone(0).String())
	assert.Equal(t, "UTC+05:30", NewTimezone(5*time.Hour+30*time.Minute).String())
	assert.Equal(t, "UTC-08:00", NewTimezone(-8*time.Hour).String())

	loc := NewTimezone(2 * time.Hour).Location()
	_, offset := time.Date(2023, time.February, 14, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 2*60*60, offset)
}
