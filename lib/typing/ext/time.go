package ext

import (
	"fmt"
	"time"
)

// Date is created because Golang's time.Time does not allow us to explicitly
// cast a value as a calendar date without a time component.
type Date struct {
	ts time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{ts: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime truncates ts to its calendar date.
func DateFromTime(ts time.Time) Date {
	return NewDate(ts.Year(), ts.Month(), ts.Day())
}

func (d Date) Time() time.Time {
	return d.ts
}

func (d Date) Format(layout string) string {
	return d.ts.Format(layout)
}

func (d Date) String() string {
	return d.ts.Format(DateFormat)
}

// Time is a wall-clock time of day, detached from any date.
type Time struct {
	ts time.Time
}

func NewTime(hour, minute, second, nanosecond int) Time {
	return Time{ts: time.Date(0, time.January, 1, hour, minute, second, nanosecond, time.UTC)}
}

// TimeFromTime keeps only the clock components of ts.
func TimeFromTime(ts time.Time) Time {
	return NewTime(ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond())
}

func (t Time) Time() time.Time {
	return t.ts
}

func (t Time) Format(layout string) string {
	return t.ts.Format(layout)
}

func (t Time) String() string {
	return t.ts.Format(TimeFormat)
}

// Timezone is a fixed offset from UTC. Named zones are out of scope; a
// serialized timezone only ever carries its offset.
type Timezone struct {
	offset time.Duration
}

func NewTimezone(offset time.Duration) Timezone {
	return Timezone{offset: offset}
}

func (z Timezone) Offset() time.Duration {
	return z.offset
}

func (z Timezone) Location() *time.Location {
	return time.FixedZone(z.String(), int(z.offset.Seconds()))
}

func (z Timezone) String() string {
	if z.offset == 0 {
		return "UTC"
	}

	offset := z.offset
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := int(offset.Hours())
	minutes := int(offset.Minutes()) % 60
	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}
