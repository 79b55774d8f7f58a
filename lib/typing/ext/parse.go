package ext

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimeExactMatch parses timeString and then re-formats it with the same
// layout, returning an error unless the two match. Things may parse correctly
// but actually truncate precision; the round-trip catches that.
func ParseTimeExactMatch(layout, timeString string) (time.Time, error) {
	ts, err := time.Parse(layout, timeString)
	if err != nil {
		return time.Time{}, err
	}

	if ts.Format(layout) != timeString {
		return time.Time{}, fmt.Errorf("failed to parse %q with layout %q", timeString, layout)
	}

	return ts, nil
}

// ParseDate parses value as a calendar date. An empty layout tries the
// supported layouts in order, ISO-8601 first.
func ParseDate(value string, layout string) (Date, error) {
	if layout != "" {
		ts, err := ParseTimeExactMatch(layout, value)
		if err != nil {
			return Date{}, err
		}
		return DateFromTime(ts), nil
	}

	for _, supportedLayout := range supportedDateLayouts {
		ts, err := ParseTimeExactMatch(supportedLayout, value)
		if err == nil {
			return DateFromTime(ts), nil
		}
	}

	return Date{}, fmt.Errorf("unsupported date layout: %q", value)
}

// ParseDatetime parses value as a full timestamp. An empty layout tries the
// supported layouts in order.
func ParseDatetime(value string, layout string) (time.Time, error) {
	if layout != "" {
		return ParseTimeExactMatch(layout, value)
	}

	for _, supportedLayout := range supportedDatetimeLayouts {
		ts, err := ParseTimeExactMatch(supportedLayout, value)
		if err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported datetime layout: %q", value)
}

// ParseTimeOfDay parses value as a wall-clock time. An empty layout tries the
// supported layouts in order.
func ParseTimeOfDay(value string, layout string) (Time, error) {
	if layout != "" {
		ts, err := ParseTimeExactMatch(layout, value)
		if err != nil {
			return Time{}, err
		}
		return TimeFromTime(ts), nil
	}

	for _, supportedLayout := range supportedTimeLayouts {
		ts, err := ParseTimeExactMatch(supportedLayout, value)
		if err == nil {
			return TimeFromTime(ts), nil
		}
	}

	return Time{}, fmt.Errorf("unsupported time layout: %q", value)
}

// ParseTimezone parses a fixed UTC offset: "UTC", "UTC+05:30", "-07:00", "+05".
func ParseTimezone(value string) (Timezone, error) {
	rest := strings.TrimPrefix(value, "UTC")
	if rest == "" && value != "" {
		return NewTimezone(0), nil
	}

	if len(rest) < 2 || (rest[0] != '+' && rest[0] != '-') {
		return Timezone{}, fmt.Errorf("unsupported timezone: %q", value)
	}

	negative := rest[0] == '-'
	hourPart, minutePart, hasMinutes := strings.Cut(rest[1:], ":")

	hours, err := strconv.Atoi(hourPart)
	if err != nil || len(hourPart) > 2 || hours > 23 {
		return Timezone{}, fmt.Errorf("unsupported timezone: %q", value)
	}

	var minutes int
	if hasMinutes {
		minutes, err = strconv.Atoi(minutePart)
		if err != nil || len(minutePart) != 2 || minutes > 59 {
			return Timezone{}, fmt.Errorf("unsupported timezone: %q", value)
		}
	}

	offset := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if negative {
		offset = -offset
	}

	return NewTimezone(offset), nil
}
