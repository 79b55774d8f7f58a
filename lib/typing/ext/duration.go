package ext

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	isoduration "github.com/sosodev/duration"
)

// ParseDuration accepts ISO-8601 durations ("P1DT2H3M4S"), Go duration
// literals ("26h3m4s"), and the legacy "days,hh:mm:ss" form.
func ParseDuration(value string) (time.Duration, error) {
	if parsed, err := isoduration.Parse(value); err == nil {
		return parsed.ToTimeDuration(), nil
	}

	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed, nil
	}

	if parsed, err := parseLegacyDuration(value); err == nil {
		return parsed, nil
	}

	return 0, fmt.Errorf("unsupported duration: %q", value)
}

// FormatDuration renders the canonical ISO-8601 form, e.g. "PT26H3M4S".
func FormatDuration(value time.Duration) string {
	return isoduration.FromTimeDuration(value).String()
}

// parseLegacyDuration handles "days,hh:mm:ss".
func parseLegacyDuration(value string) (time.Duration, error) {
	daysPart, clockPart, hasClock := strings.Cut(value, ",")
	if !hasClock {
		return 0, fmt.Errorf("missing clock component: %q", value)
	}

	clockParts := strings.Split(strings.TrimSpace(clockPart), ":")
	if len(clockParts) != 3 {
		return 0, fmt.Errorf("malformed clock component: %q", value)
	}

	days, err := strconv.Atoi(strings.TrimSpace(daysPart))
	if err != nil {
		return 0, err
	}

	var clock [3]int
	for i, part := range clockParts {
		clock[i], err = strconv.Atoi(part)
		if err != nil {
			return 0, err
		}
	}

	return time.Duration(days)*24*time.Hour +
		time.Duration(clock[0])*time.Hour +
		time.Duration(clock[1])*time.Minute +
		time.Duration(clock[2])*time.Second, nil
}
