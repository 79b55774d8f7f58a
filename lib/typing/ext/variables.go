package ext

import "time"

const (
	ISO8601     = "2006-01-02T15:04:05-07:00"
	ISO8601NoTZ = "2006-01-02T15:04:05"

	DateFormat = "2006-01-02"

	TimeFormat           = "15:04:05.999999999"
	TimeFormatNoFraction = "15:04:05"
	TimeFormatNoSeconds  = "15:04"
	SpaceSeparatedFormat = "2006-01-02 15:04:05"
	SpaceSeparatedNanos  = "2006-01-02 15:04:05.999999999"
	ISO8601Nanos         = "2006-01-02T15:04:05.999999999"
)

var supportedDatetimeLayouts = []string{
	time.RFC3339Nano,
	ISO8601,
	ISO8601Nanos,
	ISO8601NoTZ,
	SpaceSeparatedNanos,
	SpaceSeparatedFormat,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
}

var supportedDateLayouts = []string{
	DateFormat,
	"2006/01/02",
	"01/02/2006",
}

var supportedTimeLayouts = []string{
	TimeFormat,
	TimeFormatNoFraction,
	TimeFormatNoSeconds,
}
