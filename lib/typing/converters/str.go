package converters

import (
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/loosetype/datautils/lib/collections"
	"github.com/loosetype/datautils/lib/fspath"
	"github.com/loosetype/datautils/lib/jsonutil"
	"github.com/loosetype/datautils/lib/typing/ext"
)

// The StringTo* family never fails hard: malformed input yields (zero, false).
// These are the conditions of the identification chains, so one bad value must
// not abort classification of the rest of the chain.

var trueTokens = []string{"true", "1", "t", "y", "yes"}
var falseTokens = []string{"false", "0", "f", "n", "no"}

func StringToBool(value string) (bool, bool) {
	lowered := strings.ToLower(value)
	for _, token := range trueTokens {
		if lowered == token {
			return true, true
		}
	}

	for _, token := range falseTokens {
		if lowered == token {
			return false, true
		}
	}

	return false, false
}

func StringToBytes(value string) ([]byte, bool) {
	if !utf8.ValidString(value) {
		return nil, false
	}

	return []byte(value), true
}

func StringToComplex(value string) (complex128, bool) {
	parsed, err := strconv.ParseComplex(value, 128)
	if err != nil {
		return 0, false
	}

	return parsed, true
}

// StringToCounter counts the runes of value, mirroring a multiset built from
// an iterable.
func StringToCounter(value string) (*collections.Counter, bool) {
	if value == "" {
		return nil, false
	}

	return collections.NewCounterFromString(value), true
}

func StringToDate(value string, layout string) (ext.Date, bool) {
	parsed, err := ext.ParseDate(value, layout)
	if err != nil {
		return ext.Date{}, false
	}

	return parsed, true
}

func StringToDatetime(value string, layout string) (time.Time, bool) {
	parsed, err := ext.ParseDatetime(value, layout)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

func StringToDecimal(value string) (*apd.Decimal, bool) {
	parsed, _, err := apd.NewFromString(value)
	if err != nil {
		return nil, false
	}

	return parsed, true
}

func StringToDefaultMap(value string) (*collections.DefaultMap, bool) {
	parsed, isOk := StringToMap(value)
	if !isOk {
		return nil, false
	}

	return collections.NewDefaultMapFromMap(parsed, nil), true
}

func StringToDeque(value string) (*collections.Deque, bool) {
	parsed, isOk := StringToSlice(value)
	if !isOk {
		return nil, false
	}

	return collections.NewDeque(0, parsed...), true
}

func StringToFloat(value string) (float64, bool) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return parsed, true
}

func StringToFraction(value string) (*big.Rat, bool) {
	parsed, isOk := new(big.Rat).SetString(value)
	if !isOk {
		return nil, false
	}

	return parsed, true
}

func StringToFrozenMap(value string) (*collections.FrozenMap, bool) {
	parsed, isOk := StringToMap(value)
	if !isOk {
		return nil, false
	}

	return collections.NewFrozenMap(parsed), true
}

func StringToFrozenSet(value string) (*collections.FrozenSet, bool) {
	parsed, isOk := StringToSlice(value)
	if !isOk {
		return nil, false
	}

	return collections.NewFrozenSet(parsed...), true
}

func StringToInt(value string) (int64, bool) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}

	return parsed, true
}

// StringToMap requires the {...} delimiters and valid JSON between them.
func StringToMap(value string) (map[string]any, bool) {
	if !jsonutil.IsJSON(value) {
		return nil, false
	}

	var parsed map[string]any
	if err := jsonutil.Unmarshal([]byte(value), &parsed); err != nil {
		return nil, false
	}

	jsonutil.NormalizeNumbers(parsed)
	return parsed, true
}

// StringToPath requires a path-shaped string: a separator, or a relative/home
// prefix. Bare words are not paths, otherwise every string would classify as
// one and the identification chains would never fall through.
func StringToPath(value string) (fspath.Path, bool) {
	if value == "" || strings.ContainsRune(value, 0) {
		return "", false
	}

	pathShaped := strings.ContainsRune(value, '/') ||
		strings.HasPrefix(value, ".") ||
		strings.HasPrefix(value, "~")
	if !pathShaped {
		return "", false
	}

	return fspath.New(value), true
}

// StringToSet parses "{a,b,c}" into a set of the literal substrings. A colon
// means the string is dict-shaped and is rejected.
func StringToSet(value string) (*collections.Set, bool) {
	items, isOk := splitDelimited(value, "{", "}")
	if !isOk {
		return nil, false
	}

	return collections.NewSet(items...), true
}

// StringToSlice requires the [...] delimiters and valid JSON between them.
func StringToSlice(value string) ([]any, bool) {
	if !jsonutil.IsJSONArray(value) {
		return nil, false
	}

	var parsed []any
	if err := jsonutil.Unmarshal([]byte(value), &parsed); err != nil {
		return nil, false
	}

	jsonutil.NormalizeNumbers(parsed)
	return parsed, true
}

func StringToTime(value string, layout string) (ext.Time, bool) {
	parsed, err := ext.ParseTimeOfDay(value, layout)
	if err != nil {
		return ext.Time{}, false
	}

	return parsed, true
}

func StringToDuration(value string) (time.Duration, bool) {
	parsed, err := ext.ParseDuration(value)
	if err != nil {
		return 0, false
	}

	return parsed, true
}

func StringToTimezone(value string) (ext.Timezone, bool) {
	parsed, err := ext.ParseTimezone(value)
	if err != nil {
		return ext.Timezone{}, false
	}

	return parsed, true
}

// StringToTuple parses "(a,b,c)" into a tuple of the literal substrings.
func StringToTuple(value string) (collections.Tuple, bool) {
	items, isOk := splitDelimited(value, "(", ")")
	if !isOk {
		return nil, false
	}

	return collections.NewTuple(items...), true
}

func StringToUUID(value string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return uuid.UUID{}, false
	}

	return parsed, true
}

func splitDelimited(value string, opening string, closing string) ([]any, bool) {
	if !strings.HasPrefix(value, opening) || !strings.HasSuffix(value, closing) {
		return nil, false
	}

	if strings.Contains(value, ":") {
		return nil, false
	}

	parts := strings.Split(value[len(opening):len(value)-len(closing)], ",")
	items := make([]any, len(parts))
	for i, part := range parts {
		items[i] = part
	}

	return items, true
}
