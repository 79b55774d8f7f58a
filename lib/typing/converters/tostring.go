package converters

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/loosetype/datautils/lib/collections"
	"github.com/loosetype/datautils/lib/fspath"
	"github.com/loosetype/datautils/lib/jsonutil"
	"github.com/loosetype/datautils/lib/stringutil"
	"github.com/loosetype/datautils/lib/typing/ext"
)

// Format selects how containers render: a comma-joined summary or JSON text.
type Format string

const (
	FormatSimple Format = "simple"
	FormatJSON   Format = "json"
)

// The *ToString family mirrors StringTo*: a value of the wrong runtime type
// yields ("", false), never an error.

func BytesToString(value any) (string, bool) {
	castedValue, isOk := value.([]byte)
	if !isOk || !utf8.Valid(castedValue) {
		return "", false
	}

	return string(castedValue), true
}

func ComplexToString(value any) (string, bool) {
	switch castedValue := value.(type) {
	case complex64:
		return strconv.FormatComplex(complex128(castedValue), 'g', -1, 64), true
	case complex128:
		return strconv.FormatComplex(castedValue, 'g', -1, 128), true
	default:
		return "", false
	}
}

func CounterToString(value any, format Format) (string, bool) {
	castedValue, isOk := value.(*collections.Counter)
	if !isOk {
		return "", false
	}

	counts := make(map[string]int, castedValue.Len())
	for item, count := range castedValue.Items() {
		counts[fmt.Sprint(item)] = count
	}

	if format == FormatJSON {
		encoded, err := jsonutil.Marshal(counts)
		if err != nil {
			return "", false
		}
		return string(encoded), true
	}

	return stringutil.JoinAny(sortedKeys(counts)), true
}

func DateToString(value any, layout string) (string, bool) {
	castedValue, isOk := value.(ext.Date)
	if !isOk {
		return "", false
	}

	if layout != "" {
		return castedValue.Format(layout), true
	}

	return castedValue.String(), true
}

func DatetimeToString(value any, layout string) (string, bool) {
	castedValue, isOk := value.(time.Time)
	if !isOk {
		return "", false
	}

	if layout != "" {
		return castedValue.Format(layout), true
	}

	return castedValue.Format(time.RFC3339Nano), true
}

func DecimalToString(value any) (string, bool) {
	castedValue, isOk := value.(*apd.Decimal)
	if !isOk {
		return "", false
	}

	return castedValue.Text('f'), true
}

func DefaultMapToString(value any, format Format) (string, bool) {
	castedValue, isOk := value.(*collections.DefaultMap)
	if !isOk {
		return "", false
	}

	return MapToString(castedValue.Items(), format)
}

func DequeToString(value any, format Format) (string, bool) {
	castedValue, isOk := value.(*collections.Deque)
	if !isOk {
		return "", false
	}

	return SliceToString(castedValue.Items(), format)
}

func DurationToString(value any) (string, bool) {
	castedValue, isOk := value.(time.Duration)
	if !isOk {
		return "", false
	}

	return ext.FormatDuration(castedValue), true
}

func FractionToString(value any) (string, bool) {
	castedValue, isOk := value.(*big.Rat)
	if !isOk {
		return "", false
	}

	return castedValue.RatString(), true
}

func FrozenMapToString(value any, format Format) (string, bool) {
	castedValue, isOk := value.(*collections.FrozenMap)
	if !isOk {
		return "", false
	}

	return MapToString(castedValue.Items(), format)
}

func FrozenSetToString(value any, format Format) (string, bool) {
	castedValue, isOk := value.(*collections.FrozenSet)
	if !isOk {
		return "", false
	}

	return SliceToString(castedValue.Items(), format)
}

// MapToString renders JSON text, or a comma-joined listing of the keys when
// a short summary form is wanted.
func MapToString(value any, format Format) (string, bool) {
	castedValue, isOk := value.(map[string]any)
	if !isOk {
		return "", false
	}

	if format == FormatJSON {
		encoded, err := jsonutil.Marshal(castedValue)
		if err != nil {
			return "", false
		}
		return string(encoded), true
	}

	keys := make([]any, 0, len(castedValue))
	for key := range castedValue {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].(string) < keys[j].(string) })
	return stringutil.JoinAny(keys), true
}

func PathToString(value any) (string, bool) {
	castedValue, isOk := value.(fspath.Path)
	if !isOk {
		return "", false
	}

	return castedValue.String(), true
}

func SetToString(value any, format Format) (string, bool) {
	castedValue, isOk := value.(*collections.Set)
	if !isOk {
		return "", false
	}

	return SliceToString(castedValue.Items(), format)
}

func SliceToString(value any, format Format) (string, bool) {
	items, isOk := anySlice(value)
	if !isOk {
		return "", false
	}

	if format == FormatJSON {
		encoded, err := jsonutil.Marshal(items)
		if err != nil {
			return "", false
		}
		return string(encoded), true
	}

	return stringutil.JoinAny(items), true
}

func TimeToString(value any, layout string) (string, bool) {
	castedValue, isOk := value.(ext.Time)
	if !isOk {
		return "", false
	}

	if layout != "" {
		return castedValue.Format(layout), true
	}

	return castedValue.String(), true
}

func TimezoneToString(value any) (string, bool) {
	castedValue, isOk := value.(ext.Timezone)
	if !isOk {
		return "", false
	}

	return castedValue.String(), true
}

func TupleToString(value any, format Format) (string, bool) {
	castedValue, isOk := value.(collections.Tuple)
	if !isOk {
		return "", false
	}

	return SliceToString(castedValue.Items(), format)
}

func UUIDToString(value any) (string, bool) {
	castedValue, isOk := value.(uuid.UUID)
	if !isOk {
		return "", false
	}

	return castedValue.String(), true
}

func sortedKeys(counts map[string]int) []any {
	keys := make([]any, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].(string) < keys[j].(string) })
	return keys
}

func anySlice(value any) ([]any, bool) {
	switch castedValue := value.(type) {
	case []any:
		return castedValue, true
	case collections.Tuple:
		return castedValue.Items(), true
	case []byte:
		return nil, false
	}

	// Typed slices ([]string, []int32, ...) still count as sequences.
	reflected := reflect.ValueOf(value)
	if reflected.Kind() != reflect.Slice {
		return nil, false
	}

	items := make([]any, reflected.Len())
	for i := range items {
		items[i] = reflected.Index(i).Interface()
	}
	return items, true
}
