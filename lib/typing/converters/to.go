package converters

import (
	"math/big"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/loosetype/datautils/lib/collections"
	"github.com/loosetype/datautils/lib/fspath"
	"github.com/loosetype/datautils/lib/stringutil"
	"github.com/loosetype/datautils/lib/typing/ext"
)

// The To* family is for callers that have already committed to a target type:
// failure surfaces as a [ConversionError] instead of being swallowed.

// ToBool applies generic truthiness: zero values, empty text and empty
// containers are false, everything else is true.
func ToBool(value any) bool {
	switch castedValue := value.(type) {
	case nil:
		return false
	case bool:
		return castedValue
	case string:
		return castedValue != ""
	case []byte:
		return len(castedValue) != 0
	case *collections.Set:
		return castedValue.Len() != 0
	case *collections.FrozenSet:
		return castedValue.Len() != 0
	case *collections.Counter:
		return castedValue.Len() != 0
	case *collections.Deque:
		return castedValue.Len() != 0
	case *collections.DefaultMap:
		return castedValue.Len() != 0
	case *collections.FrozenMap:
		return castedValue.Len() != 0
	case collections.Tuple:
		return len(castedValue) != 0
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return !reflected.IsZero()
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !reflected.IsZero()
	case reflect.Map, reflect.Slice:
		return reflected.Len() != 0
	default:
		return true
	}
}

func ToBytes(value any) ([]byte, error) {
	switch castedValue := value.(type) {
	case []byte:
		copied := make([]byte, len(castedValue))
		copy(copied, castedValue)
		return copied, nil
	case string:
		parsed, isOk := StringToBytes(castedValue)
		if !isOk {
			return nil, NewConversionError(value, "bytes")
		}
		return parsed, nil
	default:
		return nil, NewConversionError(value, "bytes")
	}
}

func ToDate(value any) (ext.Date, error) {
	switch castedValue := value.(type) {
	case ext.Date:
		return castedValue, nil
	case time.Time:
		return ext.DateFromTime(castedValue), nil
	case string:
		parsed, isOk := StringToDate(castedValue, "")
		if !isOk {
			return ext.Date{}, NewConversionError(value, "date")
		}
		return parsed, nil
	default:
		return ext.Date{}, NewConversionError(value, "date")
	}
}

func ToDatetime(value any) (time.Time, error) {
	switch castedValue := value.(type) {
	case time.Time:
		return castedValue, nil
	case ext.Date:
		return castedValue.Time(), nil
	case string:
		parsed, isOk := StringToDatetime(castedValue, "")
		if !isOk {
			return time.Time{}, NewConversionError(value, "datetime")
		}
		return parsed, nil
	default:
		return time.Time{}, NewConversionError(value, "datetime")
	}
}

func ToDecimal(value any) (*apd.Decimal, error) {
	switch castedValue := value.(type) {
	case *apd.Decimal:
		return castedValue, nil
	case string:
		parsed, isOk := StringToDecimal(castedValue)
		if !isOk {
			return nil, NewConversionError(value, "decimal")
		}
		return parsed, nil
	case int, int8, int16, int32, int64:
		return apd.New(reflect.ValueOf(value).Int(), 0), nil
	case float32:
		return float64ToDecimal(float64(castedValue), value)
	case float64:
		return float64ToDecimal(castedValue, value)
	default:
		return nil, NewConversionError(value, "decimal")
	}
}

func ToDuration(value any) (time.Duration, error) {
	switch castedValue := value.(type) {
	case time.Duration:
		return castedValue, nil
	case string:
		parsed, isOk := StringToDuration(castedValue)
		if !isOk {
			return 0, NewConversionError(value, "duration")
		}
		return parsed, nil
	case int, int8, int16, int32, int64:
		// Bare numbers are days, mirroring timedelta's positional argument.
		return time.Duration(reflect.ValueOf(value).Int()) * 24 * time.Hour, nil
	default:
		return 0, NewConversionError(value, "duration")
	}
}

func ToFraction(value any) (*big.Rat, error) {
	switch castedValue := value.(type) {
	case *big.Rat:
		return castedValue, nil
	case string:
		parsed, isOk := StringToFraction(castedValue)
		if !isOk {
			return nil, NewConversionError(value, "fraction")
		}
		return parsed, nil
	case int, int8, int16, int32, int64:
		return new(big.Rat).SetInt64(reflect.ValueOf(value).Int()), nil
	case float32:
		return float64ToFraction(float64(castedValue), value)
	case float64:
		return float64ToFraction(castedValue, value)
	default:
		return nil, NewConversionError(value, "fraction")
	}
}

func ToPath(value any) (fspath.Path, error) {
	switch castedValue := value.(type) {
	case fspath.Path:
		return castedValue, nil
	case string:
		if castedValue == "" {
			return "", NewConversionError(value, "path")
		}
		return fspath.New(castedValue), nil
	default:
		return "", NewConversionError(value, "path")
	}
}

// ToStr stringifies value and verifies the text survives an encode/decode
// cycle without loss. The round-trip is a correctness check, not formatting.
func ToStr(value any) (string, error) {
	text, isOk := stringutil.EncodeRoundTrip(value)
	if !isOk {
		return "", NewConversionError(value, "string")
	}

	return text, nil
}

func ToTime(value any) (ext.Time, error) {
	switch castedValue := value.(type) {
	case ext.Time:
		return castedValue, nil
	case time.Time:
		return ext.TimeFromTime(castedValue), nil
	case string:
		parsed, isOk := StringToTime(castedValue, "")
		if !isOk {
			return ext.Time{}, NewConversionError(value, "time")
		}
		return parsed, nil
	default:
		return ext.Time{}, NewConversionError(value, "time")
	}
}

func ToUUID(value any) (uuid.UUID, error) {
	switch castedValue := value.(type) {
	case uuid.UUID:
		return castedValue, nil
	case [16]byte:
		return uuid.UUID(castedValue), nil
	case string:
		parsed, isOk := StringToUUID(castedValue)
		if !isOk {
			return uuid.UUID{}, NewConversionError(value, "uuid")
		}
		return parsed, nil
	default:
		return uuid.UUID{}, NewConversionError(value, "uuid")
	}
}

func float64ToDecimal(value float64, original any) (*apd.Decimal, error) {
	parsed, err := new(apd.Decimal).SetFloat64(value)
	if err != nil {
		return nil, NewConversionError(original, "decimal")
	}

	return parsed, nil
}

func float64ToFraction(value float64, original any) (*big.Rat, error) {
	parsed := new(big.Rat).SetFloat64(value)
	if parsed == nil {
		return nil, NewConversionError(original, "fraction")
	}

	return parsed, nil
}
