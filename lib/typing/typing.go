package typing

import (
	"math/big"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/loosetype/datautils/lib/collections"
	"github.com/loosetype/datautils/lib/fspath"
	"github.com/loosetype/datautils/lib/typing/ext"
)

// SchemaValidationAvailable reports whether schema-driven validation is
// compiled in. It is a capability flag callers can branch on.
const SchemaValidationAvailable = false

type KindDetails struct {
	Kind string
}

var (
	Invalid = KindDetails{
		Kind: "invalid",
	}

	Boolean = KindDetails{
		Kind: "bool",
	}

	Integer = KindDetails{
		Kind: "int",
	}

	Float = KindDetails{
		Kind: "float",
	}

	Complex = KindDetails{
		Kind: "complex",
	}

	Decimal = KindDetails{
		Kind: "decimal",
	}

	Fraction = KindDetails{
		Kind: "fraction",
	}

	String = KindDetails{
		Kind: "string",
	}

	Bytes = KindDetails{
		Kind: "bytes",
	}

	Date = KindDetails{
		Kind: "date",
	}

	Datetime = KindDetails{
		Kind: "datetime",
	}

	Time = KindDetails{
		Kind: "time",
	}

	Duration = KindDetails{
		Kind: "duration",
	}

	Timezone = KindDetails{
		Kind: "timezone",
	}

	UUID = KindDetails{
		Kind: "uuid",
	}

	Path = KindDetails{
		Kind: "path",
	}

	Map = KindDetails{
		Kind: "map",
	}

	DefaultMap = KindDetails{
		Kind: "default_map",
	}

	FrozenMap = KindDetails{
		Kind: "frozen_map",
	}

	Slice = KindDetails{
		Kind: "slice",
	}

	Tuple = KindDetails{
		Kind: "tuple",
	}

	Set = KindDetails{
		Kind: "set",
	}

	FrozenSet = KindDetails{
		Kind: "frozen_set",
	}

	Counter = KindDetails{
		Kind: "counter",
	}

	Deque = KindDetails{
		Kind: "deque",
	}
)

// KindOf classifies a value by its concrete Go type. Strings always come
// back as String; use [IdentifyInString] to sniff what a string encodes.
func KindOf(value any) KindDetails {
	switch value.(type) {
	case nil:
		return Invalid
	case bool:
		return Boolean
	case uint, int, uint8, uint16, uint32, uint64, int8, int16, int32, int64:
		return Integer
	case float32, float64:
		return Float
	case complex64, complex128:
		return Complex
	case *apd.Decimal:
		return Decimal
	case *big.Rat:
		return Fraction
	case string:
		return String
	case []byte:
		return Bytes
	case ext.Date:
		return Date
	case time.Time:
		return Datetime
	case ext.Time:
		return Time
	case time.Duration:
		return Duration
	case ext.Timezone:
		return Timezone
	case uuid.UUID:
		return UUID
	case fspath.Path:
		return Path
	case *collections.DefaultMap:
		return DefaultMap
	case *collections.FrozenMap:
		return FrozenMap
	case collections.Tuple:
		return Tuple
	case *collections.Set:
		return Set
	case *collections.FrozenSet:
		return FrozenSet
	case *collections.Counter:
		return Counter
	case *collections.Deque:
		return Deque
	}

	// Typed maps and slices still classify as their container kind.
	switch reflect.TypeOf(value).Kind() {
	case reflect.Map:
		return Map
	case reflect.Slice:
		return Slice
	default:
		return Invalid
	}
}
