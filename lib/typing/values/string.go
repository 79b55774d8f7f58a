package values

import (
	"fmt"
	"log/slog"

	"github.com/loosetype/datautils/lib/typing"
	"github.com/loosetype/datautils/lib/typing/converters"
)

// ToString renders any identified value as text using the converter for its
// kind. Containers honor format; everything else renders canonically.
func ToString(value any, format converters.Format) (string, error) {
	if value == nil {
		return "", fmt.Errorf("value is nil")
	}

	converter := getStringConverter(typing.KindOf(value), format)
	converted, err := converter.Convert(value)
	if err != nil {
		return "", err
	}

	return converted, nil
}

func getStringConverter(kd typing.KindDetails, format converters.Format) converters.Converter {
	switch kd.Kind {
	// Base types
	case typing.Boolean.Kind, typing.Integer.Kind, typing.Float.Kind:
		return converters.PrimitiveConverter{}
	case typing.String.Kind:
		return converters.StringConverter{}
	// Time types
	case typing.Date.Kind:
		return converters.DateConverter{}
	case typing.Datetime.Kind:
		return converters.DatetimeConverter{}
	case typing.Time.Kind:
		return converters.TimeConverter{}
	case typing.Duration.Kind:
		return converters.DurationConverter{}
	case typing.Timezone.Kind:
		return converters.TimezoneConverter{}
	// Numbers types
	case typing.Decimal.Kind:
		return converters.DecimalConverter{}
	case typing.Fraction.Kind:
		return converters.FractionConverter{}
	case typing.Complex.Kind:
		return converters.ComplexConverter{}
	// Container types
	case typing.Map.Kind:
		return converters.MapConverter{Format: format}
	case typing.DefaultMap.Kind:
		return converters.DefaultMapConverter{Format: format}
	case typing.FrozenMap.Kind:
		return converters.FrozenMapConverter{Format: format}
	case typing.Slice.Kind:
		return converters.SliceConverter{Format: format}
	case typing.Tuple.Kind:
		return converters.TupleConverter{Format: format}
	case typing.Set.Kind:
		return converters.SetConverter{Format: format}
	case typing.FrozenSet.Kind:
		return converters.FrozenSetConverter{Format: format}
	case typing.Counter.Kind:
		return converters.CounterConverter{Format: format}
	case typing.Deque.Kind:
		return converters.DequeConverter{Format: format}
	// Everything else
	case typing.Path.Kind:
		return converters.PathConverter{}
	case typing.Bytes.Kind:
		return converters.BytesConverter{}
	case typing.UUID.Kind:
		return converters.UUIDConverter{}
	default:
		slog.Warn("[getStringConverter] - Unsupported kind, falling back to generic stringification", slog.String("kind", kd.Kind))
		return converters.FallbackConverter{}
	}
}
