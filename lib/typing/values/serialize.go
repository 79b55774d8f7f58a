package values

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/loosetype/datautils/lib/collections"
	"github.com/loosetype/datautils/lib/jsonutil"
	"github.com/loosetype/datautils/lib/typing"
	"github.com/loosetype/datautils/lib/typing/converters"
)

// Serialize renders a value as JSON text. Containers are walked recursively
// and every rich leaf (dates, decimals, UUIDs, ...) is replaced with its
// canonical string before encoding; top-level scalars skip the JSON encoding
// and render directly.
func Serialize(value any) (string, error) {
	if value == nil {
		return "null", nil
	}

	switch typing.KindOf(value).Kind {
	case typing.Map.Kind, typing.DefaultMap.Kind, typing.FrozenMap.Kind,
		typing.Slice.Kind, typing.Tuple.Kind, typing.Set.Kind, typing.FrozenSet.Kind,
		typing.Counter.Kind, typing.Deque.Kind:
		normalized, err := normalize(value)
		if err != nil {
			return "", err
		}

		encoded, err := jsonutil.Marshal(normalized)
		if err != nil {
			return "", err
		}

		return string(encoded), nil
	default:
		return ToString(value, converters.FormatSimple)
	}
}

// normalize rewrites a value tree so every node is JSON representable.
// Primitives stay native, containers recurse, everything else collapses to
// its canonical string.
func normalize(value any) (any, error) {
	switch castedValue := value.(type) {
	case nil:
		return nil, nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, string:
		return castedValue, nil
	case []byte:
		// Bytes are a scalar leaf, not a sequence of numbers.
		return ToString(castedValue, converters.FormatSimple)
	case map[string]any:
		return normalizeMap(castedValue)
	case []any:
		return normalizeSlice(castedValue)
	case *collections.DefaultMap:
		return normalizeMap(castedValue.Items())
	case *collections.FrozenMap:
		return normalizeMap(castedValue.Items())
	case collections.Tuple:
		return normalizeSlice(castedValue.Items())
	case *collections.Deque:
		return normalizeSlice(castedValue.Items())
	case *collections.Set:
		return normalizeSetItems(castedValue.Items())
	case *collections.FrozenSet:
		return normalizeSetItems(castedValue.Items())
	case *collections.Counter:
		return normalizeCounter(castedValue)
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Map:
		return normalizeReflectedMap(reflect.ValueOf(value))
	case reflect.Slice:
		return normalizeReflectedSlice(reflect.ValueOf(value))
	}

	// Rich scalars collapse to their canonical text.
	return ToString(value, converters.FormatSimple)
}

func normalizeMap(items map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(items))
	for key, item := range items {
		normalizedItem, err := normalize(item)
		if err != nil {
			return nil, err
		}

		normalized[key] = normalizedItem
	}

	return normalized, nil
}

func normalizeSlice(items []any) ([]any, error) {
	normalized := make([]any, len(items))
	for idx, item := range items {
		normalizedItem, err := normalize(item)
		if err != nil {
			return nil, err
		}

		normalized[idx] = normalizedItem
	}

	return normalized, nil
}

// normalizeSetItems orders set elements by their rendered form so the same
// set always serializes to the same text.
func normalizeSetItems(items []any) ([]any, error) {
	normalized, err := normalizeSlice(items)
	if err != nil {
		return nil, err
	}

	sort.Slice(normalized, func(i, j int) bool {
		return fmt.Sprint(normalized[i]) < fmt.Sprint(normalized[j])
	})
	return normalized, nil
}

// normalizeCounter renders a counter as an element -> count mapping.
func normalizeCounter(counter *collections.Counter) (map[string]any, error) {
	normalized := make(map[string]any, counter.Len())
	for item, count := range counter.Items() {
		key, err := ToString(item, converters.FormatSimple)
		if err != nil {
			return nil, err
		}

		normalized[key] = count
	}

	return normalized, nil
}

func normalizeReflectedMap(reflected reflect.Value) (map[string]any, error) {
	normalized := make(map[string]any, reflected.Len())
	iter := reflected.MapRange()
	for iter.Next() {
		key, err := mapKeyToString(iter.Key().Interface())
		if err != nil {
			return nil, err
		}

		normalizedItem, err := normalize(iter.Value().Interface())
		if err != nil {
			return nil, err
		}

		normalized[key] = normalizedItem
	}

	return normalized, nil
}

func normalizeReflectedSlice(reflected reflect.Value) ([]any, error) {
	normalized := make([]any, reflected.Len())
	for idx := range reflected.Len() {
		normalizedItem, err := normalize(reflected.Index(idx).Interface())
		if err != nil {
			return nil, err
		}

		normalized[idx] = normalizedItem
	}

	return normalized, nil
}

func mapKeyToString(key any) (string, error) {
	if stringKey, isOk := key.(string); isOk {
		return stringKey, nil
	}

	return ToString(key, converters.FormatSimple)
}

// Deserialize parses JSON text and recursively upgrades each string leaf to
// the richest type that claims it. Map keys are never upgraded. Input that
// is not valid JSON fails with a [converters.ParseError].
func Deserialize(text string) (any, error) {
	var decoded any
	if err := jsonutil.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, converters.NewParseError(fmt.Sprintf("failed to parse JSON: %v", err), converters.InvalidJSON)
	}

	return upgrade(jsonutil.NormalizeNumbers(decoded)), nil
}

// upgradeCandidates is the ordered chain Deserialize runs over each string
// leaf. The first parser that accepts the text wins. Counters and raw bytes
// stay out of the chain: both accept nearly any string and would swallow
// every leaf that reached them.
var upgradeCandidates []func(string) (any, bool)

func init() {
	upgradeCandidates = []func(string) (any, bool){
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToBool(text)
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToComplex(text)
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToDate(text, "")
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToDatetime(text, "")
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToDecimal(text)
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToDeque(text)
			if !isOk {
				return nil, false
			}
			return collections.NewDeque(0, upgradeItems(parsed.Items())...), true
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToMap(text)
			if !isOk {
				return nil, false
			}
			return upgradeMap(parsed), true
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToDefaultMap(text)
			if !isOk {
				return nil, false
			}
			return collections.NewDefaultMapFromMap(upgradeMap(parsed.Items()), nil), true
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToFraction(text)
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToFrozenMap(text)
			if !isOk {
				return nil, false
			}
			return collections.NewFrozenMap(upgradeMap(parsed.Items())), true
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToFrozenSet(text)
			if !isOk {
				return nil, false
			}
			return collections.NewFrozenSet(upgradeItems(parsed.Items())...), true
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToSet(text)
			if !isOk {
				return nil, false
			}
			return collections.NewSet(upgradeItems(parsed.Items())...), true
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToTime(text, "")
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToDuration(text)
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToTimezone(text)
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToUUID(text)
			return parsed, isOk
		},
		func(text string) (any, bool) {
			parsed, isOk := converters.StringToPath(text)
			return parsed, isOk
		},
	}
}

func upgrade(value any) any {
	switch castedValue := value.(type) {
	case map[string]any:
		return upgradeMap(castedValue)
	case []any:
		return upgradeItems(castedValue)
	case string:
		for _, candidate := range upgradeCandidates {
			if upgraded, isOk := candidate(castedValue); isOk {
				return upgraded
			}
		}

		return castedValue
	default:
		return value
	}
}

func upgradeMap(items map[string]any) map[string]any {
	for key, item := range items {
		items[key] = upgrade(item)
	}

	return items
}

func upgradeItems(items []any) []any {
	for idx, item := range items {
		items[idx] = upgrade(item)
	}

	return items
}
