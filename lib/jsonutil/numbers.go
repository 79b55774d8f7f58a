package jsonutil

import (
	"encoding/json"
	"strings"
)

// NormalizeNumbers walks a freshly-decoded tree and rewrites every
// json.Number into int64 when it has no fractional part, float64 otherwise.
// JSON cannot tell integers and floats apart on its own, so we have to do it
// here rather than letting every number collapse into float64.
func NormalizeNumbers(value any) any {
	switch castedValue := value.(type) {
	case json.Number:
		if !strings.ContainsAny(castedValue.String(), ".eE") {
			if intValue, err := castedValue.Int64(); err == nil {
				return intValue
			}
		}

		floatValue, err := castedValue.Float64()
		if err != nil {
			return castedValue.String()
		}

		return floatValue
	case map[string]any:
		for key, item := range castedValue {
			castedValue[key] = NormalizeNumbers(item)
		}
		return castedValue
	case []any:
		for i, item := range castedValue {
			castedValue[i] = NormalizeNumbers(item)
		}
		return castedValue
	default:
		return value
	}
}
