package jsonutil

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Numbers are decoded as json.Number so integers are not collapsed into
// float64 on the way through, and map keys are sorted so encoding the same
// tree twice yields the same bytes.
var cfg = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

func Marshal(value any) ([]byte, error) {
	return cfg.Marshal(value)
}

func Unmarshal(data []byte, value any) error {
	return cfg.Unmarshal(data, value)
}

// IsJSON - we also need to check if the string is a JSON object or not.
// If it could be one, it will start with { and end with }.
// This is an optimization since JSON validation is expensive.
func IsJSON(str string) bool {
	if len(str) < 2 {
		// Not LTE 2 because {} is a valid JSON object.
		return false
	}

	if strings.HasPrefix(str, "{") && strings.HasSuffix(str, "}") {
		var raw jsoniter.RawMessage
		return cfg.Unmarshal([]byte(str), &raw) == nil
	}

	return false
}

// IsJSONArray is the bracket-delimited counterpart of [IsJSON].
func IsJSONArray(str string) bool {
	if len(str) < 2 {
		return false
	}

	if strings.HasPrefix(str, "[") && strings.HasSuffix(str, "]") {
		var raw jsoniter.RawMessage
		return cfg.Unmarshal([]byte(str), &raw) == nil
	}

	return false
}
