package primitives

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

type Int64Converter struct{}

func (Int64Converter) Convert(value any) (int64, error) {
	switch castValue := value.(type) {
	case string:
		parsed, err := strconv.ParseInt(castValue, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse string to int64: %w", err)
		}
		return parsed, nil
	case int8:
		return int64(castValue), nil
	case int16:
		return int64(castValue), nil
	case int32:
		return int64(castValue), nil
	case int:
		return int64(castValue), nil
	case int64:
		return castValue, nil
	case uint8:
		return int64(castValue), nil
	case uint16:
		return int64(castValue), nil
	case uint32:
		return int64(castValue), nil
	case uint:
		if uint64(castValue) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", castValue)
		}
		return int64(castValue), nil
	case uint64:
		if castValue > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", castValue)
		}
		return int64(castValue), nil
	case bool:
		if castValue {
			return 1, nil
		}
		return 0, nil
	case float32:
		return Int64Converter{}.Convert(float64(castValue))
	case float64:
		// We'll check for overflow and make sure there's no precision loss
		if castValue > math.MaxInt64 || castValue < math.MinInt64 {
			return 0, fmt.Errorf("value %f overflows int64", castValue)
		}

		if math.Trunc(castValue) != castValue {
			return 0, fmt.Errorf("float64 (%f) has fractional component", castValue)
		}

		return int64(castValue), nil
	case *apd.Decimal:
		val, err := castValue.Int64()
		if err != nil {
			return 0, fmt.Errorf("failed to convert decimal to int64: %w", err)
		}

		return val, nil
	}

	return 0, fmt.Errorf("failed to parse int64, unsupported type: %T", value)
}

type Float64Converter struct{}

func (Float64Converter) Convert(value any) (float64, error) {
	switch castValue := value.(type) {
	case float32:
		return float64(castValue), nil
	case float64:
		return castValue, nil
	case int8:
		return float64(castValue), nil
	case int16:
		return float64(castValue), nil
	case int32:
		return float64(castValue), nil
	case int:
		return float64(castValue), nil
	case int64:
		return float64(castValue), nil
	case string:
		parsed, err := strconv.ParseFloat(castValue, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse string to float64: %w", err)
		}
		return parsed, nil
	case *apd.Decimal:
		parsed, err := castValue.Float64()
		if err != nil {
			return 0, fmt.Errorf("failed to convert decimal to float64: %w", err)
		}
		return parsed, nil
	}

	return 0, fmt.Errorf("failed to parse float64, unsupported type: %T", value)
}

type BooleanConverter struct{}

func (BooleanConverter) Convert(value any) (bool, error) {
	switch castValue := value.(type) {
	case string:
		parsed, err := strconv.ParseBool(castValue)
		if err != nil {
			return false, fmt.Errorf("failed to parse string to boolean: %w", err)
		}
		return parsed, nil
	case bool:
		return castValue, nil
	case int:
		switch castValue {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	case int64:
		switch castValue {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}

	return false, fmt.Errorf("failed to parse boolean, unsupported type: %T, value: %v", value, value)
}

type Complex128Converter struct{}

func (Complex128Converter) Convert(value any) (complex128, error) {
	switch castValue := value.(type) {
	case complex64:
		return complex128(castValue), nil
	case complex128:
		return castValue, nil
	case float32:
		return complex(float64(castValue), 0), nil
	case float64:
		return complex(castValue, 0), nil
	case int:
		return complex(float64(castValue), 0), nil
	case int64:
		return complex(float64(castValue), 0), nil
	case string:
		parsed, err := strconv.ParseComplex(castValue, 128)
		if err != nil {
			return 0, fmt.Errorf("failed to parse string to complex128: %w", err)
		}
		return parsed, nil
	}

	return 0, fmt.Errorf("failed to parse complex128, unsupported type: %T", value)
}
